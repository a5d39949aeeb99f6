package request

import (
	"strings"

	"cityfuture/internal/domain/entities"
)

type LocationRequest struct {
	// Pointers distinguish an omitted coordinate from a legitimate zero
	// (the equator and the prime meridian are valid build sites).
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

func (l LocationRequest) ToCoordinate() entities.Coordinate {
	c := entities.Coordinate{}
	if l.Latitude != nil {
		c.Latitude = *l.Latitude
	}
	if l.Longitude != nil {
		c.Longitude = *l.Longitude
	}
	return c
}

type ConstructionOrderRequest struct {
	ProjectName      string          `json:"project_name" binding:"required"`
	Location         LocationRequest `json:"location" binding:"required"`
	ConstructionType string          `json:"construction_type" binding:"required"`
}

func (r ConstructionOrderRequest) ResolveProjectName() string {
	return strings.TrimSpace(r.ProjectName)
}

// UpdateConstructionOrderRequest carries the mutable fields. Empty fields are
// left untouched; location and dates are fixed at creation.
type UpdateConstructionOrderRequest struct {
	ProjectName      string `json:"project_name"`
	ConstructionType string `json:"construction_type"`
}
