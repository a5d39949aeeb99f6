package response

import (
	"time"

	"cityfuture/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ConstructionOrderResponse struct {
	ID               string           `json:"id"`
	ProjectName      string           `json:"project_name"`
	Location         LocationResponse `json:"location"`
	ConstructionType string           `json:"construction_type"`
	Status           string           `json:"status"`
	EstimatedDays    int              `json:"estimated_days"`
	StartDate        string           `json:"start_date"`
	DeliveryDate     string           `json:"delivery_date"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func FromConstructionOrder(o entities.ConstructionOrder) ConstructionOrderResponse {
	return ConstructionOrderResponse{
		ID:          o.ID,
		ProjectName: o.ProjectName,
		Location: LocationResponse{
			Latitude:  o.Location.Latitude,
			Longitude: o.Location.Longitude,
		},
		ConstructionType: o.ConstructionType,
		Status:           string(o.Status),
		EstimatedDays:    o.EstimatedDays,
		StartDate:        o.StartDate.Format(dateLayout),
		DeliveryDate:     o.DeliveryDate.Format(dateLayout),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromConstructionOrders(orders []entities.ConstructionOrder) []ConstructionOrderResponse {
	out := make([]ConstructionOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromConstructionOrder(o))
	}
	return out
}

type ValidationResponse struct {
	Valid         bool   `json:"valid"`
	Error         string `json:"error,omitempty"`
	Message       string `json:"message,omitempty"`
	EstimatedDays int    `json:"estimated_days,omitempty"`
}

type ProjectEndDateResponse struct {
	ProjectEndDate string `json:"project_end_date"`
}

func FromProjectEndDate(endDate time.Time) ProjectEndDateResponse {
	return ProjectEndDateResponse{ProjectEndDate: endDate.Format(dateLayout)}
}
