package entities

import "time"

// OrderStatus represents the lifecycle of a construction order.
//
// Orders only move forward: Pending -> In progress -> Finished. The overdue
// sweep may jump straight from Pending to Finished when both dates have
// passed; In progress is skipped, never revisited.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "In progress"
	OrderStatusFinished   OrderStatus = "Finished"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusFinished:
		return true
	}
	return false
}

// Coordinate is the exact location of a construction. Two orders may never
// share the same latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinate) InRange() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// ConstructionOrder is a scheduled construction on the single project
// timeline.
//
// StartDate and DeliveryDate are computed, never user supplied:
// delivery = start + EstimatedDays - 1 (the start day counts).
type ConstructionOrder struct {
	ID               string      `json:"id"`
	ProjectName      string      `json:"project_name"`
	Location         Coordinate  `json:"location"`
	ConstructionType string      `json:"construction_type"`
	Status           OrderStatus `json:"status"`
	EstimatedDays    int         `json:"estimated_days"`
	StartDate        time.Time   `json:"start_date"`
	DeliveryDate     time.Time   `json:"delivery_date"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// WithStatus returns a copy of the order in the given status.
func (o ConstructionOrder) WithStatus(status OrderStatus, now time.Time) ConstructionOrder {
	o.Status = status
	o.UpdatedAt = now
	return o
}

// WithSchedule returns a copy of the order re-planned to the given start date,
// keeping the delivery date consistent with EstimatedDays.
func (o ConstructionOrder) WithSchedule(start time.Time, now time.Time) ConstructionOrder {
	o.StartDate = start
	o.DeliveryDate = start.AddDate(0, 0, o.EstimatedDays-1)
	o.UpdatedAt = now
	return o
}
