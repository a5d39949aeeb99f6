package entities

import "time"

// Project-level status values reported by ProjectSummary.
const (
	ProjectStatusNoOrders   = "No orders"
	ProjectStatusNotStarted = "Not started"
	ProjectStatusInProgress = "In progress"
	ProjectStatusCompleted  = "Completed"
)

// ProjectSummary aggregates the single global timeline. EstimatedDeliveryDate
// is the delivery date of the last order and doubles as the project end date.
type ProjectSummary struct {
	TotalConstructionDays int       `json:"total_construction_days"`
	ProjectStartDate      time.Time `json:"project_start_date"`
	ProjectEndDate        time.Time `json:"project_end_date"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
	TotalOrders           int       `json:"total_orders"`
	Status                string    `json:"status"`
}

// ConstructionReport breaks all orders down by status and construction type.
type ConstructionReport struct {
	ReportDate       time.Time      `json:"report_date"`
	TotalOrders      int            `json:"total_orders"`
	PendingOrders    int            `json:"pending_orders"`
	InProgressOrders int            `json:"in_progress_orders"`
	FinishedOrders   int            `json:"finished_orders"`
	PendingByType    map[string]int `json:"pending_by_type"`
	InProgressByType map[string]int `json:"in_progress_by_type"`
	FinishedByType   map[string]int `json:"finished_by_type"`
	ProjectSummary   ProjectSummary `json:"project_summary"`
}
