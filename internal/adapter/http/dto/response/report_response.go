package response

import "cityfuture/internal/domain/entities"

type ProjectSummaryResponse struct {
	TotalConstructionDays int    `json:"total_construction_days"`
	ProjectStartDate      string `json:"project_start_date"`
	ProjectEndDate        string `json:"project_end_date"`
	EstimatedDeliveryDate string `json:"estimated_delivery_date"`
	TotalOrders           int    `json:"total_orders"`
	Status                string `json:"status"`
}

func FromProjectSummary(s entities.ProjectSummary) ProjectSummaryResponse {
	return ProjectSummaryResponse{
		TotalConstructionDays: s.TotalConstructionDays,
		ProjectStartDate:      s.ProjectStartDate.Format(dateLayout),
		ProjectEndDate:        s.ProjectEndDate.Format(dateLayout),
		EstimatedDeliveryDate: s.EstimatedDeliveryDate.Format(dateLayout),
		TotalOrders:           s.TotalOrders,
		Status:                s.Status,
	}
}

type ConstructionReportResponse struct {
	ReportDate       string                 `json:"report_date"`
	TotalOrders      int                    `json:"total_orders"`
	PendingOrders    int                    `json:"pending_orders"`
	InProgressOrders int                    `json:"in_progress_orders"`
	FinishedOrders   int                    `json:"finished_orders"`
	PendingByType    map[string]int         `json:"pending_by_type"`
	InProgressByType map[string]int         `json:"in_progress_by_type"`
	FinishedByType   map[string]int         `json:"finished_by_type"`
	ProjectSummary   ProjectSummaryResponse `json:"project_summary"`
}

func FromConstructionReport(r entities.ConstructionReport) ConstructionReportResponse {
	return ConstructionReportResponse{
		ReportDate:       r.ReportDate.Format(dateLayout),
		TotalOrders:      r.TotalOrders,
		PendingOrders:    r.PendingOrders,
		InProgressOrders: r.InProgressOrders,
		FinishedOrders:   r.FinishedOrders,
		PendingByType:    r.PendingByType,
		InProgressByType: r.InProgressByType,
		FinishedByType:   r.FinishedByType,
		ProjectSummary:   FromProjectSummary(r.ProjectSummary),
	}
}
