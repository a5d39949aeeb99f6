package response

import (
	"time"

	"cityfuture/internal/domain/entities"
)

type DailyTransitionResponse struct {
	Date     string                      `json:"date"`
	Started  []ConstructionOrderResponse `json:"started"`
	Finished []ConstructionOrderResponse `json:"finished"`
}

func NewDailyTransitionResponse(date time.Time, started, finished []entities.ConstructionOrder) DailyTransitionResponse {
	return DailyTransitionResponse{
		Date:     date.Format(dateLayout),
		Started:  FromConstructionOrders(started),
		Finished: FromConstructionOrders(finished),
	}
}

type ProcessedOrdersResponse struct {
	Processed []ConstructionOrderResponse `json:"processed"`
}

func NewProcessedOrdersResponse(orders []entities.ConstructionOrder) ProcessedOrdersResponse {
	return ProcessedOrdersResponse{Processed: FromConstructionOrders(orders)}
}
