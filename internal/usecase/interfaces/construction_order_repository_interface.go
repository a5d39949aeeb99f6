package interfaces

import (
	"context"
	"time"

	"cityfuture/internal/domain/entities"
)

// IConstructionOrderRepository abstracts persistence for construction orders.
//
// Lookups that miss return a zero-value order and a nil error; callers check
// for an empty ID. The timeline queries mirror what the scheduling engine
// needs: latest/earliest order by delivery date, pending set, in-progress set
// due on a given day, and the workload sum.

type IConstructionOrderRepository interface {
	Create(ctx context.Context, order entities.ConstructionOrder) (entities.ConstructionOrder, error)
	GetByID(ctx context.Context, id string) (entities.ConstructionOrder, error)
	GetAll(ctx context.Context) ([]entities.ConstructionOrder, error)
	Update(ctx context.Context, order entities.ConstructionOrder) (entities.ConstructionOrder, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	ExistsByCoordinate(ctx context.Context, latitude, longitude float64) (bool, error)
	GetEarliestByDelivery(ctx context.Context) (entities.ConstructionOrder, error)
	GetLatestByDelivery(ctx context.Context) (entities.ConstructionOrder, error)
	GetPending(ctx context.Context) ([]entities.ConstructionOrder, error)
	GetInProgressDueOn(ctx context.Context, date time.Time) ([]entities.ConstructionOrder, error)
	SumEstimatedDays(ctx context.Context) (int, error)
}
