package usecase

import (
	"context"
	"sort"
	"time"

	"cityfuture/internal/domain/entities"
	"cityfuture/internal/usecase/interfaces"
)

// Timeline owns the single project-wide schedule. Every order occupies a
// contiguous block of days and the next order always starts the day after the
// previous one's delivery; construction never runs in parallel.

type Timeline struct {
	orders interfaces.IConstructionOrderRepository
	clock  interfaces.Clock
}

func NewTimeline(orders interfaces.IConstructionOrderRepository, clock interfaces.Clock) *Timeline {
	return &Timeline{orders: orders, clock: clock}
}

// NextSlot computes the start and delivery date for an order appended at the
// end of the timeline. The first order ever starts tomorrow.
func (t *Timeline) NextSlot(ctx context.Context, estimatedDays int) (time.Time, time.Time, error) {
	last, err := t.orders.GetLatestByDelivery(ctx)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	var start time.Time
	if last.ID == "" {
		start = t.clock.Today().AddDate(0, 0, 1)
	} else {
		start = last.DeliveryDate.AddDate(0, 0, 1)
	}
	delivery := start.AddDate(0, 0, estimatedDays-1)
	return start, delivery, nil
}

// LocationIsFree reports whether no existing order sits on the exact
// latitude/longitude pair.
func (t *Timeline) LocationIsFree(ctx context.Context, loc entities.Coordinate) (bool, error) {
	occupied, err := t.orders.ExistsByCoordinate(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return false, err
	}
	return !occupied, nil
}

// RemoveAndReflow deletes the order and re-chains every order delivered after
// it. The chain is anchored at the last surviving order delivered before the
// deleted one, or at today when the deleted order was the first; each later
// order then starts the day after the previous delivery, so the deletion
// leaves no gap behind.
func (t *Timeline) RemoveAndReflow(ctx context.Context, order entities.ConstructionOrder) error {
	if err := t.orders.Delete(ctx, order.ID); err != nil {
		return err
	}

	remaining, err := t.orders.GetAll(ctx)
	if err != nil {
		return err
	}
	sort.Slice(remaining, func(i, j int) bool {
		return remaining[i].DeliveryDate.Before(remaining[j].DeliveryDate)
	})

	now := t.clock.Today()
	base := now
	for _, o := range remaining {
		if o.DeliveryDate.Before(order.DeliveryDate) {
			base = o.DeliveryDate
		}
	}

	for _, o := range remaining {
		if !o.DeliveryDate.After(order.DeliveryDate) {
			continue
		}
		rescheduled := o.WithSchedule(base.AddDate(0, 0, 1), now)
		if _, err := t.orders.Update(ctx, rescheduled); err != nil {
			return err
		}
		base = rescheduled.DeliveryDate
	}
	return nil
}

// ProjectStartDate is the start date of the first order on the timeline, or
// tomorrow when the timeline is empty.
func (t *Timeline) ProjectStartDate(ctx context.Context) (time.Time, error) {
	first, err := t.orders.GetEarliestByDelivery(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if first.ID == "" {
		return t.clock.Today().AddDate(0, 0, 1), nil
	}
	return first.StartDate, nil
}

// ProjectEndDate is the delivery date of the last order on the timeline, or
// today when the timeline is empty.
func (t *Timeline) ProjectEndDate(ctx context.Context) (time.Time, error) {
	last, err := t.orders.GetLatestByDelivery(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if last.ID == "" {
		return t.clock.Today(), nil
	}
	return last.DeliveryDate, nil
}

// TotalEstimatedDays sums the estimated days over all orders. It measures
// workload, not the elapsed span of the timeline.
func (t *Timeline) TotalEstimatedDays(ctx context.Context) (int, error) {
	return t.orders.SumEstimatedDays(ctx)
}
