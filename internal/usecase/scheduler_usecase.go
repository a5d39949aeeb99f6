package usecase

import (
	"context"
	"errors"
	"time"

	"cityfuture/internal/domain/entities"
	"cityfuture/internal/usecase/interfaces"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// DailyTransition is what a single day of status advancement did (or, for a
// simulation, would do).
type DailyTransition struct {
	Date     time.Time
	Started  []entities.ConstructionOrder
	Finished []entities.ConstructionOrder
}

// ISchedulerUseCase is the status-transition engine. Advance and
// ProcessOverdue are idempotent per day, so an external daily trigger may call
// them repeatedly without harm.
type ISchedulerUseCase interface {
	Advance(ctx context.Context, today time.Time) (DailyTransition, error)
	ProcessOverdue(ctx context.Context, today time.Time) ([]entities.ConstructionOrder, error)
	SimulateForDate(ctx context.Context, date time.Time) (DailyTransition, error)
	RunRange(ctx context.Context, start, end time.Time) ([]DailyTransition, error)
}

type SchedulerUseCase struct {
	orders interfaces.IConstructionOrderRepository
}

var _ ISchedulerUseCase = (*SchedulerUseCase)(nil)

func NewSchedulerUseCase(orders interfaces.IConstructionOrderRepository) *SchedulerUseCase {
	return &SchedulerUseCase{orders: orders}
}

// Advance runs the two daily passes: pending orders whose start date is today
// begin, then in-progress orders whose delivery date is today finish. The
// passes are deliberately separate queries; an order with a one-day duration
// started in the first pass is picked up again by the second.
func (u *SchedulerUseCase) Advance(ctx context.Context, today time.Time) (DailyTransition, error) {
	result := DailyTransition{Date: today}

	pending, err := u.orders.GetPending(ctx)
	if err != nil {
		return DailyTransition{}, err
	}
	for _, order := range pending {
		if !order.StartDate.Equal(today) {
			continue
		}
		started, err := u.orders.Update(ctx, order.WithStatus(entities.OrderStatusInProgress, today))
		if err != nil {
			return DailyTransition{}, err
		}
		result.Started = append(result.Started, started)
	}

	due, err := u.orders.GetInProgressDueOn(ctx, today)
	if err != nil {
		return DailyTransition{}, err
	}
	for _, order := range due {
		finished, err := u.orders.Update(ctx, order.WithStatus(entities.OrderStatusFinished, today))
		if err != nil {
			return DailyTransition{}, err
		}
		result.Finished = append(result.Finished, finished)
	}

	return result, nil
}

// ProcessOverdue is the catch-up sweep for pending orders the daily Advance
// missed, e.g. after downtime. Orders past their delivery date go straight to
// Finished without ever being In progress.
func (u *SchedulerUseCase) ProcessOverdue(ctx context.Context, today time.Time) ([]entities.ConstructionOrder, error) {
	pending, err := u.orders.GetPending(ctx)
	if err != nil {
		return nil, err
	}

	var processed []entities.ConstructionOrder
	for _, order := range pending {
		if order.StartDate.After(today) {
			continue
		}

		status := entities.OrderStatusInProgress
		if today.After(order.DeliveryDate) {
			status = entities.OrderStatusFinished
		}
		updated, err := u.orders.Update(ctx, order.WithStatus(status, today))
		if err != nil {
			return nil, err
		}
		processed = append(processed, updated)
	}
	return processed, nil
}

// SimulateForDate is a read-only dry run of Advance for an arbitrary date,
// using the exact same selection predicates.
func (u *SchedulerUseCase) SimulateForDate(ctx context.Context, date time.Time) (DailyTransition, error) {
	result := DailyTransition{Date: date}

	pending, err := u.orders.GetPending(ctx)
	if err != nil {
		return DailyTransition{}, err
	}
	for _, order := range pending {
		if order.StartDate.Equal(date) {
			result.Started = append(result.Started, order)
		}
	}

	due, err := u.orders.GetInProgressDueOn(ctx, date)
	if err != nil {
		return DailyTransition{}, err
	}
	result.Finished = append(result.Finished, due...)

	return result, nil
}

// RunRange applies Advance once per calendar day from start to end inclusive.
// Transitions accumulate: a day sees the state its predecessors left behind.
func (u *SchedulerUseCase) RunRange(ctx context.Context, start, end time.Time) ([]DailyTransition, error) {
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	var days []DailyTransition
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		transition, err := u.Advance(ctx, d)
		if err != nil {
			return nil, err
		}
		days = append(days, transition)
	}
	return days, nil
}
