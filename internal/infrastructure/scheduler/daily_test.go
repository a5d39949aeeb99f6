package scheduler

import (
	"context"
	"testing"
	"time"

	"cityfuture/internal/domain/entities"
	"cityfuture/internal/usecase"
)

type fixedClock struct {
	today time.Time
}

func (c fixedClock) Today() time.Time { return c.today }

type fakeEngine struct {
	advanced []time.Time
	overdue  []time.Time
}

func (f *fakeEngine) Advance(_ context.Context, today time.Time) (usecase.DailyTransition, error) {
	f.advanced = append(f.advanced, today)
	return usecase.DailyTransition{Date: today}, nil
}

func (f *fakeEngine) ProcessOverdue(_ context.Context, today time.Time) ([]entities.ConstructionOrder, error) {
	f.overdue = append(f.overdue, today)
	return nil, nil
}

func (f *fakeEngine) SimulateForDate(_ context.Context, date time.Time) (usecase.DailyTransition, error) {
	return usecase.DailyTransition{Date: date}, nil
}

func (f *fakeEngine) RunRange(_ context.Context, _, _ time.Time) ([]usecase.DailyTransition, error) {
	return nil, nil
}

func TestDaily_RunOnce(t *testing.T) {
	today := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	engine := &fakeEngine{}
	d := NewDaily(engine, fixedClock{today: today})

	d.runOnce(context.Background())

	if len(engine.overdue) != 1 || !engine.overdue[0].Equal(today) {
		t.Fatalf("expected one overdue sweep for %v, got %v", today, engine.overdue)
	}
	if len(engine.advanced) != 1 || !engine.advanced[0].Equal(today) {
		t.Fatalf("expected one advancement for %v, got %v", today, engine.advanced)
	}
}
