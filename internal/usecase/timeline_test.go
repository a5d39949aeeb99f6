package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"testing"
	"time"

	"cityfuture/internal/domain/entities"
	mock_interfaces "cityfuture/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fixedClock struct {
	today time.Time
}

func (c fixedClock) Today() time.Time { return c.today }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimeline_NextSlot(t *testing.T) {
	today := date(2024, time.January, 1)

	t.Run("first order starts tomorrow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConstructionOrderRepository(ctrl)
		tl := NewTimeline(repo, fixedClock{today: today})

		repo.EXPECT().GetLatestByDelivery(gomock.Any()).Return(entities.ConstructionOrder{}, nil)

		start, delivery, err := tl.NextSlot(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(date(2024, time.January, 2)) {
			t.Fatalf("expected start 2024-01-02, got %v", start)
		}
		if !delivery.Equal(date(2024, time.January, 4)) {
			t.Fatalf("expected delivery 2024-01-04, got %v", delivery)
		}
	})

	t.Run("chained append starts after last delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConstructionOrderRepository(ctrl)
		tl := NewTimeline(repo, fixedClock{today: today})

		repo.EXPECT().GetLatestByDelivery(gomock.Any()).Return(entities.ConstructionOrder{
			ID:           "a",
			DeliveryDate: date(2024, time.January, 4),
		}, nil)

		start, delivery, err := tl.NextSlot(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(date(2024, time.January, 5)) {
			t.Fatalf("expected start 2024-01-05, got %v", start)
		}
		if !delivery.Equal(date(2024, time.January, 6)) {
			t.Fatalf("expected delivery 2024-01-06, got %v", delivery)
		}
	})

	t.Run("one day order starts and delivers on the same date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConstructionOrderRepository(ctrl)
		tl := NewTimeline(repo, fixedClock{today: today})

		repo.EXPECT().GetLatestByDelivery(gomock.Any()).Return(entities.ConstructionOrder{}, nil)

		start, delivery, err := tl.NextSlot(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(delivery) {
			t.Fatalf("expected start == delivery, got %v and %v", start, delivery)
		}
	})
}

func TestTimeline_RemoveAndReflow(t *testing.T) {
	today := date(2024, time.January, 1)

	orderA := entities.ConstructionOrder{
		ID: "a", EstimatedDays: 3,
		StartDate:    date(2024, time.January, 2),
		DeliveryDate: date(2024, time.January, 4),
	}
	orderB := entities.ConstructionOrder{
		ID: "b", EstimatedDays: 2,
		StartDate:    date(2024, time.January, 5),
		DeliveryDate: date(2024, time.January, 6),
	}
	orderC := entities.ConstructionOrder{
		ID: "c", EstimatedDays: 3,
		StartDate:    date(2024, time.January, 7),
		DeliveryDate: date(2024, time.January, 9),
	}

	t.Run("deleting the first order re-anchors the chain at today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConstructionOrderRepository(ctrl)
		tl := NewTimeline(repo, fixedClock{today: today})

		repo.EXPECT().Delete(gomock.Any(), "a").Return(nil)
		repo.EXPECT().GetAll(gomock.Any()).Return([]entities.ConstructionOrder{orderC, orderB}, nil)

		// B restarts the day after today, C chains after B with no gap.
		wantB := orderB
		wantB.StartDate = date(2024, time.January, 2)
		wantB.DeliveryDate = date(2024, time.January, 3)
		wantB.UpdatedAt = today
		repo.EXPECT().Update(gomock.Any(), wantB).Return(wantB, nil)

		wantC := orderC
		wantC.StartDate = date(2024, time.January, 4)
		wantC.DeliveryDate = date(2024, time.January, 6)
		wantC.UpdatedAt = today
		repo.EXPECT().Update(gomock.Any(), wantC).Return(wantC, nil)

		if err := tl.RemoveAndReflow(context.Background(), orderA); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deleting a middle order anchors at the previous survivor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConstructionOrderRepository(ctrl)
		tl := NewTimeline(repo, fixedClock{today: today})

		repo.EXPECT().Delete(gomock.Any(), "b").Return(nil)
		repo.EXPECT().GetAll(gomock.Any()).Return([]entities.ConstructionOrder{orderA, orderC}, nil)

		wantC := orderC
		wantC.StartDate = date(2024, time.January, 5)
		wantC.DeliveryDate = date(2024, time.January, 7)
		wantC.UpdatedAt = today
		repo.EXPECT().Update(gomock.Any(), wantC).Return(wantC, nil)

		if err := tl.RemoveAndReflow(context.Background(), orderB); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deleting the only order leaves nothing to reflow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConstructionOrderRepository(ctrl)
		tl := NewTimeline(repo, fixedClock{today: today})

		repo.EXPECT().Delete(gomock.Any(), "a").Return(nil)
		repo.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

		if err := tl.RemoveAndReflow(context.Background(), orderA); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deleting the last order reflows nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConstructionOrderRepository(ctrl)
		tl := NewTimeline(repo, fixedClock{today: today})

		repo.EXPECT().Delete(gomock.Any(), "c").Return(nil)
		repo.EXPECT().GetAll(gomock.Any()).Return([]entities.ConstructionOrder{orderA, orderB}, nil)

		if err := tl.RemoveAndReflow(context.Background(), orderC); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

// memoryOrderRepo is an in-memory order store for exercising the timeline
// against long operation sequences, where per-call gomock expectations would
// be unmanageable.
type memoryOrderRepo struct {
	orders map[string]entities.ConstructionOrder
}

func newMemoryOrderRepo() *memoryOrderRepo {
	return &memoryOrderRepo{orders: make(map[string]entities.ConstructionOrder)}
}

func (r *memoryOrderRepo) Create(_ context.Context, order entities.ConstructionOrder) (entities.ConstructionOrder, error) {
	r.orders[order.ID] = order
	return order, nil
}

func (r *memoryOrderRepo) GetByID(_ context.Context, id string) (entities.ConstructionOrder, error) {
	return r.orders[id], nil
}

func (r *memoryOrderRepo) GetAll(_ context.Context) ([]entities.ConstructionOrder, error) {
	all := make([]entities.ConstructionOrder, 0, len(r.orders))
	for _, o := range r.orders {
		all = append(all, o)
	}
	return all, nil
}

func (r *memoryOrderRepo) Update(_ context.Context, order entities.ConstructionOrder) (entities.ConstructionOrder, error) {
	r.orders[order.ID] = order
	return order, nil
}

func (r *memoryOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

func (r *memoryOrderRepo) Count(_ context.Context) (int, error) {
	return len(r.orders), nil
}

func (r *memoryOrderRepo) ExistsByCoordinate(_ context.Context, latitude, longitude float64) (bool, error) {
	for _, o := range r.orders {
		if o.Location.Latitude == latitude && o.Location.Longitude == longitude {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryOrderRepo) GetEarliestByDelivery(_ context.Context) (entities.ConstructionOrder, error) {
	var first entities.ConstructionOrder
	for _, o := range r.orders {
		if first.ID == "" || o.DeliveryDate.Before(first.DeliveryDate) {
			first = o
		}
	}
	return first, nil
}

func (r *memoryOrderRepo) GetLatestByDelivery(_ context.Context) (entities.ConstructionOrder, error) {
	var last entities.ConstructionOrder
	for _, o := range r.orders {
		if last.ID == "" || o.DeliveryDate.After(last.DeliveryDate) {
			last = o
		}
	}
	return last, nil
}

func (r *memoryOrderRepo) GetPending(_ context.Context) ([]entities.ConstructionOrder, error) {
	var pending []entities.ConstructionOrder
	for _, o := range r.orders {
		if o.Status == entities.OrderStatusPending {
			pending = append(pending, o)
		}
	}
	return pending, nil
}

func (r *memoryOrderRepo) GetInProgressDueOn(_ context.Context, date time.Time) ([]entities.ConstructionOrder, error) {
	var due []entities.ConstructionOrder
	for _, o := range r.orders {
		if o.Status == entities.OrderStatusInProgress && o.DeliveryDate.Equal(date) {
			due = append(due, o)
		}
	}
	return due, nil
}

func (r *memoryOrderRepo) SumEstimatedDays(_ context.Context) (int, error) {
	total := 0
	for _, o := range r.orders {
		total += o.EstimatedDays
	}
	return total, nil
}

// TestTimeline_RandomSequenceKeepsChainContiguous interleaves appends and
// deletions and checks after every step that the surviving orders still form
// a gapless chain: each order starts the day after the previous delivery and
// occupies exactly its estimated number of days.
func TestTimeline_RandomSequenceKeepsChainContiguous(t *testing.T) {
	today := date(2024, time.January, 1)
	ctx := context.Background()
	repo := newMemoryOrderRepo()
	tl := NewTimeline(repo, fixedClock{today: today})
	rng := rand.New(rand.NewSource(7))

	checkChain := func(step int) {
		t.Helper()
		all, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", step, err)
		}
		sort.Slice(all, func(i, j int) bool {
			return all[i].DeliveryDate.Before(all[j].DeliveryDate)
		})
		for i, o := range all {
			wantDelivery := o.StartDate.AddDate(0, 0, o.EstimatedDays-1)
			if !o.DeliveryDate.Equal(wantDelivery) {
				t.Fatalf("step %d: order %s spans %v..%v for %d days", step, o.ID, o.StartDate, o.DeliveryDate, o.EstimatedDays)
			}
			if i == 0 {
				continue
			}
			wantStart := all[i-1].DeliveryDate.AddDate(0, 0, 1)
			if !o.StartDate.Equal(wantStart) {
				t.Fatalf("step %d: order %s starts %v, expected %v (after %s delivered %v)",
					step, o.ID, o.StartDate, wantStart, all[i-1].ID, all[i-1].DeliveryDate)
			}
		}
	}

	created := 0
	for step := 0; step < 200; step++ {
		all, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", step, err)
		}

		if len(all) == 0 || rng.Intn(3) != 0 {
			days := rng.Intn(6) + 1
			start, delivery, err := tl.NextSlot(ctx, days)
			if err != nil {
				t.Fatalf("step %d: unexpected error: %v", step, err)
			}
			created++
			if _, err := repo.Create(ctx, entities.ConstructionOrder{
				ID:            fmt.Sprintf("o%d", created),
				Status:        entities.OrderStatusPending,
				EstimatedDays: days,
				StartDate:     start,
				DeliveryDate:  delivery,
			}); err != nil {
				t.Fatalf("step %d: unexpected error: %v", step, err)
			}
		} else {
			victim := all[rng.Intn(len(all))]
			if err := tl.RemoveAndReflow(ctx, victim); err != nil {
				t.Fatalf("step %d: unexpected error: %v", step, err)
			}
		}

		checkChain(step)
	}
}

func TestTimeline_ProjectDates(t *testing.T) {
	today := date(2024, time.March, 15)

	t.Run("empty timeline defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConstructionOrderRepository(ctrl)
		tl := NewTimeline(repo, fixedClock{today: today})

		repo.EXPECT().GetEarliestByDelivery(gomock.Any()).Return(entities.ConstructionOrder{}, nil)
		repo.EXPECT().GetLatestByDelivery(gomock.Any()).Return(entities.ConstructionOrder{}, nil)

		start, err := tl.ProjectStartDate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(today.AddDate(0, 0, 1)) {
			t.Fatalf("expected start tomorrow, got %v", start)
		}

		end, err := tl.ProjectEndDate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !end.Equal(today) {
			t.Fatalf("expected end today, got %v", end)
		}
	})

	t.Run("bounded by first start and last delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConstructionOrderRepository(ctrl)
		tl := NewTimeline(repo, fixedClock{today: today})

		repo.EXPECT().GetEarliestByDelivery(gomock.Any()).Return(entities.ConstructionOrder{
			ID: "a", StartDate: date(2024, time.March, 16), DeliveryDate: date(2024, time.March, 18),
		}, nil)
		repo.EXPECT().GetLatestByDelivery(gomock.Any()).Return(entities.ConstructionOrder{
			ID: "b", StartDate: date(2024, time.March, 19), DeliveryDate: date(2024, time.March, 20),
		}, nil)

		start, err := tl.ProjectStartDate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(date(2024, time.March, 16)) {
			t.Fatalf("expected 2024-03-16, got %v", start)
		}

		end, err := tl.ProjectEndDate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !end.Equal(date(2024, time.March, 20)) {
			t.Fatalf("expected 2024-03-20, got %v", end)
		}
	})
}
