package scheduler

import (
	"context"
	"log"
	"time"

	"cityfuture/internal/usecase"
	"cityfuture/internal/usecase/interfaces"
)

// Daily drives the status-transition engine once per calendar day. On start it
// runs the overdue sweep to catch up on downtime, then advances the current
// day; after that a ticker fires the advancement whenever the day changes.
//
// Both engine operations are idempotent per day, so an extra tick is harmless.
type Daily struct {
	engine usecase.ISchedulerUseCase
	clock  interfaces.Clock
}

func NewDaily(engine usecase.ISchedulerUseCase, clock interfaces.Clock) *Daily {
	return &Daily{engine: engine, clock: clock}
}

// Start runs the catch-up synchronously and then spawns the daily loop. The
// loop stops when ctx is cancelled.
func (d *Daily) Start(ctx context.Context) {
	d.runOnce(ctx)

	go d.loop(ctx)
}

func (d *Daily) loop(ctx context.Context) {
	// Polling hourly is plenty: runOnce only acts when the day changed.
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	lastRun := d.clock.Today()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			today := d.clock.Today()
			if today.Equal(lastRun) {
				continue
			}
			d.runOnce(ctx)
			lastRun = today
		}
	}
}

func (d *Daily) runOnce(ctx context.Context) {
	today := d.clock.Today()

	processed, err := d.engine.ProcessOverdue(ctx, today)
	if err != nil {
		log.Printf("Overdue sweep failed: %v", err)
	} else if len(processed) > 0 {
		log.Printf("Overdue sweep caught up %d order(s)", len(processed))
	}

	transition, err := d.engine.Advance(ctx, today)
	if err != nil {
		log.Printf("Daily advancement failed: %v", err)
		return
	}
	if len(transition.Started) > 0 || len(transition.Finished) > 0 {
		log.Printf("Daily advancement for %s: %d started, %d finished",
			today.Format("2006-01-02"), len(transition.Started), len(transition.Finished))
	}
}
