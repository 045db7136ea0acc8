package vm

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Scenario is one independently-run VM in a RunConcurrent batch: a fresh
// grid and a tick budget.
type Scenario struct {
	Name     string
	VM       *LogicVM
	MaxTicks int
}

// Result reports how one scenario's run finished.
type Result struct {
	Name       string
	Completed  bool // true if every processor stopped before MaxTicks elapsed
	TicksTaken int
}

// RunConcurrent runs each scenario's VM to completion on its own goroutine
// (spec §4.7 "Concurrent multi-VM harness"). Every Scenario.VM should either
// own a private Globals or share one built once up front and never mutated
// afterwards: Globals has no internal synchronization, and only the rule
// "never write after the first VM starts reading" makes sharing it across
// goroutines safe. Each individual LogicVM must only ever be touched from
// the one goroutine running it here.
func RunConcurrent(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			taken := 0
			const tickMs = 1000.0 / 60.0
			completed := false
			for taken < sc.MaxTicks {
				if err := ctx.Err(); err != nil {
					return err
				}
				sc.VM.DoTick(tickMs)
				taken++
				if sc.VM.RunningProcessors() == 0 {
					completed = true
					break
				}
			}
			results[i] = Result{Name: sc.Name, Completed: completed, TicksTaken: taken}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
