package vm

import (
	"time"

	"github.com/golang/glog"
	"golang.org/x/exp/constraints"
)

// LogicVM owns a grid of buildings and ticks every processor among them in
// lockstep (spec §4.4 "Scheduler"). Buildings are ticked in placement order
// with processors first, so program behavior never depends on map-iteration
// order.
type LogicVM struct {
	globals *Globals

	buildings  []*Building
	byPosition map[Point2]*Building
	processors []*Building // subsequence of buildings that are processors, stable order

	timeMs float64
}

// NewLogicVM builds a VM with its own private globals table over catalog.
func NewLogicVM(catalog BlockCatalog) *LogicVM {
	return NewLogicVMWithGlobals(NewGlobals(catalog))
}

// NewLogicVMWithGlobals builds a VM against a pre-built, possibly shared
// globals table (spec §4.7 "Concurrent multi-VM harness": several LogicVMs
// may borrow the same read-only Globals as long as each VM itself is only
// ever driven from one goroutine at a time).
func NewLogicVMWithGlobals(globals *Globals) *LogicVM {
	return &LogicVM{
		globals:    globals,
		byPosition: make(map[Point2]*Building),
	}
}

// Globals returns the VM's globals table.
func (vm *LogicVM) Globals() *Globals { return vm.globals }

// AddBuilding places a building on the grid. Only the building's anchor
// Position is registered and checked: placing a building whose Position is
// already occupied fails with OverlapError, while the other tiles of a
// footprint with Size > 1 are neither mapped nor checked for overlap.
// Processor buildings additionally get their @this binding and link table
// resolved against the grid as it stands at insertion time.
func (vm *LogicVM) AddBuilding(b *Building, links []ProcessorLink) error {
	if existing, ok := vm.byPosition[b.Position]; ok && existing != nil {
		glog.Warningf("rejecting %s at (%d, %d): already occupied by %s", b.NameHint, b.Position.X, b.Position.Y, existing.NameHint)
		return &OverlapError{X: b.Position.X, Y: b.Position.Y}
	}
	vm.buildings = append(vm.buildings, b)
	vm.byPosition[b.Position] = b

	if proc := b.Data().Processor(); proc != nil {
		proc.self = b
		proc.vm = vm
		proc.applyLinks(vm, links)
		vm.processors = append(vm.processors, b)
	}
	return nil
}

// BuildingAt returns the building whose anchor Position is p, or nil.
func (vm *LogicVM) BuildingAt(p Point2) *Building {
	return vm.byPosition[p]
}

// Time returns the VM's monotonic clock, in milliseconds.
func (vm *LogicVM) Time() float64 { return vm.timeMs }

// RunningProcessors counts processors that are not stopped.
func (vm *LogicVM) RunningProcessors() int {
	n := 0
	for _, b := range vm.processors {
		if !b.Data().Processor().Stopped() {
			n++
		}
	}
	return n
}

// TotalProcessors counts every processor building on the grid.
func (vm *LogicVM) TotalProcessors() int { return len(vm.processors) }

// DoTick advances the VM's clock by deltaMs and ticks every processor once,
// processors first and in stable placement order (spec §4.3, §5).
func (vm *LogicVM) DoTick(deltaMs float64) {
	if deltaMs > 0 {
		vm.timeMs += deltaMs
	}
	for _, b := range vm.processors {
		b.Data().Processor().Tick(vm, vm.timeMs)
	}
}

// Run repeatedly calls DoTick with the wall-clock time elapsed since the
// previous call (spec §4.4) until every processor is stopped or maxTicks
// ticks have run, returning true if it stopped naturally (all processors
// halted) before the tick budget ran out.
func (vm *LogicVM) Run(maxTicks int) bool {
	prev := time.Now()
	for i := 0; i < maxTicks; i++ {
		now := time.Now()
		vm.DoTick(float64(now.Sub(prev)) / float64(time.Millisecond))
		prev = now
		if vm.RunningProcessors() == 0 {
			return true
		}
	}
	return vm.RunningProcessors() == 0
}

// clampValue is a small generic helper behind clampIPT (the @ipt/setrate
// clamp in variables.go); kept in terms of constraints.Ordered so any future
// integer/float clamp site in this package can reuse it instead of
// hand-rolling min/max.
func clampValue[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
