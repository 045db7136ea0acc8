package vm

import "math"

// Globals is the shared, read-only constant table every processor's
// variable table falls back to (spec §3 "VM state" / §4.5). Once built it
// is never mutated, so a single instance may be safely borrowed by several
// concurrently-running LogicVMs (spec §9, §4.7).
type Globals struct {
	named    map[string]LVar
	catalog  BlockCatalog
	colors   map[string]LValue
	teams    *teamTable
}

// NewGlobals builds the default globals table against the given content
// catalog. Passing the same *Globals to multiple NewLogicVMWithGlobals calls
// is how callers implement the "globals borrowed across multiple VM
// instances" pattern from the design notes.
func NewGlobals(catalog BlockCatalog) *Globals {
	g := &Globals{
		catalog: catalog,
		colors:  defaultColors(),
		teams:   newTeamTable(),
	}
	g.named = map[string]LVar{
		"null":  constantVar(Null),
		"true":  constantVar(Number(1)),
		"false": constantVar(Number(0)),
		"@pi":   constantVar(Number(math.Pi)),
		"π":     constantVar(Number(math.Pi)),
		"@e":    constantVar(Number(math.E)),

		"@counter":     specialVar(specialCounter),
		"@ipt":         specialVar(specialIPT),
		"@time":        specialVar(specialTime),
		"@tick":        specialVar(specialTick),
		"@second":      specialVar(specialSecond),
		"@this":        specialVar(specialThis),
		"@blockCount":  specialVar(specialBlockCount),
		"@itemCount":   specialVar(specialItemCount),
		"@liquidCount": specialVar(specialLiquidCount),
		"@unitCount":   specialVar(specialUnitCount),
	}
	for name, packed := range g.colors {
		g.named["%["+name+"]"] = constantVar(packed)
	}
	return g
}

func (g *Globals) lookup(name string) (LVar, bool) {
	v, ok := g.named[name]
	return v, ok
}

func (g *Globals) color(name string) (LValue, bool) {
	v, ok := g.colors[name]
	return v, ok
}

// PI and E expose the values of the @pi and @e globals as Go constants.
const (
	PI = math.Pi
	E  = math.E
)
