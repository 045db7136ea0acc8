package vm

import "github.com/golang/glog"

// varKind discriminates the three LVar shapes from spec §3 ("LVar").
type varKind int

const (
	varConstant varKind = iota
	varMutable
	varSpecial
)

// specialID names a read-through/write-through special variable.
type specialID int

const (
	specialCounter specialID = iota
	specialIPT
	specialTime
	specialTick
	specialSecond
	specialThis
	specialBlockCount
	specialItemCount
	specialLiquidCount
	specialUnitCount
)

// LVar is a variable binding: a constant, a per-processor mutable slot, or a
// special that reads through to processor/VM state (spec §3 "LVar").
type LVar struct {
	kind    varKind
	slot    int // index into processor.slots, for varMutable
	special specialID
	value   LValue // immutable payload, for varConstant
}

func constantVar(v LValue) LVar {
	return LVar{kind: varConstant, value: v}
}

func specialVar(id specialID) LVar {
	return LVar{kind: varSpecial, special: id}
}

// variableTable resolves identifier tokens to LVars at decode time (spec
// §4.5). One table is built per decoded program and its bindings are shared
// (via Program.names) by every processor running that program; each
// processor allocates its own Null-initialized slot array, so processors
// sharing a cached program still get independent mutable state.
type variableTable struct {
	globals *Globals
	byName  map[string]LVar
	names   []string // slot index -> name, for debugging/printing
}

func newVariableTable(globals *Globals) *variableTable {
	return &variableTable{globals: globals, byName: make(map[string]LVar)}
}

// resolve returns the LVar bound to name, creating a new mutable slot if
// name is not an existing per-processor binding or a global.
func (t *variableTable) resolve(name string) LVar {
	if v, ok := t.byName[name]; ok {
		return v
	}
	if v, ok := t.globals.lookup(name); ok {
		t.byName[name] = v
		return v
	}
	v := LVar{kind: varMutable, slot: len(t.names)}
	t.names = append(t.names, name)
	t.byName[name] = v
	glog.V(2).Infof("auto-created mutable variable %q at slot %d", name, v.slot)
	return v
}

func (t *variableTable) slotCount() int { return len(t.names) }

// Get reads the variable's current value against a running processor (spec
// §3 "LVar": constant returns its payload, mutable reads the processor's
// slot, special reads through to processor/VM state).
func (lv LVar) Get(p *Processor) LValue {
	switch lv.kind {
	case varConstant:
		return lv.value
	case varMutable:
		if lv.slot < 0 || lv.slot >= len(p.slots) {
			return Null
		}
		return p.slots[lv.slot]
	case varSpecial:
		return lv.getSpecial(p)
	default:
		return Null
	}
}

// Set writes through to the variable's backing store. Constants silently
// ignore writes, per spec §3. Specials route to setters where the spec
// defines one (@counter always, @ipt only on world processors); every other
// special silently ignores writes too.
func (lv LVar) Set(p *Processor, val LValue) {
	switch lv.kind {
	case varMutable:
		if lv.slot < 0 || lv.slot >= len(p.slots) {
			return
		}
		p.slots[lv.slot] = val
	case varSpecial:
		lv.setSpecial(p, val)
	}
}

func (lv LVar) getSpecial(p *Processor) LValue {
	switch lv.special {
	case specialCounter:
		return Number(float64(p.counter))
	case specialIPT:
		return Number(float64(p.ipt))
	case specialTime:
		return Number(p.currentTime)
	case specialTick:
		return Number(p.currentTime * 60 / 1000)
	case specialSecond:
		return Number(p.currentTime / 1000)
	case specialThis:
		return BuildingRefValue(p.self)
	case specialBlockCount:
		return Number(float64(catalogCount(p.globals.catalog, ContentBlock)))
	case specialItemCount:
		return Number(float64(catalogCount(p.globals.catalog, ContentItem)))
	case specialLiquidCount:
		return Number(float64(catalogCount(p.globals.catalog, ContentLiquid)))
	case specialUnitCount:
		return Number(float64(catalogCount(p.globals.catalog, ContentUnit)))
	default:
		return Null
	}
}

func (lv LVar) setSpecial(p *Processor, val LValue) {
	switch lv.special {
	case specialCounter:
		p.setCounter(val.AsInt64())
	case specialIPT:
		if p.kind.isWorld() {
			p.ipt = clampIPT(val.AsInt64())
		}
	}
}

func clampIPT(raw int64) int {
	return int(clampValue(raw, 1, 1000))
}
