// Package vm implements the core of a logic-processor virtual machine: a
// tagged value model, a per-processor variable table, an instruction decoder
// and evaluator, and a grid/scheduler that ticks many processors in lockstep.
package vm

import (
	"math"
	"strconv"
)

// Kind tags an LValue's underlying representation.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindContent
	KindTeam
	KindBuildingRef
)

// LValue is the tagged dynamic value every logic variable holds.
//
// The zero LValue is Null.
type LValue struct {
	kind    Kind
	number  float64
	str     string
	content Content
	team    Team
	ref     *Building
}

// Null is the canonical null value.
var Null = LValue{kind: KindNull}

// Number creates a Number LValue. A non-finite input is coerced to Null,
// mirroring every other numeric store in the VM (spec §3 invariants).
func Number(n float64) LValue {
	if !isFinite(n) {
		return Null
	}
	return LValue{kind: KindNumber, number: n}
}

// String creates a String LValue from a Go string. The text is kept as-is and
// only converted to UTF-16 code units when it is appended to a printbuffer
// (Processor.appendString in processor.go).
func String(s string) LValue {
	return LValue{kind: KindString, str: s}
}

// ContentValue wraps a catalog handle as an LValue.
func ContentValue(c Content) LValue {
	return LValue{kind: KindContent, content: c}
}

// TeamValue wraps a team as an LValue.
func TeamValue(t Team) LValue {
	return LValue{kind: KindTeam, team: t}
}

// BuildingRefValue wraps a (possibly nil/dead) building reference.
func BuildingRefValue(b *Building) LValue {
	return LValue{kind: KindBuildingRef, ref: b}
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// Kind reports the LValue's tag.
func (v LValue) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v LValue) IsNull() bool { return v.kind == KindNull }

// Num implements the `num()` coercion from spec §4.1.
func (v LValue) Num() float64 {
	switch v.kind {
	case KindNumber:
		return v.number
	case KindNull:
		return 0
	case KindString:
		if v.str != "" {
			return 1
		}
		return 0
	case KindBuildingRef:
		if v.ref != nil && v.ref.Alive() {
			return 1
		}
		return 0
	case KindContent, KindTeam:
		return 1
	default:
		return 0
	}
}

// Bool implements the `bool()` coercion: true iff num(v) != 0.
func (v LValue) Bool() bool {
	return v.Num() != 0
}

// StringOf implements the `string()` coercion from spec §4.1.
func (v LValue) StringOf() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.number)
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindContent:
		return v.content.Name
	case KindTeam:
		return v.team.Name()
	case KindBuildingRef:
		if v.ref != nil && v.ref.Alive() {
			return v.ref.Name()
		}
		return "null"
	default:
		return "null"
	}
}

// formatNumber formats a float with trailing-zero stripping: integral
// values print without a decimal point.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// AsInt64 truncates v's numeric coercion to an int64, the representation
// every bitwise op operates on (spec §4.2).
func (v LValue) AsInt64() int64 {
	return toInt64(v.Num())
}

func toInt64(f float64) int64 {
	if math.IsNaN(f) {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	if f <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(f)
}

// Content is a handle into one of the four named game-content catalogs.
type Content struct {
	Kind ContentKind
	ID   int
	Name string
}

// ContentKind discriminates which catalog a Content handle belongs to.
type ContentKind int

const (
	ContentBlock ContentKind = iota
	ContentItem
	ContentLiquid
	ContentUnit
)

// Team is either a well-known team or an arbitrary 0..255 team index.
type Team struct {
	known bool
	name  string
	idx   uint8
}

// KnownTeam constructs a well-known team (e.g. Derelict) at table index idx.
func KnownTeam(name string, idx uint8) Team {
	return Team{known: true, name: name, idx: idx}
}

// UnknownTeam constructs an Unknown(i) team.
func UnknownTeam(i uint8) Team {
	return Team{known: false, idx: i}
}

// IsKnown reports whether this is a named well-known team.
func (t Team) IsKnown() bool { return t.known }

// Index returns the team's 0..255 table index.
func (t Team) Index() uint8 { return t.idx }

// Name returns the team's display name.
func (t Team) Name() string {
	if t.known {
		return t.name
	}
	return "team#" + strconv.Itoa(int(t.idx))
}

// Equal reports strict value equality, used by strictEqual (spec §4.1) and
// as the fallback for fuzzy equal on non-numeric/non-string types.
func (v LValue) Equal(other LValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindNumber:
		return v.number == other.number
	case KindString:
		return v.str == other.str
	case KindContent:
		return v.content.Kind == other.content.Kind && v.content.ID == other.content.ID
	case KindTeam:
		return v.team == other.team
	case KindBuildingRef:
		return v.ref == other.ref
	default:
		return false
	}
}

// EqualFuzzy implements the `equal`/`notEqual` condition semantics from
// spec §4.1, including the deliberately-permissive Number/String rule.
func EqualFuzzy(a, b LValue) bool {
	aNum := a.kind == KindNumber || a.kind == KindNull
	bNum := b.kind == KindNumber || b.kind == KindNull
	if aNum && bNum {
		return math.Abs(a.Num()-b.Num()) < 1e-6
	}
	if (a.kind == KindNumber && b.kind == KindString) ||
		(a.kind == KindString && b.kind == KindNumber) {
		return true
	}
	return a.Equal(b)
}
