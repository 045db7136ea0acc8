package vm

import "math"

// unaryOp names the unary math ops available to `op` (spec §4.2).
type unaryOp int

const (
	unNot unaryOp = iota
	unAbs
	unSign
	unLog
	unLog10
	unFloor
	unCeil
	unRound
	unSqrt
	unSin
	unCos
	unTan
	unAsin
	unAcos
	unAtan
)

var unaryOpNames = map[string]unaryOp{
	"not":   unNot,
	"abs":   unAbs,
	"sign":  unSign,
	"log":   unLog,
	"log10": unLog10,
	"floor": unFloor,
	"ceil":  unCeil,
	"round": unRound,
	"sqrt":  unSqrt,
	"sin":   unSin,
	"cos":   unCos,
	"tan":   unTan,
	"asin":  unAsin,
	"acos":  unAcos,
	"atan":  unAtan,
}

// binaryOp names every two-operand op, arithmetic and comparison alike
// (spec §4.2): `op NAME dest x y` stores its numeric result, while
// `jump`/`select` reuse the same table and read the result as a boolean.
type binaryOp int

const (
	binAdd binaryOp = iota
	binSub
	binMul
	binDiv
	binIdiv
	binMod
	binEmod
	binPow
	binLand
	binShl
	binShr
	binUshr
	binOr
	binAnd
	binXor
	binMax
	binMin
	binAngle
	binAngleDiff
	binLen
	binNoise
	binLogn
	binEqual
	binNotEqual
	binLessThan
	binLessThanEq
	binGreaterThan
	binGreaterThanEq
	binStrictEqual
	binAlways
)

var binaryOpNames = map[string]binaryOp{
	"add":           binAdd,
	"sub":           binSub,
	"mul":           binMul,
	"div":           binDiv,
	"idiv":          binIdiv,
	"mod":           binMod,
	"emod":          binEmod,
	"pow":           binPow,
	"land":          binLand,
	"shl":           binShl,
	"shr":           binShr,
	"ushr":          binUshr,
	"or":            binOr,
	"and":           binAnd,
	"xor":           binXor,
	"max":           binMax,
	"min":           binMin,
	"angle":         binAngle,
	"angleDiff":     binAngleDiff,
	"len":           binLen,
	"noise":         binNoise,
	"logn":          binLogn,
	"equal":         binEqual,
	"notEqual":      binNotEqual,
	"lessThan":      binLessThan,
	"lessThanEq":    binLessThanEq,
	"greaterThan":   binGreaterThan,
	"greaterThanEq": binGreaterThanEq,
	"strictEqual":   binStrictEqual,
	"always":        binAlways,
}

func evalUnary(op unaryOp, x LValue) LValue {
	n := x.Num()
	switch op {
	case unNot:
		return Number(float64(^x.AsInt64()))
	case unAbs:
		return Number(math.Abs(n))
	case unSign:
		switch {
		case n > 0:
			return Number(1)
		case n < 0:
			return Number(-1)
		default:
			return Number(0)
		}
	case unLog:
		if n <= 0 {
			return Null
		}
		return Number(math.Log(n))
	case unLog10:
		if n <= 0 {
			return Null
		}
		return Number(math.Log10(n))
	case unFloor:
		return Number(math.Floor(n))
	case unCeil:
		return Number(math.Ceil(n))
	case unRound:
		return Number(math.Floor(n + 0.5))
	case unSqrt:
		if n < 0 {
			return Null
		}
		return Number(math.Sqrt(n))
	case unSin:
		return Number(math.Sin(n * math.Pi / 180))
	case unCos:
		return Number(math.Cos(n * math.Pi / 180))
	case unTan:
		return Number(math.Tan(n * math.Pi / 180))
	case unAsin:
		return Number(math.Asin(n) * 180 / math.Pi)
	case unAcos:
		return Number(math.Acos(n) * 180 / math.Pi)
	case unAtan:
		return Number(math.Atan(n) * 180 / math.Pi)
	default:
		return Null
	}
}

func contentKindOf(t lookupTarget) ContentKind {
	switch t {
	case lookupBlock:
		return ContentBlock
	case lookupItem:
		return ContentItem
	case lookupLiquid:
		return ContentLiquid
	default:
		return ContentUnit
	}
}

func boolNum(b bool) LValue {
	if b {
		return Number(1)
	}
	return Number(0)
}

// noise is a deterministic pseudo-noise stub (spec §4.2 "noise: deterministic
// but not required to match any particular reference algorithm"). It is a
// hash of (x, y) through a high-frequency sine, folded into [-1, 1].
func noise(x, y float64) float64 {
	seed := math.Sin(x*12.9898+y*78.233) * 43758.5453
	frac := seed - math.Floor(seed)
	return frac*2 - 1
}

func evalBinary(op binaryOp, x, y LValue) LValue {
	xn, yn := x.Num(), y.Num()
	switch op {
	case binAdd:
		return Number(xn + yn)
	case binSub:
		return Number(xn - yn)
	case binMul:
		return Number(xn * yn)
	case binDiv:
		return Number(xn / yn)
	case binIdiv:
		return Number(math.Floor(xn / yn))
	case binMod:
		return Number(math.Mod(xn, yn))
	case binEmod:
		r := math.Mod(xn, yn)
		if r != 0 && (r < 0) != (yn < 0) {
			r += yn
		}
		return Number(r)
	case binPow:
		return Number(math.Pow(xn, yn))
	case binLand:
		return boolNum(x.Bool() && y.Bool())
	case binShl:
		return Number(float64(x.AsInt64() << (uint(y.AsInt64()) & 63)))
	case binShr:
		return Number(float64(x.AsInt64() >> (uint(y.AsInt64()) & 63)))
	case binUshr:
		return Number(float64(uint64(x.AsInt64()) >> (uint(y.AsInt64()) & 63)))
	case binOr:
		return Number(float64(x.AsInt64() | y.AsInt64()))
	case binAnd:
		return Number(float64(x.AsInt64() & y.AsInt64()))
	case binXor:
		return Number(float64(x.AsInt64() ^ y.AsInt64()))
	case binMax:
		return Number(math.Max(xn, yn))
	case binMin:
		return Number(math.Min(xn, yn))
	case binAngle:
		deg := math.Atan2(yn, xn) * 180 / math.Pi
		if deg < 0 {
			deg += 360
		}
		return Number(deg)
	case binAngleDiff:
		d := math.Mod(math.Abs(xn-yn), 360)
		if d > 180 {
			d = 360 - d
		}
		return Number(d)
	case binLen:
		return Number(math.Hypot(xn, yn))
	case binNoise:
		return Number(noise(xn, yn))
	case binLogn:
		if xn <= 0 {
			return Null
		}
		return Number(math.Log(xn) / math.Log(yn))
	case binEqual:
		return boolNum(EqualFuzzy(x, y))
	case binNotEqual:
		return boolNum(!EqualFuzzy(x, y))
	case binLessThan:
		return boolNum(xn < yn)
	case binLessThanEq:
		return boolNum(xn <= yn)
	case binGreaterThan:
		return boolNum(xn > yn)
	case binGreaterThanEq:
		return boolNum(xn >= yn)
	case binStrictEqual:
		return boolNum(x.Equal(y))
	case binAlways:
		return boolNum(true)
	default:
		return Null
	}
}

// execute runs a single decoded instruction, per the op-by-op semantics of
// spec §4.2. It returns stepYield when the processor's Tick loop should stop
// consuming IPT budget this tick (wait/stop/end).
func (p *Processor) execute(vmRef *LogicVM, inst *instruction) stepResult {
	switch inst.kind {
	case instNoop:
		return stepContinue

	case instSet:
		inst.dest.Set(p, inst.src.Get(p))
		return stepContinue

	case instOpUnary:
		inst.dest.Set(p, evalUnary(inst.unary, inst.x.Get(p)))
		return stepContinue

	case instOpBinary:
		inst.dest.Set(p, evalBinary(inst.binary, inst.x.Get(p), inst.y.Get(p)))
		return stepContinue

	case instJump:
		if evalBinary(inst.binary, inst.x.Get(p), inst.y.Get(p)).Bool() {
			p.setCounter(int64(inst.target))
		}
		return stepContinue

	case instSelect:
		cond := evalBinary(inst.binary, inst.x.Get(p), inst.y.Get(p)).Bool()
		if cond {
			inst.dest.Set(p, inst.ifTrue.Get(p))
		} else {
			inst.dest.Set(p, inst.ifFalse.Get(p))
		}
		return stepContinue

	case instWait:
		secs := inst.src.Get(p).Num()
		if secs <= 0 {
			return stepContinue
		}
		p.waiting = true
		p.waitUntil = p.currentTime + secs*1000
		return stepYield

	case instStop:
		p.stoppedFlag = true
		return stepYield

	case instEnd:
		p.counter = 0
		return stepYield

	case instPrint:
		p.appendString(inst.src.Get(p).StringOf())
		return stepContinue

	case instPrintChar:
		code := inst.src.Get(p).AsInt64()
		p.appendUnits([]uint16{uint16(code & 0xFFFF)})
		return stepContinue

	case instFormat:
		p.applyFormat(inst.src.Get(p).StringOf())
		return stepContinue

	case instPackColor:
		r := inst.r.Get(p).Num()
		g := inst.g.Get(p).Num()
		b := inst.b.Get(p).Num()
		a := inst.a.Get(p).Num()
		inst.dest.Set(p, packColor(r, g, b, a))
		return stepContinue

	case instUnpackColor:
		r, g, b, a := unpackColor(inst.packed.Get(p).Num())
		inst.destR.Set(p, Number(r))
		inst.destG.Set(p, Number(g))
		inst.destB.Set(p, Number(b))
		inst.destA.Set(p, Number(a))
		return stepContinue

	case instLookup:
		idx := int(inst.x.Get(p).AsInt64())
		if inst.lookupKind == lookupTeam {
			team, ok := p.globals.teams.lookup(idx)
			if !ok {
				inst.dest.Set(p, Null)
			} else {
				inst.dest.Set(p, TeamValue(team))
			}
			return stepContinue
		}
		content, ok := lookupContent(p.globals.catalog, contentKindOf(inst.lookupKind), idx)
		if !ok {
			inst.dest.Set(p, Null)
		} else {
			inst.dest.Set(p, ContentValue(content))
		}
		return stepContinue

	case instSetRate:
		if p.kind.isWorld() {
			p.ipt = clampIPT(inst.src.Get(p).AsInt64())
		}
		return stepContinue

	default:
		return stepContinue
	}
}
