package vm

// Point2 is an integer 2D grid coordinate.
type Point2 struct {
	X, Y int
}

// BlockKind tags what kind of building a Building is. The four processor
// kinds differ only in default IPT and the setrate privilege (spec
// GLOSSARY); NonProcessor covers every other building this VM treats
// opaquely (spec §1 "real unit/building peripherals" are out of scope).
type BlockKind int

const (
	BlockMicroProcessor BlockKind = iota
	BlockLogicProcessor
	BlockHyperProcessor
	BlockWorldProcessor
	BlockNonProcessor
)

// defaultIPT is the default instructions-per-tick budget for each
// processor kind (spec §3 "Processor state").
func defaultIPT(kind BlockKind) int {
	switch kind {
	case BlockMicroProcessor:
		return 2
	case BlockLogicProcessor:
		return 8
	case BlockHyperProcessor:
		return 25
	case BlockWorldProcessor:
		return 1000
	default:
		return 0
	}
}

func (k BlockKind) isProcessor() bool {
	return k != BlockNonProcessor
}

func (k BlockKind) isWorld() bool {
	return k == BlockWorldProcessor
}

func (k BlockKind) String() string {
	switch k {
	case BlockMicroProcessor:
		return "micro-processor"
	case BlockLogicProcessor:
		return "logic-processor"
	case BlockHyperProcessor:
		return "hyper-processor"
	case BlockWorldProcessor:
		return "world-processor"
	default:
		return "unknown"
	}
}

// BuildingData is the Processor | Unknown{config} variant from spec §3.
type BuildingData struct {
	processor *Processor
	config    LValue // only meaningful when processor == nil
}

// IsProcessor reports whether this building's data is a Processor.
func (d *BuildingData) IsProcessor() bool { return d != nil && d.processor != nil }

// Processor returns the underlying Processor, or nil for non-processor
// buildings.
func (d *BuildingData) Processor() *Processor {
	if d == nil {
		return nil
	}
	return d.processor
}

// Building is a placed block: a position, a footprint size, a kind tag, and
// either a live Processor or an opaque config blob (spec §3 "Building").
type Building struct {
	Position Point2
	Size     int
	Kind     BlockKind
	NameHint string // catalog name, used by StringOf() for BuildingRef
	data     *BuildingData
	alive    bool
}

// NewProcessorBuilding places a decoded program behind a Processor-backed
// Building.
func NewProcessorBuilding(name string, pos Point2, kind BlockKind, program *Program, globals *Globals) *Building {
	p := newProcessor(kind, program, globals)
	return &Building{
		Position: pos,
		Size:     1,
		Kind:     kind,
		NameHint: name,
		data:     &BuildingData{processor: p},
		alive:    true,
	}
}

// NewOpaqueBuilding places a non-processor building the VM only tracks for
// grid-occupancy and BuildingRef purposes.
func NewOpaqueBuilding(name string, pos Point2, size int, config LValue) *Building {
	return &Building{
		Position: pos,
		Size:     size,
		Kind:     BlockNonProcessor,
		NameHint: name,
		data:     &BuildingData{config: config},
		alive:    true,
	}
}

// Data exposes the building's BuildingData variant.
func (b *Building) Data() *BuildingData { return b.data }

// Alive reports whether the building reference is still valid. This VM
// never removes placed buildings, so it is always true once constructed;
// the hook exists because BuildingRef's num()/string() coercions are
// specified in terms of liveness (spec §4.1).
func (b *Building) Alive() bool { return b != nil && b.alive }

// Name returns the building's display name for string() coercion.
func (b *Building) Name() string {
	if b == nil {
		return "null"
	}
	return b.NameHint
}
