package vm

// BlockRegistry maps a schematic's block name strings to BlockKind. Loading
// the real game's block list is out of scope for this package (spec §6
// "Block catalog (consumed)"); callers supply their own registry, or use
// FixtureRegistry for tests and the cmd/logicvm demo.
type BlockRegistry interface {
	Lookup(name string) (BlockKind, bool)
}

// FixtureRegistry is a small map-backed BlockRegistry.
type FixtureRegistry map[string]BlockKind

func (r FixtureRegistry) Lookup(name string) (BlockKind, bool) {
	k, ok := r[name]
	return k, ok
}

// LoadBuilding places one schematic entry onto cache's VM-agnostic decode
// cache, producing either a Processor-backed Building (decoding procCfg.Code
// through cache) or an opaque one, per spec §7's load-time error taxonomy:
//
//   - an unrecognized block name is UnknownBlockTypeError
//   - a processor block with no config, or a non-processor block carrying
//     one, is BadBlockTypeError
//   - a processor config whose source fails to decode is
//     BadProcessorCodeError, returned as the decoder produced it
//
// The caller is responsible for calling LogicVM.AddBuilding with the
// returned Building and link table to actually place it on a grid.
func LoadBuilding(cache *DecodeCache, registry BlockRegistry, name string, pos Point2, procCfg *ProcessorConfig) (*Building, []ProcessorLink, error) {
	kind, ok := registry.Lookup(name)
	if !ok {
		return nil, nil, &UnknownBlockTypeError{Name: name}
	}

	if kind.isProcessor() {
		if procCfg == nil {
			return nil, nil, &BadBlockTypeError{Want: "processor config", Got: "none"}
		}
		prog, err := cache.Decode(procCfg.Code)
		if err != nil {
			return nil, nil, err
		}
		b := NewProcessorBuilding(name, pos, kind, prog, cache.globals)
		return b, procCfg.Links, nil
	}

	if procCfg != nil {
		return nil, nil, &BadBlockTypeError{Want: "none", Got: "processor config"}
	}
	return NewOpaqueBuilding(name, pos, 1, Null), nil, nil
}
