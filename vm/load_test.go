package vm

import "testing"

func TestLoadBuildingUnknownBlock(t *testing.T) {
	globals := testGlobals()
	cache, _ := NewDecodeCache(globals, 0)
	_, _, err := LoadBuilding(cache, FixtureRegistry{}, "mystery-block", Point2{}, nil)
	if _, ok := err.(*UnknownBlockTypeError); !ok {
		t.Fatalf("error type: got=%T, want=*UnknownBlockTypeError", err)
	}
}

func TestLoadBuildingProcessorNeedsConfig(t *testing.T) {
	globals := testGlobals()
	cache, _ := NewDecodeCache(globals, 0)
	registry := FixtureRegistry{"micro-processor": BlockMicroProcessor}
	_, _, err := LoadBuilding(cache, registry, "micro-processor", Point2{}, nil)
	if _, ok := err.(*BadBlockTypeError); !ok {
		t.Fatalf("error type: got=%T, want=*BadBlockTypeError", err)
	}
}

func TestLoadBuildingNonProcessorRejectsConfig(t *testing.T) {
	globals := testGlobals()
	cache, _ := NewDecodeCache(globals, 0)
	registry := FixtureRegistry{"router": BlockNonProcessor}
	_, _, err := LoadBuilding(cache, registry, "router", Point2{}, &ProcessorConfig{Code: "stop"})
	if _, ok := err.(*BadBlockTypeError); !ok {
		t.Fatalf("error type: got=%T, want=*BadBlockTypeError", err)
	}
}

func TestLoadBuildingBadCode(t *testing.T) {
	globals := testGlobals()
	cache, _ := NewDecodeCache(globals, 0)
	registry := FixtureRegistry{"micro-processor": BlockMicroProcessor}
	_, _, err := LoadBuilding(cache, registry, "micro-processor", Point2{}, &ProcessorConfig{Code: "bogus"})
	if _, ok := err.(*BadProcessorCodeError); !ok {
		t.Fatalf("error type: got=%T, want=*BadProcessorCodeError", err)
	}
}

func TestLoadBuildingSuccess(t *testing.T) {
	globals := testGlobals()
	cache, _ := NewDecodeCache(globals, 0)
	registry := FixtureRegistry{
		"micro-processor": BlockMicroProcessor,
		"router":          BlockNonProcessor,
	}
	b, links, err := LoadBuilding(cache, registry, "micro-processor", Point2{}, &ProcessorConfig{
		Code:  "stop",
		Links: []ProcessorLink{{Name: "sensor", Offset: Point2{X: 1}}},
	})
	if err != nil {
		t.Fatalf("LoadBuilding: %v", err)
	}
	if !b.Data().IsProcessor() {
		t.Fatalf("expected a processor-backed building")
	}
	if len(links) != 1 {
		t.Fatalf("links: got=%d, want=1", len(links))
	}

	b2, _, err := LoadBuilding(cache, registry, "router", Point2{X: 5}, nil)
	if err != nil {
		t.Fatalf("LoadBuilding(router): %v", err)
	}
	if b2.Data().IsProcessor() {
		t.Fatalf("router should not be a processor")
	}
}
