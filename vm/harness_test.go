package vm

import (
	"context"
	"testing"
)

func TestRunConcurrentSharedGlobals(t *testing.T) {
	globals := NewGlobals(&FixtureCatalog{Items: []string{"copper"}})
	cache, err := NewDecodeCache(globals, 0)
	if err != nil {
		t.Fatalf("NewDecodeCache: %v", err)
	}

	scenarios := make([]Scenario, 8)
	for i := range scenarios {
		prog, err := cache.Decode("stop")
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		vmInst := NewLogicVMWithGlobals(globals)
		b := NewProcessorBuilding("proc", Point2{}, BlockMicroProcessor, prog, globals)
		if err := vmInst.AddBuilding(b, nil); err != nil {
			t.Fatalf("AddBuilding: %v", err)
		}
		scenarios[i] = Scenario{Name: "scenario", VM: vmInst, MaxTicks: 10}
	}

	results, err := RunConcurrent(context.Background(), scenarios)
	if err != nil {
		t.Fatalf("RunConcurrent: %v", err)
	}
	if got := len(results); got != len(scenarios) {
		t.Fatalf("result count: got=%d, want=%d", got, len(scenarios))
	}
	for i, r := range results {
		if !r.Completed {
			t.Fatalf("scenario %d: expected completion within budget", i)
		}
	}
}

func TestRunConcurrentIndependentState(t *testing.T) {
	globals := NewGlobals(&FixtureCatalog{})
	progA, err := decode("loop:\nprint \"a\"\njump loop always", globals)
	if err != nil {
		t.Fatalf("decode A: %v", err)
	}
	progB, err := decode("loop:\nprint \"b\"\njump loop always", globals)
	if err != nil {
		t.Fatalf("decode B: %v", err)
	}

	vmA := NewLogicVMWithGlobals(globals)
	bA := NewProcessorBuilding("a", Point2{}, BlockLogicProcessor, progA, globals)
	if err := vmA.AddBuilding(bA, nil); err != nil {
		t.Fatalf("AddBuilding A: %v", err)
	}
	vmB := NewLogicVMWithGlobals(globals)
	bB := NewProcessorBuilding("b", Point2{}, BlockLogicProcessor, progB, globals)
	if err := vmB.AddBuilding(bB, nil); err != nil {
		t.Fatalf("AddBuilding B: %v", err)
	}

	scenarios := []Scenario{
		{Name: "a", VM: vmA, MaxTicks: 5},
		{Name: "b", VM: vmB, MaxTicks: 5},
	}
	if _, err := RunConcurrent(context.Background(), scenarios); err != nil {
		t.Fatalf("RunConcurrent: %v", err)
	}

	gotA := bA.Data().Processor().PrintbufferString()
	gotB := bB.Data().Processor().PrintbufferString()
	if gotA == gotB {
		t.Fatalf("expected distinct printbuffers, both got %q", gotA)
	}
	for _, c := range gotA {
		if c != 'a' {
			t.Fatalf("vmA printbuffer contaminated by vmB: %q", gotA)
		}
	}
	for _, c := range gotB {
		if c != 'b' {
			t.Fatalf("vmB printbuffer contaminated by vmA: %q", gotB)
		}
	}
}
