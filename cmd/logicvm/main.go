// Command logicvm is a small demo/debug driver for the vm package: it loads
// a single processor's source from a file, runs it on an otherwise-empty
// grid, and prints whatever the program wrote to its printbuffer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/jyane/logicvm/vm"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: logicvm <source-file> [max-ticks]")
		os.Exit(2)
	}

	maxTicks := 600
	if flag.NArg() > 1 {
		if _, err := fmt.Sscanf(flag.Arg(1), "%d", &maxTicks); err != nil {
			glog.Exitf("bad max-ticks argument %q: %v", flag.Arg(1), err)
		}
	}

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		glog.Exitf("reading %s: %v", flag.Arg(0), err)
	}

	catalog := &vm.FixtureCatalog{
		Blocks:  []string{"copper-wall", "router", "conveyor"},
		Items:   []string{"copper", "lead", "titanium", "silicon"},
		Liquids: []string{"water", "slag"},
		Units:   []string{"flare", "mono", "poly"},
	}
	registry := vm.FixtureRegistry{
		"micro-processor": vm.BlockMicroProcessor,
		"logic-processor": vm.BlockLogicProcessor,
		"hyper-processor": vm.BlockHyperProcessor,
		"world-processor": vm.BlockWorldProcessor,
	}

	globals := vm.NewGlobals(catalog)
	cache, err := vm.NewDecodeCache(globals, 0)
	if err != nil {
		glog.Exitf("building decode cache: %v", err)
	}

	building, links, err := vm.LoadBuilding(cache, registry, "logic-processor", vm.Point2{X: 0, Y: 0}, &vm.ProcessorConfig{Code: string(source)})
	if err != nil {
		glog.Exitf("loading processor: %v", err)
	}

	logicVM := vm.NewLogicVMWithGlobals(globals)
	if err := logicVM.AddBuilding(building, links); err != nil {
		glog.Exitf("placing processor: %v", err)
	}

	completed := logicVM.Run(maxTicks)
	glog.V(1).Infof("run finished: completed=%v ticks_budget=%d", completed, maxTicks)

	fmt.Print(building.Data().Processor().PrintbufferString())
}
