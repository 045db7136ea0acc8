package vm

import "testing"

func testGlobals() *Globals {
	return NewGlobals(&FixtureCatalog{
		Blocks:  []string{"router"},
		Items:   []string{"copper", "lead"},
		Liquids: []string{"water"},
		Units:   []string{"flare"},
	})
}

func mustDecode(t *testing.T, source string) *Program {
	t.Helper()
	prog, err := decode(source, testGlobals())
	if err != nil {
		t.Fatalf("decode(%q): unexpected error: %v", source, err)
	}
	return prog
}

func TestDecodeNoopCount(t *testing.T) {
	prog := mustDecode(t, "noop\nnoop\nstop")
	if got := len(prog.instructions); got != 3 {
		t.Fatalf("instruction count: got=%d, want=3", got)
	}
}

func TestDecodeSemicolonIsNewline(t *testing.T) {
	prog := mustDecode(t, "noop;noop;stop")
	if got := len(prog.instructions); got != 3 {
		t.Fatalf("instruction count: got=%d, want=3", got)
	}
}

func TestDecodeCommentsStripped(t *testing.T) {
	prog := mustDecode(t, "# a comment\nnoop # trailing\nstop")
	if got := len(prog.instructions); got != 2 {
		t.Fatalf("instruction count: got=%d, want=2", got)
	}
}

func TestDecodeLabelsDoNotEmitInstructions(t *testing.T) {
	prog := mustDecode(t, "start:\nnoop\njump start always")
	if got := len(prog.instructions); got != 2 {
		t.Fatalf("instruction count: got=%d, want=2", got)
	}
	if got := prog.instructions[1].target; got != 0 {
		t.Fatalf("jump target: got=%d, want=0", got)
	}
}

func TestDecodeUnknownInstructionFails(t *testing.T) {
	_, err := decode("bogus 1 2", testGlobals())
	if err == nil {
		t.Fatalf("expected an error for an unknown instruction")
	}
	if _, ok := err.(*BadProcessorCodeError); !ok {
		t.Fatalf("error type: got=%T, want=*BadProcessorCodeError", err)
	}
}

func TestDecodeUnknownLabelFails(t *testing.T) {
	_, err := decode("jump nowhere always", testGlobals())
	if err == nil {
		t.Fatalf("expected an error for an unknown label")
	}
}

func TestDecodeStringLiteralEscapes(t *testing.T) {
	prog := mustDecode(t, `print "a\nb\"c\\d"`)
	got := prog.instructions[0].src.Get(&Processor{})
	if want := "a\nb\"c\\d"; got.StringOf() != want {
		t.Fatalf("string literal: got=%q, want=%q", got.StringOf(), want)
	}
}

func TestDecodeNumberLiterals(t *testing.T) {
	tests := []struct {
		tok  string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"-1", -1},
		{"0xdeadbeef", 3735928559},
		{"0b1010", 10},
		{"1.5", 1.5},
		{"1e3", 1000},
	}
	globals := testGlobals()
	vt := newVariableTable(globals)
	for _, tt := range tests {
		lv, err := parseOperand(tt.tok, vt, globals)
		if err != nil {
			t.Fatalf("parseOperand(%q): unexpected error: %v", tt.tok, err)
		}
		if got := lv.Get(&Processor{}).Num(); got != tt.want {
			t.Fatalf("parseOperand(%q): got=%v, want=%v", tt.tok, got, tt.want)
		}
	}
}

func TestDecodeOutOfRangeNumberBecomesNull(t *testing.T) {
	globals := testGlobals()
	vt := newVariableTable(globals)
	lv, err := parseOperand("1e309", vt, globals)
	if err != nil {
		t.Fatalf("parseOperand: unexpected error: %v", err)
	}
	if got := lv.Get(&Processor{}); !got.IsNull() {
		t.Fatalf("1e309: got=%v, want Null", got)
	}
}

func TestDecodeMutableVariablesShareSlots(t *testing.T) {
	prog := mustDecode(t, "set x 1\nset y x")
	setX := prog.instructions[0]
	setY := prog.instructions[1]
	if setX.dest.slot != setY.src.slot {
		t.Fatalf("x referenced twice should resolve to the same slot: got %d and %d", setX.dest.slot, setY.src.slot)
	}
}

func TestDecodeColorLiteral(t *testing.T) {
	globals := testGlobals()
	vt := newVariableTable(globals)
	lv, err := parseOperand("%[white]", vt, globals)
	if err != nil {
		t.Fatalf("parseOperand(%%[white]): unexpected error: %v", err)
	}
	r, g, b, a := unpackColor(lv.Get(&Processor{}).Num())
	if r != 1 || g != 1 || b != 1 || a != 1 {
		t.Fatalf("white color channels: got=(%v,%v,%v,%v), want=(1,1,1,1)", r, g, b, a)
	}
}

func TestDecodeOpSelectsUnaryVsBinary(t *testing.T) {
	prog := mustDecode(t, "op abs x 5\nop add y 1 2")
	if prog.instructions[0].kind != instOpUnary {
		t.Fatalf("op abs: kind got=%v, want instOpUnary", prog.instructions[0].kind)
	}
	if prog.instructions[1].kind != instOpBinary {
		t.Fatalf("op add: kind got=%v, want instOpBinary", prog.instructions[1].kind)
	}
}
