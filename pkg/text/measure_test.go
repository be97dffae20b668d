package text

import (
	"testing"

	"boxflex/pkg/flex"
)

// The tests use an empty font path so measurement runs on the estimator and
// does not depend on fonts being installed.

func TestSingleLineMeasurement(t *testing.T) {
	m := NewMeasurer("", 10)

	size, err := m.MeasureFunc("hello")(flex.Node{}, flex.Undefined, flex.MeasureModeUndefined, flex.Undefined, flex.MeasureModeUndefined)
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	// 5 glyphs at the 0.6em estimate.
	if size.Width != 30 {
		t.Errorf("width = %v, want 30", size.Width)
	}
	if size.Height != 12 {
		t.Errorf("height = %v, want 12", size.Height)
	}
}

func TestWrappingUnderAtMost(t *testing.T) {
	m := NewMeasurer("", 10)

	// "aa bb cc" is 48 wide unwrapped; a 30-wide constraint forces two lines
	// of "aa bb" (30) and "cc" (12).
	size, err := m.MeasureFunc("aa bb cc")(flex.Node{}, 30, flex.MeasureModeAtMost, flex.Undefined, flex.MeasureModeUndefined)
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if size.Width != 30 {
		t.Errorf("width = %v, want 30", size.Width)
	}
	if size.Height != 24 {
		t.Errorf("height = %v, want 24 (two lines)", size.Height)
	}
}

func TestOversizedWordKeepsOwnLine(t *testing.T) {
	m := NewMeasurer("", 10)

	lines := m.wrap("tiny enormousword", 40)
	if len(lines) != 2 {
		t.Fatalf("lines = %q, want 2 lines", lines)
	}
	if lines[1] != "enormousword" {
		t.Fatalf("second line = %q, want the oversized word unsplit", lines[1])
	}
}

func TestMeasuredTextInLayout(t *testing.T) {
	m := NewMeasurer("", 10)

	arena := flex.NewArena()
	root := arena.NewNode()
	root.SetWidth(30)

	label := arena.NewNode()
	if err := m.Attach(label, "aa bb cc"); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := root.AddChild(label); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	if err := root.CalculateLayout(flex.Undefined, flex.Undefined, flex.DirectionLTR); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}
	if got := label.LayoutHeight(); got != 24 {
		t.Fatalf("label height = %v, want 24", got)
	}
	if got := label.NodeType(); got != flex.NodeTypeText {
		t.Fatalf("node type = %v, want text", got)
	}
}

func TestBaselineIsFirstLineAscent(t *testing.T) {
	m := NewMeasurer("", 10)
	b, err := m.BaselineFunc()(flex.Node{}, 100, 24)
	if err != nil {
		t.Fatalf("baseline: %v", err)
	}
	if b != 8 {
		t.Fatalf("baseline = %v, want 8", b)
	}
}
