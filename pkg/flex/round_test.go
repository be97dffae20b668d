package flex

import "testing"

func TestRoundingDistributesFractionalPixels(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(10)
	root.SetFlexDirection(FlexDirectionRow)

	children := make([]Node, 3)
	for i := range children {
		c := arena.NewNode()
		c.SetFlexGrow(1)
		mustAdd(t, root, c)
		children[i] = c
	}
	calc(t, root)

	// 100/3 per child; rounding on shared absolute edges gives 33|34|33 with
	// no gaps and no overlap.
	wantLeft := []float64{0, 33, 67}
	wantWidth := []float64{33, 34, 33}
	for i, c := range children {
		if got := c.LayoutLeft(); !floatsEqual(got, wantLeft[i]) {
			t.Errorf("child %d left = %v, want %v", i, got, wantLeft[i])
		}
		if got := c.LayoutWidth(); !floatsEqual(got, wantWidth[i]) {
			t.Errorf("child %d width = %v, want %v", i, got, wantWidth[i])
		}
	}
}

func TestRoundingAtDoubleScale(t *testing.T) {
	arena := NewArena()
	arena.Config().SetPointScaleFactor(2)
	root := arena.NewNode()
	root.SetWidth(50.26)
	root.SetHeight(10)

	calc(t, root)
	// Half-pixel grid: 50.26 snaps to 50.5.
	if got := root.LayoutWidth(); !floatsEqual(got, 50.5) {
		t.Fatalf("width = %v, want 50.5", got)
	}
}

func TestRoundingDisabled(t *testing.T) {
	arena := NewArena()
	arena.Config().SetPointScaleFactor(0)
	root := arena.NewNode()
	root.SetWidth(100.37)
	root.SetHeight(10)

	calc(t, root)
	if got := root.LayoutWidth(); !floatsEqual(got, 100.37) {
		t.Fatalf("width = %v, want 100.37", got)
	}
}

func TestTextNodeNeverRoundsUpPastContent(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetHeight(10)

	text := arena.NewNode()
	if err := text.SetMeasureFunc(func(Node, float64, MeasureMode, float64, MeasureMode) (Size, error) {
		return Size{Width: 40.4, Height: 10}, nil
	}); err != nil {
		t.Fatalf("SetMeasureFunc: %v", err)
	}
	mustAdd(t, root, text)

	calc(t, root)
	// A text node position floors and its size covers the content: the
	// fractional 40.4 becomes a full 41 so glyphs are not clipped.
	if got := text.LayoutLeft(); !floatsEqual(got, 0) {
		t.Fatalf("left = %v, want 0", got)
	}
	if got := text.LayoutWidth(); !floatsEqual(got, 41) {
		t.Fatalf("width = %v, want 41", got)
	}
}

func TestSetPointScaleFactorRejectsNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("negative scale factor: want panic")
		}
	}()
	NewConfig().SetPointScaleFactor(-1)
}
