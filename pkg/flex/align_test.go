package flex

import "testing"

func alignRow(t *testing.T, align Align) (Node, Node) {
	t.Helper()
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetAlignItems(align)

	child := arena.NewNode()
	child.SetWidth(10)
	child.SetHeight(10)
	mustAdd(t, root, child)
	calc(t, root)
	return root, child
}

func TestAlignItemsPositions(t *testing.T) {
	cases := []struct {
		align Align
		top   float64
	}{
		{AlignFlexStart, 0},
		{AlignCenter, 45},
		{AlignFlexEnd, 90},
		{AlignStretch, 0},
	}
	for _, tc := range cases {
		t.Run(tc.align.String(), func(t *testing.T) {
			_, child := alignRow(t, tc.align)
			if got := child.LayoutTop(); !floatsEqual(got, tc.top) {
				t.Errorf("top = %v, want %v", got, tc.top)
			}
		})
	}
}

func TestAlignItemsStretchFillsCross(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetFlexDirection(FlexDirectionRow)

	child := arena.NewNode()
	child.SetWidth(10)
	mustAdd(t, root, child)

	calc(t, root)
	checkBox(t, "child", child, 0, 0, 10, 100)
}

func TestAlignSelfOverridesAlignItems(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetAlignItems(AlignFlexStart)

	a := arena.NewNode()
	a.SetWidth(10)
	a.SetHeight(10)
	mustAdd(t, root, a)

	b := arena.NewNode()
	b.SetWidth(10)
	b.SetHeight(10)
	b.SetAlignSelf(AlignCenter)
	mustAdd(t, root, b)

	calc(t, root)
	if got := a.LayoutTop(); !floatsEqual(got, 0) {
		t.Errorf("a top = %v, want 0", got)
	}
	if got := b.LayoutTop(); !floatsEqual(got, 45) {
		t.Errorf("b top = %v, want 45", got)
	}
}

func TestAlignCrossAutoMarginsCenter(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetAlignItems(AlignFlexStart)

	child := arena.NewNode()
	child.SetWidth(10)
	child.SetHeight(10)
	child.SetMarginAuto(EdgeTop)
	child.SetMarginAuto(EdgeBottom)
	mustAdd(t, root, child)

	calc(t, root)
	if got := child.LayoutTop(); !floatsEqual(got, 45) {
		t.Fatalf("top = %v, want 45", got)
	}
}

func alignContentWrap(t *testing.T, align Align) []Node {
	t.Helper()
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetFlexWrap(WrapWrap)
	root.SetAlignContent(align)

	children := make([]Node, 3)
	for i := range children {
		c := arena.NewNode()
		c.SetWidth(40)
		c.SetHeight(10)
		mustAdd(t, root, c)
		children[i] = c
	}
	calc(t, root)
	return children
}

func TestAlignContent(t *testing.T) {
	cases := []struct {
		align Align
		tops  [3]float64
	}{
		{AlignFlexStart, [3]float64{0, 0, 10}},
		{AlignCenter, [3]float64{40, 40, 50}},
		{AlignFlexEnd, [3]float64{80, 80, 90}},
		{AlignStretch, [3]float64{0, 0, 50}},
		{AlignSpaceBetween, [3]float64{0, 0, 90}},
		{AlignSpaceAround, [3]float64{20, 20, 70}},
	}
	for _, tc := range cases {
		t.Run(tc.align.String(), func(t *testing.T) {
			children := alignContentWrap(t, tc.align)
			for i, c := range children {
				if got := c.LayoutTop(); !floatsEqual(got, tc.tops[i]) {
					t.Errorf("child %d top = %v, want %v", i, got, tc.tops[i])
				}
			}
		})
	}
}

func TestAlignBaseline(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetAlignItems(AlignBaseline)

	// Without a baseline capability a leaf's baseline is its bottom edge.
	tall := arena.NewNode()
	tall.SetWidth(30)
	tall.SetHeight(40)
	mustAdd(t, root, tall)

	short := arena.NewNode()
	short.SetWidth(30)
	short.SetHeight(20)
	short.SetBaselineFunc(func(n Node, width, height float64) (float64, error) {
		return 10, nil
	})
	mustAdd(t, root, short)

	calc(t, root)
	if got := tall.LayoutTop(); !floatsEqual(got, 0) {
		t.Errorf("tall top = %v, want 0", got)
	}
	// Baselines meet at y=40: the short child's baseline sits 10 below its
	// top, so its top lands at 30.
	if got := short.LayoutTop(); !floatsEqual(got, 30) {
		t.Errorf("short top = %v, want 30", got)
	}
}
