package flex

import "testing"

func TestStyleChangeDirtiesAncestorChain(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	mid := arena.NewNode()
	leaf := arena.NewNode()
	mustAdd(t, root, mid)
	mustAdd(t, mid, leaf)

	calc(t, root)
	if root.IsDirty() || mid.IsDirty() || leaf.IsDirty() {
		t.Fatal("tree still dirty after layout")
	}

	leaf.SetWidth(10)
	if !leaf.IsDirty() || !mid.IsDirty() || !root.IsDirty() {
		t.Fatal("dirty bit did not propagate to the root")
	}
}

func TestRedundantStyleWriteIsNoOp(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	calc(t, root)

	root.SetWidth(100)
	if root.IsDirty() {
		t.Fatal("identical style write dirtied the node")
	}
}

func TestCopyStyleIdenticalIsNoOp(t *testing.T) {
	arena := NewArena()
	a := arena.NewNode()
	a.SetWidth(100)
	a.SetHeight(50)
	calc(t, a)

	b := arena.NewNode()
	b.SetWidth(100)
	b.SetHeight(50)

	a.CopyStyle(b)
	if a.IsDirty() {
		t.Fatal("copying an identical style dirtied the node")
	}

	b.SetWidth(60)
	a.CopyStyle(b)
	if !a.IsDirty() {
		t.Fatal("copying a different style did not dirty the node")
	}
	if got := a.Width(); got.Unit != UnitPoint || got.Value != 60 {
		t.Fatalf("width after CopyStyle = %v, want 60pt", got)
	}
}

func TestHasNewLayoutTracksActualChanges(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetFlexDirection(FlexDirectionRow)

	a := arena.NewNode()
	a.SetWidth(30)
	a.SetHeight(30)
	mustAdd(t, root, a)

	b := arena.NewNode()
	b.SetWidth(30)
	b.SetHeight(30)
	b.SetPosition(EdgeLeft, 0)
	b.SetPositionType(PositionTypeAbsolute)
	mustAdd(t, root, b)

	calc(t, root)
	if !a.HasNewLayout() || !b.HasNewLayout() {
		t.Fatal("first layout did not flag new output")
	}
	a.MarkLayoutSeen()
	b.MarkLayoutSeen()

	// Changing a's width moves nothing about b, so only a reports new
	// output after the next pass.
	a.SetWidth(40)
	calc(t, root)
	if !a.HasNewLayout() {
		t.Fatal("resized node did not flag new output")
	}
	if b.HasNewLayout() {
		t.Fatal("unchanged node flagged new output")
	}
}

func TestMarkLayoutSeenPersistsAcrossIdenticalPasses(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	calc(t, root)

	root.MarkLayoutSeen()
	calc(t, root)
	if root.HasNewLayout() {
		t.Fatal("identical pass re-flagged layout as new")
	}
}

func TestMarkDirtyForcesRecomputeOfMeasuredLeaf(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(200)
	root.SetHeight(100)

	content := Size{Width: 50, Height: 20}
	leaf := arena.NewNode()
	if err := leaf.SetMeasureFunc(func(Node, float64, MeasureMode, float64, MeasureMode) (Size, error) {
		return content, nil
	}); err != nil {
		t.Fatalf("SetMeasureFunc: %v", err)
	}
	leaf.SetAlignSelf(AlignFlexStart)
	mustAdd(t, root, leaf)

	calc(t, root)
	if got := leaf.LayoutHeight(); !floatsEqual(got, 20) {
		t.Fatalf("height = %v, want 20", got)
	}

	// The engine cannot see the content change; the caller reports it.
	content = Size{Width: 50, Height: 35}
	calc(t, root)
	if got := leaf.LayoutHeight(); !floatsEqual(got, 20) {
		t.Fatalf("height without MarkDirty = %v, want stale 20", got)
	}

	leaf.MarkDirty()
	calc(t, root)
	if got := leaf.LayoutHeight(); !floatsEqual(got, 35) {
		t.Fatalf("height after MarkDirty = %v, want 35", got)
	}
}
