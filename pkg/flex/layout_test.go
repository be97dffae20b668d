package flex

import (
	"errors"
	"testing"
)

func mustAdd(t *testing.T, parent, child Node) {
	t.Helper()
	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
}

func calc(t *testing.T, root Node) {
	t.Helper()
	if err := root.CalculateLayout(Undefined, Undefined, DirectionLTR); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}
}

func checkBox(t *testing.T, name string, n Node, left, top, width, height float64) {
	t.Helper()
	if got := n.LayoutLeft(); !floatsEqual(got, left) {
		t.Errorf("%s: left = %v, want %v", name, got, left)
	}
	if got := n.LayoutTop(); !floatsEqual(got, top) {
		t.Errorf("%s: top = %v, want %v", name, got, top)
	}
	if got := n.LayoutWidth(); !floatsEqual(got, width) {
		t.Errorf("%s: width = %v, want %v", name, got, width)
	}
	if got := n.LayoutHeight(); !floatsEqual(got, height) {
		t.Errorf("%s: height = %v, want %v", name, got, height)
	}
}

func TestFixedSizeRoot(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(50)
	calc(t, root)
	checkBox(t, "root", root, 0, 0, 100, 50)
}

func TestPercentDimensions(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(200)
	root.SetHeight(100)

	child := arena.NewNode()
	child.SetWidthPercent(50)
	child.SetHeightPercent(50)
	mustAdd(t, root, child)

	calc(t, root)
	checkBox(t, "child", child, 0, 0, 100, 50)
}

func TestPaddingOffsetsChildren(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetPadding(EdgeAll, 10)

	child := arena.NewNode()
	child.SetFlexGrow(1)
	mustAdd(t, root, child)

	calc(t, root)
	checkBox(t, "child", child, 10, 10, 80, 80)
}

func TestBorderOffsetsChildren(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetBorder(EdgeLeft, 5)
	root.SetBorder(EdgeTop, 3)

	child := arena.NewNode()
	child.SetWidth(10)
	child.SetHeight(10)
	mustAdd(t, root, child)

	calc(t, root)
	checkBox(t, "child", child, 5, 3, 10, 10)
}

func TestMarginOffsetsSibling(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetFlexDirection(FlexDirectionRow)

	a := arena.NewNode()
	a.SetWidth(20)
	a.SetHeight(20)
	a.SetMargin(EdgeRight, 10)
	mustAdd(t, root, a)

	b := arena.NewNode()
	b.SetWidth(20)
	b.SetHeight(20)
	mustAdd(t, root, b)

	calc(t, root)
	checkBox(t, "a", a, 0, 0, 20, 20)
	checkBox(t, "b", b, 30, 0, 20, 20)
}

func TestAutoMarginsCenterChild(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(50)
	root.SetFlexDirection(FlexDirectionRow)

	child := arena.NewNode()
	child.SetWidth(50)
	child.SetHeight(10)
	child.SetMarginAuto(EdgeLeft)
	child.SetMarginAuto(EdgeRight)
	mustAdd(t, root, child)

	calc(t, root)
	checkBox(t, "child", child, 25, 0, 50, 10)
}

func TestMaxContentRootSizesToChild(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()

	child := arena.NewNode()
	child.SetWidth(80)
	child.SetHeight(20)
	mustAdd(t, root, child)

	calc(t, root)
	checkBox(t, "root", root, 0, 0, 80, 20)
	checkBox(t, "child", child, 0, 0, 80, 20)
}

func TestMinMaxConstraintsClampRoot(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(500)
	root.SetMaxWidth(200)
	root.SetHeight(5)
	root.SetMinHeight(30)

	calc(t, root)
	checkBox(t, "root", root, 0, 0, 200, 30)
}

func TestDisplayNoneExcludesChild(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	root.SetFlexDirection(FlexDirectionRow)

	hidden := arena.NewNode()
	hidden.SetWidth(40)
	hidden.SetHeight(40)
	hidden.SetDisplay(DisplayNone)
	mustAdd(t, root, hidden)

	shown := arena.NewNode()
	shown.SetWidth(40)
	shown.SetHeight(40)
	mustAdd(t, root, shown)

	calc(t, root)
	checkBox(t, "hidden", hidden, 0, 0, 0, 0)
	checkBox(t, "shown", shown, 0, 0, 40, 40)
}

func TestCalculateLayoutOnFreedNode(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	if err := root.Free(); err != nil {
		t.Fatalf("Free: %v", err)
	}
	err := root.CalculateLayout(Undefined, Undefined, DirectionLTR)
	if !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("CalculateLayout on freed node: err = %v, want ErrStaleHandle", err)
	}
}
