package flex

import "testing"

func wrapRow(t *testing.T, wrap Wrap) (Node, []Node) {
	t.Helper()
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetFlexWrap(wrap)

	children := make([]Node, 3)
	for i := range children {
		c := arena.NewNode()
		c.SetWidth(40)
		c.SetHeight(10)
		mustAdd(t, root, c)
		children[i] = c
	}
	calc(t, root)
	return root, children
}

func TestNoWrapKeepsOneLine(t *testing.T) {
	root, children := wrapRow(t, WrapNoWrap)
	checkBox(t, "first", children[0], 0, 0, 40, 10)
	checkBox(t, "second", children[1], 40, 0, 40, 10)
	checkBox(t, "third", children[2], 80, 0, 40, 10)
	if got := root.LayoutHeight(); !floatsEqual(got, 10) {
		t.Fatalf("root height = %v, want 10", got)
	}
}

func TestWrapBreaksIntoLines(t *testing.T) {
	root, children := wrapRow(t, WrapWrap)
	checkBox(t, "first", children[0], 0, 0, 40, 10)
	checkBox(t, "second", children[1], 40, 0, 40, 10)
	checkBox(t, "third", children[2], 0, 10, 40, 10)
	if got := root.LayoutHeight(); !floatsEqual(got, 20) {
		t.Fatalf("root height = %v, want 20", got)
	}
}

func TestWrapReverseFlipsLineStacking(t *testing.T) {
	_, children := wrapRow(t, WrapWrapReverse)
	// Two lines in a 20-high root: the first line lands at the bottom.
	checkBox(t, "first", children[0], 0, 10, 40, 10)
	checkBox(t, "second", children[1], 40, 10, 40, 10)
	checkBox(t, "third", children[2], 0, 0, 40, 10)
}

func TestWrapRespectsChildMinSize(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetFlexWrap(WrapWrap)

	a := arena.NewNode()
	a.SetWidth(30)
	a.SetMinWidth(60)
	a.SetHeight(10)
	mustAdd(t, root, a)

	b := arena.NewNode()
	b.SetWidth(50)
	b.SetHeight(10)
	mustAdd(t, root, b)

	// Line packing sees a's effective 60, so b no longer fits beside it.
	calc(t, root)
	checkBox(t, "a", a, 0, 0, 60, 10)
	checkBox(t, "b", b, 0, 10, 50, 10)
}

func TestWrapSingleOversizedChildStaysOnLine(t *testing.T) {
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetFlexWrap(WrapWrap)

	big := arena.NewNode()
	big.SetWidth(150)
	big.SetHeight(10)
	mustAdd(t, root, big)

	calc(t, root)
	// A line never breaks before its first child.
	checkBox(t, "big", big, 0, 0, 150, 10)
}
