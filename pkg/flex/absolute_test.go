package flex

import "testing"

func absRoot(t *testing.T) (Node, *Arena) {
	t.Helper()
	arena := NewArena()
	root := arena.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)
	return root, arena
}

func TestAbsoluteInsets(t *testing.T) {
	root, arena := absRoot(t)
	child := arena.NewNode()
	child.SetPositionType(PositionTypeAbsolute)
	child.SetPosition(EdgeLeft, 10)
	child.SetPosition(EdgeTop, 20)
	child.SetWidth(30)
	child.SetHeight(30)
	mustAdd(t, root, child)

	calc(t, root)
	checkBox(t, "child", child, 10, 20, 30, 30)
}

func TestAbsoluteTrailingInsets(t *testing.T) {
	root, arena := absRoot(t)
	child := arena.NewNode()
	child.SetPositionType(PositionTypeAbsolute)
	child.SetPosition(EdgeRight, 10)
	child.SetPosition(EdgeBottom, 10)
	child.SetWidth(30)
	child.SetHeight(30)
	mustAdd(t, root, child)

	calc(t, root)
	checkBox(t, "child", child, 60, 60, 30, 30)
}

func TestAbsoluteOpposingInsetsDeriveSize(t *testing.T) {
	root, arena := absRoot(t)
	child := arena.NewNode()
	child.SetPositionType(PositionTypeAbsolute)
	child.SetPosition(EdgeLeft, 10)
	child.SetPosition(EdgeRight, 10)
	child.SetPosition(EdgeTop, 5)
	child.SetPosition(EdgeBottom, 15)
	mustAdd(t, root, child)

	calc(t, root)
	checkBox(t, "child", child, 10, 5, 80, 80)
}

func TestAbsolutePercentInsets(t *testing.T) {
	root, arena := absRoot(t)
	child := arena.NewNode()
	child.SetPositionType(PositionTypeAbsolute)
	child.SetPositionPercent(EdgeLeft, 25)
	child.SetWidth(10)
	child.SetHeight(10)
	mustAdd(t, root, child)

	calc(t, root)
	if got := child.LayoutLeft(); !floatsEqual(got, 25) {
		t.Fatalf("left = %v, want 25", got)
	}
}

func TestAbsoluteInsideBorderBox(t *testing.T) {
	root, arena := absRoot(t)
	root.SetBorder(EdgeAll, 5)
	child := arena.NewNode()
	child.SetPositionType(PositionTypeAbsolute)
	child.SetPosition(EdgeLeft, 0)
	child.SetPosition(EdgeTop, 0)
	child.SetWidth(10)
	child.SetHeight(10)
	mustAdd(t, root, child)

	calc(t, root)
	// Insets are relative to the border box edge, inside the border.
	checkBox(t, "child", child, 5, 5, 10, 10)
}

func TestAbsoluteChildDoesNotAffectSiblings(t *testing.T) {
	root, arena := absRoot(t)
	root.SetFlexDirection(FlexDirectionRow)

	abs := arena.NewNode()
	abs.SetPositionType(PositionTypeAbsolute)
	abs.SetPosition(EdgeLeft, 0)
	abs.SetWidth(50)
	abs.SetHeight(50)
	mustAdd(t, root, abs)

	flow := arena.NewNode()
	flow.SetWidth(20)
	flow.SetHeight(20)
	mustAdd(t, root, flow)

	calc(t, root)
	// The in-flow child lays out as if the absolute one were not there.
	checkBox(t, "flow", flow, 0, 0, 20, 20)
}
