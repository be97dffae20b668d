// Package flex is a flexbox layout engine. Nodes live in an Arena and are
// addressed through generation-stamped Handles, so a freed node can never be
// confused with its slot's next occupant. Styles follow the CSS flexbox
// model: direction, wrapping, grow/shrink/basis, justify and align, margins,
// padding, borders, min/max constraints, and absolute positioning.
//
// A typical session builds a tree, runs CalculateLayout on the root, and
// reads the computed boxes:
//
//	arena := flex.NewArena()
//	root := arena.NewNode()
//	root.SetWidth(200)
//	root.SetHeight(100)
//	root.SetFlexDirection(flex.FlexDirectionRow)
//
//	child := arena.NewNode()
//	child.SetFlexGrow(1)
//	if err := root.AddChild(child); err != nil {
//		// ...
//	}
//
//	if err := root.CalculateLayout(flex.Undefined, flex.Undefined, flex.DirectionLTR); err != nil {
//		// ...
//	}
//	x, w := child.LayoutLeft(), child.LayoutWidth()
//
// Layout output is buffered: CalculateLayout solves on scratch state and
// publishes the whole subtree only when the pass succeeds, so a failing
// measure callback leaves the previous computed boxes intact.
//
// Leaf content is sized through a MeasureFunc and aligned through an optional
// BaselineFunc. Callbacks must not add, remove, or free nodes in the same
// arena while a layout pass is running.
//
// An Arena and its nodes are not safe for concurrent use; confine each arena
// to one goroutine or guard it externally.
package flex
