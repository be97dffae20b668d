package script

import (
	"fmt"

	"boxflex/pkg/flex"
	"boxflex/pkg/render"
)

// SceneNode is the script-side view of a layout node. Setters chain; the
// runtime's name mapper exposes them uncapitalized (setWidth, add, width).
type SceneNode struct {
	e *Engine
	n flex.Node
}

// Node returns the underlying layout node.
func (s *SceneNode) Node() flex.Node { return s.n }

func (s *SceneNode) fail(err error) {
	panic(s.e.vm.NewGoError(err))
}

func (s *SceneNode) Add(child *SceneNode) *SceneNode {
	if child == nil {
		panic(s.e.vm.NewTypeError("add: child is required"))
	}
	if err := s.n.AddChild(child.n); err != nil {
		s.fail(err)
	}
	return s
}

func (s *SceneNode) SetWidth(v float64) *SceneNode  { s.n.SetWidth(v); return s }
func (s *SceneNode) SetHeight(v float64) *SceneNode { s.n.SetHeight(v); return s }

func (s *SceneNode) SetWidthPercent(v float64) *SceneNode  { s.n.SetWidthPercent(v); return s }
func (s *SceneNode) SetHeightPercent(v float64) *SceneNode { s.n.SetHeightPercent(v); return s }

func (s *SceneNode) SetMinWidth(v float64) *SceneNode  { s.n.SetMinWidth(v); return s }
func (s *SceneNode) SetMaxWidth(v float64) *SceneNode  { s.n.SetMaxWidth(v); return s }
func (s *SceneNode) SetMinHeight(v float64) *SceneNode { s.n.SetMinHeight(v); return s }
func (s *SceneNode) SetMaxHeight(v float64) *SceneNode { s.n.SetMaxHeight(v); return s }

func (s *SceneNode) SetGrow(v float64) *SceneNode   { s.n.SetFlexGrow(v); return s }
func (s *SceneNode) SetShrink(v float64) *SceneNode { s.n.SetFlexShrink(v); return s }
func (s *SceneNode) SetBasis(v float64) *SceneNode  { s.n.SetFlexBasis(v); return s }

func (s *SceneNode) SetDirection(dir string) *SceneNode {
	d, err := parseFlexDirection(dir)
	if err != nil {
		panic(s.e.vm.NewTypeError(err.Error()))
	}
	s.n.SetFlexDirection(d)
	return s
}

func (s *SceneNode) SetJustify(j string) *SceneNode {
	v, err := parseJustify(j)
	if err != nil {
		panic(s.e.vm.NewTypeError(err.Error()))
	}
	s.n.SetJustifyContent(v)
	return s
}

func (s *SceneNode) SetAlignItems(a string) *SceneNode {
	v, err := parseAlign(a)
	if err != nil {
		panic(s.e.vm.NewTypeError(err.Error()))
	}
	s.n.SetAlignItems(v)
	return s
}

func (s *SceneNode) SetAlignSelf(a string) *SceneNode {
	v, err := parseAlign(a)
	if err != nil {
		panic(s.e.vm.NewTypeError(err.Error()))
	}
	s.n.SetAlignSelf(v)
	return s
}

func (s *SceneNode) SetAlignContent(a string) *SceneNode {
	v, err := parseAlign(a)
	if err != nil {
		panic(s.e.vm.NewTypeError(err.Error()))
	}
	s.n.SetAlignContent(v)
	return s
}

func (s *SceneNode) SetWrap(w string) *SceneNode {
	v, err := parseWrap(w)
	if err != nil {
		panic(s.e.vm.NewTypeError(err.Error()))
	}
	s.n.SetFlexWrap(v)
	return s
}

func (s *SceneNode) SetAbsolute() *SceneNode {
	s.n.SetPositionType(flex.PositionTypeAbsolute)
	return s
}

func (s *SceneNode) SetInset(edge string, v float64) *SceneNode {
	e, err := parseEdge(edge)
	if err != nil {
		panic(s.e.vm.NewTypeError(err.Error()))
	}
	s.n.SetPosition(e, v)
	return s
}

func (s *SceneNode) SetMargin(edge string, v float64) *SceneNode {
	e, err := parseEdge(edge)
	if err != nil {
		panic(s.e.vm.NewTypeError(err.Error()))
	}
	s.n.SetMargin(e, v)
	return s
}

func (s *SceneNode) SetPadding(edge string, v float64) *SceneNode {
	e, err := parseEdge(edge)
	if err != nil {
		panic(s.e.vm.NewTypeError(err.Error()))
	}
	s.n.SetPadding(e, v)
	return s
}

func (s *SceneNode) SetBorder(edge string, v float64) *SceneNode {
	e, err := parseEdge(edge)
	if err != nil {
		panic(s.e.vm.NewTypeError(err.Error()))
	}
	s.n.SetBorder(e, v)
	return s
}

// SetFill gives the node a background color for rendering; components are
// in [0,1].
func (s *SceneNode) SetFill(r, g, b float64) *SceneNode {
	look := s.appearance()
	look.Background = render.Color{R: r, G: g, B: b, A: 1}
	return s
}

// SetStroke gives the node a border color for rendering.
func (s *SceneNode) SetStroke(r, g, b float64) *SceneNode {
	look := s.appearance()
	look.Border = render.Color{R: r, G: g, B: b, A: 1}
	return s
}

func (s *SceneNode) appearance() *render.Appearance {
	if look, ok := s.n.Owner().(*render.Appearance); ok && look != nil {
		return look
	}
	look := &render.Appearance{}
	look.Attach(s.n)
	return look
}

// Computed box accessors, valid after scene.layout.

func (s *SceneNode) Left() float64   { return s.n.LayoutLeft() }
func (s *SceneNode) Top() float64    { return s.n.LayoutTop() }
func (s *SceneNode) Width() float64  { return s.n.LayoutWidth() }
func (s *SceneNode) Height() float64 { return s.n.LayoutHeight() }

func parseDirection(s string) (flex.Direction, error) {
	switch s {
	case "ltr":
		return flex.DirectionLTR, nil
	case "rtl":
		return flex.DirectionRTL, nil
	case "inherit", "":
		return flex.DirectionInherit, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func parseFlexDirection(s string) (flex.FlexDirection, error) {
	switch s {
	case "row":
		return flex.FlexDirectionRow, nil
	case "row-reverse":
		return flex.FlexDirectionRowReverse, nil
	case "column":
		return flex.FlexDirectionColumn, nil
	case "column-reverse":
		return flex.FlexDirectionColumnReverse, nil
	}
	return 0, fmt.Errorf("unknown flex direction %q", s)
}

func parseJustify(s string) (flex.Justify, error) {
	switch s {
	case "flex-start":
		return flex.JustifyFlexStart, nil
	case "center":
		return flex.JustifyCenter, nil
	case "flex-end":
		return flex.JustifyFlexEnd, nil
	case "space-between":
		return flex.JustifySpaceBetween, nil
	case "space-around":
		return flex.JustifySpaceAround, nil
	}
	return 0, fmt.Errorf("unknown justify %q", s)
}

func parseAlign(s string) (flex.Align, error) {
	switch s {
	case "auto":
		return flex.AlignAuto, nil
	case "flex-start":
		return flex.AlignFlexStart, nil
	case "center":
		return flex.AlignCenter, nil
	case "flex-end":
		return flex.AlignFlexEnd, nil
	case "stretch":
		return flex.AlignStretch, nil
	case "baseline":
		return flex.AlignBaseline, nil
	case "space-between":
		return flex.AlignSpaceBetween, nil
	case "space-around":
		return flex.AlignSpaceAround, nil
	}
	return 0, fmt.Errorf("unknown align %q", s)
}

func parseWrap(s string) (flex.Wrap, error) {
	switch s {
	case "nowrap":
		return flex.WrapNoWrap, nil
	case "wrap":
		return flex.WrapWrap, nil
	case "wrap-reverse":
		return flex.WrapWrapReverse, nil
	}
	return 0, fmt.Errorf("unknown wrap %q", s)
}

func parseEdge(s string) (flex.Edge, error) {
	switch s {
	case "left":
		return flex.EdgeLeft, nil
	case "top":
		return flex.EdgeTop, nil
	case "right":
		return flex.EdgeRight, nil
	case "bottom":
		return flex.EdgeBottom, nil
	case "start":
		return flex.EdgeStart, nil
	case "end":
		return flex.EdgeEnd, nil
	case "horizontal":
		return flex.EdgeHorizontal, nil
	case "vertical":
		return flex.EdgeVertical, nil
	case "all":
		return flex.EdgeAll, nil
	}
	return 0, fmt.Errorf("unknown edge %q", s)
}
