package flex

// Style setters below all follow the same contract: a write that changes the
// stored value marks the node (and its ancestors) dirty, an identical write
// is a no-op.

func (a *Arena) setStyleValue(rec *nodeRecord, p *Value, v Value) {
	if valueEqual(*p, v) {
		return
	}
	*p = v
	a.markDirty(rec)
}

func (a *Arena) setStyleFloat(rec *nodeRecord, p *float64, v float64) {
	if floatsEqual(*p, v) {
		return
	}
	*p = v
	a.markDirty(rec)
}

// pointOrAuto maps an undefined point length to auto, so SetWidth(Undefined)
// clears a fixed size.
func pointOrAuto(v float64) Value {
	if IsUndefined(v) {
		return valueAuto
	}
	return Value{Value: v, Unit: UnitPoint}
}

func pointOrUnset(v float64) Value {
	if IsUndefined(v) {
		return valueUndefined
	}
	return Value{Value: v, Unit: UnitPoint}
}

func percentOrUnset(v float64) Value {
	if IsUndefined(v) {
		return valueUndefined
	}
	return Value{Value: v, Unit: UnitPercent}
}

func (n Node) SetDirection(d Direction) {
	rec := n.must()
	if rec.style.Direction != d {
		rec.style.Direction = d
		n.arena.markDirty(rec)
	}
}

func (n Node) Direction() Direction { return n.must().style.Direction }

func (n Node) SetFlexDirection(d FlexDirection) {
	rec := n.must()
	if rec.style.FlexDirection != d {
		rec.style.FlexDirection = d
		n.arena.markDirty(rec)
	}
}

func (n Node) FlexDirection() FlexDirection { return n.must().style.FlexDirection }

func (n Node) SetJustifyContent(j Justify) {
	rec := n.must()
	if rec.style.JustifyContent != j {
		rec.style.JustifyContent = j
		n.arena.markDirty(rec)
	}
}

func (n Node) JustifyContent() Justify { return n.must().style.JustifyContent }

func (n Node) SetAlignItems(align Align) {
	rec := n.must()
	if rec.style.AlignItems != align {
		rec.style.AlignItems = align
		n.arena.markDirty(rec)
	}
}

func (n Node) AlignItems() Align { return n.must().style.AlignItems }

func (n Node) SetAlignContent(align Align) {
	rec := n.must()
	if rec.style.AlignContent != align {
		rec.style.AlignContent = align
		n.arena.markDirty(rec)
	}
}

func (n Node) AlignContent() Align { return n.must().style.AlignContent }

func (n Node) SetAlignSelf(align Align) {
	rec := n.must()
	if rec.style.AlignSelf != align {
		rec.style.AlignSelf = align
		n.arena.markDirty(rec)
	}
}

func (n Node) AlignSelf() Align { return n.must().style.AlignSelf }

func (n Node) SetPositionType(t PositionType) {
	rec := n.must()
	if rec.style.PositionType != t {
		rec.style.PositionType = t
		n.arena.markDirty(rec)
	}
}

func (n Node) PositionType() PositionType { return n.must().style.PositionType }

func (n Node) SetFlexWrap(w Wrap) {
	rec := n.must()
	if rec.style.FlexWrap != w {
		rec.style.FlexWrap = w
		n.arena.markDirty(rec)
	}
}

func (n Node) FlexWrap() Wrap { return n.must().style.FlexWrap }

func (n Node) SetOverflow(o Overflow) {
	rec := n.must()
	if rec.style.Overflow != o {
		rec.style.Overflow = o
		n.arena.markDirty(rec)
	}
}

func (n Node) Overflow() Overflow { return n.must().style.Overflow }

func (n Node) SetDisplay(d Display) {
	rec := n.must()
	if rec.style.Display != d {
		rec.style.Display = d
		n.arena.markDirty(rec)
	}
}

func (n Node) Display() Display { return n.must().style.Display }

func (n Node) SetFlexGrow(grow float64) {
	rec := n.must()
	n.arena.setStyleFloat(rec, &rec.style.FlexGrow, grow)
}

// FlexGrow returns the effective grow factor (0 when unset).
func (n Node) FlexGrow() float64 {
	g := n.must().style.FlexGrow
	if IsUndefined(g) {
		return defaultFlexGrow
	}
	return g
}

func (n Node) SetFlexShrink(shrink float64) {
	rec := n.must()
	n.arena.setStyleFloat(rec, &rec.style.FlexShrink, shrink)
}

// FlexShrink returns the effective shrink factor (0 when unset).
func (n Node) FlexShrink() float64 {
	s := n.must().style.FlexShrink
	if IsUndefined(s) {
		return defaultFlexShrink
	}
	return s
}

func (n Node) SetFlexBasis(basis float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.FlexBasis, pointOrAuto(basis))
}

func (n Node) SetFlexBasisPercent(basis float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.FlexBasis, percentOrUnset(basis))
}

func (n Node) SetFlexBasisAuto() {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.FlexBasis, valueAuto)
}

func (n Node) FlexBasis() Value { return n.must().style.FlexBasis }

func (n Node) SetWidth(width float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Dimensions[DimensionWidth], pointOrAuto(width))
}

func (n Node) SetWidthPercent(width float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Dimensions[DimensionWidth], percentOrUnset(width))
}

func (n Node) SetWidthAuto() {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Dimensions[DimensionWidth], valueAuto)
}

func (n Node) Width() Value { return n.must().style.Dimensions[DimensionWidth] }

func (n Node) SetHeight(height float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Dimensions[DimensionHeight], pointOrAuto(height))
}

func (n Node) SetHeightPercent(height float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Dimensions[DimensionHeight], percentOrUnset(height))
}

func (n Node) SetHeightAuto() {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Dimensions[DimensionHeight], valueAuto)
}

func (n Node) Height() Value { return n.must().style.Dimensions[DimensionHeight] }

func (n Node) SetMinWidth(v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.MinDimensions[DimensionWidth], pointOrUnset(v))
}

func (n Node) SetMinWidthPercent(v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.MinDimensions[DimensionWidth], percentOrUnset(v))
}

func (n Node) MinWidth() Value { return n.must().style.MinDimensions[DimensionWidth] }

func (n Node) SetMinHeight(v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.MinDimensions[DimensionHeight], pointOrUnset(v))
}

func (n Node) SetMinHeightPercent(v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.MinDimensions[DimensionHeight], percentOrUnset(v))
}

func (n Node) MinHeight() Value { return n.must().style.MinDimensions[DimensionHeight] }

func (n Node) SetMaxWidth(v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.MaxDimensions[DimensionWidth], pointOrUnset(v))
}

func (n Node) SetMaxWidthPercent(v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.MaxDimensions[DimensionWidth], percentOrUnset(v))
}

func (n Node) MaxWidth() Value { return n.must().style.MaxDimensions[DimensionWidth] }

func (n Node) SetMaxHeight(v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.MaxDimensions[DimensionHeight], pointOrUnset(v))
}

func (n Node) SetMaxHeightPercent(v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.MaxDimensions[DimensionHeight], percentOrUnset(v))
}

func (n Node) MaxHeight() Value { return n.must().style.MaxDimensions[DimensionHeight] }

func (n Node) SetMargin(edge Edge, v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Margin[edge], pointOrUnset(v))
}

func (n Node) SetMarginPercent(edge Edge, v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Margin[edge], percentOrUnset(v))
}

func (n Node) SetMarginAuto(edge Edge) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Margin[edge], valueAuto)
}

func (n Node) Margin(edge Edge) Value { return n.must().style.Margin[edge] }

func (n Node) SetPadding(edge Edge, v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Padding[edge], pointOrUnset(v))
}

func (n Node) SetPaddingPercent(edge Edge, v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Padding[edge], percentOrUnset(v))
}

func (n Node) Padding(edge Edge) Value { return n.must().style.Padding[edge] }

// SetBorder sets a border width; borders are always point lengths.
func (n Node) SetBorder(edge Edge, v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Border[edge], pointOrUnset(v))
}

func (n Node) Border(edge Edge) Value { return n.must().style.Border[edge] }

// SetPosition sets an inset offset (left/top/right/bottom) used by both
// relative nudging and absolute placement.
func (n Node) SetPosition(edge Edge, v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Position[edge], pointOrUnset(v))
}

func (n Node) SetPositionPercent(edge Edge, v float64) {
	rec := n.must()
	n.arena.setStyleValue(rec, &rec.style.Position[edge], percentOrUnset(v))
}

func (n Node) Position(edge Edge) Value { return n.must().style.Position[edge] }

// Style returns a copy of the node's full style block.
func (n Node) Style() Style { return n.must().style }

// Computed output accessors. These read the committed layout, which only
// changes when a CalculateLayout call completes successfully.

func (n Node) LayoutLeft() float64   { return n.must().computed.Left }
func (n Node) LayoutTop() float64    { return n.must().computed.Top }
func (n Node) LayoutWidth() float64  { return n.must().computed.Width }
func (n Node) LayoutHeight() float64 { return n.must().computed.Height }

// Layout returns a copy of the whole committed output box.
func (n Node) Layout() Computed { return n.must().computed }

func (n Node) LayoutDirection() Direction { return n.must().computed.Direction }

func (n Node) LayoutHadOverflow() bool { return n.must().computed.HadOverflow }

func (n Node) LayoutMargin(edge Edge) float64 {
	rec := n.must()
	return computedPhysical(rec.computed.Margin, edge, rec.computed.Direction)
}

func (n Node) LayoutBorder(edge Edge) float64 {
	rec := n.must()
	return computedPhysical(rec.computed.Border, edge, rec.computed.Direction)
}

func (n Node) LayoutPadding(edge Edge) float64 {
	rec := n.must()
	return computedPhysical(rec.computed.Padding, edge, rec.computed.Direction)
}

// computedPhysical reads a committed per-edge array, resolving the logical
// Start/End edges against the laid-out direction.
func computedPhysical(edges [4]float64, edge Edge, dir Direction) float64 {
	switch edge {
	case EdgeStart:
		if dir == DirectionRTL {
			return edges[EdgeRight]
		}
		return edges[EdgeLeft]
	case EdgeEnd:
		if dir == DirectionRTL {
			return edges[EdgeLeft]
		}
		return edges[EdgeRight]
	default:
		return edges[edge]
	}
}
