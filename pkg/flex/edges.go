package flex

// Axis lookup tables indexed by FlexDirection. leading/trailing give the
// physical edge at the start/end of an axis; dim gives the dimension measured
// along it.
var (
	leading = [4]Edge{
		FlexDirectionColumn:        EdgeTop,
		FlexDirectionColumnReverse: EdgeBottom,
		FlexDirectionRow:           EdgeLeft,
		FlexDirectionRowReverse:    EdgeRight,
	}
	trailing = [4]Edge{
		FlexDirectionColumn:        EdgeBottom,
		FlexDirectionColumnReverse: EdgeTop,
		FlexDirectionRow:           EdgeRight,
		FlexDirectionRowReverse:    EdgeLeft,
	}
	pos = [4]Edge{
		FlexDirectionColumn:        EdgeTop,
		FlexDirectionColumnReverse: EdgeBottom,
		FlexDirectionRow:           EdgeLeft,
		FlexDirectionRowReverse:    EdgeRight,
	}
	dim = [4]Dimension{
		FlexDirectionColumn:        DimensionHeight,
		FlexDirectionColumnReverse: DimensionHeight,
		FlexDirectionRow:           DimensionWidth,
		FlexDirectionRowReverse:    DimensionWidth,
	}
)

func flexDirectionIsRow(d FlexDirection) bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

func flexDirectionIsColumn(d FlexDirection) bool {
	return d == FlexDirectionColumn || d == FlexDirectionColumnReverse
}

// resolveFlexDirection flips row axes under RTL writing direction.
func resolveFlexDirection(d FlexDirection, direction Direction) FlexDirection {
	if direction == DirectionRTL {
		if d == FlexDirectionRow {
			return FlexDirectionRowReverse
		}
		if d == FlexDirectionRowReverse {
			return FlexDirectionRow
		}
	}
	return d
}

func flexDirectionCross(d FlexDirection, direction Direction) FlexDirection {
	if flexDirectionIsColumn(d) {
		return resolveFlexDirection(FlexDirectionRow, direction)
	}
	return FlexDirectionColumn
}

// computedEdgeValue resolves a physical edge against the composite edges:
// the physical edge wins, then Horizontal/Vertical, then All, then the
// default. Start/End are handled by the callers, which know the axis.
func computedEdgeValue(edges *[edgeCount]Value, edge Edge, defaultValue Value) Value {
	if edges[edge].Unit != UnitUndefined {
		return edges[edge]
	}
	if (edge == EdgeTop || edge == EdgeBottom) && edges[EdgeVertical].Unit != UnitUndefined {
		return edges[EdgeVertical]
	}
	if (edge == EdgeLeft || edge == EdgeRight || edge == EdgeStart || edge == EdgeEnd) &&
		edges[EdgeHorizontal].Unit != UnitUndefined {
		return edges[EdgeHorizontal]
	}
	if edges[EdgeAll].Unit != UnitUndefined {
		return edges[EdgeAll]
	}
	if edge == EdgeStart || edge == EdgeEnd {
		return valueUndefined
	}
	return defaultValue
}

// Margins resolve percentages against the parent width; a percentage against
// an indefinite width degrades to zero rather than poisoning positions with
// NaN.

func nodeLeadingMargin(rec *nodeRecord, axis FlexDirection, widthSize float64) float64 {
	if flexDirectionIsRow(axis) && rec.style.Margin[EdgeStart].Unit != UnitUndefined {
		return definedOr(resolveValueMargin(rec.style.Margin[EdgeStart], widthSize), 0)
	}
	v := computedEdgeValue(&rec.style.Margin, leading[axis], valueZero)
	return definedOr(resolveValueMargin(v, widthSize), 0)
}

func nodeTrailingMargin(rec *nodeRecord, axis FlexDirection, widthSize float64) float64 {
	if flexDirectionIsRow(axis) && rec.style.Margin[EdgeEnd].Unit != UnitUndefined {
		return definedOr(resolveValueMargin(rec.style.Margin[EdgeEnd], widthSize), 0)
	}
	v := computedEdgeValue(&rec.style.Margin, trailing[axis], valueZero)
	return definedOr(resolveValueMargin(v, widthSize), 0)
}

func nodeLeadingPadding(rec *nodeRecord, axis FlexDirection, widthSize float64) float64 {
	if flexDirectionIsRow(axis) && rec.style.Padding[EdgeStart].Unit != UnitUndefined &&
		resolveValue(rec.style.Padding[EdgeStart], widthSize) >= 0 {
		return resolveValue(rec.style.Padding[EdgeStart], widthSize)
	}
	v := computedEdgeValue(&rec.style.Padding, leading[axis], valueZero)
	return fmax(resolveValue(v, widthSize), 0)
}

func nodeTrailingPadding(rec *nodeRecord, axis FlexDirection, widthSize float64) float64 {
	if flexDirectionIsRow(axis) && rec.style.Padding[EdgeEnd].Unit != UnitUndefined &&
		resolveValue(rec.style.Padding[EdgeEnd], widthSize) >= 0 {
		return resolveValue(rec.style.Padding[EdgeEnd], widthSize)
	}
	v := computedEdgeValue(&rec.style.Padding, trailing[axis], valueZero)
	return fmax(resolveValue(v, widthSize), 0)
}

func nodeLeadingBorder(rec *nodeRecord, axis FlexDirection) float64 {
	if flexDirectionIsRow(axis) && rec.style.Border[EdgeStart].Unit != UnitUndefined &&
		rec.style.Border[EdgeStart].Value >= 0 {
		return rec.style.Border[EdgeStart].Value
	}
	return fmax(computedEdgeValue(&rec.style.Border, leading[axis], valueZero).Value, 0)
}

func nodeTrailingBorder(rec *nodeRecord, axis FlexDirection) float64 {
	if flexDirectionIsRow(axis) && rec.style.Border[EdgeEnd].Unit != UnitUndefined &&
		rec.style.Border[EdgeEnd].Value >= 0 {
		return rec.style.Border[EdgeEnd].Value
	}
	return fmax(computedEdgeValue(&rec.style.Border, trailing[axis], valueZero).Value, 0)
}

func nodeLeadingPaddingAndBorder(rec *nodeRecord, axis FlexDirection, widthSize float64) float64 {
	return nodeLeadingPadding(rec, axis, widthSize) + nodeLeadingBorder(rec, axis)
}

func nodeTrailingPaddingAndBorder(rec *nodeRecord, axis FlexDirection, widthSize float64) float64 {
	return nodeTrailingPadding(rec, axis, widthSize) + nodeTrailingBorder(rec, axis)
}

func nodeMarginForAxis(rec *nodeRecord, axis FlexDirection, widthSize float64) float64 {
	return nodeLeadingMargin(rec, axis, widthSize) + nodeTrailingMargin(rec, axis, widthSize)
}

func nodePaddingAndBorderForAxis(rec *nodeRecord, axis FlexDirection, widthSize float64) float64 {
	return nodeLeadingPaddingAndBorder(rec, axis, widthSize) +
		nodeTrailingPaddingAndBorder(rec, axis, widthSize)
}

func marginLeadingValue(rec *nodeRecord, axis FlexDirection) Value {
	if flexDirectionIsRow(axis) && rec.style.Margin[EdgeStart].Unit != UnitUndefined {
		return rec.style.Margin[EdgeStart]
	}
	return rec.style.Margin[leading[axis]]
}

func marginTrailingValue(rec *nodeRecord, axis FlexDirection) Value {
	if flexDirectionIsRow(axis) && rec.style.Margin[EdgeEnd].Unit != UnitUndefined {
		return rec.style.Margin[EdgeEnd]
	}
	return rec.style.Margin[trailing[axis]]
}

// Inset offsets (the style Position field).

func nodeIsLeadingPosDefined(rec *nodeRecord, axis FlexDirection) bool {
	if flexDirectionIsRow(axis) &&
		computedEdgeValue(&rec.style.Position, EdgeStart, valueUndefined).Unit != UnitUndefined {
		return true
	}
	return computedEdgeValue(&rec.style.Position, leading[axis], valueUndefined).Unit != UnitUndefined
}

func nodeIsTrailingPosDefined(rec *nodeRecord, axis FlexDirection) bool {
	if flexDirectionIsRow(axis) &&
		computedEdgeValue(&rec.style.Position, EdgeEnd, valueUndefined).Unit != UnitUndefined {
		return true
	}
	return computedEdgeValue(&rec.style.Position, trailing[axis], valueUndefined).Unit != UnitUndefined
}

func nodeLeadingPosition(rec *nodeRecord, axis FlexDirection, axisSize float64) float64 {
	if flexDirectionIsRow(axis) {
		if p := computedEdgeValue(&rec.style.Position, EdgeStart, valueUndefined); p.Unit != UnitUndefined {
			return definedOr(resolveValue(p, axisSize), 0)
		}
	}
	p := computedEdgeValue(&rec.style.Position, leading[axis], valueUndefined)
	if p.Unit == UnitUndefined {
		return 0
	}
	return definedOr(resolveValue(p, axisSize), 0)
}

func nodeTrailingPosition(rec *nodeRecord, axis FlexDirection, axisSize float64) float64 {
	if flexDirectionIsRow(axis) {
		if p := computedEdgeValue(&rec.style.Position, EdgeEnd, valueUndefined); p.Unit != UnitUndefined {
			return definedOr(resolveValue(p, axisSize), 0)
		}
	}
	p := computedEdgeValue(&rec.style.Position, trailing[axis], valueUndefined)
	if p.Unit == UnitUndefined {
		return 0
	}
	return definedOr(resolveValue(p, axisSize), 0)
}

// nodeRelativePosition: when both leading and trailing insets are set, the
// leading one wins; otherwise use whichever is defined.
func nodeRelativePosition(rec *nodeRecord, axis FlexDirection, axisSize float64) float64 {
	if nodeIsLeadingPosDefined(rec, axis) {
		return nodeLeadingPosition(rec, axis, axisSize)
	}
	return -nodeTrailingPosition(rec, axis, axisSize)
}

// Min/max clamping.

func nodeBoundAxisWithinMinAndMax(rec *nodeRecord, axis FlexDirection, value, axisSize float64) float64 {
	min := Undefined
	max := Undefined
	if flexDirectionIsColumn(axis) {
		min = resolveValue(rec.style.MinDimensions[DimensionHeight], axisSize)
		max = resolveValue(rec.style.MaxDimensions[DimensionHeight], axisSize)
	} else if flexDirectionIsRow(axis) {
		min = resolveValue(rec.style.MinDimensions[DimensionWidth], axisSize)
		max = resolveValue(rec.style.MaxDimensions[DimensionWidth], axisSize)
	}
	bound := value
	if !IsUndefined(max) && max >= 0 && bound > max {
		bound = max
	}
	if !IsUndefined(min) && min >= 0 && bound < min {
		bound = min
	}
	return bound
}

// nodeBoundAxis additionally keeps the value from dropping below the node's
// own padding and border.
func nodeBoundAxis(rec *nodeRecord, axis FlexDirection, value, axisSize, widthSize float64) float64 {
	return fmax(nodeBoundAxisWithinMinAndMax(rec, axis, value, axisSize),
		nodePaddingAndBorderForAxis(rec, axis, widthSize))
}

// constrainMaxSizeForMode tightens an available size and measure mode against
// the node's max dimension on an axis.
func constrainMaxSizeForMode(rec *nodeRecord, axis FlexDirection, parentAxisSize, parentWidth float64, mode *MeasureMode, size *float64) {
	maxSize := resolveValue(rec.style.MaxDimensions[dim[axis]], parentAxisSize) +
		nodeMarginForAxis(rec, axis, parentWidth)
	switch *mode {
	case MeasureModeExactly, MeasureModeAtMost:
		if !IsUndefined(maxSize) && *size >= maxSize {
			*size = maxSize
		}
	case MeasureModeUndefined:
		if !IsUndefined(maxSize) {
			*mode = MeasureModeAtMost
			*size = maxSize
		}
	}
}

// Style dimension queries.

func resolveNodeDimensions(rec *nodeRecord) {
	for d := DimensionWidth; d <= DimensionHeight; d++ {
		if rec.style.MaxDimensions[d].Unit != UnitUndefined &&
			valueEqual(rec.style.MaxDimensions[d], rec.style.MinDimensions[d]) {
			rec.resolvedDims[d] = rec.style.MaxDimensions[d]
		} else {
			rec.resolvedDims[d] = rec.style.Dimensions[d]
		}
	}
}

func nodeIsStyleDimDefined(rec *nodeRecord, axis FlexDirection, parentSize float64) bool {
	v := rec.resolvedDims[dim[axis]]
	undefined := v.Unit == UnitAuto ||
		v.Unit == UnitUndefined ||
		(v.Unit == UnitPoint && v.Value < 0) ||
		(v.Unit == UnitPercent && (v.Value < 0 || IsUndefined(parentSize)))
	return !undefined
}

func nodeIsLayoutDimDefined(rec *nodeRecord, axis FlexDirection) bool {
	v := rec.layout.measuredDimensions[dim[axis]]
	return !IsUndefined(v) && v >= 0
}

func nodeDimWithMargin(rec *nodeRecord, axis FlexDirection, widthSize float64) float64 {
	return rec.layout.measuredDimensions[dim[axis]] +
		nodeMarginForAxis(rec, axis, widthSize)
}

// Flex factor resolution. The root can neither grow nor shrink.

func resolveFlexGrow(rec *nodeRecord) float64 {
	if rec.parent == (Handle{}) {
		return 0
	}
	if !IsUndefined(rec.style.FlexGrow) {
		return rec.style.FlexGrow
	}
	return defaultFlexGrow
}

func resolveFlexShrink(rec *nodeRecord) float64 {
	if rec.parent == (Handle{}) {
		return 0
	}
	if !IsUndefined(rec.style.FlexShrink) {
		return rec.style.FlexShrink
	}
	return defaultFlexShrink
}

func resolveFlexBasis(rec *nodeRecord) Value {
	b := rec.style.FlexBasis
	if b.Unit != UnitAuto && b.Unit != UnitUndefined {
		return b
	}
	return valueAuto
}

func nodeIsFlex(rec *nodeRecord) bool {
	return rec.style.PositionType == PositionTypeRelative &&
		(resolveFlexGrow(rec) != 0 || resolveFlexShrink(rec) != 0)
}

// nodeAlignItem resolves align-self against the parent's align-items, with
// baseline demoted to flex-start on column axes.
func nodeAlignItem(parent, child *nodeRecord) Align {
	align := child.style.AlignSelf
	if align == AlignAuto {
		align = parent.style.AlignItems
	}
	if align == AlignBaseline && flexDirectionIsColumn(parent.style.FlexDirection) {
		return AlignFlexStart
	}
	return align
}

// nodeResolveDirection resolves an inherited writing direction against the
// parent's, defaulting to LTR.
func nodeResolveDirection(rec *nodeRecord, parentDirection Direction) Direction {
	if rec.style.Direction == DirectionInherit {
		if parentDirection > DirectionInherit {
			return parentDirection
		}
		return DirectionLTR
	}
	return rec.style.Direction
}
