package flex

// absoluteLayoutChild sizes and positions an out-of-flow child against its
// containing node. Explicit insets win; a child anchored on both sides of an
// axis is stretched between them; otherwise it is measured and placed
// according to the container's justify/align values.
func (a *Arena) absoluteLayoutChild(parent, child *nodeRecord, width float64, widthMode MeasureMode, height float64, direction Direction) error {
	mainAxis := resolveFlexDirection(parent.style.FlexDirection, direction)
	crossAxis := flexDirectionCross(mainAxis, direction)
	isMainAxisRow := flexDirectionIsRow(mainAxis)

	childWidth := Undefined
	childHeight := Undefined
	childWidthMeasureMode := MeasureModeUndefined
	childHeightMeasureMode := MeasureModeUndefined

	marginRow := nodeMarginForAxis(child, FlexDirectionRow, width)
	marginColumn := nodeMarginForAxis(child, FlexDirectionColumn, width)

	if nodeIsStyleDimDefined(child, FlexDirectionRow, width) {
		childWidth = resolveValue(child.resolvedDims[DimensionWidth], width) + marginRow
	} else if nodeIsLeadingPosDefined(child, FlexDirectionRow) &&
		nodeIsTrailingPosDefined(child, FlexDirectionRow) {
		// Anchored left and right: the insets fix the width.
		childWidth = parent.layout.measuredDimensions[DimensionWidth] -
			(nodeLeadingBorder(parent, FlexDirectionRow) + nodeTrailingBorder(parent, FlexDirectionRow)) -
			(nodeLeadingPosition(child, FlexDirectionRow, width) + nodeTrailingPosition(child, FlexDirectionRow, width))
		childWidth = nodeBoundAxis(child, FlexDirectionRow, childWidth, width, width)
	}

	if nodeIsStyleDimDefined(child, FlexDirectionColumn, height) {
		childHeight = resolveValue(child.resolvedDims[DimensionHeight], height) + marginColumn
	} else if nodeIsLeadingPosDefined(child, FlexDirectionColumn) &&
		nodeIsTrailingPosDefined(child, FlexDirectionColumn) {
		childHeight = parent.layout.measuredDimensions[DimensionHeight] -
			(nodeLeadingBorder(parent, FlexDirectionColumn) + nodeTrailingBorder(parent, FlexDirectionColumn)) -
			(nodeLeadingPosition(child, FlexDirectionColumn, height) + nodeTrailingPosition(child, FlexDirectionColumn, height))
		childHeight = nodeBoundAxis(child, FlexDirectionColumn, childHeight, height, width)
	}

	// A dimension still missing means the content decides it.
	if IsUndefined(childWidth) || IsUndefined(childHeight) {
		childWidthMeasureMode = MeasureModeExactly
		if IsUndefined(childWidth) {
			childWidthMeasureMode = MeasureModeUndefined
		}
		childHeightMeasureMode = MeasureModeExactly
		if IsUndefined(childHeight) {
			childHeightMeasureMode = MeasureModeUndefined
		}

		// Let text inside the child wrap to the parent's width, as browsers
		// do.
		if !isMainAxisRow && IsUndefined(childWidth) && widthMode != MeasureModeUndefined && width > 0 {
			childWidth = width
			childWidthMeasureMode = MeasureModeAtMost
		}

		if _, err := a.layoutNodeInternal(child, childWidth, childHeight, direction,
			childWidthMeasureMode, childHeightMeasureMode, childWidth, childHeight, false); err != nil {
			return err
		}
		childWidth = child.layout.measuredDimensions[DimensionWidth] +
			nodeMarginForAxis(child, FlexDirectionRow, width)
		childHeight = child.layout.measuredDimensions[DimensionHeight] +
			nodeMarginForAxis(child, FlexDirectionColumn, width)
	}

	if _, err := a.layoutNodeInternal(child, childWidth, childHeight, direction,
		MeasureModeExactly, MeasureModeExactly, childWidth, childHeight, true); err != nil {
		return err
	}

	if nodeIsTrailingPosDefined(child, mainAxis) && !nodeIsLeadingPosDefined(child, mainAxis) {
		axisSize := height
		if isMainAxisRow {
			axisSize = width
		}
		child.layout.position[leading[mainAxis]] = parent.layout.measuredDimensions[dim[mainAxis]] -
			child.layout.measuredDimensions[dim[mainAxis]] -
			nodeTrailingBorder(parent, mainAxis) -
			nodeTrailingMargin(child, mainAxis, width) -
			nodeTrailingPosition(child, mainAxis, axisSize)
	} else if !nodeIsLeadingPosDefined(child, mainAxis) && parent.style.JustifyContent == JustifyCenter {
		child.layout.position[leading[mainAxis]] = (parent.layout.measuredDimensions[dim[mainAxis]] -
			child.layout.measuredDimensions[dim[mainAxis]]) / 2
	} else if !nodeIsLeadingPosDefined(child, mainAxis) && parent.style.JustifyContent == JustifyFlexEnd {
		child.layout.position[leading[mainAxis]] = parent.layout.measuredDimensions[dim[mainAxis]] -
			child.layout.measuredDimensions[dim[mainAxis]]
	}

	if nodeIsTrailingPosDefined(child, crossAxis) && !nodeIsLeadingPosDefined(child, crossAxis) {
		axisSize := width
		if isMainAxisRow {
			axisSize = height
		}
		child.layout.position[leading[crossAxis]] = parent.layout.measuredDimensions[dim[crossAxis]] -
			child.layout.measuredDimensions[dim[crossAxis]] -
			nodeTrailingBorder(parent, crossAxis) -
			nodeTrailingMargin(child, crossAxis, width) -
			nodeTrailingPosition(child, crossAxis, axisSize)
	} else if !nodeIsLeadingPosDefined(child, crossAxis) &&
		nodeAlignItem(parent, child) == AlignCenter {
		child.layout.position[leading[crossAxis]] = (parent.layout.measuredDimensions[dim[crossAxis]] -
			child.layout.measuredDimensions[dim[crossAxis]]) / 2
	} else if !nodeIsLeadingPosDefined(child, crossAxis) &&
		((nodeAlignItem(parent, child) == AlignFlexEnd) != (parent.style.FlexWrap == WrapWrapReverse)) {
		child.layout.position[leading[crossAxis]] = parent.layout.measuredDimensions[dim[crossAxis]] -
			child.layout.measuredDimensions[dim[crossAxis]]
	}
	return nil
}
