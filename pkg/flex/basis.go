package flex

// nodeSetPosition applies relative-position insets and margins to a node's
// working position on both axes.
func nodeSetPosition(rec *nodeRecord, direction Direction, mainSize, crossSize, parentWidth float64) {
	// Roots are positioned as LTR so offsets never go negative.
	directionRespectingRoot := DirectionLTR
	if rec.parent != (Handle{}) {
		directionRespectingRoot = direction
	}
	mainAxis := resolveFlexDirection(rec.style.FlexDirection, directionRespectingRoot)
	crossAxis := flexDirectionCross(mainAxis, directionRespectingRoot)

	relMain := nodeRelativePosition(rec, mainAxis, mainSize)
	relCross := nodeRelativePosition(rec, crossAxis, crossSize)

	p := &rec.layout.position
	p[leading[mainAxis]] = nodeLeadingMargin(rec, mainAxis, parentWidth) + relMain
	p[trailing[mainAxis]] = nodeTrailingMargin(rec, mainAxis, parentWidth) + relMain
	p[leading[crossAxis]] = nodeLeadingMargin(rec, crossAxis, parentWidth) + relCross
	p[trailing[crossAxis]] = nodeTrailingMargin(rec, crossAxis, parentWidth) + relCross
}

// nodeSetChildTrailingPosition converts a leading position into the trailing
// coordinate used by reverse axes.
func nodeSetChildTrailingPosition(parent, child *nodeRecord, axis FlexDirection) {
	size := child.layout.measuredDimensions[dim[axis]]
	child.layout.position[trailing[axis]] =
		parent.layout.measuredDimensions[dim[axis]] - size - child.layout.position[pos[axis]]
}

// computeFlexBasisForChild resolves a child's flex basis: an explicit basis
// or definite main-axis dimension is used directly; otherwise the child is
// measured for its content size.
func (a *Arena) computeFlexBasisForChild(parent, child *nodeRecord,
	width float64, widthMode MeasureMode, height, parentWidth, parentHeight float64,
	heightMode MeasureMode, direction Direction) error {

	mainAxis := resolveFlexDirection(parent.style.FlexDirection, direction)
	isMainAxisRow := flexDirectionIsRow(mainAxis)
	mainAxisSize := height
	mainAxisParentSize := parentHeight
	if isMainAxisRow {
		mainAxisSize = width
		mainAxisParentSize = parentWidth
	}

	resolvedFlexBasis := resolveValue(resolveFlexBasis(child), mainAxisParentSize)
	isRowStyleDimDefined := nodeIsStyleDimDefined(child, FlexDirectionRow, parentWidth)
	isColumnStyleDimDefined := nodeIsStyleDimDefined(child, FlexDirectionColumn, parentHeight)

	switch {
	case !IsUndefined(resolvedFlexBasis) && !IsUndefined(mainAxisSize):
		// A basis carried over from an earlier pass may have been resolved
		// against a different parent size; recompute once per generation.
		if IsUndefined(child.layout.computedFlexBasis) ||
			child.layout.computedFlexBasisGeneration != a.generation {
			child.layout.computedFlexBasis =
				fmax(resolvedFlexBasis, nodePaddingAndBorderForAxis(child, mainAxis, parentWidth))
		}
	case isMainAxisRow && isRowStyleDimDefined:
		// Definite width: use it as the basis.
		child.layout.computedFlexBasis =
			fmax(resolveValue(child.resolvedDims[DimensionWidth], parentWidth),
				nodePaddingAndBorderForAxis(child, FlexDirectionRow, parentWidth))
	case !isMainAxisRow && isColumnStyleDimDefined:
		// Definite height: use it as the basis.
		child.layout.computedFlexBasis =
			fmax(resolveValue(child.resolvedDims[DimensionHeight], parentHeight),
				nodePaddingAndBorderForAxis(child, FlexDirectionColumn, parentWidth))
	default:
		// No definite basis: measure the child's content under the current
		// constraints and use its hypothetical main size.
		childWidth := Undefined
		childHeight := Undefined
		childWidthMeasureMode := MeasureModeUndefined
		childHeightMeasureMode := MeasureModeUndefined

		marginRow := nodeMarginForAxis(child, FlexDirectionRow, parentWidth)
		marginColumn := nodeMarginForAxis(child, FlexDirectionColumn, parentWidth)

		if isRowStyleDimDefined {
			childWidth = resolveValue(child.resolvedDims[DimensionWidth], parentWidth) + marginRow
			childWidthMeasureMode = MeasureModeExactly
		}
		if isColumnStyleDimDefined {
			childHeight = resolveValue(child.resolvedDims[DimensionHeight], parentHeight) + marginColumn
			childHeightMeasureMode = MeasureModeExactly
		}

		// Browsers let content in a non-scrolling container size itself
		// against the available space.
		if (!isMainAxisRow && parent.style.Overflow == OverflowScroll) ||
			parent.style.Overflow != OverflowScroll {
			if IsUndefined(childWidth) && !IsUndefined(width) {
				childWidth = width
				childWidthMeasureMode = MeasureModeAtMost
			}
		}
		if (isMainAxisRow && parent.style.Overflow == OverflowScroll) ||
			parent.style.Overflow != OverflowScroll {
			if IsUndefined(childHeight) && !IsUndefined(height) {
				childHeight = height
				childHeightMeasureMode = MeasureModeAtMost
			}
		}

		// A stretched child with no definite cross size is measured exactly
		// at the container's inner cross size.
		if !isMainAxisRow && !IsUndefined(width) && !isRowStyleDimDefined &&
			widthMode == MeasureModeExactly && nodeAlignItem(parent, child) == AlignStretch {
			childWidth = width
			childWidthMeasureMode = MeasureModeExactly
		}
		if isMainAxisRow && !IsUndefined(height) && !isColumnStyleDimDefined &&
			heightMode == MeasureModeExactly && nodeAlignItem(parent, child) == AlignStretch {
			childHeight = height
			childHeightMeasureMode = MeasureModeExactly
		}

		constrainMaxSizeForMode(child, FlexDirectionRow, parentWidth, parentWidth,
			&childWidthMeasureMode, &childWidth)
		constrainMaxSizeForMode(child, FlexDirectionColumn, parentHeight, parentWidth,
			&childHeightMeasureMode, &childHeight)

		if _, err := a.layoutNodeInternal(child, childWidth, childHeight, direction,
			childWidthMeasureMode, childHeightMeasureMode, parentWidth, parentHeight, false); err != nil {
			return err
		}

		child.layout.computedFlexBasis =
			fmax(child.layout.measuredDimensions[dim[mainAxis]],
				nodePaddingAndBorderForAxis(child, mainAxis, parentWidth))
	}

	child.layout.computedFlexBasisGeneration = a.generation
	return nil
}
