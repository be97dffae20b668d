package flex

// setMeasuredDimensionsForMeasureFunc sizes a node through its measure
// capability. When both axes are exact there is nothing for the callback to
// decide, so it is skipped. A callback error aborts the layout pass.
func (a *Arena) setMeasuredDimensionsForMeasureFunc(rec *nodeRecord, availableWidth, availableHeight float64, widthMeasureMode, heightMeasureMode MeasureMode, parentWidth, parentHeight float64) error {
	paddingAndBorderAxisRow := nodePaddingAndBorderForAxis(rec, FlexDirectionRow, availableWidth)
	paddingAndBorderAxisColumn := nodePaddingAndBorderForAxis(rec, FlexDirectionColumn, availableWidth)
	marginAxisRow := nodeMarginForAxis(rec, FlexDirectionRow, availableWidth)
	marginAxisColumn := nodeMarginForAxis(rec, FlexDirectionColumn, availableWidth)

	// Never hand a negative available size to the callback.
	innerWidth := availableWidth
	if !IsUndefined(availableWidth) {
		innerWidth = fmax(0, availableWidth-marginAxisRow-paddingAndBorderAxisRow)
	}
	innerHeight := availableHeight
	if !IsUndefined(availableHeight) {
		innerHeight = fmax(0, availableHeight-marginAxisColumn-paddingAndBorderAxisColumn)
	}

	if widthMeasureMode == MeasureModeExactly && heightMeasureMode == MeasureModeExactly {
		rec.layout.measuredDimensions[DimensionWidth] = nodeBoundAxis(
			rec, FlexDirectionRow, availableWidth-marginAxisRow, parentWidth, parentWidth)
		rec.layout.measuredDimensions[DimensionHeight] = nodeBoundAxis(
			rec, FlexDirectionColumn, availableHeight-marginAxisColumn, parentHeight, parentWidth)
		return nil
	}

	measured, err := rec.measure(Node{arena: a, handle: rec.self},
		innerWidth, widthMeasureMode, innerHeight, heightMeasureMode)
	if err != nil {
		return &CallbackError{Handle: rec.self, Err: err}
	}

	width := availableWidth - marginAxisRow
	if widthMeasureMode == MeasureModeUndefined || widthMeasureMode == MeasureModeAtMost {
		width = measured.Width + paddingAndBorderAxisRow
	}
	rec.layout.measuredDimensions[DimensionWidth] =
		nodeBoundAxis(rec, FlexDirectionRow, width, availableWidth, availableWidth)

	height := availableHeight - marginAxisColumn
	if heightMeasureMode == MeasureModeUndefined || heightMeasureMode == MeasureModeAtMost {
		height = measured.Height + paddingAndBorderAxisColumn
	}
	rec.layout.measuredDimensions[DimensionHeight] =
		nodeBoundAxis(rec, FlexDirectionColumn, height, availableHeight, availableWidth)
	return nil
}

// setMeasuredDimensionsForEmptyContainer sizes a childless node from the
// available space, or from padding and border alone when the size is loose.
func setMeasuredDimensionsForEmptyContainer(rec *nodeRecord, availableWidth, availableHeight float64, widthMeasureMode, heightMeasureMode MeasureMode, parentWidth, parentHeight float64) {
	paddingAndBorderAxisRow := nodePaddingAndBorderForAxis(rec, FlexDirectionRow, parentWidth)
	paddingAndBorderAxisColumn := nodePaddingAndBorderForAxis(rec, FlexDirectionColumn, parentWidth)
	marginAxisRow := nodeMarginForAxis(rec, FlexDirectionRow, parentWidth)
	marginAxisColumn := nodeMarginForAxis(rec, FlexDirectionColumn, parentWidth)

	width := availableWidth - marginAxisRow
	if widthMeasureMode == MeasureModeUndefined || widthMeasureMode == MeasureModeAtMost {
		width = paddingAndBorderAxisRow
	}
	rec.layout.measuredDimensions[DimensionWidth] =
		nodeBoundAxis(rec, FlexDirectionRow, width, parentWidth, parentWidth)

	height := availableHeight - marginAxisColumn
	if heightMeasureMode == MeasureModeUndefined || heightMeasureMode == MeasureModeAtMost {
		height = paddingAndBorderAxisColumn
	}
	rec.layout.measuredDimensions[DimensionHeight] =
		nodeBoundAxis(rec, FlexDirectionColumn, height, parentHeight, parentWidth)
}

// setMeasuredDimensionsIfFixedSize handles the measure-only fast path where
// the node's size is already pinned by the constraints.
func setMeasuredDimensionsIfFixedSize(rec *nodeRecord, availableWidth, availableHeight float64, widthMeasureMode, heightMeasureMode MeasureMode, parentWidth, parentHeight float64) bool {
	if !((widthMeasureMode == MeasureModeAtMost && availableWidth <= 0) ||
		(heightMeasureMode == MeasureModeAtMost && availableHeight <= 0) ||
		(widthMeasureMode == MeasureModeExactly && heightMeasureMode == MeasureModeExactly)) {
		return false
	}
	marginAxisRow := nodeMarginForAxis(rec, FlexDirectionRow, parentWidth)
	marginAxisColumn := nodeMarginForAxis(rec, FlexDirectionColumn, parentWidth)

	width := availableWidth - marginAxisRow
	if IsUndefined(availableWidth) || (widthMeasureMode == MeasureModeAtMost && availableWidth < 0) {
		width = 0
	}
	rec.layout.measuredDimensions[DimensionWidth] =
		nodeBoundAxis(rec, FlexDirectionRow, width, parentWidth, parentWidth)

	height := availableHeight - marginAxisColumn
	if IsUndefined(availableHeight) || (heightMeasureMode == MeasureModeAtMost && availableHeight < 0) {
		height = 0
	}
	rec.layout.measuredDimensions[DimensionHeight] =
		nodeBoundAxis(rec, FlexDirectionColumn, height, parentHeight, parentWidth)
	return true
}

// zeroOutLayoutRecursively erases the computed layout of a display:none
// subtree so stale boxes are never painted.
func (a *Arena) zeroOutLayoutRecursively(rec *nodeRecord) {
	rec.layout.dimensions = [2]float64{0, 0}
	rec.layout.position = [4]float64{}
	rec.layout.measuredDimensions = [2]float64{0, 0}
	rec.layout.cachedLayout = cachedMeasurement{
		widthMeasureMode:  MeasureModeExactly,
		heightMeasureMode: MeasureModeExactly,
	}
	for _, h := range rec.children {
		if child, err := a.resolve(h); err == nil {
			a.zeroOutLayoutRecursively(child)
		}
	}
}
