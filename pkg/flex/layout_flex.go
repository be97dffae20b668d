package flex

// flexItem is one in-flow child being resolved on a line. basis is the raw
// flex basis before min/max clamping; target converges on the final
// main-axis size.
type flexItem struct {
	rec    *nodeRecord
	basis  float64
	target float64
	frozen bool
}

// resolveFlexibleLengths distributes remainingFreeSpace across the line's
// items by flex-grow (positive space) or by flex-shrink scaled by basis
// (negative space). remainingFreeSpace must be measured against the raw,
// unclamped bases; min/max constraints enter only through nodeBoundAxis.
// Items whose constraints clamp the proposed size are frozen at the clamped
// size and the remainder is redistributed among the rest. Items are
// reconsidered in child index order on every pass; this
// order is part of the engine's contract. Each pass must freeze at least one
// item or the distribution is final, so the pass count is bounded; exceeding
// the cap means the constraints are inconsistent.
func resolveFlexibleLengths(items []flexItem, mainAxis FlexDirection, availableInnerMainDim, availableInnerWidth, remainingFreeSpace float64) (float64, error) {
	maxPasses := len(items) + 2
	for pass := 0; ; pass++ {
		if pass >= maxPasses {
			return 0, ErrNotConverged
		}

		free := remainingFreeSpace
		for i := range items {
			if items[i].frozen {
				free -= items[i].target - items[i].basis
			}
		}

		var totalGrow, totalShrinkScaled float64
		for i := range items {
			if items[i].frozen {
				continue
			}
			totalGrow += resolveFlexGrow(items[i].rec)
			totalShrinkScaled += -resolveFlexShrink(items[i].rec) * items[i].basis
		}
		// A grow sum below one only claims its fraction of the free space.
		if totalGrow > 0 && totalGrow < 1 {
			totalGrow = 1
		}

		newlyFrozen := 0
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			raw := it.basis
			if free < 0 {
				scaled := -resolveFlexShrink(it.rec) * it.basis
				if scaled != 0 && totalShrinkScaled != 0 {
					raw = it.basis + free/totalShrinkScaled*scaled
				}
			} else if free > 0 {
				grow := resolveFlexGrow(it.rec)
				if grow != 0 && totalGrow != 0 {
					raw = it.basis + free/totalGrow*grow
				}
			}
			bound := nodeBoundAxis(it.rec, mainAxis, raw, availableInnerMainDim, availableInnerWidth)
			it.target = bound
			if !floatsEqual(bound, raw) {
				it.frozen = true
				newlyFrozen++
			}
		}

		if newlyFrozen == 0 {
			for i := range items {
				remainingFreeSpace -= items[i].target - items[i].basis
			}
			return remainingFreeSpace, nil
		}
	}
}

// layoutImpl computes the measured dimensions of a node, and when
// performLayout is set, the positions of its children. It works on the
// node's scratch layout only; committed output is written after the whole
// pass succeeds. The structure follows the flexbox resolution order:
// flex basis per child, line collection, flexible length resolution,
// main-axis justification, cross-axis alignment, multi-line content
// alignment, then absolutely positioned children.
func (a *Arena) layoutImpl(rec *nodeRecord, availableWidth, availableHeight float64,
	parentDirection Direction, widthMeasureMode, heightMeasureMode MeasureMode,
	parentWidth, parentHeight float64, performLayout bool) error {

	direction := nodeResolveDirection(rec, parentDirection)
	rec.layout.direction = direction

	flexRowDirection := resolveFlexDirection(FlexDirectionRow, direction)
	flexColumnDirection := resolveFlexDirection(FlexDirectionColumn, direction)

	rec.layout.margin[leading[flexRowDirection]] = nodeLeadingMargin(rec, flexRowDirection, parentWidth)
	rec.layout.margin[trailing[flexRowDirection]] = nodeTrailingMargin(rec, flexRowDirection, parentWidth)
	rec.layout.margin[leading[flexColumnDirection]] = nodeLeadingMargin(rec, flexColumnDirection, parentWidth)
	rec.layout.margin[trailing[flexColumnDirection]] = nodeTrailingMargin(rec, flexColumnDirection, parentWidth)

	rec.layout.border[leading[flexRowDirection]] = nodeLeadingBorder(rec, flexRowDirection)
	rec.layout.border[trailing[flexRowDirection]] = nodeTrailingBorder(rec, flexRowDirection)
	rec.layout.border[leading[flexColumnDirection]] = nodeLeadingBorder(rec, flexColumnDirection)
	rec.layout.border[trailing[flexColumnDirection]] = nodeTrailingBorder(rec, flexColumnDirection)

	rec.layout.padding[leading[flexRowDirection]] = nodeLeadingPadding(rec, flexRowDirection, parentWidth)
	rec.layout.padding[trailing[flexRowDirection]] = nodeTrailingPadding(rec, flexRowDirection, parentWidth)
	rec.layout.padding[leading[flexColumnDirection]] = nodeLeadingPadding(rec, flexColumnDirection, parentWidth)
	rec.layout.padding[trailing[flexColumnDirection]] = nodeTrailingPadding(rec, flexColumnDirection, parentWidth)

	if rec.measure != nil {
		return a.setMeasuredDimensionsForMeasureFunc(rec, availableWidth, availableHeight,
			widthMeasureMode, heightMeasureMode, parentWidth, parentHeight)
	}

	childCount := len(rec.children)
	if childCount == 0 {
		setMeasuredDimensionsForEmptyContainer(rec, availableWidth, availableHeight,
			widthMeasureMode, heightMeasureMode, parentWidth, parentHeight)
		return nil
	}

	if !performLayout && setMeasuredDimensionsIfFixedSize(rec, availableWidth, availableHeight,
		widthMeasureMode, heightMeasureMode, parentWidth, parentHeight) {
		return nil
	}

	rec.layout.hadOverflow = false

	childRecs := make([]*nodeRecord, childCount)
	for i, h := range rec.children {
		child, err := a.resolve(h)
		if err != nil {
			return err
		}
		childRecs[i] = child
	}

	// STEP 1: axis bookkeeping.
	mainAxis := resolveFlexDirection(rec.style.FlexDirection, direction)
	crossAxis := flexDirectionCross(mainAxis, direction)
	isMainAxisRow := flexDirectionIsRow(mainAxis)
	justifyContent := rec.style.JustifyContent
	isNodeFlexWrap := rec.style.FlexWrap != WrapNoWrap

	mainAxisParentSize := parentHeight
	crossAxisParentSize := parentWidth
	if isMainAxisRow {
		mainAxisParentSize = parentWidth
		crossAxisParentSize = parentHeight
	}

	var absoluteChildren []*nodeRecord

	leadingPaddingAndBorderMain := nodeLeadingPaddingAndBorder(rec, mainAxis, parentWidth)
	trailingPaddingAndBorderMain := nodeTrailingPaddingAndBorder(rec, mainAxis, parentWidth)
	leadingPaddingAndBorderCross := nodeLeadingPaddingAndBorder(rec, crossAxis, parentWidth)
	paddingAndBorderAxisMain := nodePaddingAndBorderForAxis(rec, mainAxis, parentWidth)
	paddingAndBorderAxisCross := nodePaddingAndBorderForAxis(rec, crossAxis, parentWidth)

	measureModeMainDim := heightMeasureMode
	measureModeCrossDim := widthMeasureMode
	if isMainAxisRow {
		measureModeMainDim = widthMeasureMode
		measureModeCrossDim = heightMeasureMode
	}

	paddingAndBorderAxisRow := paddingAndBorderAxisCross
	paddingAndBorderAxisColumn := paddingAndBorderAxisMain
	if isMainAxisRow {
		paddingAndBorderAxisRow = paddingAndBorderAxisMain
		paddingAndBorderAxisColumn = paddingAndBorderAxisCross
	}

	marginAxisRow := nodeMarginForAxis(rec, FlexDirectionRow, parentWidth)
	marginAxisColumn := nodeMarginForAxis(rec, FlexDirectionColumn, parentWidth)

	// STEP 2: available inner size on both axes.
	minInnerWidth := resolveValue(rec.style.MinDimensions[DimensionWidth], parentWidth) -
		marginAxisRow - paddingAndBorderAxisRow
	maxInnerWidth := resolveValue(rec.style.MaxDimensions[DimensionWidth], parentWidth) -
		marginAxisRow - paddingAndBorderAxisRow
	minInnerHeight := resolveValue(rec.style.MinDimensions[DimensionHeight], parentHeight) -
		marginAxisColumn - paddingAndBorderAxisColumn
	maxInnerHeight := resolveValue(rec.style.MaxDimensions[DimensionHeight], parentHeight) -
		marginAxisColumn - paddingAndBorderAxisColumn

	minInnerMainDim := minInnerHeight
	maxInnerMainDim := maxInnerHeight
	if isMainAxisRow {
		minInnerMainDim = minInnerWidth
		maxInnerMainDim = maxInnerWidth
	}

	availableInnerWidth := availableWidth - marginAxisRow - paddingAndBorderAxisRow
	if !IsUndefined(availableInnerWidth) {
		availableInnerWidth = fmax(fmin(availableInnerWidth, maxInnerWidth), minInnerWidth)
	}
	availableInnerHeight := availableHeight - marginAxisColumn - paddingAndBorderAxisColumn
	if !IsUndefined(availableInnerHeight) {
		availableInnerHeight = fmax(fmin(availableInnerHeight, maxInnerHeight), minInnerHeight)
	}

	availableInnerMainDim := availableInnerHeight
	availableInnerCrossDim := availableInnerWidth
	if isMainAxisRow {
		availableInnerMainDim = availableInnerWidth
		availableInnerCrossDim = availableInnerHeight
	}

	// A single flexible child under an exact main size will absorb whatever
	// space remains, so its basis can be forced to zero without measuring.
	var singleFlexChild *nodeRecord
	if measureModeMainDim == MeasureModeExactly {
		for _, child := range childRecs {
			if singleFlexChild != nil {
				if nodeIsFlex(child) {
					singleFlexChild = nil
					break
				}
			} else if resolveFlexGrow(child) > 0 && resolveFlexShrink(child) > 0 {
				singleFlexChild = child
			}
		}
	}

	var totalOuterFlexBasis float64

	// STEP 3: flex basis per child.
	for _, child := range childRecs {
		if child.style.Display == DisplayNone {
			a.zeroOutLayoutRecursively(child)
			child.hasNewLayout = true
			child.isDirty = false
			continue
		}
		resolveNodeDimensions(child)
		if performLayout {
			childDirection := nodeResolveDirection(child, direction)
			nodeSetPosition(child, childDirection, availableInnerMainDim,
				availableInnerCrossDim, availableInnerWidth)
		}

		if child.style.PositionType == PositionTypeAbsolute {
			absoluteChildren = append(absoluteChildren, child)
			continue
		}
		if child == singleFlexChild {
			child.layout.computedFlexBasisGeneration = a.generation
			child.layout.computedFlexBasis = 0
		} else {
			if err := a.computeFlexBasisForChild(rec, child, availableInnerWidth, widthMeasureMode,
				availableInnerHeight, availableInnerWidth, availableInnerHeight,
				heightMeasureMode, direction); err != nil {
				return err
			}
		}
		totalOuterFlexBasis += child.layout.computedFlexBasis +
			nodeMarginForAxis(child, mainAxis, availableInnerWidth)
	}

	flexBasisOverflows := totalOuterFlexBasis > availableInnerMainDim
	if measureModeMainDim == MeasureModeUndefined {
		flexBasisOverflows = false
	}
	if isNodeFlexWrap && flexBasisOverflows && measureModeMainDim == MeasureModeAtMost {
		measureModeMainDim = MeasureModeExactly
	}

	// STEP 4: collect children into lines, then resolve each line.
	startOfLineIndex := 0
	endOfLineIndex := 0
	lineCount := 0
	var totalLineCrossDim float64
	var maxLineMainDim float64

	for endOfLineIndex < childCount {
		itemsOnLine := 0
		var sizeConsumedOnCurrentLine float64
		// Line breaking reserves space for min-lifted items, but the flex
		// resolver works from the raw bases; this tracks the difference.
		var basisClampDelta float64
		lineItems := make([]flexItem, 0, childCount-startOfLineIndex)

		// Greedy packing: a child that would overflow the line starts the
		// next one, but the first child of a line is always placed.
		for i := startOfLineIndex; i < childCount; i++ {
			child := childRecs[i]
			if child.style.Display == DisplayNone {
				endOfLineIndex++
				continue
			}
			child.lineIndex = lineCount

			if child.style.PositionType != PositionTypeAbsolute {
				childMarginMainAxis := nodeMarginForAxis(child, mainAxis, availableInnerWidth)
				basisWithMax := fmin(resolveValue(child.style.MaxDimensions[dim[mainAxis]], mainAxisParentSize),
					child.layout.computedFlexBasis)
				basisWithMinAndMax := fmax(resolveValue(child.style.MinDimensions[dim[mainAxis]], mainAxisParentSize),
					basisWithMax)

				if sizeConsumedOnCurrentLine+basisWithMinAndMax+childMarginMainAxis > availableInnerMainDim &&
					isNodeFlexWrap && itemsOnLine > 0 {
					break
				}

				sizeConsumedOnCurrentLine += basisWithMinAndMax + childMarginMainAxis
				basisClampDelta += basisWithMinAndMax - child.layout.computedFlexBasis
				itemsOnLine++
				lineItems = append(lineItems, flexItem{
					rec:    child,
					basis:  child.layout.computedFlexBasis,
					target: child.layout.computedFlexBasis,
				})
			}
			endOfLineIndex++
		}

		canSkipFlex := !performLayout && measureModeCrossDim == MeasureModeExactly

		var leadingMainDim float64
		var betweenMainDim float64

		// STEP 5: resolve flexible lengths on the main axis.
		if measureModeMainDim != MeasureModeExactly {
			if !IsUndefined(minInnerMainDim) && sizeConsumedOnCurrentLine < minInnerMainDim {
				availableInnerMainDim = minInnerMainDim
			} else if !IsUndefined(maxInnerMainDim) && sizeConsumedOnCurrentLine > maxInnerMainDim {
				availableInnerMainDim = maxInnerMainDim
			} else {
				var totalGrow float64
				for i := range lineItems {
					totalGrow += resolveFlexGrow(lineItems[i].rec)
				}
				if totalGrow == 0 || resolveFlexGrow(rec) == 0 {
					// Nothing can flex: the space consumed is the space
					// needed.
					availableInnerMainDim = sizeConsumedOnCurrentLine
				}
			}
		}

		var remainingFreeSpace float64
		if !IsUndefined(availableInnerMainDim) {
			remainingFreeSpace = availableInnerMainDim - sizeConsumedOnCurrentLine
		} else if sizeConsumedOnCurrentLine < 0 {
			remainingFreeSpace = -sizeConsumedOnCurrentLine
		}

		if !canSkipFlex {
			var err error
			remainingFreeSpace, err = resolveFlexibleLengths(lineItems, mainAxis,
				availableInnerMainDim, availableInnerWidth, remainingFreeSpace+basisClampDelta)
			if err != nil {
				return err
			}

			// Lay each item out at its resolved main size, deciding the
			// cross-axis constraint as we go.
			for i := range lineItems {
				child := lineItems[i].rec
				marginMain := nodeMarginForAxis(child, mainAxis, availableInnerWidth)
				marginCross := nodeMarginForAxis(child, crossAxis, availableInnerWidth)

				childMainSize := lineItems[i].target + marginMain
				childMainMeasureMode := MeasureModeExactly

				var childCrossSize float64
				var childCrossMeasureMode MeasureMode

				if !IsUndefined(availableInnerCrossDim) &&
					!nodeIsStyleDimDefined(child, crossAxis, availableInnerCrossDim) &&
					measureModeCrossDim == MeasureModeExactly &&
					!(isNodeFlexWrap && flexBasisOverflows) &&
					nodeAlignItem(rec, child) == AlignStretch {
					childCrossSize = availableInnerCrossDim
					childCrossMeasureMode = MeasureModeExactly
				} else if !nodeIsStyleDimDefined(child, crossAxis, availableInnerCrossDim) {
					childCrossSize = availableInnerCrossDim
					childCrossMeasureMode = MeasureModeAtMost
					if IsUndefined(childCrossSize) {
						childCrossMeasureMode = MeasureModeUndefined
					}
				} else {
					childCrossSize = resolveValue(child.resolvedDims[dim[crossAxis]], availableInnerCrossDim) + marginCross
					loosePercent := child.resolvedDims[dim[crossAxis]].Unit == UnitPercent &&
						measureModeCrossDim != MeasureModeExactly
					childCrossMeasureMode = MeasureModeExactly
					if IsUndefined(childCrossSize) || loosePercent {
						childCrossMeasureMode = MeasureModeUndefined
					}
				}

				constrainMaxSizeForMode(child, mainAxis, availableInnerMainDim,
					availableInnerWidth, &childMainMeasureMode, &childMainSize)
				constrainMaxSizeForMode(child, crossAxis, availableInnerCrossDim,
					availableInnerWidth, &childCrossMeasureMode, &childCrossSize)

				requiresStretchLayout := !nodeIsStyleDimDefined(child, crossAxis, availableInnerCrossDim) &&
					nodeAlignItem(rec, child) == AlignStretch

				childWidth := childCrossSize
				childHeight := childCrossSize
				childWidthMeasureMode := childCrossMeasureMode
				childHeightMeasureMode := childCrossMeasureMode
				if isMainAxisRow {
					childWidth = childMainSize
					childWidthMeasureMode = childMainMeasureMode
				} else {
					childHeight = childMainSize
					childHeightMeasureMode = childMainMeasureMode
				}

				if _, err := a.layoutNodeInternal(child, childWidth, childHeight, direction,
					childWidthMeasureMode, childHeightMeasureMode,
					availableInnerWidth, availableInnerHeight,
					performLayout && !requiresStretchLayout); err != nil {
					return err
				}
				if child.layout.hadOverflow {
					rec.layout.hadOverflow = true
				}
			}
		}

		if remainingFreeSpace < 0 {
			rec.layout.hadOverflow = true
		}

		// STEP 6: main-axis justification.
		if measureModeMainDim == MeasureModeAtMost && remainingFreeSpace > 0 {
			if rec.style.MinDimensions[dim[mainAxis]].Unit != UnitUndefined &&
				resolveValue(rec.style.MinDimensions[dim[mainAxis]], mainAxisParentSize) >= 0 {
				remainingFreeSpace = fmax(0,
					resolveValue(rec.style.MinDimensions[dim[mainAxis]], mainAxisParentSize)-
						(availableInnerMainDim-remainingFreeSpace))
			} else {
				remainingFreeSpace = 0
			}
		}

		numberOfAutoMarginsOnCurrentLine := 0
		for i := startOfLineIndex; i < endOfLineIndex; i++ {
			child := childRecs[i]
			if child.style.PositionType == PositionTypeRelative {
				if marginLeadingValue(child, mainAxis).Unit == UnitAuto {
					numberOfAutoMarginsOnCurrentLine++
				}
				if marginTrailingValue(child, mainAxis).Unit == UnitAuto {
					numberOfAutoMarginsOnCurrentLine++
				}
			}
		}

		if numberOfAutoMarginsOnCurrentLine == 0 {
			switch justifyContent {
			case JustifyCenter:
				leadingMainDim = remainingFreeSpace / 2
			case JustifyFlexEnd:
				leadingMainDim = remainingFreeSpace
			case JustifySpaceBetween:
				if itemsOnLine > 1 {
					betweenMainDim = fmax(remainingFreeSpace, 0) / float64(itemsOnLine-1)
				}
			case JustifySpaceAround:
				betweenMainDim = remainingFreeSpace / float64(itemsOnLine)
				leadingMainDim = betweenMainDim / 2
			case JustifyFlexStart:
			}
		}

		mainDim := leadingPaddingAndBorderMain + leadingMainDim
		var crossDim float64

		for i := startOfLineIndex; i < endOfLineIndex; i++ {
			child := childRecs[i]
			if child.style.Display == DisplayNone {
				continue
			}
			if child.style.PositionType == PositionTypeAbsolute &&
				nodeIsLeadingPosDefined(child, mainAxis) {
				if performLayout {
					child.layout.position[pos[mainAxis]] =
						nodeLeadingPosition(child, mainAxis, availableInnerMainDim) +
							nodeLeadingBorder(rec, mainAxis) +
							nodeLeadingMargin(child, mainAxis, availableInnerWidth)
				}
				continue
			}
			if child.style.PositionType == PositionTypeRelative {
				if marginLeadingValue(child, mainAxis).Unit == UnitAuto {
					mainDim += remainingFreeSpace / float64(numberOfAutoMarginsOnCurrentLine)
				}
				if performLayout {
					child.layout.position[pos[mainAxis]] += mainDim
				}
				if marginTrailingValue(child, mainAxis).Unit == UnitAuto {
					mainDim += remainingFreeSpace / float64(numberOfAutoMarginsOnCurrentLine)
				}
				if canSkipFlex {
					// The items were never measured, so advance by basis.
					mainDim += betweenMainDim +
						nodeMarginForAxis(child, mainAxis, availableInnerWidth) +
						child.layout.computedFlexBasis
					crossDim = availableInnerCrossDim
				} else {
					mainDim += betweenMainDim + nodeDimWithMargin(child, mainAxis, availableInnerWidth)
					crossDim = fmax(crossDim, nodeDimWithMargin(child, crossAxis, availableInnerWidth))
				}
			} else if performLayout {
				child.layout.position[pos[mainAxis]] +=
					nodeLeadingBorder(rec, mainAxis) + leadingMainDim
			}
		}

		mainDim += trailingPaddingAndBorderMain

		containerCrossAxis := availableInnerCrossDim
		if measureModeCrossDim == MeasureModeUndefined || measureModeCrossDim == MeasureModeAtMost {
			containerCrossAxis = nodeBoundAxis(rec, crossAxis,
				crossDim+paddingAndBorderAxisCross, crossAxisParentSize, parentWidth) -
				paddingAndBorderAxisCross
		}

		if !isNodeFlexWrap && measureModeCrossDim == MeasureModeExactly {
			crossDim = availableInnerCrossDim
		}

		crossDim = nodeBoundAxis(rec, crossAxis,
			crossDim+paddingAndBorderAxisCross, crossAxisParentSize, parentWidth) -
			paddingAndBorderAxisCross

		// STEP 7: cross-axis alignment within the line.
		if performLayout {
			for i := startOfLineIndex; i < endOfLineIndex; i++ {
				child := childRecs[i]
				if child.style.Display == DisplayNone {
					continue
				}
				if child.style.PositionType == PositionTypeAbsolute {
					if nodeIsLeadingPosDefined(child, crossAxis) {
						child.layout.position[pos[crossAxis]] =
							nodeLeadingPosition(child, crossAxis, availableInnerCrossDim) +
								nodeLeadingBorder(rec, crossAxis) +
								nodeLeadingMargin(child, crossAxis, availableInnerWidth)
					} else {
						child.layout.position[pos[crossAxis]] =
							nodeLeadingBorder(rec, crossAxis) +
								nodeLeadingMargin(child, crossAxis, availableInnerWidth)
					}
					continue
				}

				leadingCrossDim := leadingPaddingAndBorderCross
				alignItem := nodeAlignItem(rec, child)

				if alignItem == AlignStretch &&
					marginLeadingValue(child, crossAxis).Unit != UnitAuto &&
					marginTrailingValue(child, crossAxis).Unit != UnitAuto {
					// Stretch needs one more layout at the line's cross size
					// unless the child already has a definite cross size.
					if !nodeIsStyleDimDefined(child, crossAxis, availableInnerCrossDim) {
						childMainSize := child.layout.measuredDimensions[dim[mainAxis]] +
							nodeMarginForAxis(child, mainAxis, availableInnerWidth)
						childCrossSize := crossDim

						childMainMeasureMode := MeasureModeExactly
						childCrossMeasureMode := MeasureModeExactly
						constrainMaxSizeForMode(child, mainAxis, availableInnerMainDim,
							availableInnerWidth, &childMainMeasureMode, &childMainSize)
						constrainMaxSizeForMode(child, crossAxis, availableInnerCrossDim,
							availableInnerWidth, &childCrossMeasureMode, &childCrossSize)

						childWidth := childCrossSize
						childHeight := childCrossSize
						if isMainAxisRow {
							childWidth = childMainSize
						} else {
							childHeight = childMainSize
						}

						childWidthMeasureMode := MeasureModeExactly
						if IsUndefined(childWidth) {
							childWidthMeasureMode = MeasureModeUndefined
						}
						childHeightMeasureMode := MeasureModeExactly
						if IsUndefined(childHeight) {
							childHeightMeasureMode = MeasureModeUndefined
						}

						if _, err := a.layoutNodeInternal(child, childWidth, childHeight, direction,
							childWidthMeasureMode, childHeightMeasureMode,
							availableInnerWidth, availableInnerHeight, true); err != nil {
							return err
						}
					}
				} else {
					remainingCrossDim := containerCrossAxis -
						nodeDimWithMargin(child, crossAxis, availableInnerWidth)

					if marginLeadingValue(child, crossAxis).Unit == UnitAuto &&
						marginTrailingValue(child, crossAxis).Unit == UnitAuto {
						leadingCrossDim += fmax(0, remainingCrossDim/2)
					} else if marginTrailingValue(child, crossAxis).Unit == UnitAuto {
						// Trailing auto margin absorbs the space after the
						// child; nothing to add here.
					} else if marginLeadingValue(child, crossAxis).Unit == UnitAuto {
						leadingCrossDim += fmax(0, remainingCrossDim)
					} else if alignItem == AlignFlexStart {
						// Already at the line start.
					} else if alignItem == AlignCenter {
						leadingCrossDim += remainingCrossDim / 2
					} else {
						leadingCrossDim += remainingCrossDim
					}
				}
				child.layout.position[pos[crossAxis]] += totalLineCrossDim + leadingCrossDim
			}
		}

		totalLineCrossDim += crossDim
		maxLineMainDim = fmax(maxLineMainDim, mainDim)
		lineCount++
		startOfLineIndex = endOfLineIndex
	}

	// STEP 8: multi-line content alignment and baseline placement.
	if performLayout && (lineCount > 1 || a.isBaselineLayout(rec)) &&
		!IsUndefined(availableInnerCrossDim) {
		remainingAlignContentDim := availableInnerCrossDim - totalLineCrossDim

		var crossDimLead float64
		currentLead := leadingPaddingAndBorderCross

		switch rec.style.AlignContent {
		case AlignFlexEnd:
			currentLead += remainingAlignContentDim
		case AlignCenter:
			currentLead += remainingAlignContentDim / 2
		case AlignStretch:
			if availableInnerCrossDim > totalLineCrossDim {
				crossDimLead = remainingAlignContentDim / float64(lineCount)
			}
		case AlignSpaceAround:
			if availableInnerCrossDim > totalLineCrossDim {
				currentLead += remainingAlignContentDim / float64(2*lineCount)
				if lineCount > 1 {
					crossDimLead = remainingAlignContentDim / float64(lineCount)
				}
			} else {
				currentLead += remainingAlignContentDim / 2
			}
		case AlignSpaceBetween:
			if availableInnerCrossDim > totalLineCrossDim && lineCount > 1 {
				crossDimLead = remainingAlignContentDim / float64(lineCount-1)
			}
		}

		endIndex := 0
		for i := 0; i < lineCount; i++ {
			startIndex := endIndex
			var ii int

			var lineHeight float64
			var maxAscentForCurrentLine float64
			var maxDescentForCurrentLine float64
			for ii = startIndex; ii < childCount; ii++ {
				child := childRecs[ii]
				if child.style.Display == DisplayNone {
					continue
				}
				if child.style.PositionType != PositionTypeRelative {
					continue
				}
				if child.lineIndex != i {
					break
				}
				if nodeIsLayoutDimDefined(child, crossAxis) {
					lineHeight = fmax(lineHeight,
						child.layout.measuredDimensions[dim[crossAxis]]+
							nodeMarginForAxis(child, crossAxis, availableInnerWidth))
				}
				if nodeAlignItem(rec, child) == AlignBaseline {
					baseline, err := a.calcBaseline(child)
					if err != nil {
						return err
					}
					ascent := baseline + nodeLeadingMargin(child, FlexDirectionColumn, availableInnerWidth)
					descent := child.layout.measuredDimensions[DimensionHeight] +
						nodeMarginForAxis(child, FlexDirectionColumn, availableInnerWidth) - ascent
					maxAscentForCurrentLine = fmax(maxAscentForCurrentLine, ascent)
					maxDescentForCurrentLine = fmax(maxDescentForCurrentLine, descent)
					lineHeight = fmax(lineHeight, maxAscentForCurrentLine+maxDescentForCurrentLine)
				}
			}
			endIndex = ii
			lineHeight += crossDimLead

			for ii = startIndex; ii < endIndex; ii++ {
				child := childRecs[ii]
				if child.style.Display == DisplayNone ||
					child.style.PositionType != PositionTypeRelative {
					continue
				}
				switch nodeAlignItem(rec, child) {
				case AlignFlexStart:
					child.layout.position[pos[crossAxis]] =
						currentLead + nodeLeadingMargin(child, crossAxis, availableInnerWidth)
				case AlignFlexEnd:
					child.layout.position[pos[crossAxis]] =
						currentLead + lineHeight -
							nodeTrailingMargin(child, crossAxis, availableInnerWidth) -
							child.layout.measuredDimensions[dim[crossAxis]]
				case AlignCenter:
					childHeight := child.layout.measuredDimensions[dim[crossAxis]]
					child.layout.position[pos[crossAxis]] = currentLead + (lineHeight-childHeight)/2
				case AlignStretch:
					child.layout.position[pos[crossAxis]] =
						currentLead + nodeLeadingMargin(child, crossAxis, availableInnerWidth)

					// The line height was not known when the child was
					// measured; stretch it now if needed.
					if !nodeIsStyleDimDefined(child, crossAxis, availableInnerCrossDim) {
						childWidth := lineHeight
						if isMainAxisRow {
							childWidth = child.layout.measuredDimensions[DimensionWidth] +
								nodeMarginForAxis(child, mainAxis, availableInnerWidth)
						}
						childHeight := lineHeight
						if !isMainAxisRow {
							childHeight = child.layout.measuredDimensions[DimensionHeight] +
								nodeMarginForAxis(child, crossAxis, availableInnerWidth)
						}
						if !(floatsEqual(childWidth, child.layout.measuredDimensions[DimensionWidth]) &&
							floatsEqual(childHeight, child.layout.measuredDimensions[DimensionHeight])) {
							if _, err := a.layoutNodeInternal(child, childWidth, childHeight, direction,
								MeasureModeExactly, MeasureModeExactly,
								availableInnerWidth, availableInnerHeight, true); err != nil {
								return err
							}
						}
					}
				case AlignBaseline:
					baseline, err := a.calcBaseline(child)
					if err != nil {
						return err
					}
					child.layout.position[EdgeTop] =
						currentLead + maxAscentForCurrentLine - baseline +
							nodeLeadingPosition(child, FlexDirectionColumn, availableInnerCrossDim)
				}
			}
			currentLead += lineHeight
		}
	}

	// STEP 9: final dimensions of the node itself.
	rec.layout.measuredDimensions[DimensionWidth] = nodeBoundAxis(
		rec, FlexDirectionRow, availableWidth-marginAxisRow, parentWidth, parentWidth)
	rec.layout.measuredDimensions[DimensionHeight] = nodeBoundAxis(
		rec, FlexDirectionColumn, availableHeight-marginAxisColumn, parentHeight, parentWidth)

	if measureModeMainDim == MeasureModeUndefined ||
		(rec.style.Overflow != OverflowScroll && measureModeMainDim == MeasureModeAtMost) {
		rec.layout.measuredDimensions[dim[mainAxis]] =
			nodeBoundAxis(rec, mainAxis, maxLineMainDim, mainAxisParentSize, parentWidth)
	} else if measureModeMainDim == MeasureModeAtMost && rec.style.Overflow == OverflowScroll {
		rec.layout.measuredDimensions[dim[mainAxis]] = fmax(
			fmin(availableInnerMainDim+paddingAndBorderAxisMain,
				nodeBoundAxisWithinMinAndMax(rec, mainAxis, maxLineMainDim, mainAxisParentSize)),
			paddingAndBorderAxisMain)
	}

	if measureModeCrossDim == MeasureModeUndefined ||
		(rec.style.Overflow != OverflowScroll && measureModeCrossDim == MeasureModeAtMost) {
		rec.layout.measuredDimensions[dim[crossAxis]] =
			nodeBoundAxis(rec, crossAxis, totalLineCrossDim+paddingAndBorderAxisCross,
				crossAxisParentSize, parentWidth)
	} else if measureModeCrossDim == MeasureModeAtMost && rec.style.Overflow == OverflowScroll {
		rec.layout.measuredDimensions[dim[crossAxis]] = fmax(
			fmin(availableInnerCrossDim+paddingAndBorderAxisCross,
				nodeBoundAxisWithinMinAndMax(rec, crossAxis,
					totalLineCrossDim+paddingAndBorderAxisCross, crossAxisParentSize)),
			paddingAndBorderAxisCross)
	}

	// Lines were stacked in normal direction; mirror them for wrap-reverse.
	if performLayout && rec.style.FlexWrap == WrapWrapReverse {
		for _, child := range childRecs {
			if child.style.PositionType == PositionTypeRelative {
				child.layout.position[pos[crossAxis]] =
					rec.layout.measuredDimensions[dim[crossAxis]] -
						child.layout.position[pos[crossAxis]] -
						child.layout.measuredDimensions[dim[crossAxis]]
			}
		}
	}

	if performLayout {
		// STEP 10: absolutely positioned children.
		for _, child := range absoluteChildren {
			mode := measureModeCrossDim
			if isMainAxisRow {
				mode = measureModeMainDim
			}
			if err := a.absoluteLayoutChild(rec, child, availableInnerWidth, mode,
				availableInnerHeight, direction); err != nil {
				return err
			}
		}

		// STEP 11: trailing positions for reverse axes.
		needsMainTrailingPos := mainAxis == FlexDirectionRowReverse || mainAxis == FlexDirectionColumnReverse
		needsCrossTrailingPos := crossAxis == FlexDirectionRowReverse || crossAxis == FlexDirectionColumnReverse
		if needsMainTrailingPos || needsCrossTrailingPos {
			for _, child := range childRecs {
				if child.style.Display == DisplayNone {
					continue
				}
				if needsMainTrailingPos {
					nodeSetChildTrailingPosition(rec, child, mainAxis)
				}
				if needsCrossTrailingPos {
					nodeSetChildTrailingPosition(rec, child, crossAxis)
				}
			}
		}
	}
	return nil
}
