package flex

func measureModeSizeIsExactAndMatchesOldMeasuredSize(sizeMode MeasureMode, size, lastComputedSize float64) bool {
	return sizeMode == MeasureModeExactly && floatsEqual(size, lastComputedSize)
}

func measureModeOldSizeIsUnspecifiedAndStillFits(sizeMode MeasureMode, size float64, lastSizeMode MeasureMode, lastComputedSize float64) bool {
	return sizeMode == MeasureModeAtMost && lastSizeMode == MeasureModeUndefined &&
		(size >= lastComputedSize || floatsEqual(size, lastComputedSize))
}

func measureModeNewMeasureSizeIsStricterAndStillValid(sizeMode MeasureMode, size float64, lastSizeMode MeasureMode, lastSize, lastComputedSize float64) bool {
	return lastSizeMode == MeasureModeAtMost && sizeMode == MeasureModeAtMost &&
		lastSize > size &&
		(lastComputedSize <= size || floatsEqual(size, lastComputedSize))
}

// canUseCachedMeasurement reports whether a previous measurement still
// answers the current constraints, either because the constraints are
// identical or because they can only confirm the old result.
func canUseCachedMeasurement(
	widthMode MeasureMode, width float64,
	heightMode MeasureMode, height float64,
	lastWidthMode MeasureMode, lastWidth float64,
	lastHeightMode MeasureMode, lastHeight float64,
	lastComputedWidth, lastComputedHeight float64,
	marginRow, marginColumn float64) bool {

	if lastComputedHeight < 0 || lastComputedWidth < 0 {
		return false
	}

	hasSameWidthSpec := lastWidthMode == widthMode && floatsEqual(lastWidth, width)
	hasSameHeightSpec := lastHeightMode == heightMode && floatsEqual(lastHeight, height)

	widthIsCompatible := hasSameWidthSpec ||
		measureModeSizeIsExactAndMatchesOldMeasuredSize(widthMode, width-marginRow, lastComputedWidth) ||
		measureModeOldSizeIsUnspecifiedAndStillFits(widthMode, width-marginRow, lastWidthMode, lastComputedWidth) ||
		measureModeNewMeasureSizeIsStricterAndStillValid(widthMode, width-marginRow, lastWidthMode, lastWidth, lastComputedWidth)

	heightIsCompatible := hasSameHeightSpec ||
		measureModeSizeIsExactAndMatchesOldMeasuredSize(heightMode, height-marginColumn, lastComputedHeight) ||
		measureModeOldSizeIsUnspecifiedAndStillFits(heightMode, height-marginColumn, lastHeightMode, lastComputedHeight) ||
		measureModeNewMeasureSizeIsStricterAndStillValid(heightMode, height-marginColumn, lastHeightMode, lastHeight, lastComputedHeight)

	return widthIsCompatible && heightIsCompatible
}

// layoutNodeInternal wraps layoutImpl with the measurement cache. It returns
// whether the node was actually visited (as opposed to answered from cache).
func (a *Arena) layoutNodeInternal(rec *nodeRecord, availableWidth, availableHeight float64,
	parentDirection Direction, widthMeasureMode, heightMeasureMode MeasureMode,
	parentWidth, parentHeight float64, performLayout bool) (bool, error) {

	layout := &rec.layout

	needToVisitNode := (rec.isDirty && layout.generation != a.generation) ||
		layout.lastParentDirection != parentDirection

	if needToVisitNode {
		// Constraints from the previous pass no longer apply.
		layout.nextCachedMeasurementsIndex = 0
		layout.cachedLayout.widthMeasureMode = MeasureMode(-1)
		layout.cachedLayout.heightMeasureMode = MeasureMode(-1)
		layout.cachedLayout.computedWidth = -1
		layout.cachedLayout.computedHeight = -1
	}

	var cached *cachedMeasurement

	// Measured leaves can reuse results under looser conditions than
	// containers, whose layout depends on exact constraints.
	if rec.measure != nil {
		marginAxisRow := nodeMarginForAxis(rec, FlexDirectionRow, parentWidth)
		marginAxisColumn := nodeMarginForAxis(rec, FlexDirectionColumn, parentWidth)

		if canUseCachedMeasurement(widthMeasureMode, availableWidth, heightMeasureMode, availableHeight,
			layout.cachedLayout.widthMeasureMode, layout.cachedLayout.availableWidth,
			layout.cachedLayout.heightMeasureMode, layout.cachedLayout.availableHeight,
			layout.cachedLayout.computedWidth, layout.cachedLayout.computedHeight,
			marginAxisRow, marginAxisColumn) {
			cached = &layout.cachedLayout
		} else {
			for i := 0; i < layout.nextCachedMeasurementsIndex; i++ {
				c := &layout.cachedMeasurements[i]
				if canUseCachedMeasurement(widthMeasureMode, availableWidth, heightMeasureMode, availableHeight,
					c.widthMeasureMode, c.availableWidth, c.heightMeasureMode, c.availableHeight,
					c.computedWidth, c.computedHeight, marginAxisRow, marginAxisColumn) {
					cached = c
					break
				}
			}
		}
	} else if performLayout {
		if floatsEqual(layout.cachedLayout.availableWidth, availableWidth) &&
			floatsEqual(layout.cachedLayout.availableHeight, availableHeight) &&
			layout.cachedLayout.widthMeasureMode == widthMeasureMode &&
			layout.cachedLayout.heightMeasureMode == heightMeasureMode {
			cached = &layout.cachedLayout
		}
	} else {
		for i := 0; i < layout.nextCachedMeasurementsIndex; i++ {
			c := &layout.cachedMeasurements[i]
			if floatsEqual(c.availableWidth, availableWidth) &&
				floatsEqual(c.availableHeight, availableHeight) &&
				c.widthMeasureMode == widthMeasureMode &&
				c.heightMeasureMode == heightMeasureMode {
				cached = c
				break
			}
		}
	}

	if !needToVisitNode && cached != nil {
		layout.measuredDimensions[DimensionWidth] = cached.computedWidth
		layout.measuredDimensions[DimensionHeight] = cached.computedHeight
	} else {
		if err := a.layoutImpl(rec, availableWidth, availableHeight, parentDirection,
			widthMeasureMode, heightMeasureMode, parentWidth, parentHeight, performLayout); err != nil {
			return false, err
		}
		layout.lastParentDirection = parentDirection

		if cached == nil {
			if layout.nextCachedMeasurementsIndex == maxCachedResultCount {
				layout.nextCachedMeasurementsIndex = 0
			}
			var entry *cachedMeasurement
			if performLayout {
				entry = &layout.cachedLayout
			} else {
				entry = &layout.cachedMeasurements[layout.nextCachedMeasurementsIndex]
				layout.nextCachedMeasurementsIndex++
			}
			entry.availableWidth = availableWidth
			entry.availableHeight = availableHeight
			entry.widthMeasureMode = widthMeasureMode
			entry.heightMeasureMode = heightMeasureMode
			entry.computedWidth = layout.measuredDimensions[DimensionWidth]
			entry.computedHeight = layout.measuredDimensions[DimensionHeight]
		}
	}

	if performLayout {
		layout.dimensions[DimensionWidth] = layout.measuredDimensions[DimensionWidth]
		layout.dimensions[DimensionHeight] = layout.measuredDimensions[DimensionHeight]
	}
	layout.generation = a.generation

	return needToVisitNode || cached == nil, nil
}

// roundValueToPixelGrid snaps a point value to the pixel grid defined by
// pointScaleFactor. Text nodes pass force flags so glyph boxes never shrink
// below their measured size on one edge while growing on the other.
func roundValueToPixelGrid(value, pointScaleFactor float64, forceCeil, forceFloor bool) float64 {
	scaledValue := value * pointScaleFactor
	fractial := fmod(scaledValue, 1.0)
	switch {
	case floatsEqual(fractial, 0):
		scaledValue -= fractial
	case forceCeil:
		scaledValue = scaledValue - fractial + 1
	case forceFloor:
		scaledValue -= fractial
	default:
		if fractial >= 0.5 {
			scaledValue = scaledValue - fractial + 1
		} else {
			scaledValue -= fractial
		}
	}
	return scaledValue / pointScaleFactor
}

// roundToPixelGrid rounds the whole subtree, working in absolute coordinates
// so that adjacent boxes snap to the same grid lines instead of accumulating
// per-node rounding error.
func (a *Arena) roundToPixelGrid(rec *nodeRecord, pointScaleFactor, absoluteLeft, absoluteTop float64) {
	if pointScaleFactor == 0 {
		return
	}

	nodeLeft := rec.layout.position[EdgeLeft]
	nodeTop := rec.layout.position[EdgeTop]
	nodeWidth := rec.layout.dimensions[DimensionWidth]
	nodeHeight := rec.layout.dimensions[DimensionHeight]

	absoluteNodeLeft := absoluteLeft + nodeLeft
	absoluteNodeTop := absoluteTop + nodeTop
	absoluteNodeRight := absoluteNodeLeft + nodeWidth
	absoluteNodeBottom := absoluteNodeTop + nodeHeight

	// Text rounds down on position and never rounds its size up past a full
	// pixel, so rendered glyphs are not clipped.
	textRounding := rec.nodeType == NodeTypeText

	rec.layout.position[EdgeLeft] = roundValueToPixelGrid(nodeLeft, pointScaleFactor, false, textRounding)
	rec.layout.position[EdgeTop] = roundValueToPixelGrid(nodeTop, pointScaleFactor, false, textRounding)

	hasFractionalWidth := !floatsEqual(fmod(nodeWidth*pointScaleFactor, 1), 0) &&
		!floatsEqual(fmod(nodeWidth*pointScaleFactor, 1), 1)
	hasFractionalHeight := !floatsEqual(fmod(nodeHeight*pointScaleFactor, 1), 0) &&
		!floatsEqual(fmod(nodeHeight*pointScaleFactor, 1), 1)

	rec.layout.dimensions[DimensionWidth] =
		roundValueToPixelGrid(absoluteNodeRight, pointScaleFactor,
			textRounding && hasFractionalWidth, textRounding && !hasFractionalWidth) -
			roundValueToPixelGrid(absoluteNodeLeft, pointScaleFactor, false, textRounding)
	rec.layout.dimensions[DimensionHeight] =
		roundValueToPixelGrid(absoluteNodeBottom, pointScaleFactor,
			textRounding && hasFractionalHeight, textRounding && !hasFractionalHeight) -
			roundValueToPixelGrid(absoluteNodeTop, pointScaleFactor, false, textRounding)

	for _, h := range rec.children {
		a.roundToPixelGrid(a.mustResolve(h), pointScaleFactor, absoluteNodeLeft, absoluteNodeTop)
	}
}

// calcStartWidth derives the root's initial width constraint from its style
// and the available space.
func calcStartWidth(rec *nodeRecord, parentWidth float64) (float64, MeasureMode) {
	if nodeIsStyleDimDefined(rec, FlexDirectionRow, parentWidth) {
		width := resolveValue(rec.resolvedDims[dim[FlexDirectionRow]], parentWidth) +
			nodeMarginForAxis(rec, FlexDirectionRow, parentWidth)
		return width, MeasureModeExactly
	}
	if resolveValue(rec.style.MaxDimensions[DimensionWidth], parentWidth) >= 0 {
		return resolveValue(rec.style.MaxDimensions[DimensionWidth], parentWidth), MeasureModeAtMost
	}
	if IsUndefined(parentWidth) {
		return parentWidth, MeasureModeUndefined
	}
	return parentWidth, MeasureModeExactly
}

func calcStartHeight(rec *nodeRecord, parentWidth, parentHeight float64) (float64, MeasureMode) {
	if nodeIsStyleDimDefined(rec, FlexDirectionColumn, parentHeight) {
		height := resolveValue(rec.resolvedDims[dim[FlexDirectionColumn]], parentHeight) +
			nodeMarginForAxis(rec, FlexDirectionColumn, parentWidth)
		return height, MeasureModeExactly
	}
	if resolveValue(rec.style.MaxDimensions[DimensionHeight], parentHeight) >= 0 {
		return resolveValue(rec.style.MaxDimensions[DimensionHeight], parentHeight), MeasureModeAtMost
	}
	if IsUndefined(parentHeight) {
		return parentHeight, MeasureModeUndefined
	}
	return parentHeight, MeasureModeExactly
}

func computedEqual(a, b *Computed) bool {
	if !floatsEqual(a.Left, b.Left) || !floatsEqual(a.Top, b.Top) ||
		!floatsEqual(a.Width, b.Width) || !floatsEqual(a.Height, b.Height) {
		return false
	}
	for i := 0; i < 4; i++ {
		if !floatsEqual(a.Margin[i], b.Margin[i]) ||
			!floatsEqual(a.Border[i], b.Border[i]) ||
			!floatsEqual(a.Padding[i], b.Padding[i]) {
			return false
		}
	}
	return a.Direction == b.Direction && a.HadOverflow == b.HadOverflow
}

// commitLayout publishes the working layout of a subtree. A node's
// hasNewLayout bit is raised only when its committed box actually changed,
// so consumers polling HasNewLayout can skip untouched subtrees.
func (a *Arena) commitLayout(rec *nodeRecord) {
	snap := snapshotComputed(&rec.layout)
	if !computedEqual(&rec.computed, &snap) {
		rec.computed = snap
		rec.hasNewLayout = true
	}
	rec.isDirty = false
	for _, h := range rec.children {
		a.commitLayout(a.mustResolve(h))
	}
}

func (a *Arena) configFor(rec *nodeRecord) *Config {
	if rec.config != nil {
		return rec.config
	}
	return a.config
}

// CalculateLayout solves the subtree rooted at n against the given available
// size and writing direction. Pass Undefined for either dimension to let
// content decide it. On success the computed boxes of the whole subtree are
// published atomically; on error every node keeps the output of the last
// successful pass.
func (n Node) CalculateLayout(availableWidth, availableHeight float64, parentDirection Direction) error {
	a := n.arena
	rec, err := a.resolve(n.handle)
	if err != nil {
		return err
	}

	// Stamp a new pass so per-node flex basis and visit marks from older
	// passes are recognizably stale.
	a.generation++

	resolveNodeDimensions(rec)
	width, widthMeasureMode := calcStartWidth(rec, availableWidth)
	height, heightMeasureMode := calcStartHeight(rec, availableWidth, availableHeight)

	visited, err := a.layoutNodeInternal(rec, width, height, parentDirection,
		widthMeasureMode, heightMeasureMode, availableWidth, availableHeight, true)
	if err != nil {
		return err
	}
	if !visited {
		return nil
	}

	nodeSetPosition(rec, rec.layout.direction, availableWidth, availableHeight, availableWidth)
	a.roundToPixelGrid(rec, a.configFor(rec).PointScaleFactor, 0, 0)
	a.commitLayout(rec)
	return nil
}
