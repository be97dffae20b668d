package flex

import "errors"

// calcBaseline returns a node's baseline offset from its top edge. A custom
// baseline capability wins; otherwise the first in-flow child of the first
// line provides it (preferring a baseline-aligned one), and a node with no
// such child uses its own height.
func (a *Arena) calcBaseline(rec *nodeRecord) (float64, error) {
	if rec.baseline != nil {
		b, err := rec.baseline(Node{arena: a, handle: rec.self},
			rec.layout.measuredDimensions[DimensionWidth],
			rec.layout.measuredDimensions[DimensionHeight])
		if err != nil {
			return 0, &CallbackError{Handle: rec.self, Err: err}
		}
		if IsUndefined(b) {
			return 0, &CallbackError{Handle: rec.self, Err: errors.New("baseline function returned an undefined value")}
		}
		return b, nil
	}

	var baselineChild *nodeRecord
	for _, h := range rec.children {
		child, err := a.resolve(h)
		if err != nil {
			return 0, err
		}
		if child.lineIndex > 0 {
			break
		}
		if child.style.PositionType == PositionTypeAbsolute {
			continue
		}
		if nodeAlignItem(rec, child) == AlignBaseline {
			baselineChild = child
			break
		}
		if baselineChild == nil {
			baselineChild = child
		}
	}

	if baselineChild == nil {
		return rec.layout.measuredDimensions[DimensionHeight], nil
	}
	b, err := a.calcBaseline(baselineChild)
	if err != nil {
		return 0, err
	}
	return b + baselineChild.layout.position[EdgeTop], nil
}

// isBaselineLayout reports whether any in-flow child of a row container asks
// for baseline alignment.
func (a *Arena) isBaselineLayout(rec *nodeRecord) bool {
	if flexDirectionIsColumn(rec.style.FlexDirection) {
		return false
	}
	if rec.style.AlignItems == AlignBaseline {
		return true
	}
	for _, h := range rec.children {
		child, err := a.resolve(h)
		if err != nil {
			continue
		}
		if child.style.PositionType == PositionTypeRelative &&
			child.style.AlignSelf == AlignBaseline {
			return true
		}
	}
	return false
}
