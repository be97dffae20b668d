package flex

// Direction is the writing direction used to resolve Start/End edges.
type Direction int

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

func (d Direction) String() string {
	switch d {
	case DirectionInherit:
		return "inherit"
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	}
	return "unknown"
}

// FlexDirection selects the main axis of a container.
type FlexDirection int

const (
	FlexDirectionColumn FlexDirection = iota
	FlexDirectionColumnReverse
	FlexDirectionRow
	FlexDirectionRowReverse
)

func (d FlexDirection) String() string {
	switch d {
	case FlexDirectionColumn:
		return "column"
	case FlexDirectionColumnReverse:
		return "column-reverse"
	case FlexDirectionRow:
		return "row"
	case FlexDirectionRowReverse:
		return "row-reverse"
	}
	return "unknown"
}

// Justify distributes free space along the main axis.
type Justify int

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
)

func (j Justify) String() string {
	switch j {
	case JustifyFlexStart:
		return "flex-start"
	case JustifyCenter:
		return "center"
	case JustifyFlexEnd:
		return "flex-end"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	}
	return "unknown"
}

// Align is used for align-items, align-self and align-content.
type Align int

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
)

func (a Align) String() string {
	switch a {
	case AlignAuto:
		return "auto"
	case AlignFlexStart:
		return "flex-start"
	case AlignCenter:
		return "center"
	case AlignFlexEnd:
		return "flex-end"
	case AlignStretch:
		return "stretch"
	case AlignBaseline:
		return "baseline"
	case AlignSpaceBetween:
		return "space-between"
	case AlignSpaceAround:
		return "space-around"
	}
	return "unknown"
}

// PositionType selects in-flow (relative) or out-of-flow (absolute) placement.
type PositionType int

const (
	PositionTypeRelative PositionType = iota
	PositionTypeAbsolute
)

// Wrap controls line breaking of flex items.
type Wrap int

const (
	WrapNoWrap Wrap = iota
	WrapWrap
	WrapWrapReverse
)

// Overflow controls how content larger than the container is sized.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// Display removes a node (and its subtree) from layout when set to none.
type Display int

const (
	DisplayFlex Display = iota
	DisplayNone
)

// MeasureMode tells a measure function how to interpret an available dimension.
type MeasureMode int

const (
	MeasureModeUndefined MeasureMode = iota
	MeasureModeExactly
	MeasureModeAtMost
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureModeUndefined:
		return "undefined"
	case MeasureModeExactly:
		return "exactly"
	case MeasureModeAtMost:
		return "at-most"
	}
	return "unknown"
}

// Edge identifies a box edge. The physical edges come first; Start and End are
// resolved against the writing direction, and Horizontal/Vertical/All fan out
// to several physical edges.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal
	EdgeVertical
	EdgeAll
)

const edgeCount = 9

// Dimension indexes width/height pairs.
type Dimension int

const (
	DimensionWidth Dimension = iota
	DimensionHeight
)

// NodeType distinguishes plain containers from measure-bearing (text-like)
// leaves, which get special pixel rounding so content is never truncated.
type NodeType int

const (
	NodeTypeDefault NodeType = iota
	NodeTypeText
)
