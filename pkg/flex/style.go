package flex

// Style is the input box model of a node. All fields are style values as the
// caller resolved them; the engine never reads untranslated markup.
type Style struct {
	Direction      Direction
	FlexDirection  FlexDirection
	JustifyContent Justify
	AlignContent   Align
	AlignItems     Align
	AlignSelf      Align
	PositionType   PositionType
	FlexWrap       Wrap
	Overflow       Overflow
	Display        Display

	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Value

	Margin   [edgeCount]Value
	Position [edgeCount]Value
	Padding  [edgeCount]Value
	Border   [edgeCount]Value

	Dimensions    [2]Value
	MinDimensions [2]Value
	MaxDimensions [2]Value
}

var defaultEdgeValues = [edgeCount]Value{
	valueUndefined, valueUndefined, valueUndefined,
	valueUndefined, valueUndefined, valueUndefined,
	valueUndefined, valueUndefined, valueUndefined,
}

var defaultStyle = Style{
	Direction:      DirectionInherit,
	FlexDirection:  FlexDirectionColumn,
	JustifyContent: JustifyFlexStart,
	AlignContent:   AlignFlexStart,
	AlignItems:     AlignStretch,
	AlignSelf:      AlignAuto,
	PositionType:   PositionTypeRelative,
	FlexWrap:       WrapNoWrap,
	Overflow:       OverflowVisible,
	Display:        DisplayFlex,
	FlexGrow:       Undefined,
	FlexShrink:     Undefined,
	FlexBasis:      valueAuto,
	Margin:         defaultEdgeValues,
	Position:       defaultEdgeValues,
	Padding:        defaultEdgeValues,
	Border:         defaultEdgeValues,
	Dimensions:     [2]Value{valueAuto, valueAuto},
	MinDimensions:  [2]Value{valueUndefined, valueUndefined},
	MaxDimensions:  [2]Value{valueUndefined, valueUndefined},
}

const (
	defaultFlexGrow   = 0.0
	defaultFlexShrink = 0.0
)

// styleEqual is a field-for-field comparison used by CopyStyle to avoid
// needless dirtying.
func styleEqual(a, b *Style) bool {
	if a.Direction != b.Direction ||
		a.FlexDirection != b.FlexDirection ||
		a.JustifyContent != b.JustifyContent ||
		a.AlignContent != b.AlignContent ||
		a.AlignItems != b.AlignItems ||
		a.AlignSelf != b.AlignSelf ||
		a.PositionType != b.PositionType ||
		a.FlexWrap != b.FlexWrap ||
		a.Overflow != b.Overflow ||
		a.Display != b.Display ||
		!floatsEqual(a.FlexGrow, b.FlexGrow) ||
		!floatsEqual(a.FlexShrink, b.FlexShrink) ||
		!valueEqual(a.FlexBasis, b.FlexBasis) {
		return false
	}
	for i := 0; i < edgeCount; i++ {
		if !valueEqual(a.Margin[i], b.Margin[i]) ||
			!valueEqual(a.Position[i], b.Position[i]) ||
			!valueEqual(a.Padding[i], b.Padding[i]) ||
			!valueEqual(a.Border[i], b.Border[i]) {
			return false
		}
	}
	for i := 0; i < 2; i++ {
		if !valueEqual(a.Dimensions[i], b.Dimensions[i]) ||
			!valueEqual(a.MinDimensions[i], b.MinDimensions[i]) ||
			!valueEqual(a.MaxDimensions[i], b.MaxDimensions[i]) {
			return false
		}
	}
	return true
}
