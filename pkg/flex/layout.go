package flex

// Even deep trees rarely need more than a handful of measurement cache
// slots per node.
const maxCachedResultCount = 16

type cachedMeasurement struct {
	availableWidth    float64
	availableHeight   float64
	widthMeasureMode  MeasureMode
	heightMeasureMode MeasureMode

	computedWidth  float64
	computedHeight float64
}

// layoutState is the solver's working storage for one node: in-progress
// positions and sizes, the flex-basis cache, and the measurement cache. It is
// never exposed; committed results live in Computed.
type layoutState struct {
	position   [4]float64
	dimensions [2]float64
	margin     [4]float64
	border     [4]float64
	padding    [4]float64

	direction   Direction
	hadOverflow bool

	computedFlexBasis           float64
	computedFlexBasisGeneration uint32

	generation          uint32
	lastParentDirection Direction

	nextCachedMeasurementsIndex int
	cachedMeasurements          [maxCachedResultCount]cachedMeasurement
	measuredDimensions          [2]float64

	cachedLayout cachedMeasurement
}

var defaultLayoutState = layoutState{
	dimensions:          [2]float64{Undefined, Undefined},
	lastParentDirection: Direction(-1),
	computedFlexBasis:   Undefined,
	measuredDimensions:  [2]float64{Undefined, Undefined},
	cachedLayout: cachedMeasurement{
		widthMeasureMode:  MeasureMode(-1),
		heightMeasureMode: MeasureMode(-1),
		computedWidth:     -1,
		computedHeight:    -1,
	},
}

// Computed is the committed output box of a node: position relative to the
// parent's border box, the resolved size, and absolute per-edge
// margin/border/padding. It only changes when a CalculateLayout call
// completes without error.
type Computed struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64

	Margin  [4]float64
	Border  [4]float64
	Padding [4]float64

	Direction   Direction
	HadOverflow bool
}

// snapshotComputed captures the working layout as committed output.
func snapshotComputed(ls *layoutState) Computed {
	return Computed{
		Left:        ls.position[EdgeLeft],
		Top:         ls.position[EdgeTop],
		Width:       ls.dimensions[DimensionWidth],
		Height:      ls.dimensions[DimensionHeight],
		Margin:      ls.margin,
		Border:      ls.border,
		Padding:     ls.padding,
		Direction:   ls.direction,
		HadOverflow: ls.hadOverflow,
	}
}
