package flex

// Config carries settings shared by many nodes: the default writing direction
// and the point scale used for pixel-grid rounding. Configs are read-mostly;
// changing one does not invalidate cached layouts on its own.
type Config struct {
	// Direction is the writing direction applied when a root is laid out
	// with DirectionInherit.
	Direction Direction

	// PointScaleFactor is the number of pixels per point used to round the
	// final layout to the pixel grid. Zero disables rounding.
	PointScaleFactor float64
}

// NewConfig returns a config with LTR text and 1:1 point scale.
func NewConfig() *Config {
	return &Config{
		Direction:        DirectionLTR,
		PointScaleFactor: 1,
	}
}

// SetPointScaleFactor sets the pixel density used for rounding. Zero skips
// rounding entirely; negative values are rejected.
func (c *Config) SetPointScaleFactor(pixelsInPoint float64) {
	if pixelsInPoint < 0 {
		panic("flex: point scale factor must not be negative")
	}
	c.PointScaleFactor = pixelsInPoint
}
