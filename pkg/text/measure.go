package text

import (
	"strings"

	"github.com/fogleman/gg"

	"boxflex/pkg/flex"
)

// Measurer sizes text content for layout. It wraps a single font face at a
// fixed size; create one per style combination you lay out with.
type Measurer struct {
	fontPath string
	fontSize float64
}

// NewMeasurer returns a measurer for the given font file and size. An empty
// path (or an unloadable font) falls back to a width estimate, which keeps
// layout running on machines without the font installed.
func NewMeasurer(fontPath string, fontSize float64) *Measurer {
	return &Measurer{fontPath: fontPath, fontSize: fontSize}
}

// LineHeight returns the vertical advance of one text line.
func (m *Measurer) LineHeight() float64 {
	return m.fontSize * 1.2
}

// Ascent returns the baseline offset from the top of a line.
func (m *Measurer) Ascent() float64 {
	return m.fontSize * 0.8
}

func (m *Measurer) measureString(s string) float64 {
	if m.fontPath != "" {
		dc := gg.NewContext(1, 1)
		if err := dc.LoadFontFace(m.fontPath, m.fontSize); err == nil {
			w, _ := dc.MeasureString(s)
			return w
		}
	}
	// Rough estimate when no usable font face is available.
	return float64(len(s)) * m.fontSize * 0.6
}

// wrap breaks content into lines no wider than maxWidth. A word that is
// wider than maxWidth gets a line of its own rather than being split.
func (m *Measurer) wrap(content string, maxWidth float64) []string {
	if flex.IsUndefined(maxWidth) || m.measureString(content) <= maxWidth {
		return []string{content}
	}

	words := strings.Fields(content)
	if len(words) == 0 {
		return []string{content}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.measureString(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{content}
	}
	return lines
}

// MeasureFunc returns a layout measure callback for the given content. The
// callback wraps the text to the width constraint and reports the resulting
// block size.
func (m *Measurer) MeasureFunc(content string) flex.MeasureFunc {
	return func(_ flex.Node, width float64, widthMode flex.MeasureMode, _ float64, _ flex.MeasureMode) (flex.Size, error) {
		var maxWidth float64
		switch widthMode {
		case flex.MeasureModeExactly, flex.MeasureModeAtMost:
			maxWidth = width
		default:
			maxWidth = flex.Undefined
		}

		lines := m.wrap(content, maxWidth)
		var widest float64
		for _, line := range lines {
			if w := m.measureString(line); w > widest {
				widest = w
			}
		}
		if widthMode == flex.MeasureModeExactly {
			widest = width
		} else if widthMode == flex.MeasureModeAtMost && widest > width {
			widest = width
		}
		return flex.Size{
			Width:  widest,
			Height: float64(len(lines)) * m.LineHeight(),
		}, nil
	}
}

// BaselineFunc returns a baseline callback aligning on the first text line.
func (m *Measurer) BaselineFunc() flex.BaselineFunc {
	return func(_ flex.Node, _, _ float64) (float64, error) {
		return m.Ascent(), nil
	}
}

// Attach wires content measurement and baseline reporting onto a node and
// marks it as text for pixel-grid rounding.
func (m *Measurer) Attach(node flex.Node, content string) error {
	if err := node.SetMeasureFunc(m.MeasureFunc(content)); err != nil {
		return err
	}
	node.SetBaselineFunc(m.BaselineFunc())
	node.SetNodeType(flex.NodeTypeText)
	return nil
}
