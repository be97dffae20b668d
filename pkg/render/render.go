package render

import (
	"image"

	"github.com/fogleman/gg"

	"boxflex/pkg/flex"
)

// Color is a normalized RGBA color; components are in [0,1].
type Color struct {
	R, G, B, A float64
}

// Appearance carries the visual attributes of a node. It hangs off the
// node's owner slot; nodes without one are laid out but not painted.
type Appearance struct {
	Background Color
	Border     Color

	Label     string
	LabelSize float64
	FontPath  string
	TextColor Color
}

// Attach stores the appearance as the node's owner.
func (a *Appearance) Attach(node flex.Node) {
	node.SetOwner(a)
}

// Renderer paints a computed layout tree into an RGBA raster.
type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render clears the canvas and paints the subtree rooted at root. Call it
// after CalculateLayout; it reads only committed layout data.
func (r *Renderer) Render(root flex.Node) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()
	r.drawNode(root, 0, 0)
}

func (r *Renderer) drawNode(n flex.Node, parentX, parentY float64) {
	if n.Display() == flex.DisplayNone {
		return
	}

	x := parentX + n.LayoutLeft()
	y := parentY + n.LayoutTop()
	w := n.LayoutWidth()
	h := n.LayoutHeight()

	if look, ok := n.Owner().(*Appearance); ok && look != nil {
		r.drawBackground(look, x, y, w, h)
		r.drawBorder(n, look, x, y, w, h)
		r.drawLabel(n, look, x, y)
	}

	for i := 0; i < n.ChildCount(); i++ {
		r.drawNode(n.Child(i), x, y)
	}
}

func (r *Renderer) drawBackground(look *Appearance, x, y, w, h float64) {
	if look.Background.A <= 0 || w <= 0 || h <= 0 {
		return
	}
	r.context.SetRGBA(look.Background.R, look.Background.G, look.Background.B, look.Background.A)
	r.context.DrawRectangle(x, y, w, h)
	r.context.Fill()
}

// drawBorder fills each side as a trapezoid so adjoining sides meet in a
// miter instead of overlapping.
func (r *Renderer) drawBorder(n flex.Node, look *Appearance, x, y, w, h float64) {
	left := n.LayoutBorder(flex.EdgeLeft)
	top := n.LayoutBorder(flex.EdgeTop)
	right := n.LayoutBorder(flex.EdgeRight)
	bottom := n.LayoutBorder(flex.EdgeBottom)
	if left <= 0 && top <= 0 && right <= 0 && bottom <= 0 {
		return
	}
	c := look.Border
	if c.A <= 0 {
		return
	}
	r.context.SetRGBA(c.R, c.G, c.B, c.A)

	outerLeft, outerTop := x, y
	outerRight, outerBottom := x+w, y+h
	innerLeft, innerTop := x+left, y+top
	innerRight, innerBottom := x+w-right, y+h-bottom

	if top > 0 {
		r.context.MoveTo(outerLeft, outerTop)
		r.context.LineTo(outerRight, outerTop)
		r.context.LineTo(innerRight, innerTop)
		r.context.LineTo(innerLeft, innerTop)
		r.context.ClosePath()
		r.context.Fill()
	}
	if right > 0 {
		r.context.MoveTo(outerRight, outerTop)
		r.context.LineTo(outerRight, outerBottom)
		r.context.LineTo(innerRight, innerBottom)
		r.context.LineTo(innerRight, innerTop)
		r.context.ClosePath()
		r.context.Fill()
	}
	if bottom > 0 {
		r.context.MoveTo(outerLeft, outerBottom)
		r.context.LineTo(outerRight, outerBottom)
		r.context.LineTo(innerRight, innerBottom)
		r.context.LineTo(innerLeft, innerBottom)
		r.context.ClosePath()
		r.context.Fill()
	}
	if left > 0 {
		r.context.MoveTo(outerLeft, outerTop)
		r.context.LineTo(outerLeft, outerBottom)
		r.context.LineTo(innerLeft, innerBottom)
		r.context.LineTo(innerLeft, innerTop)
		r.context.ClosePath()
		r.context.Fill()
	}
}

func (r *Renderer) drawLabel(n flex.Node, look *Appearance, x, y float64) {
	if look.Label == "" {
		return
	}
	size := look.LabelSize
	if size <= 0 {
		size = 12
	}
	if look.FontPath != "" {
		if err := r.context.LoadFontFace(look.FontPath, size); err != nil {
			return
		}
	}
	c := look.TextColor
	if c.A <= 0 {
		c = Color{A: 1}
	}
	r.context.SetRGBA(c.R, c.G, c.B, c.A)
	textX := x + n.LayoutPadding(flex.EdgeLeft) + n.LayoutBorder(flex.EdgeLeft)
	textY := y + n.LayoutPadding(flex.EdgeTop) + n.LayoutBorder(flex.EdgeTop) + size*0.8
	r.context.DrawString(look.Label, textX, textY)
}

// Image returns the rendered raster.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}
