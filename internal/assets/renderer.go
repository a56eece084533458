package assets

import (
	"math"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-hop/internal/core"
)

// drawOp is one queued draw call.
type drawOp struct {
	img     core.ImageHandle
	x, y, z float64
	t       core.Transform
}

// ScreenRenderer is a core.Renderer that rasterizes atlas images onto a
// core.Screen. Draw calls are queued and painted by Flush in z order
// (lower z first, ties in call order). The playfield is scaled to the
// screen; art is not scaled, only placed. Rotation cannot be shown in
// character cells and is ignored.
type ScreenRenderer struct {
	fieldW float64
	fieldH float64
	ops    []drawOp
}

// NewScreenRenderer creates a renderer for a playfield of the given size.
func NewScreenRenderer(fieldW, fieldH int) *ScreenRenderer {
	return &ScreenRenderer{
		fieldW: float64(fieldW),
		fieldH: float64(fieldH),
	}
}

// Draw queues an image with its top-left corner at (x, y).
func (r *ScreenRenderer) Draw(img core.ImageHandle, x, y, z float64) {
	r.DrawTransformed(img, x, y, z, core.Transform{ScaleX: 1, ScaleY: 1})
}

// DrawTransformed queues an image placed by its anchor.
func (r *ScreenRenderer) DrawTransformed(img core.ImageHandle, x, y, z float64, t core.Transform) {
	if img == nil {
		return
	}
	r.ops = append(r.ops, drawOp{img: img, x: x, y: y, z: z, t: t})
}

// Pending returns the number of queued draw calls.
func (r *ScreenRenderer) Pending() int {
	return len(r.ops)
}

// Flush clears dst, paints every queued call and empties the queue.
func (r *ScreenRenderer) Flush(dst *core.Screen) {
	sort.SliceStable(r.ops, func(i, j int) bool {
		return r.ops[i].z < r.ops[j].z
	})

	dst.Clear()
	for _, op := range r.ops {
		r.paint(dst, op)
	}
	r.ops = r.ops[:0]
}

// cellX converts a playfield x to a screen column.
func (r *ScreenRenderer) cellX(dst *core.Screen, x float64) float64 {
	return x * float64(dst.Width()) / r.fieldW
}

// cellY converts a playfield y to a screen row.
func (r *ScreenRenderer) cellY(dst *core.Screen, y float64) float64 {
	return y * float64(dst.Height()) / r.fieldH
}

func (r *ScreenRenderer) paint(dst *core.Screen, op drawOp) {
	var (
		lines  []string
		color  core.Color
		layout = LayoutCenter
	)
	switch img := op.img.(type) {
	case *Sprite:
		lines, color, layout = img.Art, img.Color, img.Layout
	case *Text:
		lines = img.Lines
	default:
		return
	}
	if op.t.Tint != core.ColorDefault {
		color = op.t.Tint
	}
	if len(lines) == 0 {
		return
	}

	sx, sy := op.t.ScaleX, op.t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	w, h := op.img.Size()
	w, h = w*sx, h*sy
	left := op.x - op.t.AnchorX*w
	top := op.y - op.t.AnchorY*h

	if layout == LayoutSpread {
		r.paintSpread(dst, lines, color, left, top, w, h)
		return
	}

	blockW := 0
	for _, l := range lines {
		blockW = core.Max(blockW, len([]rune(l)))
	}
	cx := r.cellX(dst, left+w/2)
	cy := r.cellY(dst, top+h/2)
	col := int(math.Round(cx - float64(blockW)/2))
	row := int(math.Round(cy - float64(len(lines))/2))
	for i, l := range lines {
		dst.DrawTextColor(col, row+i, l, color)
	}
}

// paintSpread spreads the rows over the rectangle height and tiles each row
// across its width.
func (r *ScreenRenderer) paintSpread(dst *core.Screen, lines []string, color core.Color, left, top, w, h float64) {
	col0 := int(math.Floor(r.cellX(dst, left)))
	col1 := int(math.Ceil(r.cellX(dst, left+w)))
	step := h / float64(len(lines))

	for i, l := range lines {
		if l == "" {
			continue
		}
		row := int(math.Floor(r.cellY(dst, top+(float64(i)+0.5)*step)))
		n := len([]rune(l))
		tiled := strings.Repeat(l, (col1-col0)/n+1)
		dst.DrawTextColor(col0, row, string([]rune(tiled)[:core.Max(col1-col0, 0)]), color)
	}
}
