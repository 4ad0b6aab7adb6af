// Package preview rasterizes lathe shapes into alpha masks for thumbnails.
package preview

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/lathe"
)

// curveSteps is the number of chords used per Bezier segment when stroking.
const curveSteps = 16

// Outline draws shape scaled to fit a width x height mask, keeping its aspect
// ratio and centering it. A positive stroke draws the outline with that line
// width in pixels; zero or negative fills the shape instead.
//
// It panics if width or height is not positive.
func Outline(shape lathe.Shape, width, height int, stroke float64) *image.Alpha {
	if width <= 0 || height <= 0 {
		panic("preview: outline needs a positive size")
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	xf := fit(shape.Bounds(), width, height, math.Max(stroke, 1))

	ras := vector.NewRasterizer(width, height)
	if stroke > 0 {
		strokePath(ras, shape.Path(), xf, float32(stroke/2))
	} else {
		fillPath(ras, shape.Path(), xf)
	}
	ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// transform maps shape coordinates to pixel coordinates.
type transform struct {
	scale  float64
	offset lathe.Point
}

func (t transform) apply(p lathe.Point) (float32, float32) {
	return float32(p.X*t.scale + t.offset.X), float32(p.Y*t.scale + t.offset.Y)
}

// fit returns the uniform transform placing b inside the image with margin
// pixels free on every side.
func fit(b lathe.Rect, width, height int, margin float64) transform {
	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	scale := 1.0
	switch {
	case b.Width() > 0 && b.Height() > 0:
		scale = math.Min(availW/b.Width(), availH/b.Height())
	case b.Width() > 0:
		scale = availW / b.Width()
	case b.Height() > 0:
		scale = availH / b.Height()
	}
	if scale <= 0 {
		scale = 1
	}
	c := b.Center()
	return transform{
		scale:  scale,
		offset: lathe.Pt(float64(width)/2-c.X*scale, float64(height)/2-c.Y*scale),
	}
}

func fillPath(ras *vector.Rasterizer, path *lathe.Path, xf transform) {
	open := false
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case lathe.MoveTo:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(xf.apply(e.Point))
			open = true
		case lathe.LineTo:
			ras.LineTo(xf.apply(e.Point))
		case lathe.QuadTo:
			bx, by := xf.apply(e.Control)
			cx, cy := xf.apply(e.Point)
			ras.QuadTo(bx, by, cx, cy)
		case lathe.CubicTo:
			bx, by := xf.apply(e.Control1)
			cx, cy := xf.apply(e.Control2)
			dx, dy := xf.apply(e.Point)
			ras.CubeTo(bx, by, cx, cy, dx, dy)
		case lathe.Close:
			ras.ClosePath()
			open = false
		}
	}
	if open {
		ras.ClosePath()
	}
}

// subpath is a flattened run of points in pixel space. A closed subpath
// repeats its first point at the end.
type subpath struct {
	pts [][2]float32
}

func flatten(path *lathe.Path, xf transform) []subpath {
	var (
		out   []subpath
		cur   *subpath
		start lathe.Point
		last  lathe.Point
	)
	push := func(p lathe.Point) {
		x, y := xf.apply(p)
		cur.pts = append(cur.pts, [2]float32{x, y})
		last = p
	}
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case lathe.MoveTo:
			out = append(out, subpath{})
			cur = &out[len(out)-1]
			start = e.Point
			push(e.Point)
		case lathe.LineTo:
			push(e.Point)
		case lathe.QuadTo:
			q := lathe.QuadBez{P0: last, P1: e.Control, P2: e.Point}
			for i := 1; i <= curveSteps; i++ {
				push(q.Eval(float64(i) / curveSteps))
			}
		case lathe.CubicTo:
			c := lathe.CubicBez{P0: last, P1: e.Control1, P2: e.Control2, P3: e.Point}
			for i := 1; i <= curveSteps; i++ {
				push(c.Eval(float64(i) / curveSteps))
			}
		case lathe.Close:
			push(start)
		}
	}
	return out
}

// strokePath covers every chord with a rectangle of half-width hw and every
// joint with a square. All pieces share one orientation, so overlapping
// coverage saturates instead of cancelling.
func strokePath(ras *vector.Rasterizer, path *lathe.Path, xf transform, hw float32) {
	for _, sp := range flatten(path, xf) {
		for i, p := range sp.pts {
			square(ras, p, hw)
			if i == 0 {
				continue
			}
			chord(ras, sp.pts[i-1], p, hw)
		}
	}
}

func chord(ras *vector.Rasterizer, a, b [2]float32, hw float32) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	ras.MoveTo(a[0]+nx, a[1]+ny)
	ras.LineTo(b[0]+nx, b[1]+ny)
	ras.LineTo(b[0]-nx, b[1]-ny)
	ras.LineTo(a[0]-nx, a[1]-ny)
	ras.ClosePath()
}

func square(ras *vector.Rasterizer, p [2]float32, hw float32) {
	ras.MoveTo(p[0]-hw, p[1]+hw)
	ras.LineTo(p[0]+hw, p[1]+hw)
	ras.LineTo(p[0]+hw, p[1]-hw)
	ras.LineTo(p[0]-hw, p[1]-hw)
	ras.ClosePath()
}
