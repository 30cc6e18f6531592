package backdrop

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

const rasterTolerance = 0.2

// RasterCanvas draws on image.RGBA without any gpu.
// Used for headless snapshots and tests.
type RasterCanvas struct {
	Image *image.RGBA

	BlendStack []BlendMode

	rasterizer *vector.Rasterizer
	mask       *image.Alpha
}

func NewRasterCanvas(width, height int) *RasterCanvas {
	rc := new(RasterCanvas)
	rc.BlendStack = append(rc.BlendStack, BlendSourceOver)
	rc.Resize(width, height)
	return rc
}

func (rc *RasterCanvas) Size() (int, int) {
	return ImageSize(rc.Image)
}

func (rc *RasterCanvas) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	rc.Image = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (rc *RasterCanvas) PushBlend(mode BlendMode) {
	rc.BlendStack = append(rc.BlendStack, mode)
}

func (rc *RasterCanvas) PopBlend() {
	if len(rc.BlendStack) > 1 {
		rc.BlendStack = rc.BlendStack[:len(rc.BlendStack)-1]
	}
}

func (rc *RasterCanvas) CurrentBlend() BlendMode {
	return rc.BlendStack[len(rc.BlendStack)-1]
}

// At returns pixel as non premultiplied color.
func (rc *RasterCanvas) At(x, y int) color.NRGBA {
	return ColorToNRGBA(rc.Image.RGBAAt(x, y))
}

func (rc *RasterCanvas) Fill(rect FRectangle, paint Paint) {
	bounds := FRectToRect(rect).Intersect(rc.Image.Bounds())
	if bounds.Empty() {
		return
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			center := FPt(f64(x)+0.5, f64(y)+0.5)
			if !center.In(rect) {
				continue
			}
			rc.blendPixel(x, y, paint.ColorAt(center), 255)
		}
	}
}

func (rc *RasterCanvas) FillCircle(center FPoint, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	var path Path
	CirclePath(&path, center, radius)
	rc.fillPolygons(path.Flatten(rasterTolerance), paint)
}

func (rc *RasterCanvas) StrokePath(path *Path, width float64, paint Paint) {
	if width <= 0 {
		return
	}

	hw := width * 0.5

	var quads [][]FPoint

	for _, line := range path.Flatten(rasterTolerance) {
		pts := line.Points
		if line.Closed && len(pts) > 1 {
			pts = append(pts, pts[0])
		}
		for i := 0; i+1 < len(pts); i++ {
			a, b := pts[i], pts[i+1]
			dir := b.Sub(a).Normalize()
			if dir.Eq(FPoint{}) {
				continue
			}
			n := FPt(-dir.Y*hw, dir.X*hw)
			quads = append(quads, []FPoint{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
		}
	}

	polys := make([]Polyline, len(quads))
	for i, q := range quads {
		polys[i] = Polyline{Points: q, Closed: true}
	}

	rc.fillPolygons(polys, paint)
}

func (rc *RasterCanvas) fillPolygons(polys []Polyline, paint Paint) {
	// ================================
	// find pixel bounds
	// ================================
	var fbounds FRectangle
	first := true
	for _, poly := range polys {
		for _, pt := range poly.Points {
			if first {
				fbounds = FRectangle{pt, pt}
				first = false
				continue
			}
			fbounds.Min.X = min(fbounds.Min.X, pt.X)
			fbounds.Min.Y = min(fbounds.Min.Y, pt.Y)
			fbounds.Max.X = max(fbounds.Max.X, pt.X)
			fbounds.Max.Y = max(fbounds.Max.Y, pt.Y)
		}
	}
	if first {
		return
	}

	bounds := FRectToRect(fbounds).Intersect(rc.Image.Bounds())
	if bounds.Empty() {
		return
	}

	w, h := bounds.Dx(), bounds.Dy()

	// ================================
	// rasterize coverage
	// ================================
	if rc.rasterizer == nil {
		rc.rasterizer = vector.NewRasterizer(w, h)
	} else {
		rc.rasterizer.Reset(w, h)
	}
	z := rc.rasterizer
	z.DrawOp = draw.Src

	offset := PointToFPoint(bounds.Min)

	for _, poly := range polys {
		if len(poly.Points) < 3 {
			continue
		}
		pts := poly.Points

		// rasterizer sums signed area,
		// so every polygon goes in the same winding or overlaps would cancel out
		if signedArea(pts) > 0 {
			pts = reversed(pts)
		}

		z.MoveTo(f32(pts[0].X-offset.X), f32(pts[0].Y-offset.Y))
		for _, pt := range pts[1:] {
			z.LineTo(f32(pt.X-offset.X), f32(pt.Y-offset.Y))
		}
		z.ClosePath()
	}

	if rc.mask == nil || rc.mask.Bounds().Dx() < w || rc.mask.Bounds().Dy() < h {
		rc.mask = image.NewAlpha(image.Rect(0, 0, max(w, 64), max(h, 64)))
	}
	maskRect := image.Rect(0, 0, w, h)
	draw.Draw(rc.mask, maskRect, image.Transparent, image.Point{}, draw.Src)
	z.Draw(rc.mask, maskRect, image.Opaque, image.Point{})

	// ================================
	// composite
	// ================================
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coverage := rc.mask.AlphaAt(x, y).A
			if coverage == 0 {
				continue
			}
			px, py := bounds.Min.X+x, bounds.Min.Y+y
			clr := paint.ColorAt(FPt(f64(px)+0.5, f64(py)+0.5))
			rc.blendPixel(px, py, clr, coverage)
		}
	}
}

func (rc *RasterCanvas) blendPixel(x, y int, src color.NRGBA, coverage uint8) {
	sa := f64(src.A) / 255 * f64(coverage) / 255
	if sa <= 0 {
		return
	}

	sr := f64(src.R) / 255 * sa
	sg := f64(src.G) / 255 * sa
	sb := f64(src.B) / 255 * sa

	d := rc.Image.RGBAAt(x, y)
	dr, dg, db, da := f64(d.R)/255, f64(d.G)/255, f64(d.B)/255, f64(d.A)/255

	var out [4]float64

	switch rc.CurrentBlend() {
	case BlendAdditive:
		out = [4]float64{
			min(sr+dr, 1), min(sg+dg, 1), min(sb+db, 1), min(sa+da, 1),
		}
	default:
		inv := 1 - sa
		out = [4]float64{
			sr + dr*inv, sg + dg*inv, sb + db*inv, sa + da*inv,
		}
	}

	rc.Image.SetRGBA(x, y, color.RGBA{to8(out[0]), to8(out[1]), to8(out[2]), to8(out[3])})
}

func PointToFPoint(p image.Point) FPoint {
	return FPoint{X: f64(p.X), Y: f64(p.Y)}
}

func signedArea(pts []FPoint) float64 {
	area := 0.0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	return area * 0.5
}

func reversed(pts []FPoint) []FPoint {
	out := make([]FPoint, len(pts))
	for i, pt := range pts {
		out[len(pts)-1-i] = pt
	}
	return out
}
