package backdrop

import (
	"math"
)

type PathOpKind int

const (
	PathOpMoveTo PathOpKind = iota
	PathOpLineTo
	PathOpQuadTo
	PathOpArc
	PathOpClose
)

// PathOp is one recorded path command.
//
//	MoveTo, LineTo : P0
//	QuadTo         : P0 is control point, P1 is end point
//	Arc            : P0 is center, Radius, StartAngle, EndAngle (always increasing)
type PathOp struct {
	Kind PathOpKind

	P0, P1 FPoint

	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Path records drawing commands the same way 2d canvas does.
// Backends either replay Ops or use Flatten.
type Path struct {
	Ops []PathOp
}

func (p *Path) Reset() {
	p.Ops = p.Ops[:0]
}

func (p *Path) IsEmpty() bool {
	return len(p.Ops) <= 0
}

func (p *Path) MoveTo(pt FPoint) {
	p.Ops = append(p.Ops, PathOp{Kind: PathOpMoveTo, P0: pt})
}

func (p *Path) LineTo(pt FPoint) {
	p.Ops = append(p.Ops, PathOp{Kind: PathOpLineTo, P0: pt})
}

func (p *Path) QuadTo(control, end FPoint) {
	p.Ops = append(p.Ops, PathOp{Kind: PathOpQuadTo, P0: control, P1: end})
}

// Arc adds arc around center, going clockwise on screen from startAngle to endAngle.
func (p *Path) Arc(center FPoint, radius, startAngle, endAngle float64) {
	p.Ops = append(p.Ops, PathOp{
		Kind:       PathOpArc,
		P0:         center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	})
}

func (p *Path) Close() {
	p.Ops = append(p.Ops, PathOp{Kind: PathOpClose})
}

// Polyline is one flattened sub path.
type Polyline struct {
	Points []FPoint
	Closed bool
}

// Flatten converts path into polylines.
// tolerance is max distance in pixels between curve and its segments.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.25
	}

	var lines []Polyline
	var cur Polyline
	var pen FPoint

	flush := func() {
		if len(cur.Points) > 0 {
			lines = append(lines, cur)
		}
		cur = Polyline{}
	}

	for _, op := range p.Ops {
		switch op.Kind {
		case PathOpMoveTo:
			flush()
			cur.Points = append(cur.Points, op.P0)
			pen = op.P0
		case PathOpLineTo:
			if len(cur.Points) <= 0 {
				cur.Points = append(cur.Points, pen)
			}
			cur.Points = append(cur.Points, op.P0)
			pen = op.P0
		case PathOpQuadTo:
			if len(cur.Points) <= 0 {
				cur.Points = append(cur.Points, pen)
			}
			cur.Points = appendQuad(cur.Points, pen, op.P0, op.P1, tolerance)
			pen = op.P1
		case PathOpArc:
			start := FPt(
				op.P0.X+math.Cos(op.StartAngle)*op.Radius,
				op.P0.Y+math.Sin(op.StartAngle)*op.Radius,
			)
			cur.Points = append(cur.Points, start)
			cur.Points = appendArc(cur.Points, op, tolerance)
			pen = cur.Points[len(cur.Points)-1]
		case PathOpClose:
			if len(cur.Points) > 0 {
				cur.Closed = true
				pen = cur.Points[0]
				flush()
			}
		}
	}

	flush()

	return lines
}

func appendQuad(pts []FPoint, p0, p1, p2 FPoint, tolerance float64) []FPoint {
	// control point distance from chord bounds curve deviation
	dd := p0.Add(p2).Scale(0.5).Sub(p1).Length()
	n := int(math.Ceil(math.Sqrt(dd / tolerance)))
	n = Clamp(n, 1, 64)

	for i := 1; i <= n; i++ {
		t := f64(i) / f64(n)
		mt := 1 - t
		pts = append(pts, FPt(
			mt*mt*p0.X+2*mt*t*p1.X+t*t*p2.X,
			mt*mt*p0.Y+2*mt*t*p1.Y+t*t*p2.Y,
		))
	}

	return pts
}

func appendArc(pts []FPoint, op PathOp, tolerance float64) []FPoint {
	sweep := op.EndAngle - op.StartAngle
	if sweep <= 0 || op.Radius <= 0 {
		return pts
	}
	sweep = min(sweep, math.Pi*2)

	// segment angle so that sagitta stays under tolerance
	step := math.Pi * 0.5
	if op.Radius > tolerance {
		step = 2 * math.Acos(1-tolerance/op.Radius)
	}
	n := int(math.Ceil(sweep / step))
	n = Clamp(n, 4, 256)

	for i := 1; i <= n; i++ {
		a := op.StartAngle + sweep*f64(i)/f64(n)
		pts = append(pts, FPt(
			op.P0.X+math.Cos(a)*op.Radius,
			op.P0.Y+math.Sin(a)*op.Radius,
		))
	}

	return pts
}
