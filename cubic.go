// seehuhn.de/go/sector - annular sector geometry for radial charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sector

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Data converts the outline into a cubic-Bézier path. Each arc command is
// split into segments of at most a quarter turn, which keeps the radial
// error of the approximation below 3e-4 times the radius.
func (p Path) Data() *path.Data {
	d := &path.Data{}
	var cur, start vec.Vec2
	for _, cmd := range p {
		switch c := cmd.(type) {
		case MoveTo:
			d = d.MoveTo(c.Point)
			cur, start = c.Point, c.Point
		case LineTo:
			d = d.LineTo(c.Point)
			cur = c.Point
		case ArcTo:
			to := c.Point
			if c.Rel {
				to = cur.Add(c.Point)
			}
			d = appendArc(d, cur, to, c.Radius, c.LargeArc, c.Sweep)
			cur = to
		case Close:
			d = d.Close()
			cur = start
		}
	}
	return d
}

// appendArc appends the circular arc from p0 to p1 as cubic Bézier
// segments. The center is recovered from the endpoint form first,
// following the SVG endpoint-to-center arc parameterization restricted to
// circles; the largeArc and sweep flags select between the four candidate
// arcs, with sweep meaning travel towards decreasing angles (see [ArcTo]).
func appendArc(d *path.Data, p0, p1 vec.Vec2, r float64, largeArc, sweep bool) *path.Data {
	if p0 == p1 || r == 0 {
		return d.LineTo(p1)
	}
	r = math.Abs(r)

	x1p := (p0.X - p1.X) / 2
	y1p := (p0.Y - p1.Y) / 2
	q2 := x1p*x1p + y1p*y1p

	// If the endpoints are further apart than 2r, no circle of radius r
	// passes through both; scale the radius up to the minimum that fits
	// (the SVG out-of-range correction).
	if r*r < q2 {
		r = math.Sqrt(q2)
	}

	k := math.Sqrt(math.Max(0, r*r-q2) / q2)
	if largeArc != sweep {
		k = -k
	}
	center := vec.Vec2{
		X: (p0.X+p1.X)/2 + k*y1p,
		Y: (p0.Y+p1.Y)/2 - k*x1p,
	}

	a0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	da := a1 - a0
	if sweep && da > 0 {
		da -= 2 * math.Pi
	} else if !sweep && da < 0 {
		da += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(da)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := da / float64(n)

	// Control point distance for a circular arc segment of angle step.
	h := 4.0 / 3.0 * math.Tan(step/4) * r

	for i := range n {
		b0 := a0 + float64(i)*step
		b1 := b0 + step
		sin0, cos0 := math.Sincos(b0)
		sin1, cos1 := math.Sincos(b1)

		from := vec.Vec2{X: center.X + r*cos0, Y: center.Y + r*sin0}
		to := vec.Vec2{X: center.X + r*cos1, Y: center.Y + r*sin1}
		c1 := vec.Vec2{X: from.X - h*sin0, Y: from.Y + h*cos0}
		c2 := vec.Vec2{X: to.X + h*sin1, Y: to.Y - h*cos1}
		d = d.CubeTo(c1, c2, to)
	}
	return d
}
