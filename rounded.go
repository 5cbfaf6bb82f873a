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

	"seehuhn.de/go/geom/vec"
)

// roundedOutline builds the boundary with rounded corners. cornerRadius is
// the resolved corner radius, positive and already clamped to half the
// annulus thickness.
//
// Each corner consumes an angular share of the sweep, determined by the
// tangent-circle construction. If the two outer corners together need more
// than the whole span, the rounding cannot fit: the sector degrades to a
// full circle of the corner radius (with ForceCornerRadius) or to sharp
// corners. If only the inner corners do not fit, the inner edge degrades
// to a plain wedge tip.
func (s Spec) roundedOutline(cornerRadius float64) Path {
	sgn := sign(s.EndAngle - s.StartAngle)
	span := math.Abs(s.StartAngle - s.EndAngle)

	so := tangentCircle(s.Center, s.OuterRadius, s.StartAngle, sgn, false, cornerRadius)
	eo := tangentCircle(s.Center, s.OuterRadius, s.EndAngle, -sgn, false, cornerRadius)
	outerArcAngle := span - so.theta - eo.theta

	if outerArcAngle < 0 {
		if s.ForceCornerRadius {
			return dotOutline(so.lineTangency, cornerRadius)
		}
		return s.sharpOutline()
	}

	// One rotational direction across the whole outer boundary.
	sweep := sgn < 0

	p := Path{
		MoveTo{so.lineTangency},
		ArcTo{Radius: cornerRadius, Sweep: sweep, Point: so.circleTangency},
		ArcTo{
			Radius:   s.OuterRadius,
			LargeArc: outerArcAngle > 180,
			Sweep:    sweep,
			Point:    eo.circleTangency,
		},
		ArcTo{Radius: cornerRadius, Sweep: sweep, Point: eo.lineTangency},
	}

	if s.InnerRadius <= 0 {
		return append(p, LineTo{s.Center}, Close{})
	}

	si := tangentCircle(s.Center, s.InnerRadius, s.StartAngle, sgn, true, cornerRadius)
	ei := tangentCircle(s.Center, s.InnerRadius, s.EndAngle, -sgn, true, cornerRadius)
	innerArcAngle := span - si.theta - ei.theta

	if innerArcAngle < 0 {
		// The inner edge is too short for its own corners.
		return append(p, LineTo{s.Center}, Close{})
	}

	// The inner edge is walked in reverse, so the main inner arc gets the
	// complementary sweep flag while the corner arcs keep the outer one.
	return append(p,
		LineTo{ei.lineTangency},
		ArcTo{Radius: cornerRadius, Sweep: sweep, Point: ei.circleTangency},
		ArcTo{
			Radius:   s.InnerRadius,
			LargeArc: innerArcAngle > 180,
			Sweep:    !sweep,
			Point:    si.circleTangency,
		},
		ArcTo{Radius: cornerRadius, Sweep: sweep, Point: si.lineTangency},
		Close{},
	)
}

// dotOutline draws a full circle of radius r, starting at the given point,
// as two opposing half-circle arcs in relative form. It is used when a
// forced corner radius cannot fit in the angular span: the sector renders
// as a dot.
func dotOutline(at vec.Vec2, r float64) Path {
	return Path{
		MoveTo{at},
		ArcTo{Radius: r, Sweep: true, Rel: true, Point: vec.Vec2{X: 2 * r}},
		ArcTo{Radius: r, Sweep: true, Rel: true, Point: vec.Vec2{X: -2 * r}},
		Close{},
	}
}
