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

// CornerRadius is the requested rounding of a sector's corners, either an
// absolute length or a percentage of the annulus thickness
// (OuterRadius - InnerRadius). The zero value means no rounding.
type CornerRadius struct {
	value   float64
	percent bool
}

// Abs returns a corner radius of an absolute length.
func Abs(v float64) CornerRadius {
	return CornerRadius{value: v}
}

// Percent returns a corner radius given as a percentage of the annulus
// thickness, so Percent(50) resolves to half the thickness.
func Percent(v float64) CornerRadius {
	return CornerRadius{value: v, percent: true}
}

// resolve converts the corner radius into an absolute length for the given
// annulus thickness, clamped to [0, thickness]. NaN resolves to zero.
func (c CornerRadius) resolve(thickness float64) float64 {
	v := c.value
	if c.percent {
		v = v * thickness / 100
	}
	if !(v > 0) {
		return 0
	}
	return math.Min(v, thickness)
}

// tangentSolution describes where the rounding circle of one corner
// touches the sector boundary.
type tangentSolution struct {
	circleTangency vec.Vec2 // contact point on the main arc
	lineTangency   vec.Vec2 // contact point on the radial line
	theta          float64  // angular offset consumed by the corner, degrees
}

// tangentCircle places a rounding circle of radius cornerRadius so that it
// touches both the main circle of the given radius and the radial line at
// the given angle (degrees). With external set, the rounding circle lies
// outside the main circle, as needed for inner-edge corners which bulge
// into the annulus; otherwise it lies inside. sgn selects on which
// rotational side of the radial line the corner is cut.
//
// The rounding circle's own center lies on a circle of radius
// centerRadius = radius ∓ cornerRadius, at an angular offset of
// theta = asin(cornerRadius/centerRadius) from the radial line. Outline
// clamps cornerRadius to half the annulus thickness, which guarantees
// cornerRadius <= centerRadius in both cases, so the asin argument stays
// within [0, 1].
func tangentCircle(center vec.Vec2, radius, angle, sgn float64, external bool, cornerRadius float64) tangentSolution {
	centerRadius := radius - cornerRadius
	if external {
		centerRadius = radius + cornerRadius
	}
	theta := math.Asin(cornerRadius/centerRadius) / degRad
	centerAngle := angle + sgn*theta

	return tangentSolution{
		circleTangency: polarPoint(center, radius, centerAngle),
		lineTangency:   polarPoint(center, centerRadius*math.Cos(theta*degRad), angle),
		theta:          theta,
	}
}
