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

// degRad converts degrees to radians.
const degRad = math.Pi / 180

// maxDeltaAngle caps the magnitude of a sector's angular span. A true 360°
// sweep would make the start and end points of the outer arc coincide, and
// the arc flags could then no longer distinguish a full circle from an
// empty arc. Stopping just short of a full turn keeps the two endpoints
// distinct, at the cost of an invisibly thin seam.
const maxDeltaAngle = 359.999

// polarPoint converts polar coordinates (radius, angle in degrees,
// measured counter-clockwise from the positive x axis) around center into
// a Cartesian point.
func polarPoint(center vec.Vec2, radius, angle float64) vec.Vec2 {
	return vec.Vec2{
		X: center.X + radius*math.Cos(angle*degRad),
		Y: center.Y + radius*math.Sin(angle*degRad),
	}
}

// sign returns -1, 0, or 1 depending on the sign of x.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// deltaAngle returns the signed angular span from startAngle to endAngle,
// with its magnitude capped at maxDeltaAngle.
func deltaAngle(startAngle, endAngle float64) float64 {
	d := endAngle - startAngle
	return sign(d) * math.Min(math.Abs(d), maxDeltaAngle)
}
