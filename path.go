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
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Command is a single drawing instruction in a sector outline.
type Command interface {
	isCommand()
}

// MoveTo starts the contour at a point.
type MoveTo struct {
	Point vec.Vec2
}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point vec.Vec2
}

// ArcTo draws a circular arc of the given radius to a point.
//
// LargeArc selects, of the two arcs of the given radius through the
// current and the target point, the one spanning more than 180°. Sweep
// selects the rotational direction of travel: set means the arc runs
// towards decreasing angles.
//
// When Rel is set, Point holds an offset from the current point and the
// command is emitted in relative form ("a"). Only the degenerate
// full-circle fallback uses this.
type ArcTo struct {
	Radius   float64
	LargeArc bool
	Sweep    bool
	Point    vec.Vec2
	Rel      bool
}

// Close closes the contour.
type Close struct{}

func (MoveTo) isCommand() {}
func (LineTo) isCommand() {}
func (ArcTo) isCommand()  {}
func (Close) isCommand()  {}

// Path is a sector outline as an ordered command sequence. Outlines
// produced by this package form a single closed contour.
type Path []Command

// SVG returns the outline in SVG path data syntax, usable verbatim as the
// d attribute of an SVG <path> element.
func (p Path) SVG() string {
	return string(p.AppendSVG(nil))
}

// AppendSVG appends the SVG path data form of p to buf and returns the
// extended buffer. Callers rendering in a tight loop can reuse the buffer
// to avoid allocations.
func (p Path) AppendSVG(buf []byte) []byte {
	for i, cmd := range p {
		if i > 0 {
			buf = append(buf, ' ')
		}
		switch c := cmd.(type) {
		case MoveTo:
			buf = append(buf, 'M', ' ')
			buf = appendPoint(buf, c.Point)
		case LineTo:
			buf = append(buf, 'L', ' ')
			buf = appendPoint(buf, c.Point)
		case ArcTo:
			if c.Rel {
				buf = append(buf, 'a', ' ')
			} else {
				buf = append(buf, 'A', ' ')
			}
			buf = appendCoord(buf, c.Radius)
			buf = append(buf, ',')
			buf = appendCoord(buf, c.Radius)
			buf = append(buf, ",0,"...)
			buf = appendFlag(buf, c.LargeArc)
			buf = append(buf, ',')
			buf = appendFlag(buf, c.Sweep)
			buf = append(buf, ',')
			buf = appendPoint(buf, c.Point)
		case Close:
			buf = append(buf, 'Z')
		}
	}
	return buf
}

// appendCoord appends a coordinate in shortest decimal form. Values are
// rounded to 9 decimal places first, so that floating point residue near
// exact angles (100·cos 90° is about 6e-15) prints as 0.
func appendCoord(buf []byte, v float64) []byte {
	if r := math.Round(v*1e9) / 1e9; isFinite(r) {
		v = r
	}
	if v == 0 {
		v = 0 // avoid "-0"
	}
	return strconv.AppendFloat(buf, v, 'g', -1, 64)
}

func appendPoint(buf []byte, p vec.Vec2) []byte {
	buf = appendCoord(buf, p.X)
	buf = append(buf, ',')
	return appendCoord(buf, p.Y)
}

func appendFlag(buf []byte, flag bool) []byte {
	if flag {
		return append(buf, '1')
	}
	return append(buf, '0')
}
