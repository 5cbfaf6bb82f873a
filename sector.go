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

// Package sector computes the boundary outline of annular ("donut")
// sectors, the building block of pie, donut and polar bar charts.
//
// Given a center point, an inner and outer radius, and a start and end
// angle, [Spec.Outline] returns the closed boundary of the sector as a
// sequence of move/arc/line/close commands, with optionally rounded
// corners. The result can be encoded as SVG path data ([Path.SVG]),
// converted to a cubic-Bézier path for rendering ([Path.Data]), or
// rasterized into a coverage mask ([Rasterize]).
//
// All computations are pure: nothing persists between calls, and every
// function in this package is safe for concurrent use.
package sector

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Spec describes one annular sector. Angles are in degrees, measured
// counter-clockwise from the positive x axis; they are not restricted to
// [0, 360).
type Spec struct {
	// Center is the common center of the inner and outer arcs.
	Center vec.Vec2

	// InnerRadius and OuterRadius bound the annulus. An InnerRadius of
	// zero gives a plain pie slice.
	InnerRadius float64
	OuterRadius float64

	// StartAngle and EndAngle delimit the angular span. The sweep runs
	// from StartAngle towards EndAngle in either direction.
	StartAngle float64
	EndAngle   float64

	// CornerRadius rounds the sector's corners. The resolved value is
	// clamped to half the annulus thickness. The zero value means sharp
	// corners.
	CornerRadius CornerRadius

	// ForceCornerRadius degrades the sector to a full circle of radius
	// CornerRadius when the angular span is too short to fit the rounded
	// corners. Without it, such sectors fall back to sharp corners.
	ForceCornerRadius bool
}

var (
	// ErrNoGeometry reports a degenerate configuration (OuterRadius <
	// InnerRadius, or StartAngle == EndAngle) which describes an empty
	// region. Callers should render nothing.
	ErrNoGeometry = errors.New("sector: no geometry")

	// ErrNotFinite reports NaN or infinite inputs.
	ErrNotFinite = errors.New("sector: non-finite input")
)

// Outline computes the sector's boundary as a single closed contour.
//
// When the resolved corner radius is positive and the angular span is less
// than a full turn, the corners are rounded; if the rounding cannot fit
// within the span, the sector degrades to sharp corners, or, with
// ForceCornerRadius set, to a full circle of the corner radius.
func (s Spec) Outline() (Path, error) {
	if s.OuterRadius < s.InnerRadius || s.StartAngle == s.EndAngle {
		return nil, ErrNoGeometry
	}

	cr := s.CornerRadius.resolve(s.OuterRadius - s.InnerRadius)
	if !isFinite(s.Center.X) || !isFinite(s.Center.Y) ||
		!isFinite(s.InnerRadius) || !isFinite(s.OuterRadius) ||
		!isFinite(s.StartAngle) || !isFinite(s.EndAngle) || !isFinite(cr) {
		return nil, ErrNotFinite
	}

	if cr > 0 && math.Abs(s.StartAngle-s.EndAngle) < 360 {
		cr = math.Min(cr, (s.OuterRadius-s.InnerRadius)/2)
		return s.roundedOutline(cr), nil
	}
	return s.sharpOutline(), nil
}

// sharpOutline builds the boundary with square corners: the outer arc,
// then either the inner arc traversed in reverse, or a straight line to
// the center when the inner radius is zero.
func (s Spec) sharpOutline() Path {
	delta := deltaAngle(s.StartAngle, s.EndAngle)
	tempEnd := s.StartAngle + delta

	largeArc := math.Abs(delta) > 180
	sweep := s.StartAngle > tempEnd

	p := Path{
		MoveTo{polarPoint(s.Center, s.OuterRadius, s.StartAngle)},
		ArcTo{
			Radius:   s.OuterRadius,
			LargeArc: largeArc,
			Sweep:    sweep,
			Point:    polarPoint(s.Center, s.OuterRadius, tempEnd),
		},
	}
	if s.InnerRadius > 0 {
		// The inner arc runs in the opposite rotational sense, so its
		// sweep flag is the complement of the outer one.
		p = append(p,
			LineTo{polarPoint(s.Center, s.InnerRadius, tempEnd)},
			ArcTo{
				Radius:   s.InnerRadius,
				LargeArc: largeArc,
				Sweep:    !sweep,
				Point:    polarPoint(s.Center, s.InnerRadius, s.StartAngle),
			},
		)
	} else {
		p = append(p, LineTo{s.Center})
	}
	return append(p, Close{})
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
