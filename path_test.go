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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestAppendSVG(t *testing.T) {
	cases := []struct {
		name string
		path Path
		want string
	}{
		{
			name: "move_line_close",
			path: Path{
				MoveTo{vec.Vec2{X: 1.5, Y: -2}},
				LineTo{vec.Vec2{X: 0, Y: 0}},
				Close{},
			},
			want: "M 1.5,-2 L 0,0 Z",
		},
		{
			name: "arc_flags",
			path: Path{
				MoveTo{vec.Vec2{X: 10, Y: 0}},
				ArcTo{Radius: 3, LargeArc: true, Sweep: false, Point: vec.Vec2{X: 4, Y: 5}},
				ArcTo{Radius: 3, LargeArc: false, Sweep: true, Point: vec.Vec2{X: 10, Y: 0}},
				Close{},
			},
			want: "M 10,0 A 3,3,0,1,0,4,5 A 3,3,0,0,1,10,0 Z",
		},
		{
			name: "relative_arcs",
			path: Path{
				MoveTo{vec.Vec2{X: 10, Y: 0}},
				ArcTo{Radius: 5, Sweep: true, Rel: true, Point: vec.Vec2{X: 10}},
				ArcTo{Radius: 5, Sweep: true, Rel: true, Point: vec.Vec2{X: -10}},
				Close{},
			},
			want: "M 10,0 a 5,5,0,0,1,10,0 a 5,5,0,0,1,-10,0 Z",
		},
		{
			name: "empty",
			path: nil,
			want: "",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.path.SVG(); got != c.want {
				t.Errorf("SVG() = %q, want %q", got, c.want)
			}
		})
	}
}

// TestCoordinateRounding checks that floating point residue near exact
// angles does not leak into the output.
func TestCoordinateRounding(t *testing.T) {
	p := Path{MoveTo{vec.Vec2{X: 100 * math.Cos(90*degRad), Y: 100 * math.Sin(90*degRad)}}}
	if got, want := p.SVG(), "M 0,100"; got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}

	p = Path{MoveTo{vec.Vec2{X: math.Copysign(0, -1), Y: 0.1 + 0.2}}}
	if got, want := p.SVG(), "M 0,0.3"; got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
}

func TestAppendSVGReuse(t *testing.T) {
	p := Path{
		MoveTo{vec.Vec2{X: 1, Y: 2}},
		LineTo{vec.Vec2{X: 3, Y: 4}},
		Close{},
	}
	buf := make([]byte, 0, 64)
	first := string(p.AppendSVG(buf))
	second := string(p.AppendSVG(buf))
	if first != second {
		t.Errorf("buffer reuse changed output: %q vs %q", first, second)
	}
}
