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

func TestDeltaAngle(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		want       float64
	}{
		{"quarter", 0, 90, 90},
		{"reversed", 90, 0, -90},
		{"full_turn_capped", 0, 360, maxDeltaAngle},
		{"negative_full_turn_capped", 0, -360, -maxDeltaAngle},
		{"two_turns_capped", 0, 720, maxDeltaAngle},
		{"equal", 5, 5, 0},
		{"unnormalized_range", -450, -360, 90},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := deltaAngle(c.start, c.end); got != c.want {
				t.Errorf("deltaAngle(%g, %g) = %g, want %g",
					c.start, c.end, got, c.want)
			}
		})
	}
}

func TestSign(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{2.5, 1},
		{-0.001, -1},
		{0, 0},
		{math.Copysign(0, -1), 0},
	}
	for _, c := range cases {
		if got := sign(c.x); got != c.want {
			t.Errorf("sign(%g) = %g, want %g", c.x, got, c.want)
		}
	}
}

func TestPolarPoint(t *testing.T) {
	center := vec.Vec2{X: 1, Y: 2}
	cases := []struct {
		angle float64
		want  vec.Vec2
	}{
		{0, vec.Vec2{X: 11, Y: 2}},
		{90, vec.Vec2{X: 1, Y: 12}},
		{180, vec.Vec2{X: -9, Y: 2}},
		{-90, vec.Vec2{X: 1, Y: -8}},
		{360, vec.Vec2{X: 11, Y: 2}},
	}
	for _, c := range cases {
		got := polarPoint(center, 10, c.angle)
		if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
			t.Errorf("polarPoint(%g°) = (%g, %g), want (%g, %g)",
				c.angle, got.X, got.Y, c.want.X, c.want.Y)
		}
	}
}
