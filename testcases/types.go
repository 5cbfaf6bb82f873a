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

// Package testcases defines a shared corpus of annular sector shapes, used
// by the package tests and by the export and genpdf tools.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sector"
)

// TestCase pairs a sector specification with a canvas size. All specs
// place their geometry inside the canvas rectangle.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Spec   sector.Spec
	Width  int // canvas width in pixels
	Height int // canvas height in pixels
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
