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
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
)

// Rasterize renders the filled outline as a coverage mask of the given
// size. Each alpha value is the fraction of the pixel's area covered by
// the sector, from 0 (outside) to 255 (inside). Arcs are converted to
// cubic Béziers via [Path.Data] first.
func Rasterize(p Path, width, height int) *image.Alpha {
	z := vector.NewRasterizer(width, height)
	for cmd, pts := range p.Data().Iter() {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdCubeTo:
			z.CubeTo(
				float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			z.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	src := image.NewUniform(color.Alpha{A: 0xff})
	z.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}
