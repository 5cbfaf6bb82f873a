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

package testcases

import "seehuhn.de/go/sector"

// Degenerate cases exercise the fallback cascade. They still produce
// geometry; configurations yielding no geometry at all are covered by the
// unit tests instead.
var degenerateCases = []TestCase{
	{
		Name: "tiny_span_sharp_fallback", // corners cannot fit, rounding dropped
		Spec: sector.Spec{
			Center:       pt(64, 64),
			InnerRadius:  25,
			OuterRadius:  50,
			StartAngle:   0,
			EndAngle:     2,
			CornerRadius: sector.Abs(10),
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "forced_dot", // corners cannot fit, sector renders as a dot
		Spec: sector.Spec{
			Center:            pt(64, 64),
			InnerRadius:       25,
			OuterRadius:       50,
			StartAngle:        0,
			EndAngle:          2,
			CornerRadius:      sector.Abs(10),
			ForceCornerRadius: true,
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "full_turn", // span capped just below 360°, thin seam remains
		Spec: sector.Spec{
			Center:      pt(64, 64),
			InnerRadius: 25,
			OuterRadius: 50,
			StartAngle:  0,
			EndAngle:    360,
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "zero_thickness", // inner and outer radius coincide
		Spec: sector.Spec{
			Center:      pt(64, 64),
			InnerRadius: 50,
			OuterRadius: 50,
			StartAngle:  0,
			EndAngle:    180,
		},
		Width:  128,
		Height: 128,
	},
}
