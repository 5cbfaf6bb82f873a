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

var sharpCases = []TestCase{
	{
		Name: "quarter_pie",
		Spec: sector.Spec{
			Center:      pt(64, 64),
			OuterRadius: 50,
			StartAngle:  0,
			EndAngle:    90,
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "quarter_donut",
		Spec: sector.Spec{
			Center:      pt(64, 64),
			InnerRadius: 25,
			OuterRadius: 50,
			StartAngle:  0,
			EndAngle:    90,
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "three_quarter_donut", // large-arc flag set
		Spec: sector.Spec{
			Center:      pt(64, 64),
			InnerRadius: 25,
			OuterRadius: 50,
			StartAngle:  30,
			EndAngle:    300,
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "reversed_sweep", // end angle below start angle
		Spec: sector.Spec{
			Center:      pt(64, 64),
			InnerRadius: 25,
			OuterRadius: 50,
			StartAngle:  120,
			EndAngle:    -30,
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "thin_ring",
		Spec: sector.Spec{
			Center:      pt(64, 64),
			InnerRadius: 48,
			OuterRadius: 50,
			StartAngle:  -60,
			EndAngle:    210,
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "half_pie",
		Spec: sector.Spec{
			Center:      pt(64, 64),
			OuterRadius: 50,
			StartAngle:  180,
			EndAngle:    360,
		},
		Width:  128,
		Height: 128,
	},
}
