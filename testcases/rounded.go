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

var roundedCases = []TestCase{
	{
		Name: "donut_corners",
		Spec: sector.Spec{
			Center:       pt(64, 64),
			InnerRadius:  25,
			OuterRadius:  50,
			StartAngle:   0,
			EndAngle:     90,
			CornerRadius: sector.Abs(5),
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "pie_corners", // inner radius zero, wedge tip stays sharp
		Spec: sector.Spec{
			Center:       pt(64, 64),
			OuterRadius:  50,
			StartAngle:   45,
			EndAngle:     135,
			CornerRadius: sector.Abs(8),
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "percent_corners", // 20% of the 25px thickness
		Spec: sector.Spec{
			Center:       pt(64, 64),
			InnerRadius:  25,
			OuterRadius:  50,
			StartAngle:   200,
			EndAngle:     340,
			CornerRadius: sector.Percent(20),
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "large_span_corners", // outer arc over 180°
		Spec: sector.Spec{
			Center:       pt(64, 64),
			InnerRadius:  30,
			OuterRadius:  50,
			StartAngle:   -45,
			EndAngle:     225,
			CornerRadius: sector.Abs(4),
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "reversed_corners",
		Spec: sector.Spec{
			Center:       pt(64, 64),
			InnerRadius:  25,
			OuterRadius:  50,
			StartAngle:   90,
			EndAngle:     0,
			CornerRadius: sector.Abs(5),
		},
		Width:  128,
		Height: 128,
	},
	{
		Name: "clamped_corners", // requested radius far beyond half thickness
		Spec: sector.Spec{
			Center:       pt(64, 64),
			InnerRadius:  25,
			OuterRadius:  50,
			StartAngle:   0,
			EndAngle:     120,
			CornerRadius: sector.Abs(1000),
		},
		Width:  128,
		Height: 128,
	},
}
