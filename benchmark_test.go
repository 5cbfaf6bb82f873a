package sector_test

import (
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sector"
)

var benchSharp = sector.Spec{
	Center:      vec.Vec2{X: 64, Y: 64},
	InnerRadius: 25,
	OuterRadius: 50,
	StartAngle:  0,
	EndAngle:    137,
}

var benchRounded = sector.Spec{
	Center:       vec.Vec2{X: 64, Y: 64},
	InnerRadius:  25,
	OuterRadius:  50,
	StartAngle:   0,
	EndAngle:     137,
	CornerRadius: sector.Abs(5),
}

func BenchmarkOutlineSharp(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if _, err := benchSharp.Outline(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOutlineRounded(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if _, err := benchRounded.Outline(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAppendSVG(b *testing.B) {
	p, err := benchRounded.Outline()
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, 0, 512)

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		buf = p.AppendSVG(buf[:0])
	}
}

func BenchmarkRasterize(b *testing.B) {
	p, err := benchRounded.Outline()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		sector.Rasterize(p, 128, 128)
	}
}
