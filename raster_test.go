package sector_test

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sector"
)

// coverageArea sums the alpha mask into a total covered area in pixels.
func coverageArea(t *testing.T, p sector.Path, w, h int) float64 {
	t.Helper()
	mask := sector.Rasterize(p, w, h)
	var sum float64
	for _, a := range mask.Pix {
		sum += float64(a) / 255
	}
	return sum
}

// TestQuarterAnnulusArea compares the rasterized coverage of a quarter
// annulus against the analytic area.
func TestQuarterAnnulusArea(t *testing.T) {
	spec := sector.Spec{
		InnerRadius: 50,
		OuterRadius: 100,
		StartAngle:  0,
		EndAngle:    90,
	}
	p, err := spec.Outline()
	if err != nil {
		t.Fatal(err)
	}

	got := coverageArea(t, p, 110, 110)
	want := math.Pi * (100*100 - 50*50) / 4
	if math.Abs(got-want) > 0.01*want {
		t.Errorf("covered area = %g, want %g", got, want)
	}
}

// TestForcedDotArea checks that the forced full-circle fallback covers the
// area of a circle of the corner radius.
func TestForcedDotArea(t *testing.T) {
	spec := sector.Spec{
		Center:            vec.Vec2{X: 64, Y: 64},
		InnerRadius:       25,
		OuterRadius:       50,
		StartAngle:        0,
		EndAngle:          2,
		CornerRadius:      sector.Abs(10),
		ForceCornerRadius: true,
	}
	p, err := spec.Outline()
	if err != nil {
		t.Fatal(err)
	}

	got := coverageArea(t, p, 128, 128)
	want := math.Pi * 10 * 10
	if math.Abs(got-want) > 0.02*want {
		t.Errorf("covered area = %g, want %g", got, want)
	}
}

// TestRoundedAreaSmaller: rounding the corners must strictly reduce the
// covered area, but only slightly for a small corner radius.
func TestRoundedAreaSmaller(t *testing.T) {
	sharp := sector.Spec{
		Center:      vec.Vec2{X: 64, Y: 64},
		InnerRadius: 25,
		OuterRadius: 50,
		StartAngle:  0,
		EndAngle:    90,
	}
	rounded := sharp
	rounded.CornerRadius = sector.Abs(5)

	p1, err := sharp.Outline()
	if err != nil {
		t.Fatal(err)
	}
	p2, err := rounded.Outline()
	if err != nil {
		t.Fatal(err)
	}

	a1 := coverageArea(t, p1, 128, 128)
	a2 := coverageArea(t, p2, 128, 128)

	// each of the four corners loses roughly its (1-pi/4) * r^2 clip
	loss := a1 - a2
	if loss <= 0 || loss > 40 {
		t.Errorf("sharp area %g, rounded area %g, loss %g", a1, a2, loss)
	}
}
