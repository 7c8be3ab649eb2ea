package window

import (
	"math"
	"testing"
)

func TestGenerateFiniteAndBounded(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || v < -1e-12 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d] out of range: %v", i, v)
				}
			}
		})
	}
}

func TestSymmetricWindowsAreSymmetric(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman} {
		w := Generate(typ, 33)
		for i := range w {
			if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
				t.Fatalf("%s not symmetric at %d", typ, i)
			}
		}

		if math.Abs(w[16]-1) > 1e-12 {
			t.Fatalf("%s centre = %v, want 1", typ, w[16])
		}
	}
}

func TestHannEndpoints(t *testing.T) {
	w, err := Hann(8)
	if err != nil {
		t.Fatal(err)
	}

	if w[0] != 0 || math.Abs(w[7]) > 1e-15 {
		t.Fatalf("endpoints = %v, %v", w[0], w[7])
	}

	p := Generate(TypeHann, 8, WithPeriodic())
	if p[0] != 0 || math.Abs(p[4]-1) > 1e-15 {
		t.Fatalf("periodic Hann = %v", p)
	}
}

func TestInvalidInput(t *testing.T) {
	if _, err := Hann(0); err == nil {
		t.Fatal("expected error for zero size")
	}

	if Generate(Type(99), 8) != nil {
		t.Fatal("unknown type should give nil")
	}

	if err := ApplyCoefficientsInPlace(make([]float64, 3), make([]float64, 4)); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestGainsOfHann(t *testing.T) {
	w := Generate(TypeHann, 4096, WithPeriodic())

	enbw, err := EquivalentNoiseBandwidth(w)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(enbw-1.5) > 1e-9 {
		t.Fatalf("ENBW = %v, want 1.5", enbw)
	}

	pg, err := PowerGain(w)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(pg-0.375) > 1e-9 {
		t.Fatalf("PowerGain = %v, want 0.375", pg)
	}

	if _, err := PowerGain(nil); err == nil {
		t.Fatal("expected error for empty window")
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	buf := []float64{2, 2, 2}
	if err := ApplyCoefficientsInPlace(buf, []float64{0, 0.5, 1}); err != nil {
		t.Fatal(err)
	}

	if buf[0] != 0 || buf[1] != 1 || buf[2] != 2 {
		t.Fatalf("buf = %v", buf)
	}
}

func BenchmarkGenerateHann(b *testing.B) {
	for range b.N {
		_ = Generate(TypeHann, 4096, WithPeriodic())
	}
}
