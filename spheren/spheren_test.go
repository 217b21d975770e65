package spheren

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/luk036/lds-gen/lds"
)

const eps = 1e-9

func sliceAlmostEq(xs, ys []float64) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if math.Abs(xs[i]-ys[i]) > eps {
			return false
		}
	}
	return true
}

func TestTables(t *testing.T) {
	if len(xGrid) != nGrid {
		t.Fatalf("len(xGrid) = %d, want %d", len(xGrid), nGrid)
	}
	if xGrid[0] != 0 || xGrid[nGrid-1] != math.Pi {
		t.Errorf("xGrid spans [%g, %g], want [0, pi]", xGrid[0], xGrid[nGrid-1])
	}

	// Low dimensions keep full float resolution, so the tables are
	// strictly increasing on the whole grid. Higher dimensions flatten
	// near the poles; fitInverse compresses those away, which
	// TestSphereNDimensions exercises.
	for _, n := range []int{2, 3, 4, 5, 6} {
		tp := tpTable(n)
		for i := 1; i < len(tp); i++ {
			if tp[i] <= tp[i-1] {
				t.Fatalf("tpTable(%d) not increasing at %d: %g <= %g",
					n, i, tp[i], tp[i-1])
			}
		}
	}

	// t_2 = (x - cos x sin x) / 2, endpoints 0 and pi/2.
	if math.Abs(f2[0]) > eps || math.Abs(f2[nGrid-1]-math.Pi/2) > eps {
		t.Errorf("f2 spans [%g, %g], want [0, pi/2]", f2[0], f2[nGrid-1])
	}
}

func TestSphere3(t *testing.T) {
	sgen := NewSphere3([]uint64{2, 3, 5})
	sgen.Reseed(0)
	p := sgen.Pop()
	want := []float64{
		0.2913440162992141, 0.8966646826186098, -0.3333333333333333, 0.0,
	}
	if !sliceAlmostEq(p, want) {
		t.Errorf("first pop = %v, want %v", p, want)
	}

	sgen.Reseed(0)
	for i := 0; i < 1000; i++ {
		p := sgen.Pop()
		if r := floats.Norm(p, 2); math.Abs(r-1) > eps {
			t.Fatalf("pop %d = %v is off the 3-sphere (|p| = %g)", i, p, r)
		}
	}
}

func TestSphereN(t *testing.T) {
	sgen := NewSphereN([]uint64{2, 3, 5, 7})
	sgen.Reseed(0)
	p := sgen.Pop()
	want := []float64{
		0.4809684718990214, 0.6031153874276115,
		-0.5785601510223212, 0.2649326520763179, 0.0,
	}
	if !sliceAlmostEq(p, want) {
		t.Errorf("first pop = %v, want %v", p, want)
	}
}

// k bases give one van der Corput stream per coordinate peel, so the
// points have k+1 components.
func TestSphereNDimensions(t *testing.T) {
	for nb := 3; nb <= 8; nb++ {
		sgen := NewSphereN(lds.FirstPrimes(nb))
		sgen.Reseed(0)
		for i := 0; i < 200; i++ {
			p := sgen.Pop()
			if len(p) != nb+1 {
				t.Fatalf("%d bases: pop has %d components, want %d",
					nb, len(p), nb+1)
			}
			if r := floats.Norm(p, 2); math.Abs(r-1) > eps {
				t.Fatalf("%d bases, pop %d: |p| = %g", nb, i, r)
			}
		}
	}
}

// SphereN with three bases must reduce to the closed-form 3-sphere
// construction.
func TestSphereNMatchesSphere3(t *testing.T) {
	a := NewSphereN([]uint64{2, 3, 5})
	b := NewSphere3([]uint64{2, 3, 5})
	a.Reseed(0)
	b.Reseed(0)
	for i := 0; i < 500; i++ {
		if pa, pb := a.Pop(), b.Pop(); !sliceAlmostEq(pa, pb) {
			t.Fatalf("pop %d: SphereN = %v, Sphere3 = %v", i, pa, pb)
		}
	}
}

func TestReseedDeterminism(t *testing.T) {
	a := NewSphereN([]uint64{2, 3, 5, 7})
	b := NewSphereN([]uint64{2, 3, 5, 7})
	a.Reseed(42)
	for i := 0; i < 25; i++ {
		a.Pop()
	}
	a.Reseed(7)
	b.Reseed(7)
	for i := 0; i < 100; i++ {
		pa, pb := a.Pop(), b.Pop()
		for j := range pa {
			if pa[j] != pb[j] {
				t.Fatalf("pop %d: %v != %v", i, pa, pb)
			}
		}
	}
}

func TestConstructorPanics(t *testing.T) {
	for _, bases := range [][]uint64{{}, {2}, {2, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSphereN(%v) did not panic", bases)
				}
			}()
			NewSphereN(bases)
		}()
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("NewSphere3 with 2 bases did not panic")
			}
		}()
		NewSphere3([]uint64{2, 3})
	}()
}

func BenchmarkSphere3(b *testing.B) {
	sgen := NewSphere3([]uint64{2, 3, 5})
	for i := 0; i < b.N; i++ {
		sgen.Pop()
	}
}

func BenchmarkSphereN5(b *testing.B) {
	sgen := NewSphereN([]uint64{2, 3, 5, 7, 11, 13})
	for i := 0; i < b.N; i++ {
		sgen.Pop()
	}
}
