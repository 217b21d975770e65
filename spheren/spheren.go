/*package spheren generates low-discrepancy points on spheres of three or
more dimensions.

The closed-form equal-area constructions in package lds stop at the
2-sphere (and the Hopf map for the 3-sphere). For higher dimensions the
polar angle must be distributed with density proportional to sin^n, and
the inverse of the cumulative integral

	t_n(x) = integral of sin^n over [0, x]

has no closed form. This package tabulates t_n on a uniform grid over
[0, pi] using the recurrence

	t_0 = x,   t_1 = -cos x,
	t_n = ((n-1)*t_{n-2} - cos x * sin^{n-1} x) / n

and inverts it with piecewise-linear interpolation. Each dimension then
peels off as (sin xi * inner point..., cos xi), recursing down to the
closed-form 2-sphere.
*/
package spheren

import (
	"fmt"
	"math"

	"github.com/luk036/lds-gen/lds"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

const halfPi = math.Pi / 2.0

// nGrid is the resolution of the area-integral tables.
const nGrid = 300

var (
	xGrid     = floats.Span(make([]float64, nGrid), 0, math.Pi)
	negCosine = make([]float64, nGrid)
	sine      = make([]float64, nGrid)
	f2        []float64
)

func init() {
	for i, x := range xGrid {
		negCosine[i] = -math.Cos(x)
		sine[i] = math.Sin(x)
	}
	f2 = tpTable(2)
}

// tpTable returns the cumulative area table t_n evaluated on xGrid.
func tpTable(n int) []float64 {
	switch n {
	case 0:
		return xGrid
	case 1:
		return negCosine
	}
	prev := tpTable(n - 2)
	tp := make([]float64, nGrid)
	for i := range tp {
		tp[i] = (float64(n-1)*prev[i] +
			negCosine[i]*math.Pow(sine[i], float64(n-1))) / float64(n)
	}
	return tp
}

// fitInverse builds an interpolator mapping table values back to grid
// angles. For n >= 7 the sin^n density underflows the grid resolution
// near the poles and rounding flattens the table there, so only the
// strictly increasing breakpoints are kept; Predict clamps to the
// nearest kept angle outside them, which is the correct inverse in the
// flattened region to within one grid step.
func fitInverse(tp []float64) interp.PiecewiseLinear {
	xs := make([]float64, 1, len(tp))
	ys := make([]float64, 1, len(tp))
	xs[0], ys[0] = tp[0], xGrid[0]
	for i := 1; i < len(tp); i++ {
		if tp[i] > xs[len(xs)-1] {
			xs = append(xs, tp[i])
			ys = append(ys, xGrid[i])
		}
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		panic(fmt.Sprintf("spheren: area table is not monotone: %v", err))
	}
	return pl
}

// Gen is the interface shared by the sphere generators in this package:
// Pop returns the next point as a slice (one entry per coordinate) and
// Reseed restarts the stream at the given index.
type Gen interface {
	Pop() []float64
	Reseed(seed uint64)
}

var (
	_ Gen = &Sphere3{}
	_ Gen = &SphereN{}
)

// sphere2 adapts the fixed-size lds.Sphere to the Gen interface.
type sphere2 struct {
	*lds.Sphere
}

func (s sphere2) Pop() []float64 {
	p := s.Sphere.Pop()
	return p[:]
}

// Sphere3 generates points on the unit 3-sphere in 4-space by inverting
// the n = 2 area integral and scaling a 2-sphere stream by sin xi.
type Sphere3 struct {
	vdc     *lds.VdCorput
	sphere2 *lds.Sphere
	inv     interp.PiecewiseLinear
}

// NewSphere3 creates a 3-sphere generator from three bases. It panics
// if fewer than three bases are given or any base is < 2.
func NewSphere3(base []uint64) *Sphere3 {
	if len(base) < 3 {
		panic(fmt.Sprintf("spheren: Sphere3 needs 3 bases, got %d", len(base)))
	}
	return &Sphere3{
		vdc:     lds.NewVdCorput(base[0]),
		sphere2: lds.NewSphere(base[1:3]),
		inv:     fitInverse(f2),
	}
}

// Pop returns the next point on the unit 3-sphere as a 4-element slice.
func (s *Sphere3) Pop() []float64 {
	ti := halfPi * s.vdc.Pop() // map to [t_2(0), t_2(pi))
	xi := s.inv.Predict(ti)
	cosxi, sinxi := math.Cos(xi), math.Sin(xi)
	p := s.sphere2.Pop()
	return []float64{sinxi * p[0], sinxi * p[1], sinxi * p[2], cosxi}
}

// Reseed sets the index of both underlying streams to seed.
func (s *Sphere3) Reseed(seed uint64) {
	s.vdc.Reseed(seed)
	s.sphere2.Reseed(seed)
}

// SphereN generates points on the unit sphere in (k+1)-space from k
// bases, one van der Corput stream per coordinate peel: k bases give
// points with k+1 components on the k-sphere. Construction recurses,
// each level owning a generator one dimension lower and bottoming out
// at the closed-form 2-sphere.
type SphereN struct {
	n     int
	vdc   *lds.VdCorput
	inner Gen
	t0    float64
	rng   float64
	inv   interp.PiecewiseLinear
}

// NewSphereN creates a generator on the k-sphere from k bases. It
// panics if fewer than three bases are given or any base is < 2.
func NewSphereN(base []uint64) *SphereN {
	n := len(base) - 1
	if n < 2 {
		panic(fmt.Sprintf("spheren: SphereN needs at least 3 bases, got %d",
			len(base)))
	}
	s := &SphereN{n: n, vdc: lds.NewVdCorput(base[0])}
	if n == 2 {
		s.inner = sphere2{lds.NewSphere(base[1:3])}
	} else {
		s.inner = NewSphereN(base[1:])
	}
	tp := tpTable(n)
	s.t0 = tp[0]
	s.rng = tp[nGrid-1] - tp[0]
	s.inv = fitInverse(tp)
	return s
}

// Pop returns the next point as a slice with one more component than
// the generator has bases.
func (s *SphereN) Pop() []float64 {
	ti := s.t0 + s.rng*s.vdc.Pop() // map to [t_n(0), t_n(pi))
	xi := s.inv.Predict(ti)
	sinxi := math.Sin(xi)
	p := s.inner.Pop()
	out := make([]float64, len(p)+1)
	for i, c := range p {
		out[i] = c * sinxi
	}
	out[len(p)] = math.Cos(xi)
	return out
}

// Reseed sets the index of every underlying stream to seed.
func (s *SphereN) Reseed(seed uint64) {
	s.vdc.Reseed(seed)
	s.inner.Reseed(seed)
}
