/*package lds implements low-discrepancy sequence generators built on the
van der Corput radix-inversion construction, along with mappings of those
sequences onto the circle, the disk, the sphere, and the 3-sphere.

Unlike pseudo-random generators, these sequences are fully deterministic:
two generators constructed with the same bases and reseeded to the same
index produce identical streams. A generator holds private mutable state
and is not internally synchronized, so a single instance must not be
shared between goroutines without external locking. Distinct instances
share nothing.

Here are some usage examples.

	// Scalar sequence in [0, 1).
	vgen := lds.NewVdCorput(2)
	x := vgen.Pop()

	// Area-uniform points on the unit disk.
	dgen := lds.NewDisk([]uint64{2, 3})
	p := dgen.Pop()

	// Restart a stream at a known index.
	vgen.Reseed(0)
*/
package lds

import (
	"fmt"
	"math"
)

const twoPi = 2.0 * math.Pi

// maxDigits is the length of the cached radix-reversal table. 64 digit
// positions are enough for any uint64 index in any base >= 2.
const maxDigits = 64

// Vdc returns the van der Corput value of index k in the given base: the
// digits of k are written in that base and reflected across the radix
// point. The result lies in [0, 1), and Vdc(0, b) == 0 for every base.
//
// Vdc is a pure function and safe to call concurrently.
func Vdc(k, base uint64) float64 {
	res := 0.0
	denom := 1.0
	for k != 0 {
		denom *= float64(base)
		remainder := k % base
		k /= base
		res += float64(remainder) / denom
	}
	return res
}

// VdCorput generates the van der Corput sequence for a single base. The
// first 64 negative powers of the base are cached at construction, so a
// Pop() call does at most one table lookup per nonzero digit and no
// floating-point division.
type VdCorput struct {
	base  uint64
	count uint64
	rev   [maxDigits]float64
}

// NewVdCorput creates a van der Corput generator with index 0. The first
// Pop() returns the value for index 1.
//
// NewVdCorput panics if base < 2.
func NewVdCorput(base uint64) *VdCorput {
	if base < 2 {
		panic(fmt.Sprintf("lds: base must be >= 2, got %d", base))
	}
	v := &VdCorput{base: base}
	reverse := 1.0
	for i := range v.rev {
		reverse /= float64(base)
		v.rev[i] = reverse
	}
	return v
}

// Pop advances the sequence and returns the next value in [0, 1). Zero
// digits contribute nothing and are skipped.
func (v *VdCorput) Pop() float64 {
	v.count++
	k := v.count
	res := 0.0
	for i := 0; k != 0; i++ {
		if remainder := k % v.base; remainder != 0 {
			res += float64(remainder) * v.rev[i]
		}
		k /= v.base
	}
	return res
}

// Reseed sets the internal index to seed. The next Pop() returns the
// value for index seed+1. Reseeding to the same index always restarts
// the same stream. The index wraps around at the top of uint64; no run
// long enough to reach that point is guarded against.
func (v *VdCorput) Reseed(seed uint64) {
	v.count = seed
}

// Halton generates the 2D Halton sequence: a van der Corput stream per
// base, returned as a raw pair in [0,1) x [0,1).
type Halton struct {
	vdc0, vdc1 *VdCorput
}

// NewHalton creates a Halton generator from two bases. The bases should
// be coprime (typically distinct primes) for the pair to be
// well-distributed.
//
// NewHalton panics if fewer than two bases are given or any base is < 2.
func NewHalton(base []uint64) *Halton {
	if len(base) < 2 {
		panic(fmt.Sprintf("lds: Halton needs 2 bases, got %d", len(base)))
	}
	return &Halton{NewVdCorput(base[0]), NewVdCorput(base[1])}
}

// Pop returns the next point of the sequence.
func (h *Halton) Pop() [2]float64 {
	return [2]float64{h.vdc0.Pop(), h.vdc1.Pop()}
}

// Reseed sets the index of both underlying streams to seed.
func (h *Halton) Reseed(seed uint64) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}

// Circle generates points on the boundary of the unit circle by mapping
// a van der Corput value u to the angle theta = u*2*pi.
type Circle struct {
	vdc *VdCorput
}

// NewCircle creates a Circle generator. It panics if base < 2.
func NewCircle(base uint64) *Circle {
	return &Circle{NewVdCorput(base)}
}

// Pop returns the next point (cos theta, sin theta) on the unit circle.
func (c *Circle) Pop() [2]float64 {
	theta := c.vdc.Pop() * twoPi
	return [2]float64{math.Cos(theta), math.Sin(theta)}
}

// Reseed sets the index of the underlying stream to seed.
func (c *Circle) Reseed(seed uint64) {
	c.vdc.Reseed(seed)
}

// Disk generates area-uniform points inside the closed unit disk. The
// radius is the square root of a van der Corput value: without the
// square root the samples would crowd toward the center.
type Disk struct {
	vdc0, vdc1 *VdCorput
}

// NewDisk creates a Disk generator from two bases. It panics if fewer
// than two bases are given or any base is < 2.
func NewDisk(base []uint64) *Disk {
	if len(base) < 2 {
		panic(fmt.Sprintf("lds: Disk needs 2 bases, got %d", len(base)))
	}
	return &Disk{NewVdCorput(base[0]), NewVdCorput(base[1])}
}

// Pop returns the next point (r cos theta, r sin theta) in the unit disk.
func (d *Disk) Pop() [2]float64 {
	theta := d.vdc0.Pop() * twoPi
	radius := math.Sqrt(d.vdc1.Pop())
	return [2]float64{radius * math.Cos(theta), radius * math.Sin(theta)}
}

// Reseed sets the index of both underlying streams to seed.
func (d *Disk) Reseed(seed uint64) {
	d.vdc0.Reseed(seed)
	d.vdc1.Reseed(seed)
}

// Sphere generates surface-uniform points on the unit 2-sphere using the
// cylindrical equal-area construction: cos phi is uniform in [-1, 1]
// (Archimedes' theorem) and the remaining angle comes from a Circle
// stream of radius sin phi.
type Sphere struct {
	vdc    *VdCorput
	cirgen *Circle
}

// NewSphere creates a Sphere generator from two bases. It panics if
// fewer than two bases are given or any base is < 2.
func NewSphere(base []uint64) *Sphere {
	if len(base) < 2 {
		panic(fmt.Sprintf("lds: Sphere needs 2 bases, got %d", len(base)))
	}
	return &Sphere{NewVdCorput(base[0]), NewCircle(base[1])}
}

// Pop returns the next point (sin phi * c, sin phi * s, cos phi) on the
// unit sphere surface.
func (sp *Sphere) Pop() [3]float64 {
	cosphi := 2.0*sp.vdc.Pop() - 1.0
	sinphi := math.Sqrt(1.0 - cosphi*cosphi)
	cs := sp.cirgen.Pop()
	return [3]float64{sinphi * cs[0], sinphi * cs[1], cosphi}
}

// Reseed sets the index of both underlying streams to seed.
func (sp *Sphere) Reseed(seed uint64) {
	sp.cirgen.Reseed(seed)
	sp.vdc.Reseed(seed)
}

// Sphere3Hopf generates points on the unit 3-sphere in 4-space through
// the Hopf fibration: two angles phi, psi on the base and fiber circles
// and a third value splitting the radius between the two planes.
type Sphere3Hopf struct {
	vdc0, vdc1, vdc2 *VdCorput
}

// NewSphere3Hopf creates a Sphere3Hopf generator from three bases. It
// panics if fewer than three bases are given or any base is < 2.
func NewSphere3Hopf(base []uint64) *Sphere3Hopf {
	if len(base) < 3 {
		panic(fmt.Sprintf("lds: Sphere3Hopf needs 3 bases, got %d", len(base)))
	}
	return &Sphere3Hopf{
		NewVdCorput(base[0]), NewVdCorput(base[1]), NewVdCorput(base[2]),
	}
}

// Pop returns the next point on the unit 3-sphere.
func (sp *Sphere3Hopf) Pop() [4]float64 {
	phi := sp.vdc0.Pop() * twoPi
	psy := sp.vdc1.Pop() * twoPi
	vd := sp.vdc2.Pop()
	cosEta := math.Sqrt(vd)
	sinEta := math.Sqrt(1.0 - vd)
	return [4]float64{
		cosEta * math.Cos(psy),
		cosEta * math.Sin(psy),
		sinEta * math.Cos(phi+psy),
		sinEta * math.Sin(phi+psy),
	}
}

// Reseed sets the index of all three underlying streams to seed.
func (sp *Sphere3Hopf) Reseed(seed uint64) {
	sp.vdc0.Reseed(seed)
	sp.vdc1.Reseed(seed)
	sp.vdc2.Reseed(seed)
}

// HaltonN generates the N-dimensional Halton sequence: one van der
// Corput stream per supplied base, returned as a raw N-tuple in [0,1)^N.
// Taking the bases from the front of PrimeTable keeps the pairwise
// correlation between dimensions low.
type HaltonN struct {
	vdcs []*VdCorput
}

// NewHaltonN creates an N-dimensional Halton generator, one dimension
// per base. It panics if no bases are given or any base is < 2.
func NewHaltonN(base []uint64) *HaltonN {
	if len(base) == 0 {
		panic("lds: HaltonN needs at least 1 base")
	}
	vdcs := make([]*VdCorput, len(base))
	for i, b := range base {
		vdcs[i] = NewVdCorput(b)
	}
	return &HaltonN{vdcs}
}

// Pop returns the next point of the sequence as a freshly allocated
// slice of length N.
func (h *HaltonN) Pop() []float64 {
	res := make([]float64, len(h.vdcs))
	for i, vdc := range h.vdcs {
		res[i] = vdc.Pop()
	}
	return res
}

// Reseed sets the index of every underlying stream to seed.
func (h *HaltonN) Reseed(seed uint64) {
	for _, vdc := range h.vdcs {
		vdc.Reseed(seed)
	}
}
