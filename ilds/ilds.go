/*package ilds implements integer-valued van der Corput and Halton
sequence generators. These are the fixed-point counterparts of the
generators in package lds: each value is the radix-reversed index scaled
up by base^scale, so the arithmetic stays exact and reproducible across
platforms. Useful when samples must snap to a grid.
*/
package ilds

import (
	"fmt"
)

// VdCorput generates the integer van der Corput sequence for a single
// base. Values lie in [0, base^scale); the scale factor base^scale is
// precomputed at construction.
type VdCorput struct {
	base   uint64
	scale  uint64
	count  uint64
	factor uint64
}

// NewVdCorput creates an integer van der Corput generator with index 0.
//
// It panics if base < 2, scale < 1, or base^scale overflows uint64.
func NewVdCorput(base, scale uint64) *VdCorput {
	if base < 2 {
		panic(fmt.Sprintf("ilds: base must be >= 2, got %d", base))
	}
	if scale < 1 {
		panic(fmt.Sprintf("ilds: scale must be >= 1, got %d", scale))
	}
	factor := uint64(1)
	for i := uint64(0); i < scale; i++ {
		next := factor * base
		if next/base != factor {
			panic(fmt.Sprintf("ilds: %d^%d overflows uint64", base, scale))
		}
		factor = next
	}
	return &VdCorput{base: base, scale: scale, count: 0, factor: factor}
}

// Pop advances the sequence and returns the next value in
// [0, base^scale). The working factor shrinks by one power of the base
// per digit, so the least significant digit of the index lands in the
// most significant position of the result.
func (v *VdCorput) Pop() uint64 {
	v.count++
	k := v.count
	vdc := uint64(0)
	factor := v.factor
	for k != 0 {
		factor /= v.base
		remainder := k % v.base
		k /= v.base
		vdc += remainder * factor
	}
	return vdc
}

// Reseed sets the internal index to seed. The next Pop() returns the
// value for index seed+1.
func (v *VdCorput) Reseed(seed uint64) {
	v.count = seed
}

// Halton generates the 2D integer Halton sequence: one integer van der
// Corput stream per dimension, each with its own base and scale.
type Halton struct {
	vdc0, vdc1 *VdCorput
}

// NewHalton creates an integer Halton generator from per-dimension bases
// and scales. It panics on the same conditions as NewVdCorput.
func NewHalton(base, scale [2]uint64) *Halton {
	return &Halton{
		NewVdCorput(base[0], scale[0]),
		NewVdCorput(base[1], scale[1]),
	}
}

// Pop returns the next point of the sequence.
func (h *Halton) Pop() [2]uint64 {
	return [2]uint64{h.vdc0.Pop(), h.vdc1.Pop()}
}

// Reseed sets the index of both underlying streams to seed.
func (h *Halton) Reseed(seed uint64) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}
