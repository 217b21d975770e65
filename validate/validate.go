/*package validate checks generator parameters before construction. Hard
violations (base below 2, an empty base list, a zero scale) come back as
errors; a non-prime base is legal but degrades uniformity, so it is only
logged as a warning.
*/
package validate

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/luk036/lds-gen/lds"
)

// IsPrime reports whether n is prime, by trial division. The bases fed
// to sequence generators are small, so nothing faster is needed.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := uint64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Base checks a single radix.
func Base(base uint64) error {
	if base < 2 {
		return fmt.Errorf("base must be >= 2, got %d", base)
	}
	if !IsPrime(base) {
		log.WithField("base", base).Warnf(
			"non-prime base may reduce sequence uniformity; "+
				"consider primes such as %v", lds.FirstPrimes(10),
		)
	}
	return nil
}

// Bases checks the base list of a composite generator. The list must be
// non-empty and every entry must be a valid radix.
func Bases(bases []uint64) error {
	if len(bases) == 0 {
		return fmt.Errorf("base list must not be empty")
	}
	for i, base := range bases {
		if base < 2 {
			return fmt.Errorf("base[%d] must be >= 2, got %d", i, base)
		}
		if !IsPrime(base) {
			log.WithFields(log.Fields{"index": i, "base": base}).Warn(
				"non-prime base may reduce sequence uniformity",
			)
		}
	}
	return nil
}

// Scale checks the scale of an integer generator. Scales above 64 can
// never fit in a uint64 for any valid base.
func Scale(scale uint64) error {
	if scale < 1 {
		return fmt.Errorf("scale must be >= 1, got %d", scale)
	}
	if scale > 64 {
		return fmt.Errorf("scale must be <= 64, got %d", scale)
	}
	return nil
}
