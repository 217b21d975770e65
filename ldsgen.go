/*lds-gen is a driver for the low-discrepancy sequence generators in this
repository. It emits points from a chosen generator, one point per line,
for piping into plotting or integration tools.

	lds-gen --generator sphere --bases 2,3 --count 1000
	lds-gen --config run.yaml

Flags override values from the config file. When no bases are supplied
the driver takes them from the front of the prime table.
*/
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/luk036/lds-gen/config"
	"github.com/luk036/lds-gen/ilds"
	"github.com/luk036/lds-gen/lds"
	"github.com/luk036/lds-gen/spheren"
	"github.com/luk036/lds-gen/validate"
)

var (
	cfgPath string
	genName string
	bases   []uint
	scales  []uint
	count   int
	seed    uint64

	cmd = &cobra.Command{
		Use:   "lds-gen",
		Short: "Deterministic low-discrepancy point sequence generator",
		RunE:  run,
	}
)

func init() {
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to run config YAML")
	cmd.Flags().StringVarP(&genName, "generator", "g", "", "Generator name: "+
		"vdcorput, halton, haltonn, circle, disk, sphere, sphere3hopf, "+
		"sphere3, spheren, ivdcorput, ihalton")
	cmd.Flags().UintSliceVarP(&bases, "bases", "b", nil, "Radix per dimension")
	cmd.Flags().UintSliceVar(&scales, "scales", nil,
		"Scale exponent per dimension (integer generators only)")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of points to emit")
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "Index to reseed to before the first point")
}

// defaultDim is the number of bases a generator consumes when the run
// does not name any.
var defaultDim = map[string]int{
	"vdcorput":    1,
	"halton":      2,
	"haltonn":     3,
	"circle":      1,
	"disk":        2,
	"sphere":      2,
	"sphere3hopf": 3,
	"sphere3":     3,
	"spheren":     4,
	"ivdcorput":   1,
	"ihalton":     2,
}

func run(cmd *cobra.Command, args []string) error {
	c := &config.Config{}
	if cfgPath != "" {
		var err error
		if c, err = config.Load(cfgPath); err != nil {
			return err
		}
		log.WithField("path", cfgPath).Info("Loaded run config")
	}

	if genName != "" {
		c.Generator = genName
	}
	if len(bases) > 0 {
		c.Bases = widen(bases)
	}
	if len(scales) > 0 {
		c.Scales = widen(scales)
	}
	if cmd.Flags().Changed("count") || c.Count == 0 {
		c.Count = count
	}
	if cmd.Flags().Changed("seed") {
		c.Seed = seed
	}

	dim, ok := defaultDim[c.Generator]
	if !ok {
		return fmt.Errorf("unknown generator %q", c.Generator)
	}
	if len(c.Bases) == 0 {
		c.Bases = lds.FirstPrimes(dim)
		log.WithField("bases", c.Bases).Info("Defaulting to prime bases")
	}
	minDim := dim
	switch c.Generator {
	case "haltonn":
		minDim = 1
	case "spheren":
		minDim = 3
	}
	if len(c.Bases) < minDim {
		return fmt.Errorf("%s needs at least %d bases, got %d",
			c.Generator, minDim, len(c.Bases))
	}
	if err := validate.Bases(c.Bases); err != nil {
		return err
	}
	for len(c.Scales) < len(c.Bases) {
		c.Scales = append(c.Scales, 10)
	}
	for _, s := range c.Scales {
		if err := validate.Scale(s); err != nil {
			return err
		}
	}

	pop, err := buildStream(c)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"generator": c.Generator,
		"bases":     c.Bases,
		"seed":      c.Seed,
		"count":     c.Count,
	}).Info("Generating")

	for i := 0; i < c.Count; i++ {
		fmt.Println(pop())
	}
	return nil
}

// buildStream constructs the requested generator, reseeds it, and
// returns a closure that formats one point per call.
func buildStream(c *config.Config) (func() string, error) {
	switch c.Generator {
	case "vdcorput":
		g := lds.NewVdCorput(c.Bases[0])
		g.Reseed(c.Seed)
		return func() string { return formatFloats([]float64{g.Pop()}) }, nil
	case "halton":
		g := lds.NewHalton(c.Bases[:2])
		g.Reseed(c.Seed)
		return func() string { p := g.Pop(); return formatFloats(p[:]) }, nil
	case "haltonn":
		g := lds.NewHaltonN(c.Bases)
		g.Reseed(c.Seed)
		return func() string { return formatFloats(g.Pop()) }, nil
	case "circle":
		g := lds.NewCircle(c.Bases[0])
		g.Reseed(c.Seed)
		return func() string { p := g.Pop(); return formatFloats(p[:]) }, nil
	case "disk":
		g := lds.NewDisk(c.Bases[:2])
		g.Reseed(c.Seed)
		return func() string { p := g.Pop(); return formatFloats(p[:]) }, nil
	case "sphere":
		g := lds.NewSphere(c.Bases[:2])
		g.Reseed(c.Seed)
		return func() string { p := g.Pop(); return formatFloats(p[:]) }, nil
	case "sphere3hopf":
		g := lds.NewSphere3Hopf(c.Bases[:3])
		g.Reseed(c.Seed)
		return func() string { p := g.Pop(); return formatFloats(p[:]) }, nil
	case "sphere3":
		g := spheren.NewSphere3(c.Bases[:3])
		g.Reseed(c.Seed)
		return func() string { return formatFloats(g.Pop()) }, nil
	case "spheren":
		g := spheren.NewSphereN(c.Bases)
		g.Reseed(c.Seed)
		return func() string { return formatFloats(g.Pop()) }, nil
	case "ivdcorput":
		g := ilds.NewVdCorput(c.Bases[0], c.Scales[0])
		g.Reseed(c.Seed)
		return func() string { return strconv.FormatUint(g.Pop(), 10) }, nil
	case "ihalton":
		g := ilds.NewHalton(
			[2]uint64{c.Bases[0], c.Bases[1]},
			[2]uint64{c.Scales[0], c.Scales[1]},
		)
		g.Reseed(c.Seed)
		return func() string {
			p := g.Pop()
			return strconv.FormatUint(p[0], 10) + " " +
				strconv.FormatUint(p[1], 10)
		}, nil
	}
	return nil, fmt.Errorf("unknown generator %q", c.Generator)
}

func formatFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func widen(xs []uint) []uint64 {
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[i] = uint64(x)
	}
	return out
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
