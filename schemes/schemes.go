// Package schemes loads named CutoffScheme presets — paired
// arithmetic/comparison cutoffs a BigFixed value can be permanently
// bound to — from a TOML file, the same struct-tag-driven decode style
// the emulator's config package uses for its own settings file.
package schemes

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lookbusy1344/bigfixed/cutoff"
	"github.com/lookbusy1344/bigfixed/index"
)

// CutoffScheme bundles the two cutoffs a Bound value enforces: one
// applied after every arithmetic operation, one applied when comparing
// two bound values for equality or order.
type CutoffScheme struct {
	Arithmetic  cutoff.Cutoff
	Comparisons cutoff.Cutoff
}

// Document is the decoded shape of a schemes TOML file: a named table
// of scheme definitions, e.g.
//
//	[schemes.my_scheme.arithmetic]
//	floating_bits = 32
//	rounding = "floor"
//
//	[schemes.my_scheme.comparisons]
//	floating_bits = 22
//	rounding = "round"
type Document struct {
	Schemes map[string]rawScheme `toml:"schemes"`
}

type rawScheme struct {
	Arithmetic  rawCutoff `toml:"arithmetic"`
	Comparisons rawCutoff `toml:"comparisons"`
}

type rawCutoff struct {
	FixedPosition *int64 `toml:"fixed_position"`
	FloatingBits  *int64 `toml:"floating_bits"`
	Rounding      string `toml:"rounding"`
}

func parseRounding(s string) (cutoff.Rounding, error) {
	switch s {
	case "", "floor":
		return cutoff.Floor, nil
	case "ceiling":
		return cutoff.Ceiling, nil
	case "round":
		return cutoff.Round, nil
	case "towards_zero":
		return cutoff.TowardsZero, nil
	case "away_from_zero":
		return cutoff.AwayFromZero, nil
	default:
		return 0, fmt.Errorf("schemes: unknown rounding mode %q", s)
	}
}

func (r rawCutoff) resolve() (cutoff.Cutoff, error) {
	rounding, err := parseRounding(r.Rounding)
	if err != nil {
		return cutoff.Cutoff{}, err
	}
	c := cutoff.Cutoff{Rounding: rounding}
	if r.FixedPosition != nil {
		fixed := index.Pos(*r.FixedPosition)
		c.Fixed = &fixed
	}
	if r.FloatingBits != nil {
		floating := index.BitAt(*r.FloatingBits)
		c.Floating = &floating
	}
	return c, nil
}

func (s rawScheme) resolve() (CutoffScheme, error) {
	arith, err := s.Arithmetic.resolve()
	if err != nil {
		return CutoffScheme{}, fmt.Errorf("schemes: arithmetic: %w", err)
	}
	cmp, err := s.Comparisons.resolve()
	if err != nil {
		return CutoffScheme{}, fmt.Errorf("schemes: comparisons: %w", err)
	}
	return CutoffScheme{Arithmetic: arith, Comparisons: cmp}, nil
}

// Load reads and decodes every named scheme from a TOML file.
func Load(path string) (map[string]CutoffScheme, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]CutoffScheme{}, nil
	}

	var doc Document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("schemes: failed to parse %s: %w", path, err)
	}

	out := make(map[string]CutoffScheme, len(doc.Schemes))
	for name, raw := range doc.Schemes {
		resolved, err := raw.resolve()
		if err != nil {
			return nil, fmt.Errorf("schemes: scheme %q: %w", name, err)
		}
		out[name] = resolved
	}
	return out, nil
}
