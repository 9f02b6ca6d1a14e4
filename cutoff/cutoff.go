// Package cutoff defines the rounding policy BigFixed values are
// truncated against: how many words or bits of precision to keep, and
// which way to round off whatever gets dropped.
package cutoff

import "github.com/lookbusy1344/bigfixed/index"

// Rounding selects how a cutoff's dropped remainder affects the
// surviving value.
type Rounding int

const (
	// Floor always rounds toward negative infinity: the dropped
	// remainder is simply discarded.
	Floor Rounding = iota
	// Ceiling rounds up whenever any dropped bit was set.
	Ceiling
	// Round rounds to the nearest representable value: it rounds up
	// whenever the greatest dropped bit is set, so a tie rounds toward
	// positive infinity for both positive and negative values.
	Round
	// TowardsZero truncates magnitude: floors for positive values,
	// ceilings for negative ones.
	TowardsZero
	// AwayFromZero inflates magnitude: ceilings for positive values,
	// floors for negative ones.
	AwayFromZero
)

func (r Rounding) String() string {
	switch r {
	case Floor:
		return "Floor"
	case Ceiling:
		return "Ceiling"
	case Round:
		return "Round"
	case TowardsZero:
		return "TowardsZero"
	case AwayFromZero:
		return "AwayFromZero"
	default:
		return "Rounding(?)"
	}
}

// Cutoff is a precision policy: Fixed pins an absolute lowest surviving
// word position, Floating pins a number of significant bits to keep
// measured down from the value's own highest set bit, and either or
// both may be nil (meaning "no limit of that kind"). When both are set
// the looser of the two wins: the lower of the two cutoff points is
// used, so more bits survive.
type Cutoff struct {
	Fixed    *index.Index
	Floating *index.Index
	Rounding Rounding
}

// None is the cutoff that never truncates: used when an operation
// should produce the exact, lossless result.
var None = Cutoff{Rounding: Floor}

// IsNone reports whether this cutoff imposes no limit at all.
func (c Cutoff) IsNone() bool {
	return c.Fixed == nil && c.Floating == nil
}
