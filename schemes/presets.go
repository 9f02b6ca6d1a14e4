package schemes

import (
	"github.com/lookbusy1344/bigfixed/cutoff"
	"github.com/lookbusy1344/bigfixed/index"
)

func bitPtr(v int64) *index.Index {
	b := index.BitAt(v)
	return &b
}

// F32 approximates IEEE 754 single-precision behavior: an arithmetic
// floating cutoff of 32 bits below the top bit, i.e. 33 significant
// bits (floored, matching a float's truncating mantissa operations),
// and a comparison floating cutoff of 22, i.e. 23 significant bits
// (rounded, so two values that would print the same float compare
// equal).
var F32 = CutoffScheme{
	Arithmetic:  cutoff.Cutoff{Floating: bitPtr(32), Rounding: cutoff.Floor},
	Comparisons: cutoff.Cutoff{Floating: bitPtr(22), Rounding: cutoff.Round},
}

// F64 is the double-precision analogue of F32: floating cutoffs of 64
// (arithmetic) and 51 (comparison), i.e. 65 and 52 significant bits.
var F64 = CutoffScheme{
	Arithmetic:  cutoff.Cutoff{Floating: bitPtr(64), Rounding: cutoff.Floor},
	Comparisons: cutoff.Cutoff{Floating: bitPtr(51), Rounding: cutoff.Round},
}
