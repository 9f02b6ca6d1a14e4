package bigfixed

import (
	"fmt"

	"github.com/lookbusy1344/bigfixed/index"
)

// Kind categorizes a BigFixed failure the way parser.ErrorKind tags
// the emulator's assembly diagnostics.
type Kind int

const (
	// KindIndexOverflow wraps a checked Index arithmetic failure.
	KindIndexOverflow Kind = iota
	// KindImproperlyPositioned means a value reached an operation
	// while its Index was Bit-granular where Position-granular was
	// required, and no implicit fix_position step applies.
	KindImproperlyPositioned
	// KindUsedDigitTypeAsIndex wraps index.ErrDigitTypeUsed.
	KindUsedDigitTypeAsIndex
	// KindDivideByZero is reserved for the stubbed Divide entry point;
	// it is also returned for any attempted division, since division
	// proper is out of scope (see RoundingUnsupported for the other
	// stubbed path, multiply's unsupported rounding modes).
	KindDivideByZero
	// KindRoundingUnsupported means Multiply was asked to apply
	// Ceiling or AwayFromZero rounding, which the schoolbook multiply
	// path does not implement.
	KindRoundingUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindIndexOverflow:
		return "index overflow"
	case KindImproperlyPositioned:
		return "improperly positioned"
	case KindUsedDigitTypeAsIndex:
		return "digit-typed index used as index"
	case KindDivideByZero:
		return "divide by zero"
	case KindRoundingUnsupported:
		return "rounding mode unsupported here"
	default:
		return "unknown bigfixed error"
	}
}

// Error is returned by every fallible BigFixed operation.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrapIndexError lifts an index package error into a bigfixed Error,
// preserving KindUsedDigitTypeAsIndex and folding everything else
// (currently just overflow) into KindIndexOverflow.
func wrapIndexError(err error) *Error {
	if err == nil {
		return nil
	}
	if err == index.ErrDigitTypeUsed {
		return errorf(KindUsedDigitTypeAsIndex, "%s", err.Error())
	}
	return errorf(KindIndexOverflow, "%s", err.Error())
}
