package acclaim

import "fmt"

// Arity describes how many parameters an option extracts: a fixed
// minimum plus a number of optional slots. A negative Optional count
// means the option takes as many parameters as the input provides.
type Arity struct {
	Minimum  int
	Optional int
}

// NewArity creates an Arity from a minimum and an optional parameter
// count. Negative minimums clamp to zero and negative optional counts
// canonicalize to -1, so equal arities always compare equal with ==.
func NewArity(minimum, optional int) Arity {
	if minimum < 0 {
		minimum = 0
	}
	if optional < 0 {
		optional = -1
	}

	return Arity{Minimum: minimum, Optional: optional}
}

// Flag returns the arity of an option taking no parameters, whose
// presence alone conveys true.
func Flag() Arity {
	return NewArity(0, 0)
}

// Exactly returns the arity of an option taking exactly n parameters.
func Exactly(n int) Arity {
	return NewArity(n, 0)
}

// AtLeast returns the arity of an option taking n or more parameters.
func AtLeast(n int) Arity {
	return NewArity(n, -1)
}

// Only reports whether the arity requires exactly n parameters, no more
// and no fewer.
func (a Arity) Only(n int) bool {
	return a.Bound() && a.Optional == 0 && a.Minimum == n
}

// Zero reports whether the arity takes no parameters at all, making the
// option a flag.
func (a Arity) Zero() bool {
	return a.Only(0)
}

// Unlimited reports whether the arity accepts an unbounded number of
// parameters.
func (a Arity) Unlimited() bool {
	return a.Optional < 0
}

// Bound reports whether the arity has a fixed upper limit.
func (a Arity) Bound() bool {
	return !a.Unlimited()
}

// Total returns the maximum number of parameters the arity accepts. The
// second return value is false for unlimited arities, which have no
// fixed total; extraction then consumes until a natural boundary.
func (a Arity) Total() (int, bool) {
	if a.Unlimited() {
		return 0, false
	}

	return a.Minimum + a.Optional, true
}

// String describes the arity in the form diagnostics and help use.
func (a Arity) String() string {
	switch {
	case a.Zero():
		return "no parameters"
	case a.Unlimited():
		return fmt.Sprintf("at least %d", a.Minimum)
	case a.Optional == 0:
		return fmt.Sprintf("exactly %d", a.Minimum)
	default:
		return fmt.Sprintf("%d required plus up to %d optional", a.Minimum, a.Optional)
	}
}
