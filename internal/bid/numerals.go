package bid

import "fmt"

// Policy decides how the numeral ceiling behaves.
type Policy string

const (
	// PolicyLazy grows the ceiling whenever rendering nears it.
	PolicyLazy Policy = "lazy"
	// PolicyFixed keeps the ceiling constant.
	PolicyFixed Policy = "fixed"
)

// Defaults for the numeral range.
const (
	DefaultInitialCeiling  = 200
	DefaultExtendThreshold = 30
	DefaultExtendBy        = 200
	DefaultFixedCeiling    = 300
)

// RangeOptions configures a NumeralRange.
type RangeOptions struct {
	Policy          Policy
	InitialCeiling  int
	ExtendThreshold int
	ExtendBy        int
	FixedCeiling    int
}

// DefaultRangeOptions returns the lazy-extension defaults.
func DefaultRangeOptions() RangeOptions {
	return RangeOptions{
		Policy:          PolicyLazy,
		InitialCeiling:  DefaultInitialCeiling,
		ExtendThreshold: DefaultExtendThreshold,
		ExtendBy:        DefaultExtendBy,
		FixedCeiling:    DefaultFixedCeiling,
	}
}

// ParsePolicy converts a config string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyLazy, PolicyFixed:
		return Policy(s), nil
	case "":
		return PolicyLazy, nil
	default:
		return "", fmt.Errorf("unknown numeral policy %q (want lazy or fixed)", s)
	}
}

// NumeralRange is the contiguous sequence [1, Ceiling()] offered by the
// numeral strip. The ceiling only ever grows.
type NumeralRange struct {
	policy    Policy
	ceiling   int
	threshold int
	extendBy  int
}

// NewNumeralRange builds a range from opts, filling unset values with the
// package defaults. A zero threshold is kept and extends only at the ceiling.
func NewNumeralRange(opts RangeOptions) *NumeralRange {
	def := DefaultRangeOptions()
	if opts.Policy == "" {
		opts.Policy = def.Policy
	}
	if opts.InitialCeiling < 1 {
		opts.InitialCeiling = def.InitialCeiling
	}
	if opts.ExtendThreshold < 0 {
		opts.ExtendThreshold = def.ExtendThreshold
	}
	if opts.ExtendBy < 1 {
		opts.ExtendBy = def.ExtendBy
	}
	if opts.FixedCeiling < 1 {
		opts.FixedCeiling = def.FixedCeiling
	}
	// A threshold at or past the increment would let one render extend
	// the new ceiling again.
	opts.ExtendThreshold = min(opts.ExtendThreshold, opts.ExtendBy-1)

	r := &NumeralRange{
		policy:    opts.Policy,
		ceiling:   opts.InitialCeiling,
		threshold: opts.ExtendThreshold,
		extendBy:  opts.ExtendBy,
	}
	if opts.Policy == PolicyFixed {
		r.ceiling = opts.FixedCeiling
	}
	return r
}

// Policy returns the ceiling policy in effect.
func (r *NumeralRange) Policy() Policy {
	return r.policy
}

// Ceiling returns the current upper bound, inclusive.
func (r *NumeralRange) Ceiling() int {
	return r.ceiling
}

// Len returns how many numerals the range holds.
func (r *NumeralRange) Len() int {
	return r.ceiling
}

// Contains reports whether n lies in [1, Ceiling()].
func (r *NumeralRange) Contains(n int) bool {
	return n >= 1 && n <= r.ceiling
}

// Clamp pins n into [1, Ceiling()].
func (r *NumeralRange) Clamp(n int) int {
	return min(max(n, 1), r.ceiling)
}

// Reach records that numeral index has been rendered. Under the lazy
// policy an index within the threshold of the ceiling grows the ceiling
// by exactly one increment. Reports whether the ceiling moved.
func (r *NumeralRange) Reach(index int) bool {
	if r.policy != PolicyLazy {
		return false
	}
	if index < r.ceiling-r.threshold {
		return false
	}
	r.ceiling += r.extendBy
	return true
}
