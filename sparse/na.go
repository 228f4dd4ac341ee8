// SPDX-License-Identifier: MIT

package sparse

import "math"

// naBits is a quiet NaN carrying the payload 1954 in its low word.
const (
	naBits    uint64 = 0x7FF80000000007A2
	naPayload uint32 = uint32(naBits & 0xFFFFFFFF)
)

// NAInteger is the integer missing-value sentinel used by count results.
const NAInteger = math.MinInt32

// NA returns the missing-value sentinel.
// Compare with IsNA, never with ==: NaN is unequal to itself.
func NA() float64 {
	return math.Float64frombits(naBits)
}

// IsNA reports whether x is missing.
// Every NaN counts as missing, the NA payload and arithmetic NaN alike,
// so skipping and propagation treat both the same way.
func IsNA(x float64) bool {
	return x != x
}

// IsNAPayload reports whether x is the NA sentinel specifically (NaN with
// the 1954 payload), as opposed to a NaN produced by arithmetic.
func IsNAPayload(x float64) bool {
	return IsNA(x) && uint32(math.Float64bits(x)) == naPayload
}

// Logical is a three-valued boolean: False, True or NALogical.
type Logical int8

const (
	// False is the definite negative answer.
	False Logical = iota
	// True is the definite positive answer.
	True
	// NALogical means the answer depends on a missing value.
	NALogical
)

// LogicalOf converts a Go bool into False/True.
func LogicalOf(b bool) Logical {
	if b {
		return True
	}
	return False
}

// String implements fmt.Stringer.
func (l Logical) String() string {
	switch l {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "NA"
	}
}
