// File: facade/integer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

// Integer is the set of built-in integer types the index/range facades
// can iterate over. None of the retrieved example repos pull in
// golang.org/x/exp/constraints for this, so it is defined locally rather
// than adding a dependency for a four-line constraint.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// divideRoundUp is the `divide_round_up` integer helper from the
// reference C++ implementation's bits/imath.hpp, kept unexported here
// since the original only ever uses it internally too.
func divideRoundUp(a, b uint64) uint64 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}
