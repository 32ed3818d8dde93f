package abi

import (
	"math"
	"reflect"
)

// Default bounds for decoded strings and arrays. Counts above them are
// rejected before anything is allocated.
const (
	MaxStringSize = 1 << 30
	MaxListLength = 1 << 27
)

// SafeAddU32 returns a+b and false when the sum does not fit in 32 bits.
func SafeAddU32(a, b uint32) (uint32, bool) {
	sum := uint64(a) + uint64(b)
	if sum > math.MaxUint32 {
		return 0, false
	}
	return uint32(sum), true
}

// TypeName names the dynamic type of value for error messages.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
