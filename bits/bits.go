package bits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Word is the set of types usable as a storage word.
type Word interface {
	constraints.Unsigned
}

// Value is the set of raw field types a range can be read into or written
// from.
type Value interface {
	constraints.Integer
}

// Width returns the bit width of T.
func Width[T Value]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// Signed reports whether T is a signed integer type.
func Signed[T Value]() bool {
	var zero T
	return ^zero < zero
}

// Mask returns a word with bits [start, end) set and every other bit clear.
//
// The ones are built as ((1 << (n-1)) << 1) - 1 so that a range covering the
// whole word never shifts by the full word width.
func Mask[W Word](start, end uint) W {
	n := end - start
	return (((W(1) << (n - 1)) << 1) - 1) << start
}
