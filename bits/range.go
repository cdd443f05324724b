package bits

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRange is returned when a range covers no bits.
	ErrEmptyRange = errors.New("empty bit range")

	// ErrRangeOutOfBounds is returned when a range ends past the storage word.
	ErrRangeOutOfBounds = errors.New("bit range exceeds storage width")

	// ErrRawTooNarrow is returned when a range is wider than its raw type.
	ErrRawTooNarrow = errors.New("bit range wider than raw type")

	// ErrBitOutOfBounds is returned when a single bit lies past the storage word.
	ErrBitOutOfBounds = errors.New("bit position exceeds storage width")
)

// RangeError describes an invalid bit range.
//
// The sentinel it wraps can be matched with errors.Is.
type RangeError struct {
	Start     uint
	End       uint
	WordWidth uint
	RawWidth  uint
	cause     error
}

func (e *RangeError) Error() string {
	switch e.cause {
	case ErrRawTooNarrow:
		return fmt.Sprintf("%v: [%d, %d) is %d bits, raw type holds %d", e.cause, e.Start, e.End, e.End-e.Start, e.RawWidth)
	case ErrBitOutOfBounds:
		return fmt.Sprintf("%v: bit %d, word is %d bits", e.cause, e.Start, e.WordWidth)
	default:
		return fmt.Sprintf("%v: [%d, %d) in %d-bit word", e.cause, e.Start, e.End, e.WordWidth)
	}
}

func (e *RangeError) Unwrap() error { return e.cause }

// CheckRange validates the range [start, end) for a storage word of
// wordWidth bits read into a raw type of rawWidth bits.
func CheckRange(start, end, wordWidth, rawWidth uint) error {
	e := &RangeError{Start: start, End: end, WordWidth: wordWidth, RawWidth: rawWidth}
	switch {
	case end <= start:
		e.cause = ErrEmptyRange
	case end > wordWidth:
		e.cause = ErrRangeOutOfBounds
	case end-start > rawWidth:
		e.cause = ErrRawTooNarrow
	default:
		return nil
	}
	return e
}

// CheckBit validates a single bit position for a storage word of wordWidth
// bits.
func CheckBit(pos, wordWidth uint) error {
	if pos < wordWidth {
		return nil
	}
	return &RangeError{Start: pos, End: pos + 1, WordWidth: wordWidth, RawWidth: 1, cause: ErrBitOutOfBounds}
}

// CheckRangeFor is CheckRange with the widths taken from W and R.
func CheckRangeFor[W Word, R Value](start, end uint) error {
	return CheckRange(start, end, Width[W](), Width[R]())
}
