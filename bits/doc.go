// Package bits reads and writes bit ranges packed inside a fixed-width
// unsigned storage word.
//
// Bit positions count from the least-significant bit of the word. A range is
// the half-open interval [start, end).
//
// Range reads sign-extend when the destination type is signed:
//
//	bits.Extract[int8](uint16(0b1000_0000), 4, 8) // -8
//	bits.Extract[uint8](uint16(0b1000_0000), 4, 8) // 8
//
// Range writes never touch bits outside the range and silently drop value
// bits above the range width:
//
//	bits.With(uint16(0xFFFF), 4, 8, uint8(0)) // 0xFF0F
//	bits.With(uint16(0), 0, 4, uint8(0xFF))   // 0x000F
//
// None of the primitives validate their arguments. Validate a range once with
// CheckRange when declaring it, then call the primitives freely.
//
// Go has no native 128-bit integer, so 128-bit storage uses Uint128 and the
// *128 variants of each primitive.
package bits
