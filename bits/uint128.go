package bits

import (
	"fmt"
	"math/bits"
)

// Uint128Width is the bit width of Uint128.
const Uint128Width = 128

// Uint128 is a 128-bit unsigned storage word.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// U128 returns a Uint128 holding hi:lo.
func U128(hi, lo uint64) Uint128 {
	return Uint128{Lo: lo, Hi: hi}
}

// IsZero reports whether every bit of u is clear.
func (u Uint128) IsZero() bool {
	return u.Lo|u.Hi == 0
}

func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Lo: u.Lo & v.Lo, Hi: u.Hi & v.Hi}
}

func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Lo: u.Lo | v.Lo, Hi: u.Hi | v.Hi}
}

func (u Uint128) AndNot(v Uint128) Uint128 {
	return Uint128{Lo: u.Lo &^ v.Lo, Hi: u.Hi &^ v.Hi}
}

func (u Uint128) Not() Uint128 {
	return Uint128{Lo: ^u.Lo, Hi: ^u.Hi}
}

// Shl returns u << n. Shifts of 128 or more yield zero.
func (u Uint128) Shl(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	default:
		return Uint128{Lo: u.Lo << n, Hi: u.Hi<<n | u.Lo>>(64-n)}
	}
}

// Shr returns u >> n. Shifts of 128 or more yield zero.
func (u Uint128) Shr(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{Lo: u.Lo>>n | u.Hi<<(64-n), Hi: u.Hi >> n}
	}
}

// String formats u in hexadecimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("%#x", u.Lo)
	}
	return fmt.Sprintf("%#x%016x", u.Hi, u.Lo)
}

// Mask128 is Mask for 128-bit words.
func Mask128(start, end uint) Uint128 {
	n := end - start
	ones := Uint128{Lo: 1}.Shl(n - 1).Shl(1)
	// ones - 1 with borrow from the high word.
	lo, borrow := bits.Sub64(ones.Lo, 1, 0)
	hi, _ := bits.Sub64(ones.Hi, 0, borrow)
	return Uint128{Lo: lo, Hi: hi}.Shl(start)
}

// Extract128 is Extract for 128-bit words. R is at most 64 bits wide, so
// ranges read this way are at most 64 bits wide.
func Extract128[R Value](w Uint128, start, end uint) R {
	spare := Width[R]() - (end - start)
	return R(w.Shr(start).Lo) << spare >> spare
}

// ExtractBit128 is ExtractBit for 128-bit words.
func ExtractBit128(w Uint128, pos uint) bool {
	return w.Shr(pos).Lo&1 != 0
}

// With128 is With for 128-bit words.
func With128[R Value](w Uint128, start, end uint, v R) Uint128 {
	mask := Mask128(start, end)
	return w.AndNot(mask).Or(Uint128{Lo: uint64(v)}.Shl(start).And(mask))
}

// WithBit128 is WithBit for 128-bit words.
func WithBit128(w Uint128, pos uint, v bool) Uint128 {
	mask := Uint128{Lo: 1}.Shl(pos)
	if v {
		return w.Or(mask)
	}
	return w.AndNot(mask)
}

// Set128 is Set for 128-bit words.
func Set128[R Value](w *Uint128, start, end uint, v R) {
	*w = With128(*w, start, end, v)
}

// SetBit128 is SetBit for 128-bit words.
func SetBit128(w *Uint128, pos uint, v bool) {
	*w = WithBit128(*w, pos, v)
}
