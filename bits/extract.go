package bits

// Extract returns bits [start, end) of w shifted down to bit 0.
//
// If R is signed, the top bit of the range is the sign bit and the result is
// sign-extended. If R is unsigned, the result is zero-extended. The range
// width must be between 1 and the width of R.
func Extract[R Value, W Word](w W, start, end uint) R {
	spare := Width[R]() - (end - start)
	return R(w>>start) << spare >> spare
}

// ExtractBit reports whether bit pos of w is set.
func ExtractBit[W Word](w W, pos uint) bool {
	return (w>>pos)&1 != 0
}
