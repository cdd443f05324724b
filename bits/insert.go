package bits

// With returns w with bits [start, end) replaced by the low end-start bits of
// v. All other bits of w are preserved.
//
// Bits of v above the range width are discarded.
func With[W Word, R Value](w W, start, end uint, v R) W {
	mask := Mask[W](start, end)
	return (w &^ mask) | (W(v) << start & mask)
}

// WithBit returns w with bit pos set to v.
func WithBit[W Word](w W, pos uint, v bool) W {
	mask := W(1) << pos
	if v {
		return w | mask
	}
	return w &^ mask
}

// Set replaces bits [start, end) of *w with the low end-start bits of v.
func Set[W Word, R Value](w *W, start, end uint, v R) {
	*w = With(*w, start, end, v)
}

// SetBit sets bit pos of *w to v.
func SetBit[W Word](w *W, pos uint, v bool) {
	*w = WithBit(*w, pos, v)
}
