package field

// Getter converts a field's raw value R into its visible value G.
//
// Build one with GetRaw, GetAs, TryGetAs, UnwrapGetAs or TrustedGetAs. The
// zero Getter is invalid.
type Getter[R, G any] struct {
	tier Tier
	fn   func(R) G
	try  func(R) (G, error)
}

// Tier returns the conversion's fallibility tier.
func (g Getter[R, G]) Tier() Tier { return g.tier }

func (g Getter[R, G]) valid() bool {
	if g.tier.Fallible() {
		return g.try != nil
	}
	return g.fn != nil
}

// GetRaw returns the raw value unchanged.
func GetRaw[R any]() Getter[R, R] {
	return Getter[R, R]{tier: Identity, fn: func(r R) R { return r }}
}

// GetAs converts with a total function.
func GetAs[R, G any](fn func(R) G) Getter[R, G] {
	return Getter[R, G]{tier: Infallible, fn: fn}
}

// TryGetAs converts with a partial function; a failure is returned by the
// reader.
func TryGetAs[R, G any](fn func(R) (G, error)) Getter[R, G] {
	return Getter[R, G]{tier: Checked, try: fn}
}

// UnwrapGetAs converts with a partial function; a failure panics in the
// reader. Use it when every bit pattern the field can hold is valid by
// construction.
func UnwrapGetAs[R, G any](fn func(R) (G, error)) Getter[R, G] {
	return Getter[R, G]{tier: Unwrap, try: fn}
}

// TrustedGetAs converts with fn, which is not expected to validate its input.
// The reader built from it is a TrustedReader; the caller guarantees the
// stored bits are valid for G and behavior is undefined otherwise.
func TrustedGetAs[R, G any](fn func(R) G) Getter[R, G] {
	return Getter[R, G]{tier: Trusted, fn: fn}
}

// Setter converts a visible value P into a field's raw value R.
//
// Build one with SetRaw, SetAs, TrySetAs, UnwrapSetAs or TrustedSetAs. The
// zero Setter is invalid.
type Setter[P, R any] struct {
	tier Tier
	fn   func(P) R
	try  func(P) (R, error)
}

// Tier returns the conversion's fallibility tier.
func (s Setter[P, R]) Tier() Tier { return s.tier }

func (s Setter[P, R]) valid() bool {
	if s.tier.Fallible() {
		return s.try != nil
	}
	return s.fn != nil
}

// SetRaw stores the value unchanged.
func SetRaw[R any]() Setter[R, R] {
	return Setter[R, R]{tier: Identity, fn: func(r R) R { return r }}
}

// SetAs converts with a total function.
func SetAs[P, R any](fn func(P) R) Setter[P, R] {
	return Setter[P, R]{tier: Infallible, fn: fn}
}

// TrySetAs converts with a partial function; on failure the writer returns
// the error and leaves the word untouched.
func TrySetAs[P, R any](fn func(P) (R, error)) Setter[P, R] {
	return Setter[P, R]{tier: Checked, try: fn}
}

// UnwrapSetAs converts with a partial function; a failure panics in the
// writer.
func UnwrapSetAs[P, R any](fn func(P) (R, error)) Setter[P, R] {
	return Setter[P, R]{tier: Unwrap, try: fn}
}

// TrustedSetAs converts with fn, which is not expected to validate its input.
// The writer built from it is a TrustedWriter; the caller guarantees every
// value passed is valid and behavior is undefined otherwise.
func TrustedSetAs[P, R any](fn func(P) R) Setter[P, R] {
	return Setter[P, R]{tier: Trusted, fn: fn}
}
