package field

// synthesizeRead builds the read path of a field: extract the raw bits, then
// convert them according to the getter's tier. The tier is resolved here,
// once, so the returned function does no dispatch per call.
func synthesizeRead[W, R, G any](region Region[W, R], g Getter[R, G]) func(W) (G, error) {
	name := region.Spec().Name
	switch g.tier {
	case Checked:
		return func(w W) (G, error) {
			v, err := g.try(region.Extract(w))
			if err != nil {
				return v, &ConversionError{Field: name, Op: "get", Tier: Checked, Err: err}
			}
			return v, nil
		}
	case Unwrap:
		return func(w W) (G, error) {
			v, err := g.try(region.Extract(w))
			if err != nil {
				panic(&ConversionError{Field: name, Op: "get", Tier: Unwrap, Err: err})
			}
			return v, nil
		}
	default:
		return func(w W) (G, error) {
			return g.fn(region.Extract(w)), nil
		}
	}
}

func newRead[W, R, G any](region Region[W, R], g Getter[R, G], want ...Tier) (read[W, G], error) {
	spec := region.Spec()
	if !spec.Access.CanRead() {
		return read[W, G]{}, &accessError{field: spec.Name, err: ErrNotReadable}
	}
	if !g.valid() {
		return read[W, G]{}, &accessError{field: spec.Name, err: ErrNilConversion}
	}
	if !tierIn(g.tier, want) {
		return read[W, G]{}, &TierError{Field: spec.Name, Op: "get", Tier: g.tier, Want: want}
	}
	spec.Mode.Get = g.tier
	return read[W, G]{spec: spec, fn: synthesizeRead(region, g)}, nil
}

// read is the shared core of the reader surfaces.
type read[W, G any] struct {
	spec Spec
	fn   func(W) (G, error)
	hook func(G) G
}

func (r read[W, G]) get(w W) (G, error) {
	v, err := r.fn(w)
	if err != nil {
		return v, err
	}
	if r.hook != nil {
		v = r.hook(v)
	}
	return v, nil
}

// Reader reads a field whose conversion cannot report failure: identity,
// infallible or unwrap tiers.
type Reader[W, G any] struct {
	r read[W, G]
}

// NewReader builds a Reader over region. g must be an identity, infallible or
// unwrap conversion.
func NewReader[W, R, G any](region Region[W, R], g Getter[R, G]) (Reader[W, G], error) {
	r, err := newRead(region, g, Identity, Infallible, Unwrap)
	return Reader[W, G]{r: r}, err
}

// MustReader is like NewReader but panics on error.
func MustReader[W, R, G any](region Region[W, R], g Getter[R, G]) Reader[W, G] {
	return must(NewReader(region, g))
}

// Get returns the field's value in w. With an unwrap conversion it panics
// with a *ConversionError if the stored bits are invalid.
func (r Reader[W, G]) Get(w W) G {
	v, _ := r.r.get(w)
	return v
}

// OnGet returns a copy of r that passes every value read through fn.
func (r Reader[W, G]) OnGet(fn func(G) G) Reader[W, G] {
	r.r.hook = fn
	return r
}

func (r Reader[W, G]) Spec() Spec { return r.r.spec }

// TryReader reads a field through a checked conversion.
type TryReader[W, G any] struct {
	r read[W, G]
}

// NewTryReader builds a TryReader over region. g must be a checked
// conversion.
func NewTryReader[W, R, G any](region Region[W, R], g Getter[R, G]) (TryReader[W, G], error) {
	r, err := newRead(region, g, Checked)
	return TryReader[W, G]{r: r}, err
}

// MustTryReader is like NewTryReader but panics on error.
func MustTryReader[W, R, G any](region Region[W, R], g Getter[R, G]) TryReader[W, G] {
	return must(NewTryReader(region, g))
}

// Get returns the field's value in w, or a *ConversionError wrapping the
// conversion's failure.
func (r TryReader[W, G]) Get(w W) (G, error) {
	return r.r.get(w)
}

// OnGet returns a copy of r that passes every successfully read value
// through fn.
func (r TryReader[W, G]) OnGet(fn func(G) G) TryReader[W, G] {
	r.r.hook = fn
	return r
}

func (r TryReader[W, G]) Spec() Spec { return r.r.spec }

// TrustedReader reads a field through a conversion that does not validate.
type TrustedReader[W, G any] struct {
	r read[W, G]
}

// NewTrustedReader builds a TrustedReader over region. g must be a trusted
// conversion.
func NewTrustedReader[W, R, G any](region Region[W, R], g Getter[R, G]) (TrustedReader[W, G], error) {
	r, err := newRead(region, g, Trusted)
	return TrustedReader[W, G]{r: r}, err
}

// MustTrustedReader is like NewTrustedReader but panics on error.
func MustTrustedReader[W, R, G any](region Region[W, R], g Getter[R, G]) TrustedReader[W, G] {
	return must(NewTrustedReader(region, g))
}

// GetUnchecked returns the field's value in w without validating it. The
// caller guarantees the stored bits are a valid G; if they are not, the
// result is undefined.
func (r TrustedReader[W, G]) GetUnchecked(w W) G {
	v, _ := r.r.get(w)
	return v
}

// OnGet returns a copy of r that passes every value read through fn.
func (r TrustedReader[W, G]) OnGet(fn func(G) G) TrustedReader[W, G] {
	r.r.hook = fn
	return r
}

func (r TrustedReader[W, G]) Spec() Spec { return r.r.spec }

func tierIn(t Tier, want []Tier) bool {
	for _, w := range want {
		if t == w {
			return true
		}
	}
	return false
}
