package field

// synthesizeWrite builds the write path of a field: convert the value
// according to the setter's tier, then insert the raw bits. A failed checked
// conversion returns the word unchanged.
func synthesizeWrite[W, R, P any](region Region[W, R], s Setter[P, R]) func(W, P) (W, error) {
	name := region.Spec().Name
	switch s.tier {
	case Checked:
		return func(w W, v P) (W, error) {
			raw, err := s.try(v)
			if err != nil {
				return w, &ConversionError{Field: name, Op: "set", Tier: Checked, Err: err}
			}
			return region.Insert(w, raw), nil
		}
	case Unwrap:
		return func(w W, v P) (W, error) {
			raw, err := s.try(v)
			if err != nil {
				panic(&ConversionError{Field: name, Op: "set", Tier: Unwrap, Err: err})
			}
			return region.Insert(w, raw), nil
		}
	default:
		return func(w W, v P) (W, error) {
			return region.Insert(w, s.fn(v)), nil
		}
	}
}

func newWrite[W, R, P any](region Region[W, R], s Setter[P, R], want ...Tier) (write[W, P], error) {
	spec := region.Spec()
	if !spec.Access.CanWrite() {
		return write[W, P]{}, &accessError{field: spec.Name, err: ErrNotWritable}
	}
	if !s.valid() {
		return write[W, P]{}, &accessError{field: spec.Name, err: ErrNilConversion}
	}
	if !tierIn(s.tier, want) {
		return write[W, P]{}, &TierError{Field: spec.Name, Op: "set", Tier: s.tier, Want: want}
	}
	spec.Mode.Set = s.tier
	return write[W, P]{spec: spec, fn: synthesizeWrite(region, s)}, nil
}

// write is the shared core of the writer surfaces.
type write[W, P any] struct {
	spec Spec
	fn   func(W, P) (W, error)
	hook func(P) P
}

func (wr write[W, P]) with(w W, v P) (W, error) {
	if wr.hook != nil {
		v = wr.hook(v)
	}
	return wr.fn(w, v)
}

// Writer writes a field whose conversion cannot report failure: identity,
// infallible or unwrap tiers.
type Writer[W, P any] struct {
	w write[W, P]
}

// NewWriter builds a Writer over region. s must be an identity, infallible or
// unwrap conversion.
func NewWriter[W, R, P any](region Region[W, R], s Setter[P, R]) (Writer[W, P], error) {
	w, err := newWrite(region, s, Identity, Infallible, Unwrap)
	return Writer[W, P]{w: w}, err
}

// MustWriter is like NewWriter but panics on error.
func MustWriter[W, R, P any](region Region[W, R], s Setter[P, R]) Writer[W, P] {
	return must(NewWriter(region, s))
}

// With returns w with the field set to v. Raw bits beyond the field's width
// are dropped. With an unwrap conversion it panics with a *ConversionError
// if v cannot be converted.
func (wr Writer[W, P]) With(w W, v P) W {
	w, _ = wr.w.with(w, v)
	return w
}

// Set stores v into the field of *w.
func (wr Writer[W, P]) Set(w *W, v P) {
	*w = wr.With(*w, v)
}

// OnSet returns a copy of wr that passes every value through fn before it
// is written.
func (wr Writer[W, P]) OnSet(fn func(P) P) Writer[W, P] {
	wr.w.hook = fn
	return wr
}

func (wr Writer[W, P]) Spec() Spec { return wr.w.spec }

// TryWriter writes a field through a checked conversion.
type TryWriter[W, P any] struct {
	w write[W, P]
}

// NewTryWriter builds a TryWriter over region. s must be a checked
// conversion.
func NewTryWriter[W, R, P any](region Region[W, R], s Setter[P, R]) (TryWriter[W, P], error) {
	w, err := newWrite(region, s, Checked)
	return TryWriter[W, P]{w: w}, err
}

// MustTryWriter is like NewTryWriter but panics on error.
func MustTryWriter[W, R, P any](region Region[W, R], s Setter[P, R]) TryWriter[W, P] {
	return must(NewTryWriter(region, s))
}

// With returns w with the field set to v, or w unchanged and a
// *ConversionError if v cannot be converted.
func (wr TryWriter[W, P]) With(w W, v P) (W, error) {
	return wr.w.with(w, v)
}

// Set stores v into the field of *w. On error *w is left untouched.
func (wr TryWriter[W, P]) Set(w *W, v P) error {
	nw, err := wr.w.with(*w, v)
	if err != nil {
		return err
	}
	*w = nw
	return nil
}

// OnSet returns a copy of wr that passes every value through fn before it
// is converted.
func (wr TryWriter[W, P]) OnSet(fn func(P) P) TryWriter[W, P] {
	wr.w.hook = fn
	return wr
}

func (wr TryWriter[W, P]) Spec() Spec { return wr.w.spec }

// TrustedWriter writes a field through a conversion that does not validate.
type TrustedWriter[W, P any] struct {
	w write[W, P]
}

// NewTrustedWriter builds a TrustedWriter over region. s must be a trusted
// conversion.
func NewTrustedWriter[W, R, P any](region Region[W, R], s Setter[P, R]) (TrustedWriter[W, P], error) {
	w, err := newWrite(region, s, Trusted)
	return TrustedWriter[W, P]{w: w}, err
}

// MustTrustedWriter is like NewTrustedWriter but panics on error.
func MustTrustedWriter[W, R, P any](region Region[W, R], s Setter[P, R]) TrustedWriter[W, P] {
	return must(NewTrustedWriter(region, s))
}

// WithUnchecked returns w with the field set to v without validating v. The
// caller guarantees v is valid for the field; if it is not, the result is
// undefined.
func (wr TrustedWriter[W, P]) WithUnchecked(w W, v P) W {
	w, _ = wr.w.with(w, v)
	return w
}

// SetUnchecked stores v into the field of *w without validating v.
func (wr TrustedWriter[W, P]) SetUnchecked(w *W, v P) {
	*w = wr.WithUnchecked(*w, v)
}

// OnSet returns a copy of wr that passes every value through fn before it
// is written.
func (wr TrustedWriter[W, P]) OnSet(fn func(P) P) TrustedWriter[W, P] {
	wr.w.hook = fn
	return wr
}

func (wr TrustedWriter[W, P]) Spec() Spec { return wr.w.spec }
