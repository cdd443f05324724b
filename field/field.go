package field

import (
	"github.com/alexhholmes/bitfield/bits"
)

// Region is a validated bit range of a storage word of type W, read into and
// written from raw type R. Readers and writers are built on top of a Region.
type Region[W, R any] interface {
	Spec() Spec
	Extract(w W) R
	Insert(w W, v R) W
}

// Field is a multi-bit range of a native storage word.
type Field[W bits.Word, R bits.Value] struct {
	spec Spec
}

// Define declares the field name covering bits [start, end) of W, read as R.
//
// The range must be non-empty, lie inside W and fit in R.
func Define[W bits.Word, R bits.Value](name string, start, end uint, opts ...Option) (Field[W, R], error) {
	s := Spec{Name: name, Start: start, End: end}
	for _, opt := range opts {
		opt(&s)
	}
	return DefineSpec[W, R](s)
}

// DefineSpec is Define driven by a Spec.
func DefineSpec[W bits.Word, R bits.Value](s Spec) (Field[W, R], error) {
	s.Flag = false
	if err := s.Validate(bits.Width[W](), bits.Width[R]()); err != nil {
		return Field[W, R]{}, err
	}
	return Field[W, R]{spec: s}, nil
}

// MustDefine is like Define but panics on an invalid range. It is meant for
// package-level declarations.
func MustDefine[W bits.Word, R bits.Value](name string, start, end uint, opts ...Option) Field[W, R] {
	return must(Define[W, R](name, start, end, opts...))
}

func (f Field[W, R]) Spec() Spec { return f.spec }

func (f Field[W, R]) Extract(w W) R {
	return bits.Extract[R](w, f.spec.Start, f.spec.End)
}

func (f Field[W, R]) Insert(w W, v R) W {
	return bits.With(w, f.spec.Start, f.spec.End, v)
}

// Flag is a single bit of a native storage word read as a bool.
type Flag[W bits.Word] struct {
	spec Spec
}

// DefineFlag declares the flag name at bit pos of W.
func DefineFlag[W bits.Word](name string, pos uint, opts ...Option) (Flag[W], error) {
	s := Spec{Name: name, Start: pos, End: pos + 1, Flag: true}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.Validate(bits.Width[W](), 1); err != nil {
		return Flag[W]{}, err
	}
	return Flag[W]{spec: s}, nil
}

// MustDefineFlag is like DefineFlag but panics on an invalid position.
func MustDefineFlag[W bits.Word](name string, pos uint, opts ...Option) Flag[W] {
	return must(DefineFlag[W](name, pos, opts...))
}

func (f Flag[W]) Spec() Spec { return f.spec }

func (f Flag[W]) Extract(w W) bool {
	return bits.ExtractBit(w, f.spec.Start)
}

func (f Flag[W]) Insert(w W, v bool) W {
	return bits.WithBit(w, f.spec.Start, v)
}

// Field128 is a multi-bit range of a 128-bit storage word. Ranges are at most
// 64 bits wide since R is.
type Field128[R bits.Value] struct {
	spec Spec
}

// Define128 declares the field name covering bits [start, end) of a
// bits.Uint128, read as R.
func Define128[R bits.Value](name string, start, end uint, opts ...Option) (Field128[R], error) {
	s := Spec{Name: name, Start: start, End: end}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.Validate(bits.Uint128Width, bits.Width[R]()); err != nil {
		return Field128[R]{}, err
	}
	return Field128[R]{spec: s}, nil
}

// MustDefine128 is like Define128 but panics on an invalid range.
func MustDefine128[R bits.Value](name string, start, end uint, opts ...Option) Field128[R] {
	return must(Define128[R](name, start, end, opts...))
}

func (f Field128[R]) Spec() Spec { return f.spec }

func (f Field128[R]) Extract(w bits.Uint128) R {
	return bits.Extract128[R](w, f.spec.Start, f.spec.End)
}

func (f Field128[R]) Insert(w bits.Uint128, v R) bits.Uint128 {
	return bits.With128(w, f.spec.Start, f.spec.End, v)
}

// Flag128 is a single bit of a 128-bit storage word read as a bool.
type Flag128 struct {
	spec Spec
}

// DefineFlag128 declares the flag name at bit pos of a bits.Uint128.
func DefineFlag128(name string, pos uint, opts ...Option) (Flag128, error) {
	s := Spec{Name: name, Start: pos, End: pos + 1, Flag: true}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.Validate(bits.Uint128Width, 1); err != nil {
		return Flag128{}, err
	}
	return Flag128{spec: s}, nil
}

// MustDefineFlag128 is like DefineFlag128 but panics on an invalid position.
func MustDefineFlag128(name string, pos uint, opts ...Option) Flag128 {
	return must(DefineFlag128(name, pos, opts...))
}

func (f Flag128) Spec() Spec { return f.spec }

func (f Flag128) Extract(w bits.Uint128) bool {
	return bits.ExtractBit128(w, f.spec.Start)
}

func (f Flag128) Insert(w bits.Uint128, v bool) bits.Uint128 {
	return bits.WithBit128(w, f.spec.Start, v)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
