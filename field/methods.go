package field

// Visible types can carry their own conversions as methods instead of being
// paired with free functions. Decoders are implemented on the pointer type,
// encoders on the value type:
//
//	func (p *Parity) FromBits(r uint8)          { ... }
//	func (p Parity) ToBits() uint8             { ... }
//	func (n *NonZero) TryFromBits(r uint8) error { ... }
//
// The adapters below turn such a type into a Getter or Setter:
//
//	field.GetInto[Parity, uint8]()
//	field.TrySetFrom[Wide, uint8]()

// Decoder is implemented by *G for an infallible raw-to-G conversion.
type Decoder[R any] interface {
	FromBits(r R)
}

// CheckedDecoder is implemented by *G for a partial raw-to-G conversion.
type CheckedDecoder[R any] interface {
	TryFromBits(r R) error
}

// UncheckedDecoder is implemented by *G for a raw-to-G conversion that skips
// validation.
type UncheckedDecoder[R any] interface {
	FromBitsUnchecked(r R)
}

// Encoder is implemented by P for an infallible P-to-raw conversion.
type Encoder[R any] interface {
	ToBits() R
}

// CheckedEncoder is implemented by P for a partial P-to-raw conversion.
type CheckedEncoder[R any] interface {
	TryToBits() (R, error)
}

// UncheckedEncoder is implemented by P for a P-to-raw conversion that skips
// validation.
type UncheckedEncoder[R any] interface {
	ToBitsUnchecked() R
}

// GetInto is GetAs with (*G).FromBits.
func GetInto[G, R any, PG interface {
	*G
	Decoder[R]
}]() Getter[R, G] {
	return GetAs(func(r R) G {
		var g G
		PG(&g).FromBits(r)
		return g
	})
}

func tryDecode[G, R any, PG interface {
	*G
	CheckedDecoder[R]
}](r R) (G, error) {
	var g G
	err := PG(&g).TryFromBits(r)
	return g, err
}

// TryGetInto is TryGetAs with (*G).TryFromBits.
func TryGetInto[G, R any, PG interface {
	*G
	CheckedDecoder[R]
}]() Getter[R, G] {
	return TryGetAs(tryDecode[G, R, PG])
}

// UnwrapGetInto is UnwrapGetAs with (*G).TryFromBits.
func UnwrapGetInto[G, R any, PG interface {
	*G
	CheckedDecoder[R]
}]() Getter[R, G] {
	return UnwrapGetAs(tryDecode[G, R, PG])
}

// TrustedGetInto is TrustedGetAs with (*G).FromBitsUnchecked.
func TrustedGetInto[G, R any, PG interface {
	*G
	UncheckedDecoder[R]
}]() Getter[R, G] {
	return TrustedGetAs(func(r R) G {
		var g G
		PG(&g).FromBitsUnchecked(r)
		return g
	})
}

// SetFrom is SetAs with P.ToBits.
func SetFrom[P Encoder[R], R any]() Setter[P, R] {
	return SetAs(func(p P) R { return p.ToBits() })
}

// TrySetFrom is TrySetAs with P.TryToBits.
func TrySetFrom[P CheckedEncoder[R], R any]() Setter[P, R] {
	return TrySetAs(func(p P) (R, error) { return p.TryToBits() })
}

// UnwrapSetFrom is UnwrapSetAs with P.TryToBits.
func UnwrapSetFrom[P CheckedEncoder[R], R any]() Setter[P, R] {
	return UnwrapSetAs(func(p P) (R, error) { return p.TryToBits() })
}

// TrustedSetFrom is TrustedSetAs with P.ToBitsUnchecked.
func TrustedSetFrom[P UncheckedEncoder[R], R any]() Setter[P, R] {
	return TrustedSetAs(func(p P) R { return p.ToBitsUnchecked() })
}
