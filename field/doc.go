// Package field exposes bit ranges of a storage word as named, typed fields.
//
// A field is declared once with a validated range (Define, DefineFlag, ...)
// and then turned into read and write accessors. Each accessor applies one
// conversion tier between the raw field type and the visible type:
//
//	Identity    the raw type is the visible type
//	Infallible  a total conversion
//	Checked     a partial conversion whose failure is returned to the caller
//	Unwrap      a partial conversion whose failure panics
//	Trusted     a conversion that skips validation; the caller guarantees validity
//
// The tier decides the accessor's method set, so a caller cannot ignore a
// checked failure or call a trusted conversion by accident:
//
//	Reader.Get(w) G                 Writer.With(w, v) W
//	TryReader.Get(w) (G, error)     TryWriter.With(w, v) (W, error)
//	TrustedReader.GetUnchecked(w) G TrustedWriter.WithUnchecked(w, v) W
//
// Read and write tiers are chosen independently. A read-only field yields no
// writer and a write-only field yields no reader.
//
// Example:
//
//	var kind = field.MustDefine[uint16, uint8]("kind", 0, 4)
//	var kindOf = field.MustTryReader(kind, field.TryGetAs(parseKind))
//
//	k, err := kindOf.Get(word)
package field
