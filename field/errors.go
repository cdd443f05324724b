package field

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotReadable is returned when a reader is requested for a write-only field.
	ErrNotReadable = errors.New("field is write-only")

	// ErrNotWritable is returned when a writer is requested for a read-only field.
	ErrNotWritable = errors.New("field is read-only")

	// ErrTierMismatch is returned when a conversion's tier does not match the
	// accessor it is used with.
	ErrTierMismatch = errors.New("conversion tier does not match accessor")

	// ErrModeAccess is returned when a spec sets a conversion tier for a
	// direction its access restriction excludes.
	ErrModeAccess = errors.New("conversion tier set on excluded direction")

	// ErrNilConversion is returned for a zero-value Getter or Setter.
	ErrNilConversion = errors.New("conversion function is nil")

	// ErrUnknownTier is returned by ParseTier.
	ErrUnknownTier = errors.New("unknown conversion tier")
)

// TierError reports an accessor built from a conversion of the wrong tier.
type TierError struct {
	Field string
	Op    string // "get" or "set"
	Tier  Tier
	Want  []Tier
}

func (e *TierError) Error() string {
	want := make([]string, len(e.Want))
	for i, t := range e.Want {
		want[i] = t.String()
	}
	return fmt.Sprintf("field %s: %s tier %s, accessor takes %s", e.Field, e.Op, e.Tier, strings.Join(want, "|"))
}

func (e *TierError) Unwrap() error { return ErrTierMismatch }

// ConversionError wraps the failure of a checked or unwrapping conversion.
//
// The conversion's own error is available via errors.Unwrap.
type ConversionError struct {
	Field string
	Op    string // "get" or "set"
	Tier  Tier
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("field %s: %s %s conversion failed: %v", e.Field, e.Tier, e.Op, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// accessError ties a definition-time sentinel to the field it was raised for.
type accessError struct {
	field string
	err   error
}

func (e *accessError) Error() string {
	return fmt.Sprintf("field %s: %v", e.field, e.err)
}

func (e *accessError) Unwrap() error { return e.err }
