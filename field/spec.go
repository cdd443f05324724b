package field

import (
	"fmt"

	"github.com/alexhholmes/bitfield/bits"
)

// Spec describes one field of a storage word: its bit range, access
// restriction and conversion tiers. Specs are plain data; Define and the
// accessor constructors turn them into working accessors.
type Spec struct {
	Name   string
	Start  uint // first bit, counted from the least-significant bit
	End    uint // one past the last bit
	Flag   bool // single bit read as bool
	Access Access
	Mode   Mode
}

// Width returns the number of bits the field covers.
func (s Spec) Width() uint {
	return s.End - s.Start
}

// Overlaps reports whether s and o share any bit.
func (s Spec) Overlaps(o Spec) bool {
	return s.Start < o.End && o.Start < s.End
}

// Validate checks s against a storage word of wordWidth bits and a raw type
// of rawWidth bits. Flags ignore rawWidth.
func (s Spec) Validate(wordWidth, rawWidth uint) error {
	var err error
	if s.Flag {
		err = bits.CheckBit(s.Start, wordWidth)
		if err == nil && s.End != s.Start+1 {
			err = fmt.Errorf("flag spans [%d, %d): %w", s.Start, s.End, bits.ErrRawTooNarrow)
		}
	} else {
		err = bits.CheckRange(s.Start, s.End, wordWidth, rawWidth)
	}
	if err != nil {
		return fmt.Errorf("field %s: %w", s.Name, err)
	}

	if s.Access == ReadOnly && s.Mode.Set != Identity {
		return fmt.Errorf("field %s: read-only with %s setter: %w", s.Name, s.Mode.Set, ErrModeAccess)
	}
	if s.Access == WriteOnly && s.Mode.Get != Identity {
		return fmt.Errorf("field %s: write-only with %s getter: %w", s.Name, s.Mode.Get, ErrModeAccess)
	}
	return nil
}

func (s Spec) String() string {
	if s.Flag {
		return fmt.Sprintf("%s @ %d (%s)", s.Name, s.Start, s.Access)
	}
	return fmt.Sprintf("%s @ [%d, %d) (%s, %s)", s.Name, s.Start, s.End, s.Access, s.Mode)
}

// Option adjusts a Spec while a field is defined.
type Option func(*Spec)

// WithAccess sets the field's access restriction.
func WithAccess(a Access) Option {
	return func(s *Spec) {
		s.Access = a
	}
}

// WithMode records the conversion tiers the field is declared with.
func WithMode(m Mode) Option {
	return func(s *Spec) {
		s.Mode = m
	}
}
