package field

import (
	"errors"
	"fmt"
)

var errZero = errors.New("zero value")

// nonZero is a uint8 that is never 0.
type nonZero uint8

func newNonZero(r uint8) (nonZero, error) {
	if r == 0 {
		return 0, errZero
	}
	return nonZero(r), nil
}

func (n *nonZero) TryFromBits(r uint8) error {
	v, err := newNonZero(r)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n *nonZero) FromBitsUnchecked(r uint8) { *n = nonZero(r) }

func (n nonZero) ToBits() uint8 { return uint8(n) }

// parity carries a nibble and whether it has an odd number of set bits.
type parity struct {
	Value uint8
	Odd   bool
}

func (p *parity) FromBits(r uint8) {
	p.Value = r
	p.Odd = false
	for ; r != 0; r &= r - 1 {
		p.Odd = !p.Odd
	}
}

func (p parity) ToBits() uint8 { return p.Value }

// wide is a uint16 written into a narrower field.
type wide uint16

func (w wide) TryToBits() (uint8, error) {
	if w > 0xFF {
		return 0, fmt.Errorf("%d does not fit in uint8", uint16(w))
	}
	return uint8(w), nil
}

func (w wide) ToBitsUnchecked() uint8 { return uint8(w) }
