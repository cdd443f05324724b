package example

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrUnknownKind   = errors.New("unknown page kind")
	ErrTooManySlots  = errors.New("slot count exceeds 12 bits")
	ErrSlotTooLong   = errors.New("slot length exceeds 12 bits")
	ErrNegativeEpoch = errors.New("negative epoch")
)

// PageKind identifies what a page holds.
type PageKind uint8

const (
	KindFree PageKind = iota
	KindLeaf
	KindBranch
	KindOverflow
)

var kindNames = [...]string{"free", "leaf", "branch", "overflow"}

func (k PageKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "PageKind(" + strconv.Itoa(int(k)) + ")"
}

func (k *PageKind) TryFromBits(r uint8) error {
	if PageKind(r) > KindOverflow {
		return errors.Wrapf(ErrUnknownKind, "kind %d", r)
	}
	*k = PageKind(r)
	return nil
}

func (k PageKind) ToBits() uint8 { return uint8(k) }

func (k PageKind) TryToBits() (uint8, error) {
	if k > KindOverflow {
		return 0, errors.Wrapf(ErrUnknownKind, "kind %d", uint8(k))
	}
	return uint8(k), nil
}

const maxSlots = 1<<12 - 1

// SlotCount is the number of slots on a page.
type SlotCount uint16

func (c SlotCount) TryToBits() (uint16, error) {
	if c > maxSlots {
		return 0, errors.Wrapf(ErrTooManySlots, "count %d", uint16(c))
	}
	return uint16(c), nil
}

// SlotLen is the byte length of a slot's payload.
type SlotLen uint16

func (l SlotLen) TryToBits() (uint16, error) {
	if l > maxSlots {
		return 0, errors.Wrapf(ErrSlotTooLong, "length %d", uint16(l))
	}
	return uint16(l), nil
}

// Tag is a caller-maintained 4-bit slot tag. Values are never checked.
type Tag uint8

func (t *Tag) FromBitsUnchecked(r uint8) { *t = Tag(r) }

func (t Tag) ToBitsUnchecked() uint8 { return uint8(t) }

// Sequence orders keys written in the same epoch.
type Sequence uint32

func (s *Sequence) FromBits(r uint32) { *s = Sequence(r) }

func (s Sequence) ToBits() uint32 { return uint32(s) }

// Epoch counts checkpoints. Stored epochs are never negative.
type Epoch int16

func (e *Epoch) TryFromBits(r int16) error {
	if r < 0 {
		return errors.Wrapf(ErrNegativeEpoch, "epoch %d", r)
	}
	*e = Epoch(r)
	return nil
}
