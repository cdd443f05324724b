package example

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/bitfield/field"
)

func TestPageHeaderRoundTrip(t *testing.T) {
	var h PageHeader
	h.SetCount(17)
	h.SetFree(1000)
	h.SetDirty(true)
	h.SetLevel(3)
	h.SetKind(KindBranch)

	assert.Equal(t, uint16(17), h.Count())
	assert.Equal(t, uint16(1000), h.Free())
	assert.True(t, h.Dirty())
	assert.False(t, h.Pinned())
	assert.Equal(t, uint8(3), h.Level())

	kind, err := h.Kind()
	require.NoError(t, err)
	assert.Equal(t, KindBranch, kind)

	// Fields do not disturb each other
	h.SetLevel(15)
	assert.Equal(t, uint16(17), h.Count())
	assert.Equal(t, uint16(1000), h.Free())
	kind, _ = h.Kind()
	assert.Equal(t, KindBranch, kind)
}

func TestPageHeaderLayout(t *testing.T) {
	h := PageHeader(0).WithCount(0xABC).WithLevel(0x5).WithKind(KindOverflow).WithDirty(true)
	assert.Equal(t, PageHeader(0x3580_0ABC), h)
}

func TestPageHeaderReadOnlyPinned(t *testing.T) {
	h := PageHeader(1 << 22)
	assert.True(t, h.Pinned())
	assert.Equal(t, field.ReadOnly, pageHeaderPinned.Spec().Access)

	// A read-only field cannot produce a writer
	_, err := field.NewWriter[PageHeader, bool, bool](pageHeaderPinned, field.SetRaw[bool]())
	assert.ErrorIs(t, err, field.ErrNotWritable)
}

func TestPageHeaderCheckedKind(t *testing.T) {
	h := PageHeader(0xF << 28)
	kind, err := h.Kind()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, KindFree, kind)

	var convErr *field.ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "Kind", convErr.Field)
	assert.Equal(t, field.Checked, convErr.Tier)
}

func TestPageHeaderUnwrapCount(t *testing.T) {
	var h PageHeader
	h.SetCount(maxSlots)
	assert.Equal(t, uint16(maxSlots), h.Count())

	defer func() {
		r := recover()
		require.NotNil(t, r, "oversized count must panic")
		err, ok := r.(*field.ConversionError)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrTooManySlots)
		assert.Equal(t, "set", err.Op)
		assert.Equal(t, uint16(maxSlots), h.Count(), "word unchanged by the failed write")
	}()
	h.SetCount(maxSlots + 1)
}

func TestPageHeaderFreeHook(t *testing.T) {
	var h PageHeader
	h.SetFree(1023)
	assert.Equal(t, uint16(1016), h.Free())
}

func TestPageHeaderString(t *testing.T) {
	h := PageHeader(0).WithCount(2).WithKind(KindLeaf)
	assert.Equal(t, "PageHeader{Count: 2, Free: 0, Pinned: false, Dirty: false, Level: 0, Kind: 1}", h.String())
}

func TestFlagsOverlapAndSign(t *testing.T) {
	var f Flags
	f.SetAll(0xFF)
	assert.Equal(t, uint8(0xF), f.Low())
	assert.Equal(t, int8(-1), f.High())
	assert.True(t, f.Top())

	f.SetHigh(3)
	assert.Equal(t, Flags(0x3F), f)
	assert.False(t, f.Top())

	f.SetHigh(-8)
	assert.Equal(t, int8(-8), f.High())
	assert.True(t, f.Top())
	assert.Equal(t, uint8(0x8F), f.All())

	// Over-wide values are truncated, not rejected
	f = f.WithLow(0x1F)
	assert.Equal(t, uint8(0xF), f.Low())
	assert.Equal(t, int8(-8), f.High())

	f.SetTop(false)
	assert.Equal(t, uint8(0x0F), f.All())
}
