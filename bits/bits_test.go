package bits

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, uint(8), Width[uint8]())
	assert.Equal(t, uint(8), Width[int8]())
	assert.Equal(t, uint(16), Width[uint16]())
	assert.Equal(t, uint(32), Width[int32]())
	assert.Equal(t, uint(64), Width[uint64]())
	assert.Equal(t, uint(64), Width[int64]())
}

func TestSigned(t *testing.T) {
	assert.True(t, Signed[int8]())
	assert.True(t, Signed[int64]())
	assert.True(t, Signed[int]())
	assert.False(t, Signed[uint8]())
	assert.False(t, Signed[uint64]())
	assert.False(t, Signed[uintptr]())
}

func TestMask(t *testing.T) {
	tests := []struct {
		name       string
		start, end uint
		want       uint16
	}{
		{"low nibble", 0, 4, 0x000F},
		{"second nibble", 4, 8, 0x00F0},
		{"single bit", 15, 16, 0x8000},
		{"whole word", 0, 16, 0xFFFF},
		{"top byte", 8, 16, 0xFF00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask[uint16](tt.start, tt.end))
		})
	}

	assert.Equal(t, ^uint64(0), Mask[uint64](0, 64))
	assert.Equal(t, uint8(0xFF), Mask[uint8](0, 8))
}

func TestExtract(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		w := uint16(0b1010_0111_1000_0001)
		assert.Equal(t, uint8(0b0001), Extract[uint8](w, 0, 4))
		assert.Equal(t, uint8(0b1000), Extract[uint8](w, 4, 8))
		assert.Equal(t, uint8(0b0111), Extract[uint8](w, 8, 12))
		assert.Equal(t, uint8(0b1010), Extract[uint8](w, 12, 16))
		assert.Equal(t, uint32(w), Extract[uint32](w, 0, 16))
	})

	t.Run("sign extension", func(t *testing.T) {
		assert.Equal(t, int8(-8), Extract[int8](uint8(0b1000), 0, 4))
		assert.Equal(t, int8(7), Extract[int8](uint8(0b0111), 0, 4))
		assert.Equal(t, int8(-1), Extract[int8](uint16(0xF0), 4, 8))
		assert.Equal(t, int64(-1), Extract[int64](uint64(1)<<63, 63, 64))
		assert.Equal(t, int32(-2), Extract[int32](uint64(0b110)<<40, 40, 43))
	})

	t.Run("raw narrower than word", func(t *testing.T) {
		w := uint64(0xDEADBEEF_CAFEBABE)
		assert.Equal(t, uint8(0xBE), Extract[uint8](w, 0, 8))
		assert.Equal(t, uint16(0xDEAD), Extract[uint16](w, 48, 64))
		assert.Equal(t, int16(-0x2153), Extract[int16](w, 48, 64))
	})

	t.Run("raw wider than word", func(t *testing.T) {
		assert.Equal(t, uint64(0xAB), Extract[uint64](uint8(0xAB), 0, 8))
		assert.Equal(t, int64(-0x55), Extract[int64](uint8(0xAB), 0, 8))
	})
}

func TestExtractBit(t *testing.T) {
	w := uint32(0x8000_0001)
	assert.True(t, ExtractBit(w, 0))
	assert.False(t, ExtractBit(w, 1))
	assert.False(t, ExtractBit(w, 30))
	assert.True(t, ExtractBit(w, 31))
}

func TestWith(t *testing.T) {
	t.Run("preserves other bits", func(t *testing.T) {
		assert.Equal(t, uint16(0xFF0F), With(uint16(0xFFFF), 4, 8, uint8(0)))
		assert.Equal(t, uint16(0x0A50), With(uint16(0x0000), 4, 12, uint8(0xA5)))
	})

	t.Run("truncates over-wide values", func(t *testing.T) {
		w := With(uint16(0xA000), 0, 4, uint8(0xFF))
		assert.Equal(t, uint16(0xA00F), w)
		assert.Equal(t, uint8(0x0F), Extract[uint8](w, 0, 4))
	})

	t.Run("negative values", func(t *testing.T) {
		w := With(uint8(0), 0, 4, int8(-8))
		assert.Equal(t, uint8(0b1000), w)
		assert.Equal(t, int8(-8), Extract[int8](w, 0, 4))
	})

	t.Run("full width", func(t *testing.T) {
		for _, v := range []uint16{0, 1, 0x7FFF, 0x8000, 0xFFFF} {
			w := With(uint16(0x1234), 0, 16, v)
			assert.Equal(t, v, w)
			assert.Equal(t, v, Extract[uint16](w, 0, 16))
		}
	})
}

func TestWithBit(t *testing.T) {
	assert.Equal(t, uint8(0b1000_0000), WithBit(uint8(0), 7, true))
	assert.Equal(t, uint8(0b0111_1111), WithBit(uint8(0xFF), 7, false))
	assert.Equal(t, uint8(0xFF), WithBit(uint8(0xFF), 3, true))
}

func TestSetInPlace(t *testing.T) {
	w := uint32(0xFFFF_FFFF)
	Set(&w, 8, 16, uint8(0x12))
	assert.Equal(t, uint32(0xFFFF_12FF), w)

	SetBit(&w, 31, false)
	assert.Equal(t, uint32(0x7FFF_12FF), w)

	SetBit(&w, 31, true)
	assert.Equal(t, uint32(0xFFFF_12FF), w)
}

func signOrZeroExtend8(v int8, n uint) int8 {
	spare := 8 - n
	return v << spare >> spare
}

// Every uint8 word, every range and every value fits in a few million
// iterations, so the properties are checked exhaustively at 8 bits.
func TestProperties_Exhaustive8(t *testing.T) {
	for start := uint(0); start < 8; start++ {
		for end := start + 1; end <= 8; end++ {
			n := end - start
			mask := Mask[uint8](start, end)
			for w := 0; w < 256; w++ {
				word := uint8(w)
				for v := 0; v < 256; v++ {
					got := With(word, start, end, uint8(v))

					// Non-interference.
					if got&^mask != word&^mask {
						t.Fatalf("With(%#x, %d, %d, %#x) = %#x touched bits outside the range", word, start, end, v, got)
					}

					// Round-trip, unsigned and signed.
					if r := Extract[uint8](got, start, end); r != uint8(v)&Mask[uint8](0, n) {
						t.Fatalf("unsigned round-trip [%d, %d) value %#x: got %#x", start, end, v, r)
					}
					if r := Extract[int8](got, start, end); r != signOrZeroExtend8(int8(v), n) {
						t.Fatalf("signed round-trip [%d, %d) value %#x: got %d", start, end, v, r)
					}
				}

				// Single-bit agreement.
				if n == 1 && ExtractBit(word, start) != (Extract[uint8](word, start, end) == 1) {
					t.Fatalf("ExtractBit(%#x, %d) disagrees with Extract", word, start)
				}
			}
		}
	}
}

func TestProperties_Random64(t *testing.T) {
	f := fuzz.NewWithSeed(42).NilChance(0)

	for i := 0; i < 2000; i++ {
		var word, v uint64
		var a, b uint8
		f.Fuzz(&word)
		f.Fuzz(&v)
		f.Fuzz(&a)
		f.Fuzz(&b)

		start := uint(a % 64)
		end := start + 1 + uint(b)%(64-start)
		require.NoError(t, CheckRangeFor[uint64, uint64](start, end))

		mask := Mask[uint64](start, end)
		got := With(word, start, end, v)

		require.Equal(t, word&^mask, got&^mask, "non-interference [%d, %d)", start, end)
		require.Equal(t, v&Mask[uint64](0, end-start), Extract[uint64](got, start, end), "round-trip [%d, %d)", start, end)

		spare := 64 - (end - start)
		require.Equal(t, int64(v)<<spare>>spare, Extract[int64](got, start, end), "signed round-trip [%d, %d)", start, end)

		for pos := uint(0); pos < 64; pos++ {
			require.Equal(t, ExtractBit(word, pos), Extract[uint8](word, pos, pos+1) == 1)
		}
	}
}

func TestPlatformWord(t *testing.T) {
	w := uint(0)
	Set(&w, 3, 9, uint8(0x3F))
	assert.Equal(t, uint(0x3F<<3), w)
	assert.Equal(t, uint8(0x3F), Extract[uint8](w, 3, 9))

	p := uintptr(0)
	SetBit(&p, Width[uintptr]()-1, true)
	assert.True(t, ExtractBit(p, Width[uintptr]()-1))
}
