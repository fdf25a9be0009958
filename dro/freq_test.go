package dro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeFrequency(t *testing.T) {
	p := DecodeFrequency(0xEE, 0x26)
	require.Equal(t, FrequencyPair{Block: 1, FNum: 750, KeyOn: true}, p)

	p = DecodeFrequency(0x00, 0x00)
	require.Equal(t, FrequencyPair{}, p)

	p = DecodeFrequency(0xFF, 0x1F)
	require.Equal(t, FrequencyPair{Block: 7, FNum: 1023, KeyOn: false}, p)
}

func TestEncodeDecodeFrequencyInverse(t *testing.T) {
	for block := 0; block <= 7; block++ {
		for fnum := 0; fnum <= 1023; fnum++ {
			for _, keyOn := range []bool{false, true} {
				p := FrequencyPair{Block: block, FNum: fnum, KeyOn: keyOn}
				a0, b0, err := EncodeFrequency(p)
				if err != nil {
					t.Fatalf("encode %+v: %v", p, err)
				}
				if got := DecodeFrequency(a0, b0); got != p {
					t.Fatalf("round trip %+v came back as %+v", p, got)
				}
			}
		}
	}
}

func TestEncodeFrequencyRange(t *testing.T) {
	testCases := []FrequencyPair{
		{Block: 0, FNum: -1},
		{Block: 0, FNum: 1024},
		{Block: -1, FNum: 0},
		{Block: 8, FNum: 0},
	}
	for _, p := range testCases {
		_, _, err := EncodeFrequency(p)
		require.ErrorIs(t, err, ErrFrequencyRange, "%+v", p)
	}
}

func TestTransposeZeroIsIdentity(t *testing.T) {
	pairs := [][2]uint8{
		{0xEE, 0x26},
		{0x81, 0x2E},
		{0x01, 0x00},
		{0xFF, 0x3F},
	}
	for _, pair := range pairs {
		a0, b0, err := Transpose(pair[0], pair[1], 0)
		require.NoError(t, err)
		require.Equal(t, pair[0], a0, "A0 for %02X %02X", pair[0], pair[1])
		require.Equal(t, pair[1]&0x3F, b0, "B0 for %02X %02X", pair[0], pair[1])
	}
}

func TestTranspose(t *testing.T) {
	testCases := []struct {
		name      string
		a0, b0    uint8
		semitones int
		newA0     uint8
		newB0     uint8
	}{
		// Block 1, F-Num 750, key on. Two semitones down lands on
		// F-Num 668 in the same block.
		{"down two", 0xEE, 0x26, -2, 0x9C, 0x26},
		// Two semitones up: F-Num 842 still fits block 1.
		{"up two", 0xEE, 0x26, 2, 0x4A, 0x27},
		// A full octave up overflows block 1, so the block steps up
		// and the F-Number stays put.
		{"octave up", 0xEE, 0x26, 12, 0xEE, 0x2A},
		// An octave down halves the F-Number; block 1 still fits, and
		// the search prefers staying on the current block.
		{"octave down", 0xEE, 0x26, -12, 0x77, 0x25},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a0, b0, err := Transpose(tc.a0, tc.b0, tc.semitones)
			require.NoError(t, err)
			require.Equal(t, tc.newA0, a0, "A0")
			require.Equal(t, tc.newB0, b0, "B0")
		})
	}
}

func TestTransposeKeepsKeyOn(t *testing.T) {
	_, b0, err := Transpose(0xEE, 0x26, -2) // key on
	require.NoError(t, err)
	require.NotZero(t, b0&0x20)

	_, b0, err = Transpose(0xEE, 0x06, -2) // key off
	require.NoError(t, err)
	require.Zero(t, b0&0x20)
}

func TestTransposeUnrepresentable(t *testing.T) {
	// Block 7, F-Num 1023: the top of the chip's range. Any further up
	// has nowhere to go.
	_, _, err := Transpose(0xFF, 0x1F, 12)
	require.ErrorIs(t, err, ErrUnrepresentable)
}
