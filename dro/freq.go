package dro

import "math"

// clockConstant is the OPL3 internal sample rate at the standard
// 14.318 MHz master clock. Frequency of a note:
//
//	freq = fnum * clockConstant / 2^(20-block)
const clockConstant = 49716

// FrequencyPair is the decoded view of a channel's A0/B0 register pair:
// a 10-bit F-Number, a 3-bit block (octave) and the key-on flag. It is
// derived on demand and never stored.
type FrequencyPair struct {
	Block int
	FNum  int
	KeyOn bool
}

// DecodeFrequency splits a raw A0 (F-Number low) and B0 (key-on /
// block / F-Number high) register pair.
func DecodeFrequency(regA0, regB0 uint8) FrequencyPair {
	return FrequencyPair{
		FNum:  int(regB0&0x03)<<8 | int(regA0),
		Block: int(regB0>>2) & 0x07,
		KeyOn: regB0&0x20 != 0,
	}
}

// EncodeFrequency packs a pair back into raw register bytes. The two
// unused high bits of B0 come out zero.
func EncodeFrequency(p FrequencyPair) (regA0, regB0 uint8, err error) {
	if p.FNum < 0 || p.FNum > 1023 || p.Block < 0 || p.Block > 7 {
		return 0, 0, ErrFrequencyRange
	}
	regA0 = uint8(p.FNum & 0xFF)
	regB0 = uint8(p.FNum>>8) | uint8(p.Block)<<2
	if p.KeyOn {
		regB0 |= 0x20
	}
	return regA0, regB0, nil
}

// Frequency returns the pitch in Hz implied by the pair.
func (p FrequencyPair) Frequency() float64 {
	return float64(p.FNum) * clockConstant / math.Exp2(float64(20-p.Block))
}

// Transpose shifts the pitch encoded in an A0/B0 register pair by a
// number of semitones (positive raises, negative lowers) and returns
// the new raw bytes with the key-on flag untouched.
//
// Block search: candidates start at the current block and expand
// outward one step at a time, trying the direction of the pitch change
// first; the first block in 0-7 whose implied F-Number rounds into
// 0-1023 wins. Zero semitones therefore always re-encodes unchanged.
func Transpose(regA0, regB0 uint8, semitones int) (uint8, uint8, error) {
	p := DecodeFrequency(regA0, regB0)
	target := p.Frequency() * math.Exp2(float64(semitones)/12)

	for _, block := range blockCandidates(p.Block, semitones) {
		fnum := int(math.Round(target * math.Exp2(float64(20-block)) / clockConstant))
		if fnum >= 0 && fnum <= 1023 {
			return EncodeFrequency(FrequencyPair{Block: block, FNum: fnum, KeyOn: p.KeyOn})
		}
	}
	return 0, 0, ErrUnrepresentable
}

func blockCandidates(block, semitones int) []int {
	candidates := []int{block}
	for step := 1; step <= 7; step++ {
		first, second := block+step, block-step
		if semitones < 0 {
			first, second = second, first
		}
		candidates = append(candidates, first, second)
	}
	out := candidates[:0]
	for _, b := range candidates {
		if b >= 0 && b <= 7 {
			out = append(out, b)
		}
	}
	return out
}
