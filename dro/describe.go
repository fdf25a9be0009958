package dro

import "fmt"

// Describe returns a short human-readable note for a register write,
// or "" for registers the dump does not annotate.
func Describe(w RegisterWrite) string {
	reg, val := w.Register, w.Value
	switch {
	case reg >= 0xB0 && reg <= 0xB8:
		p := DecodeFrequency(0, val)
		desc := fmt.Sprintf("CH %d | KeyOn: %t | Blk: %d | F-Hi: %d",
			ChannelOf(w.Bank, reg), p.KeyOn, p.Block, val&0x03)
		if p.KeyOn {
			desc += " <--- NOTE START"
		}
		return desc
	case reg >= 0xA0 && reg <= 0xA8:
		return fmt.Sprintf("CH %d | F-Low: %d", ChannelOf(w.Bank, reg), val)
	case reg >= 0xC0 && reg <= 0xC8:
		return fmt.Sprintf("CH %d | FB: %d | CNT: %d",
			ChannelOf(w.Bank, reg), (val&0x0E)>>1, val&1)
	case reg >= 0x20 && reg <= 0x35:
		return fmt.Sprintf("OP-Reg %02X | TVSKM", reg)
	case reg >= 0x40 && reg <= 0x55:
		return fmt.Sprintf("OP-Reg %02X | Level: %d", reg, val&0x3F)
	case reg == 0xBD:
		return "Rhythm Control"
	}
	return ""
}
