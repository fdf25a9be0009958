package dro

// NumChannels is the number of logical OPL3 channels: 0-8 live on
// bank 0, 9-17 on bank 1.
const NumChannels = 18

// BankRegister addresses one register on one bank.
type BankRegister struct {
	Bank     int
	Register uint8
}

// Operator register blocks. Each block holds one byte per operator
// slot, addressed by base + operator offset.
var operatorBases = [...]uint8{0x20, 0x40, 0x60, 0x80, 0xE0}

// operatorChannel maps an operator offset (0x00-0x15) to the channel it
// serves within its bank. Offsets 0x06, 0x07, 0x0E and 0x0F address no
// operator.
var operatorChannel = [...]int{
	0, 1, 2, 0, 1, 2, -1, -1,
	3, 4, 5, 3, 4, 5, -1, -1,
	6, 7, 8, 6, 7, 8,
}

// ChannelOf returns the channel (0-17) owning a register, or -1 for
// shared chip-wide registers (timers, rhythm control 0xBD, 4-op enable
// and the like), which belong to no channel.
func ChannelOf(bank int, register uint8) int {
	base := bank * 9
	switch {
	case register >= 0xA0 && register <= 0xA8, // F-Number low
		register >= 0xB0 && register <= 0xB8, // key-on / block / F-Number high
		register >= 0xC0 && register <= 0xC8: // feedback / connection
		return base + int(register&0x0F)
	case register >= 0x20 && register <= 0x35,
		register >= 0x40 && register <= 0x55,
		register >= 0x60 && register <= 0x75,
		register >= 0x80 && register <= 0x95,
		register >= 0xE0 && register <= 0xF5:
		offset := register & 0x1F
		if ch := operatorChannel[offset]; ch >= 0 {
			return base + ch
		}
	}
	return -1
}

// RegistersOf returns every (bank, register) pair a channel owns: its
// three channel registers plus the five operator register blocks for
// its two operator slots, 13 in all.
func RegistersOf(channel int) ([]BankRegister, error) {
	if channel < 0 || channel >= NumChannels {
		return nil, ErrInvalidChannel
	}
	bank := channel / 9
	n := uint8(channel % 9)

	regs := []BankRegister{
		{bank, 0xA0 + n},
		{bank, 0xB0 + n},
		{bank, 0xC0 + n},
	}
	for offset, ch := range operatorChannel {
		if ch != int(n) {
			continue
		}
		for _, bas := range operatorBases {
			regs = append(regs, BankRegister{bank, bas + uint8(offset)})
		}
	}
	return regs, nil
}
