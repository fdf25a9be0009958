package dro

import (
	"encoding/binary"
	"io"
)

var signature = [8]byte{'D', 'B', 'R', 'A', 'W', 'O', 'P', 'L'}

// headerLen is the size of the fixed header; the codemap follows it
// and the command body follows the codemap.
const headerLen = 26

// Hardware type values from the v2.0 header.
const (
	HardwareOPL2     = 0
	HardwareDualOPL2 = 1
	HardwareOPL3     = 2
)

// Header is the fixed 26-byte DRO v2.0 header. Format and Compression
// are reserved; their byte values carry through encode untouched.
// LengthPairs counts the 2-byte pairs in the command body, LengthMS is
// the declared playback time. Both are recomputed from the event
// sequence on encode.
type Header struct {
	Signature     [8]byte
	VersionMajor  uint16
	VersionMinor  uint16
	LengthPairs   uint32
	LengthMS      uint32
	Hardware      uint8
	Format        uint8
	Compression   uint8
	ShortDelay    uint8
	LongDelay     uint8
	CodemapLength uint8
}

func (h *Header) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, h); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrTruncatedStream
		}
		return err
	}
	if h.Signature != signature {
		return ErrBadSignature
	}
	if h.VersionMajor != 2 {
		return ErrUnsupportedVersion
	}
	return nil
}

func (h *Header) Encode(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, h)
}

// NewHeader returns a header for a fresh OPL3 stream with the delay
// codes DOSBox uses. Length fields are filled in on encode.
func NewHeader() Header {
	return Header{
		Signature:    signature,
		VersionMajor: 2,
		VersionMinor: 0,
		Hardware:     HardwareOPL3,
		ShortDelay:   0xFF,
		LongDelay:    0xFE,
	}
}

// BodyOffset returns the file offset of the code byte of the pair'th
// command pair (Delay and RegisterWrite events each occupy one pair in
// a decoded stream, BankSelect none).
func (h *Header) BodyOffset(pair int) int {
	return headerLen + int(h.CodemapLength) + 2*pair
}

// HardwareName returns a display name for the header's hardware type.
func (h *Header) HardwareName() string {
	switch h.Hardware {
	case HardwareOPL2:
		return "OPL2"
	case HardwareDualOPL2:
		return "Dual OPL2"
	case HardwareOPL3:
		return "OPL3"
	}
	return "Unknown"
}
