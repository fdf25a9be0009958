package dro

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Errors
var (
	ErrBadSignature       = errors.New("bad signature, expected DBRAWOPL")
	ErrUnsupportedVersion = errors.New("only DRO v2.0 streams are supported")
	ErrTruncatedStream    = errors.New("command body shorter than declared length")
	ErrInvalidChannel     = errors.New("channel must be between 0 and 17")
	ErrFrequencyRange     = errors.New("f-number or block out of range")
	ErrUnrepresentable    = errors.New("frequency not representable by any block")
)

// Event is one entry of a decoded command stream: a Delay, a BankSelect
// or a RegisterWrite. Sequences are ordered and never mutated in place;
// the editor functions return fresh slices.
type Event interface {
	event()
}

// Delay pauses playback for MS milliseconds (always >= 1).
type Delay struct {
	MS int
}

// BankSelect switches the active register bank (0 or 1). Bank 1 only
// exists on OPL3 hardware.
type BankSelect struct {
	Bank int
}

// RegisterWrite writes Value to Register on the given bank.
type RegisterWrite struct {
	Bank     int
	Register uint8
	Value    uint8
}

func (Delay) event()         {}
func (BankSelect) event()    {}
func (RegisterWrite) event() {}

// File is a fully decoded DRO stream.
type File struct {
	Header Header
	Events []Event
}

func (f *File) Decode(r io.Reader) error {
	bufferedReader := bufio.NewReader(r)
	var header Header
	if err := header.Decode(bufferedReader); err != nil {
		return err
	}
	codemap, err := readCodemap(bufferedReader, header.CodemapLength)
	if err != nil {
		return err
	}
	events, err := decodeBody(bufferedReader, header, codemap)
	if err != nil {
		return err
	}
	f.Header = header
	f.Events = events
	return nil
}

// Encode rebuilds the codemap and the length header fields from the
// event sequence and writes the complete stream. The whole output is
// assembled before the first byte reaches w, so a failed encode writes
// nothing.
func (f *File) Encode(w io.Writer) error {
	codemap, err := buildCodemap(f.Events)
	if err != nil {
		return err
	}
	body, pairs, err := encodeBody(f.Events, f.Header, codemap)
	if err != nil {
		return err
	}
	header := f.Header
	header.LengthPairs = uint32(pairs)
	header.LengthMS = uint32(f.Duration())
	header.CodemapLength = uint8(len(codemap))

	buf := &bytes.Buffer{}
	if err := header.Encode(buf); err != nil {
		return err
	}
	if _, err := buf.Write(codemap); err != nil {
		return err
	}
	if _, err := buf.Write(body); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// Duration returns the total playback time in milliseconds, the sum of
// all delay events.
func (f *File) Duration() int {
	total := 0
	for _, e := range f.Events {
		if d, ok := e.(Delay); ok {
			total += d.MS
		}
	}
	return total
}
