package dro

import (
	"bufio"
	"fmt"
	"io"
)

// Codemap maps 7-bit body codes to full register addresses. A code byte
// in the command body carries the bank in its high bit and a codemap
// index in the low seven, so one table serves both banks.
type Codemap []uint8

const maxCodemapEntries = 128

func (m Codemap) Register(index uint8) (uint8, error) {
	if int(index) >= len(m) {
		return 0, fmt.Errorf("codemap index %d out of range (%d entries)", index, len(m))
	}
	return m[index], nil
}

func readCodemap(r *bufio.Reader, length uint8) (Codemap, error) {
	m := make(Codemap, length)
	if _, err := io.ReadFull(r, m); err != nil {
		return nil, ErrTruncatedStream
	}
	return m, nil
}

// buildCodemap derives a fresh codemap from an event sequence: the
// distinct register addresses of all writes, in first-seen order. The
// input codemap is never reused, so filtered sequences cannot leave
// stale indices behind.
func buildCodemap(events []Event) (Codemap, error) {
	var m Codemap
	var seen [256]bool
	for _, e := range events {
		w, ok := e.(RegisterWrite)
		if !ok || seen[w.Register] {
			continue
		}
		if len(m) == maxCodemapEntries {
			return nil, fmt.Errorf("more than %d distinct registers in stream", maxCodemapEntries)
		}
		seen[w.Register] = true
		m = append(m, w.Register)
	}
	return m, nil
}

func (m Codemap) indexOf(register uint8) (uint8, bool) {
	for i, reg := range m {
		if reg == register {
			return uint8(i), true
		}
	}
	return 0, false
}
