package dro

import (
	"bufio"
	"fmt"
	"io"
)

// decodeBody scans exactly header.LengthPairs command pairs. The active
// bank is a fold accumulator local to the scan: it starts at 0 and a
// BankSelect event is produced whenever a write's bank bit differs from
// it, so every RegisterWrite carries the bank it lands on.
func decodeBody(r *bufio.Reader, header Header, codemap Codemap) ([]Event, error) {
	// Read through a LimitReader so a hostile declared length cannot
	// force a giant upfront allocation; memory follows the bytes that
	// actually arrive.
	declared := 2 * int64(header.LengthPairs)
	body, err := io.ReadAll(io.LimitReader(r, declared))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) != declared {
		return nil, ErrTruncatedStream
	}

	events := make([]Event, 0, len(body)/2)
	activeBank := 0
	for i := 0; i < len(body); i += 2 {
		code, value := body[i], body[i+1]
		switch code {
		case header.ShortDelay:
			events = append(events, Delay{MS: int(value) + 1})
		case header.LongDelay:
			events = append(events, Delay{MS: (int(value) + 1) * 256})
		default:
			bank := int(code >> 7)
			register, err := codemap.Register(code & 0x7F)
			if err != nil {
				return nil, fmt.Errorf("pair %d: %w", i/2, err)
			}
			if bank != activeBank {
				events = append(events, BankSelect{Bank: bank})
				activeBank = bank
			}
			events = append(events, RegisterWrite{Bank: bank, Register: register, Value: value})
		}
	}
	return events, nil
}

// encodeBody emits the command pairs for a sequence and reports how
// many were written. Bank handling is the minimal-emission policy: the
// bank marker is the high bit of each write code, derived from the
// write itself, so BankSelect events emit no bytes of their own.
// Delays emit one long pair per full 256 ms block and a short pair for
// the remainder.
func encodeBody(events []Event, header Header, codemap Codemap) ([]byte, int, error) {
	var body []byte
	pairs := 0
	emit := func(code, value uint8) {
		body = append(body, code, value)
		pairs++
	}

	for _, e := range events {
		switch ev := e.(type) {
		case Delay:
			ms := ev.MS
			if ms < 1 {
				return nil, 0, fmt.Errorf("delay of %d ms, must be at least 1", ms)
			}
			for ms >= 256 {
				blocks := ms / 256
				if blocks > 256 {
					blocks = 256
				}
				emit(header.LongDelay, uint8(blocks-1))
				ms -= blocks * 256
			}
			if ms > 0 {
				emit(header.ShortDelay, uint8(ms-1))
			}
		case BankSelect:
			if ev.Bank != 0 && ev.Bank != 1 {
				return nil, 0, fmt.Errorf("bank select to invalid bank %d", ev.Bank)
			}
		case RegisterWrite:
			if ev.Bank != 0 && ev.Bank != 1 {
				return nil, 0, fmt.Errorf("register write to invalid bank %d", ev.Bank)
			}
			index, ok := codemap.indexOf(ev.Register)
			if !ok {
				return nil, 0, fmt.Errorf("register %02X missing from codemap", ev.Register)
			}
			code := index | uint8(ev.Bank)<<7
			if code == header.ShortDelay || code == header.LongDelay {
				return nil, 0, fmt.Errorf("write code %02X collides with a delay code", code)
			}
			emit(code, ev.Value)
		}
	}
	return body, pairs, nil
}
