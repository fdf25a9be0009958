package dro

// Remove returns a new sequence without the register writes owned by
// channel. Delays, bank selects, shared-register writes and every other
// channel's writes pass through in their original order, so the edit
// never changes playback duration.
func Remove(events []Event, channel int) ([]Event, error) {
	if channel < 0 || channel >= NumChannels {
		return nil, ErrInvalidChannel
	}
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if w, ok := e.(RegisterWrite); ok && ChannelOf(w.Bank, w.Register) == channel {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Isolate returns a new sequence keeping only the register writes owned
// by channel. Writes to shared registers (rhythm control, timers and
// other chip-wide state) are kept too, since the channel cannot sound
// right without them; delays and bank selects always pass through.
func Isolate(events []Event, channel int) ([]Event, error) {
	if channel < 0 || channel >= NumChannels {
		return nil, ErrInvalidChannel
	}
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if w, ok := e.(RegisterWrite); ok {
			if owner := ChannelOf(w.Bank, w.Register); owner != channel && owner != -1 {
				continue
			}
		}
		out = append(out, e)
	}
	return out, nil
}
