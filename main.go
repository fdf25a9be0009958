package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/brubsby/drosurgeon/dro"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: drosurgeon dump <file.dro>")
	fmt.Fprintln(os.Stderr, "       drosurgeon remove <input.dro> <channel 0-17> <output.dro>")
	fmt.Fprintln(os.Stderr, "       drosurgeon isolate <input.dro> <channel 0-17> <output.dro>")
	fmt.Fprintln(os.Stderr, "       drosurgeon calc <HexA0> <HexB0> <semitones>")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "dump":
		err = dump(os.Args[2])
	case "remove", "isolate":
		if len(os.Args) < 5 {
			usage()
		}
		var channel int
		if channel, err = strconv.Atoi(os.Args[3]); err != nil {
			logrus.Fatalf("bad channel %q: %v", os.Args[3], err)
		}
		err = filter(os.Args[1], os.Args[2], channel, os.Args[4])
	case "calc":
		if len(os.Args) < 5 {
			usage()
		}
		err = calc(os.Args[2], os.Args[3], os.Args[4])
	default:
		usage()
	}
	if err != nil {
		logrus.Fatal(err)
	}
}

func decodeFile(path string) (*dro.File, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &dro.File{}
	if err := f.Decode(bytes.NewReader(contents)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func dump(path string) error {
	f, err := decodeFile(path)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf(
		"%s: %s, %d ms declared, %d pairs, codemap %d entries",
		path, f.Header.HardwareName(), f.Header.LengthMS,
		f.Header.LengthPairs, f.Header.CodemapLength)))
	fmt.Println(headingStyle.Render(fmt.Sprintf(
		"%-10s | %-8s | %-3s | %-4s | %-4s | %s",
		"OFFSET(h)", "TIME(ms)", "BNK", "REG", "VAL", "DESC")))

	clock := 0
	pair := 0 // delays and writes each occupy one pair, bank selects none
	for _, e := range f.Events {
		switch ev := e.(type) {
		case dro.Delay:
			clock += ev.MS
			pair++
		case dro.RegisterWrite:
			line := fmt.Sprintf("%08X   | %-8d | %d   | %02X   | %02X   | %s",
				f.Header.BodyOffset(pair), clock, ev.Bank, ev.Register, ev.Value, dro.Describe(ev))
			if ev.Register >= 0xB0 && ev.Register <= 0xB8 && ev.Value&0x20 != 0 {
				line = noteStyle.Render(line)
			}
			fmt.Println(line)
			pair++
		}
	}
	return nil
}

func filter(op, inputPath string, channel int, outputPath string) error {
	f, err := decodeFile(inputPath)
	if err != nil {
		return err
	}

	var filtered []dro.Event
	if op == "remove" {
		filtered, err = dro.Remove(f.Events, channel)
	} else {
		filtered, err = dro.Isolate(f.Events, channel)
	}
	if err != nil {
		return err
	}

	dropped := countWrites(f.Events) - countWrites(filtered)
	f.Events = filtered

	buf := &bytes.Buffer{}
	if err := f.Encode(buf); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return err
	}

	logrus.Infof("%sd channel %d, dropped %d commands", op, channel, dropped)
	logrus.Infof("saved to %s (%d ms)", outputPath, f.Duration())
	return nil
}

func countWrites(events []dro.Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(dro.RegisterWrite); ok {
			n++
		}
	}
	return n
}

func calc(hexA0, hexB0, semitoneArg string) error {
	a0, err := strconv.ParseUint(hexA0, 16, 8)
	if err != nil {
		return fmt.Errorf("bad A0 byte %q: %w", hexA0, err)
	}
	b0, err := strconv.ParseUint(hexB0, 16, 8)
	if err != nil {
		return fmt.Errorf("bad B0 byte %q: %w", hexB0, err)
	}
	semitones, err := strconv.Atoi(semitoneArg)
	if err != nil {
		return fmt.Errorf("bad semitone count %q: %w", semitoneArg, err)
	}

	before := dro.DecodeFrequency(uint8(a0), uint8(b0))
	newA0, newB0, err := dro.Transpose(uint8(a0), uint8(b0), semitones)
	if err != nil {
		return err
	}
	after := dro.DecodeFrequency(newA0, newB0)

	fmt.Printf("Original -> Block: %d, F-Num: %d (%.2f Hz)\n",
		before.Block, before.FNum, before.Frequency())
	fmt.Printf("New      -> Block: %d, F-Num: %d (%.2f Hz)\n",
		after.Block, after.FNum, after.Frequency())
	fmt.Println()
	fmt.Println(headingStyle.Render("REPLACE BYTES IN HEX EDITOR:"))
	channel := b0 & 0x0F
	fmt.Printf("Reg A%X (F-Low) : %02X -> %s\n", channel, a0,
		changedStyle.Render(fmt.Sprintf("%02X", newA0)))
	fmt.Printf("Reg B%X (Block) : %02X -> %s\n", channel, b0,
		changedStyle.Render(fmt.Sprintf("%02X", newB0)))
	return nil
}
