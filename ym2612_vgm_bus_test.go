// ym2612_vgm_bus_test.go - OPN2 VGM event replay into a Chip.

package main

import (
	"os"
	"testing"

	"github.com/intuitionamiga/IntuitionEngine/ym2612"
)

func mustNewVGMTestChip(t *testing.T) *ym2612.Chip {
	t.Helper()
	c, err := ym2612.NewChip(ym2612.ChipYM2612, 1024)
	if err != nil {
		t.Fatalf("ym2612.NewChip: %v", err)
	}
	return c
}

func TestVGMOPN2BusAppliesWritesAtTimestamp(t *testing.T) {
	c := mustNewVGMTestChip(t)
	file := &VGMFile{
		OPN2Events: []OPN2Event{
			{Sample: 0, Port: 0, Reg: ym2612.RegDACEnable, Value: 0x80},
			{Sample: 0, Port: 0, Reg: ym2612.RegDACData, Value: 0x40},
			{Sample: 5, Port: 0, Reg: ym2612.RegDACData, Value: 0xC0},
		},
	}
	bus, err := newVGMOPN2Bus(c, file, 53267*24)
	if err != nil {
		t.Fatalf("newVGMOPN2Bus: %v", err)
	}

	for i := 0; i < 10; i++ {
		bus.StepVGMSample()
	}

	if !bus.Done() {
		t.Fatalf("expected all events to have been drained after 10 VGM samples")
	}
	if c.QueuedCount() == 0 {
		t.Fatalf("expected clocking the bus forward to have produced queued frames")
	}
}

func TestVGMOPN2BusRemainingCountsDown(t *testing.T) {
	c := mustNewVGMTestChip(t)
	file := &VGMFile{
		OPN2Events: []OPN2Event{
			{Sample: 0, Port: 0, Reg: ym2612.RegDACEnable, Value: 0x80},
			{Sample: 100, Port: 0, Reg: ym2612.RegDACData, Value: 0x00},
		},
	}
	bus, _ := newVGMOPN2Bus(c, file, 53267*24)

	if got := bus.Remaining(); got != 100 {
		t.Fatalf("Remaining() = %d, want 100", got)
	}
	for i := 0; i < 50; i++ {
		bus.StepVGMSample()
	}
	if got := bus.Remaining(); got != 50 {
		t.Fatalf("Remaining() after 50 steps = %d, want 50", got)
	}
}

func TestParseVGMFileRecognizesOPN2Commands(t *testing.T) {
	// A minimal synthetic VGM stream: header + one 0x52 write + end marker.
	data := make([]byte, 0x40)
	copy(data[0:4], "Vgm ")
	// data offset: relative to 0x34, point right after the header (0x0C).
	data[0x34] = 0x0C
	body := []byte{
		0x52, 0x28, 0xF0, // OPN2 port0 write: reg 0x28 (key on), value 0xF0
		0x61, 0x10, 0x00, // wait 16 samples
		0x66, // end of stream
	}
	data = append(data, body...)

	tmp := t.TempDir() + "/test.vgm"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	file, err := ParseVGMFile(tmp)
	if err != nil {
		t.Fatalf("ParseVGMFile: %v", err)
	}
	if len(file.OPN2Events) != 1 {
		t.Fatalf("len(OPN2Events) = %d, want 1", len(file.OPN2Events))
	}
	ev := file.OPN2Events[0]
	if ev.Reg != ym2612.RegKeyOn || ev.Value != 0xF0 || ev.Port != 0 {
		t.Fatalf("unexpected OPN2 event: %+v", ev)
	}
}
