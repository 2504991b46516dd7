package main

import (
	"os"
	"testing"
)

func TestPlayVGM_MissingFile(t *testing.T) {
	if err := playVGM("/nonexistent/path/does-not-exist.vgm", false, true); err == nil {
		t.Fatal("expected error for a missing VGM file")
	}
}

func TestPlayVGM_NoOPN2Events(t *testing.T) {
	// A valid VGM header with only a PSG write, no OPN2 register writes.
	data := make([]byte, 0x40)
	copy(data[0:4], "Vgm ")
	data[0x34] = 0x0C
	body := []byte{
		0xA0, 0x07, 0x3E, // AY write, not a YM2612 write
		0x66, // end of stream
	}
	data = append(data, body...)

	tmp := t.TempDir() + "/silent.vgm"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	if err := playVGM(tmp, false, true); err == nil {
		t.Fatal("expected error for a VGM file with no OPN2 events")
	}
}
