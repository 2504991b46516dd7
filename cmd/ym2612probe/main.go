package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/intuitionamiga/IntuitionEngine/ym2612"
)

func main() {
	outFile := flag.String("o", "tone.wav", "Output WAV file")
	seconds := flag.Float64("seconds", 1.0, "Duration to render")
	fnum := flag.Uint("fnum", 0x269, "F-number (0-2047)")
	block := flag.Uint("block", 4, "Octave block (0-7)")
	ym3438 := flag.Bool("ym3438", false, "Use YM3438 output shaping instead of YM2612")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ym2612probe [options]\n\nRenders a single-channel test tone from the YM2612/YM3438 core to a WAV file.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ym2612probe -o a440.wav -seconds 2\n")
		fmt.Fprintf(os.Stderr, "  ym2612probe -ym3438 -fnum 0x269 -block 4\n")
	}
	flag.Parse()

	if *fnum > 2047 {
		fmt.Fprintf(os.Stderr, "error: -fnum must be in 0-2047\n")
		os.Exit(1)
	}
	if *block > 7 {
		fmt.Fprintf(os.Stderr, "error: -block must be in 0-7\n")
		os.Exit(1)
	}

	chipType := ym2612.ChipYM2612
	if *ym3438 {
		chipType = ym2612.ChipYM3438
	}

	chip, err := ym2612.NewChip(chipType, 1024)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	programTone(chip, uint16(*fnum), uint8(*block))

	const sampleRate = 53267
	totalFrames := int(*seconds * sampleRate)
	samples := make([][2]int16, 0, totalFrames)
	buf := make([][2]int16, 256)
	for len(samples) < totalFrames {
		chip.Clock(24 * 256)
		n := chip.Dequeue(buf)
		samples = append(samples, buf[:n]...)
		if n == 0 {
			break
		}
	}
	if len(samples) > totalFrames {
		samples = samples[:totalFrames]
	}

	if err := writeWAV(*outFile, sampleRate, samples); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *outFile, err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %d frames (%.2fs) to %s\n", len(samples), float64(len(samples))/sampleRate, *outFile)
}

// programTone writes a minimal register set to make channel 1's operator 1
// an audible sine carrier: algorithm 7 (all operators are carriers), full
// attack, zero total level, and the requested fnum/block.
func programTone(chip *ym2612.Chip, fnum uint16, block uint8) {
	write := func(addr, data uint8) {
		chip.Write(ym2612.PortAddr0, addr)
		chip.Clock(12)
		chip.Write(ym2612.PortData0, data)
		chip.Clock(32)
	}

	write(ym2612.RegFBConnect, 0x07)
	write(ym2612.RegTL, 0x00)
	write(ym2612.RegKSAR, 0x1f)
	write(ym2612.RegAMDR, 0x00)
	write(ym2612.RegSR, 0x00)
	write(ym2612.RegSLRR, 0x0f)
	for _, offset := range []uint8{0x04, 0x08, 0x0c} {
		write(ym2612.RegTL+offset, 0x7f)
	}
	write(ym2612.RegBlockFNum, (block<<3)|uint8(fnum>>8))
	write(ym2612.RegFNumLo, uint8(fnum&0xff))

	chip.Write(ym2612.PortAddr0, ym2612.RegKeyOn)
	chip.Clock(12)
	chip.Write(ym2612.PortData0, 0xF0)
	chip.Clock(32)
}

// writeWAV emits a minimal 16-bit stereo PCM WAV file.
func writeWAV(path string, sampleRate int, samples [][2]int16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dataSize := len(samples) * 4
	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataSize))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], 2) // stereo
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*4))
	binary.LittleEndian.PutUint16(header[32:34], 4)
	binary.LittleEndian.PutUint16(header[34:36], 16)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	if _, err := f.Write(header); err != nil {
		return err
	}

	buf := make([]byte, dataSize)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s[0]))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s[1]))
	}
	_, err = f.Write(buf)
	return err
}
