// main.go - Main entry point: a VGM player for the YM2612/YM3438 core

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2025 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/intuitionamiga/IntuitionEngine/ym2612"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████\033[0m")
	fmt.Println("A cycle-accurate YM2612/YM3438 FM synthesis core and VGM player.")
	fmt.Println("(c) 2024 - 2025 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Println("License: GPLv3 or later")
}

// playVGM parses a VGM file's OPN2 event stream, replays it into a fresh
// Chip, and streams the resulting frames to the host audio device until the
// stream is drained and the chip's queue runs dry.
func playVGM(path string, ym3438 bool, quiet bool) error {
	file, err := ParseVGMFile(path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(file.OPN2Events) == 0 {
		return fmt.Errorf("%s contains no YM2612/YM3438 register writes", path)
	}

	chipType := ym2612.ChipYM2612
	if ym3438 {
		chipType = ym2612.ChipYM3438
	}

	chip, err := ym2612.NewChip(chipType, 4096)
	if err != nil {
		return fmt.Errorf("creating chip: %w", err)
	}

	const sampleRate = 53267
	player, err := NewYM2612Player(sampleRate)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	defer player.Close()

	player.Attach(chip)
	player.Start()

	bus, err := newVGMOPN2Bus(chip, file, sampleRate*24)
	if err != nil {
		return fmt.Errorf("building vgm bus: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if !quiet {
		fmt.Printf("Playing %s (%d OPN2 writes, clock %d Hz)\n", path, len(file.OPN2Events), file.OPN2ClockHz)
	}

	for !bus.Done() || bus.Remaining() > 0 {
		select {
		case <-sigCh:
			return nil
		default:
		}
		bus.StepVGMSample()
	}

	// Let the output queue drain to the device before returning.
	for chip.QueuedCount() > 0 {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func main() {
	ym3438 := flag.Bool("ym3438", false, "Use YM3438 output shaping instead of YM2612")
	quiet := flag.Bool("quiet", false, "Suppress the startup banner and status line")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.vgm\n\nPlays a VGM file's YM2612/YM3438 register stream through the host audio device.\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if !*quiet {
		boilerPlate()
	}

	if err := playVGM(flag.Arg(0), *ym3438, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
