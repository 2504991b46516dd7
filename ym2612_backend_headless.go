//go:build headless

package main

import "github.com/intuitionamiga/IntuitionEngine/ym2612"

// YM2612Player is a no-op playback backend for headless builds (CI,
// batch VGM-to-WAV conversion) where no audio device is available.
type YM2612Player struct {
	started bool
	chip    *ym2612.Chip
}

func NewYM2612Player(sampleRate int) (*YM2612Player, error) {
	return &YM2612Player{}, nil
}

func (p *YM2612Player) Attach(chip *ym2612.Chip) {
	p.chip = chip
}

func (p *YM2612Player) Read(buf []byte) (int, error) {
	return len(buf), nil
}

func (p *YM2612Player) Start() {
	p.started = true
}

func (p *YM2612Player) Stop() {
	p.started = false
}

func (p *YM2612Player) Close() {
	p.started = false
}

func (p *YM2612Player) IsStarted() bool {
	return p.started
}
