//go:build !headless

// ym2612_backend_oto.go - oto/v3 playback backend for a Chip.

package main

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"

	"github.com/intuitionamiga/IntuitionEngine/ym2612"
)

// YM2612Player streams a Chip's dequeued stereo frames to the host audio
// device via oto/v3, converting the chip's 16-bit PCM to float32LE.
type YM2612Player struct {
	ctx     *oto.Context
	player  *oto.Player
	chip    atomic.Pointer[ym2612.Chip]
	started bool
	mutex   sync.Mutex
}

// NewYM2612Player opens an oto context at sampleRate for stereo playback.
func NewYM2612Player(sampleRate int) (*YM2612Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &YM2612Player{ctx: ctx}, nil
}

// Attach wires the chip whose queue Read will drain. Safe to call while
// playback is running; the swap is atomic.
func (p *YM2612Player) Attach(chip *ym2612.Chip) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.chip.Store(chip)
	if p.player == nil {
		p.player = p.ctx.NewPlayer(p)
	}
}

// Read implements io.Reader for oto: each stereo frame dequeued from the
// chip's ring buffer becomes two float32LE samples. Starved reads (chip not
// yet attached, or queue empty) emit silence rather than blocking.
func (p *YM2612Player) Read(buf []byte) (int, error) {
	chip := p.chip.Load()
	frameBytes := 8 // 2 channels * 4 bytes
	frames := len(buf) / frameBytes

	for i := 0; i < frames; i++ {
		var l, r int16
		if chip != nil {
			l, r, _ = chip.DequeueOne()
		}
		putFloat32LE(buf[i*frameBytes:], float32(l)/32768.0)
		putFloat32LE(buf[i*frameBytes+4:], float32(r)/32768.0)
	}
	return frames * frameBytes, nil
}

func putFloat32LE(dst []byte, v float32) {
	bits := math.Float32bits(v)
	dst[0] = byte(bits)
	dst[1] = byte(bits >> 8)
	dst[2] = byte(bits >> 16)
	dst[3] = byte(bits >> 24)
}

func (p *YM2612Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.started && p.player != nil {
		p.player.Play()
		p.started = true
	}
}

func (p *YM2612Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.started && p.player != nil {
		p.player.Pause()
		p.started = false
	}
}

func (p *YM2612Player) Close() {
	p.Stop()
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.player != nil {
		p.player.Close()
		p.player = nil
	}
}

func (p *YM2612Player) IsStarted() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.started
}
