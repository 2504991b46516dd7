// ym2612_vgm_bus.go - replays a parsed VGM OPN2 event stream into a Chip.
//
// This mirrors ayPlaybackBusZ80's recorded-write replay pattern, adapted
// from a live Z80 IO bus to an offline event queue: instead of trapping
// OUT instructions, the bus is handed a []OPN2Event up front and drains it
// sample-by-sample as the host clocks the chip forward.

package main

import (
	"fmt"

	"github.com/intuitionamiga/IntuitionEngine/ym2612"
)

// vgmOPN2Bus drives a ym2612.Chip from a pre-parsed VGM event stream, one
// VGM "sample" (1/44100s) at a time.
type vgmOPN2Bus struct {
	chip              *ym2612.Chip
	events            []OPN2Event
	eventIndex        int
	currentSample     uint64
	ticksPerVGMSample float64
	tickAccum         float64
}

// newVGMOPN2Bus builds a bus that paces chip.Clock calls so that masterHz
// master ticks correspond to one second of VGM time, i.e. masterHz/44100
// ticks per VGM sample.
func newVGMOPN2Bus(chip *ym2612.Chip, file *VGMFile, masterHz float64) (*vgmOPN2Bus, error) {
	if chip == nil {
		return nil, fmt.Errorf("ym2612: vgm bus requires a non-nil chip")
	}
	if file == nil {
		return nil, fmt.Errorf("ym2612: vgm bus requires a parsed file")
	}
	return &vgmOPN2Bus{
		chip:              chip,
		events:            file.OPN2Events,
		ticksPerVGMSample: masterHz / 44100.0,
	}, nil
}

// StepVGMSample advances the bus by exactly one 44100 Hz VGM sample: any
// register writes timestamped at the current sample are applied to the
// chip before it is clocked forward.
func (b *vgmOPN2Bus) StepVGMSample() {
	for b.eventIndex < len(b.events) && b.events[b.eventIndex].Sample == b.currentSample {
		ev := b.events[b.eventIndex]
		addrPort, dataPort := ym2612.PortAddr0, ym2612.PortData0
		if ev.Port == 1 {
			addrPort, dataPort = ym2612.PortAddr1, ym2612.PortData1
		}
		b.chip.Write(addrPort, ev.Reg)
		b.chip.Clock(12)
		b.chip.Write(dataPort, ev.Value)
		b.chip.Clock(32)
		b.eventIndex++
	}

	b.tickAccum += b.ticksPerVGMSample
	ticks := int(b.tickAccum)
	b.tickAccum -= float64(ticks)
	if ticks > 0 {
		b.chip.Clock(ticks)
	}
	b.currentSample++
}

// Done reports whether every event in the stream has been applied.
func (b *vgmOPN2Bus) Done() bool {
	return b.eventIndex >= len(b.events)
}

// Remaining returns how many VGM samples remain before the timestamp of the
// last event; it is 0 from that sample onward.
func (b *vgmOPN2Bus) Remaining() int {
	if len(b.events) == 0 {
		return 0
	}
	last := b.events[len(b.events)-1].Sample
	if b.currentSample >= last {
		return 0
	}
	return int(last - b.currentSample)
}
