// ym2612_phase.go - phase generator: 20-bit accumulators, LFO PM, detune.

package ym2612

// phaseCalcIncrement computes the phase increment for the slot the pipeline
// is currently preparing (slot == c.cycles at call time, via the pgFnum/
// pgBlock/pgKcode staged by the caller one tick ahead).
func (c *Chip) phaseCalcIncrement() {
	chan_ := c.channel
	slot := c.cycles
	fnum := uint32(c.pgFnum)
	fnumH := fnum >> 4
	lfo := c.lfoPM
	lfoL := lfo & 0x0f
	pms := c.pms[chan_]
	dt := c.dt[slot]
	dtL := dt & 0x03
	kcode := c.pgKcode

	fnum <<= 1
	if lfoL&0x08 != 0 {
		lfoL ^= 0x0f
	}
	fm := (fnumH >> pgLFOSh1[pms][lfoL]) + (fnumH >> pgLFOSh2[pms][lfoL])
	if pms > 5 {
		fm <<= pms - 5
	}
	fm >>= 2
	if lfo&0x10 != 0 {
		fnum -= fm
	} else {
		fnum += fm
	}
	fnum &= 0xfff

	basefreq := (fnum << c.pgBlock) >> 2

	var detune uint32
	if dtL != 0 {
		if kcode > 0x1c {
			kcode = 0x1c
		}
		block := kcode >> 2
		note := kcode & 0x03
		extra := b2u8(dtL == 3) | (dtL & 0x02)
		sum := block + 9 + extra
		sumH := sum >> 1
		sumL := sum & 0x01
		detune = pgDetune[(uint32(sumL)<<2)|uint32(note)] >> (9 - uint32(sumH))
	}
	if dt&0x04 != 0 {
		basefreq -= detune
	} else {
		basefreq += detune
	}
	basefreq &= 0x1ffff

	c.pgInc[slot] = (basefreq * uint32(c.multi[slot])) >> 1
	c.pgInc[slot] &= 0xfffff
}

// phaseGenerate masks the increment for any slot flagged for a phase reset,
// then steps the phase accumulator of the slot one behind the masked one.
func (c *Chip) phaseGenerate() {
	slot := (c.cycles + 20) % 24
	if c.pgReset[slot] != 0 {
		c.pgInc[slot] = 0
	}

	slot = (c.cycles + 19) % 24
	if c.pgReset[slot] != 0 || c.modeTest21[3] != 0 {
		c.pgPhase[slot] = 0
	}
	c.pgPhase[slot] += c.pgInc[slot]
	c.pgPhase[slot] &= 0xfffff
}
