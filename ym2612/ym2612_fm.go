// ym2612_fm.go - FM operator modulation mixing, phase-to-amplitude lookup,
// and channel accumulation.

package ym2612

// fmPrepare computes the modulation input for the slot 6 ticks ahead,
// combining OP1's two feedback taps, OP2's feedback tap, and the previous
// slot's operator output according to the channel's algorithm, then
// updates the OP1/OP2 feedback registers from the slot 18 ticks ahead.
func (c *Chip) fmPrepare() {
	slot := (c.cycles + 6) % 24
	channel := c.channel
	op := slot / 6
	connect := c.connect[channel]
	prevslot := (c.cycles + 18) % 24

	var mod1, mod2 int32
	if fmAlgorithm[op][0][connect] != 0 {
		mod2 |= c.fmOp1[channel][0]
	}
	if fmAlgorithm[op][1][connect] != 0 {
		mod1 |= c.fmOp1[channel][1]
	}
	if fmAlgorithm[op][2][connect] != 0 {
		mod1 |= c.fmOp2[channel]
	}
	if fmAlgorithm[op][3][connect] != 0 {
		mod2 |= c.fmOut[prevslot]
	}
	if fmAlgorithm[op][4][connect] != 0 {
		mod1 |= c.fmOut[prevslot]
	}
	mod := mod1 + mod2
	if op == 0 {
		if c.fb[channel] == 0 {
			mod = 0
		} else {
			mod >>= 10 - uint(c.fb[channel])
		}
	} else {
		mod >>= 1
	}
	c.fmMod[slot] = mod

	slot = (c.cycles + 18) % 24
	if slot/6 == 0 {
		c.fmOp1[channel][1] = c.fmOp1[channel][0]
		c.fmOp1[channel][0] = c.fmOut[slot]
	}
	if slot/6 == 2 {
		c.fmOp2[channel] = c.fmOut[slot]
	}
}

// fmGenerate performs the logsin/exp ROM lookup for the slot 19 ticks
// ahead: phase plus modulation indexes into logsinROM, the envelope
// attenuates it, expROM converts back from log domain, and the quadrant/
// sign bits of the phase restore the waveform's sign.
func (c *Chip) fmGenerate() {
	slot := (c.cycles + 19) % 24
	phase := uint32(c.fmMod[slot]+int32(c.pgPhase[slot]>>10)) & 0x3ff

	var quarter uint32
	if phase&0x100 != 0 {
		quarter = (phase ^ 0xff) & 0xff
	} else {
		quarter = phase & 0xff
	}

	level := uint32(logsinROM[quarter])
	level += uint32(c.egOut[slot]) << 2
	if level > 0x1fff {
		level = 0x1fff
	}

	output := int32((uint32(expROM[(level&0xff)^0xff]) | 0x400) << 2 >> (level >> 8))
	if phase&0x200 != 0 {
		output = (^output ^ (int32(c.modeTest21[4]) << 13)) + 1
	} else {
		output = output ^ (int32(c.modeTest21[4]) << 13)
	}
	c.fmOut[slot] = signExtend(13, output)
}

// chGenerate accumulates the algorithm's "carrier" taps into the channel
// accumulator for the slot 18 ticks ahead, clamping to signed 9 bits and
// latching ch_out once per channel rotation (op == 0).
func (c *Chip) chGenerate() {
	slot := (c.cycles + 18) % 24
	channel := c.channel
	op := slot / 6
	testDAC := c.modeTest2c[5]

	acc := c.chAcc[channel]
	var add int32
	if testDAC != 0 {
		add = 1
	}
	if op == 0 && testDAC == 0 {
		acc = 0
	}
	if fmAlgorithm[op][5][c.connect[channel]] != 0 && testDAC == 0 {
		add += c.fmOut[slot] >> 5
	}
	sum := clampI32(acc+add, -256, 255)

	if op == 0 || testDAC != 0 {
		c.chOut[channel] = c.chAcc[channel]
	}
	c.chAcc[channel] = sum
}

// chOutput locks the current channel's accumulated output every 4 ticks,
// substitutes the DAC sample on channel 6 when enabled, and applies the
// YM2612 vs YM3438 output shaping to produce this tick's stereo sample.
func (c *Chip) chOutput() (mol, mor int32) {
	cycles := c.cycles
	channel := c.channel
	testDAC := c.modeTest2c[5]
	c.chRead = c.chLock

	if cycles < 12 {
		channel = (channel + 1) % 6
	}
	if cycles&3 == 0 {
		if testDAC == 0 {
			c.chLock = c.chOut[channel]
		}
		c.chLockL = c.panL[channel]
		c.chLockR = c.panR[channel]
	}

	var out int32
	if (cycles>>2 == 1 && c.dacEnable != 0) || testDAC != 0 {
		out = signExtend(8, c.dacData)
	} else {
		out = c.chLock
	}

	if c.chipType.isYM2612() {
		outEn := cycles&3 == 3 || testDAC != 0
		sign := out >> 8
		if out >= 0 {
			out++
			sign++
		}
		if c.chLockL != 0 && outEn {
			mol = out
		} else {
			mol = sign
		}
		if c.chLockR != 0 && outEn {
			mor = out
		} else {
			mor = sign
		}
		mol *= 3
		mor *= 3
	} else {
		outEn := cycles&3 != 0 || testDAC != 0
		if c.chLockL != 0 && outEn {
			mol = out
		}
		if c.chLockR != 0 && outEn {
			mor = out
		}
	}
	return mol, mor
}
