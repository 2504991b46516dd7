// ym2612_tick.go - the 24-slot master tick: one call advances every
// sub-machine by exactly one rotation step and produces one raw stereo
// sample. Every read here is from a slot written some fixed number of
// ticks earlier, so despite looking cyclic the pipeline is acyclic.

package ym2612

// tick advances the chip by one master clock and returns this tick's raw
// (unaccumulated) stereo sample.
func (c *Chip) tick() (mol, mor int32) {
	slot := c.cycles
	c.lfoInc = c.modeTest21[1]
	c.pgRead >>= 1
	c.egRead[1] >>= 1
	c.egCycle++

	if c.cycles == 1 && c.egQuotient == 2 {
		if c.egCycleStop != 0 {
			c.egShiftLock = 0
		} else {
			c.egShiftLock = c.egShift + 1
		}
		c.egTimerLowLock = uint8(c.egTimer & 0x03)
	}

	switch c.cycles {
	case 0:
		c.lfoPM = c.lfoCnt >> 2
		if c.lfoCnt&0x40 != 0 {
			c.lfoAM = c.lfoCnt & 0x3f
		} else {
			c.lfoAM = c.lfoCnt ^ 0x3f
		}
		c.lfoAM <<= 1
	case 1:
		c.egQuotient = (c.egQuotient + 1) % 3
		c.egCycle = 0
		c.egCycleStop = 1
		c.egShift = 0
		c.egTimerInc |= uint8(c.egQuotient >> 1)
		c.egTimer += uint16(c.egTimerInc)
		c.egTimerInc = uint8(c.egTimer >> 12)
		c.egTimer &= 0xfff
	case 2:
		c.pgRead = uint32(c.pgPhase[21] & 0x3ff)
		c.egRead[1] = uint32(c.egOut[0])
	case 13:
		c.egCycle = 0
		c.egCycleStop = 1
		c.egShift = 0
		c.egTimer += uint16(c.egTimerInc)
		c.egTimerInc = uint8(c.egTimer >> 12)
		c.egTimer &= 0xfff
	case 23:
		c.lfoInc |= 1
	}

	c.egTimer &= ^(uint16(c.modeTest21[5]) << c.egCycle)
	if ((c.egTimer>>c.egCycle)|uint16(c.pinTestIn&c.egCustomTimer))&uint16(c.egCycleStop) != 0 {
		c.egShift = c.egCycle
		c.egCycleStop = 0
	}

	c.doIO()

	c.doTimerA()
	c.doTimerB()
	c.keyOn()

	mol, mor = c.chOutput()
	c.chGenerate()

	c.fmPrepare()
	c.fmGenerate()

	c.phaseGenerate()
	c.phaseCalcIncrement()

	c.envelopeADSR()
	c.envelopeGenerate()
	c.envelopeSSGEG()
	c.envelopePrepare()

	if c.modeCh3 != 0 {
		switch slot {
		case 1:
			c.pgFnum = c.fnum3ch[1]
			c.pgBlock = c.block3ch[1]
			c.pgKcode = c.kcode3ch[1]
		case 7:
			c.pgFnum = c.fnum3ch[0]
			c.pgBlock = c.block3ch[0]
			c.pgKcode = c.kcode3ch[0]
		case 13:
			c.pgFnum = c.fnum3ch[2]
			c.pgBlock = c.block3ch[2]
			c.pgKcode = c.kcode3ch[2]
		default:
			next := (c.channel + 1) % 6
			c.pgFnum = c.fnum[next]
			c.pgBlock = c.block[next]
			c.pgKcode = c.kcode[next]
		}
	} else {
		next := (c.channel + 1) % 6
		c.pgFnum = c.fnum[next]
		c.pgBlock = c.block[next]
		c.pgKcode = c.kcode[next]
	}

	c.updateLFO()
	c.doRegWrite()
	c.cycles = (c.cycles + 1) % 24
	c.channel = c.cycles % 6

	if c.statusTime != 0 {
		c.statusTime--
	}

	return mol, mor
}
