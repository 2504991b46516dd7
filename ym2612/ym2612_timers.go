// ym2612_timers.go - Timer A/B counters, overflow/IRQ flags, and CSM keyon.

package ym2612

// doTimerA advances the 10-bit Timer A counter and raises the overflow
// flag (gated by enable) and the CSM keyon pulse on overflow.
func (c *Chip) doTimerA() {
	load := c.timerAOverflow
	if c.cycles == 2 {
		load |= b2u8(c.timerALoadLock == 0 && c.timerALoad != 0)
		c.timerALoadLock = c.timerALoad
		if c.modeCSM {
			c.modeKonCSM = load
		} else {
			c.modeKonCSM = 0
		}
	}

	var time uint16
	if c.timerALoadLatch != 0 {
		time = c.timerAReg
	} else {
		time = c.timerACnt
	}
	c.timerALoadLatch = load

	if (c.cycles == 1 && c.timerALoadLock != 0) || c.modeTest21[2] != 0 {
		time++
	}

	if c.timerAReset != 0 {
		c.timerAReset = 0
		c.timerAOverflowFl = 0
	} else {
		c.timerAOverflowFl |= c.timerAOverflow & c.timerAEnable
	}
	c.timerAOverflow = uint8(time >> 10)
	c.timerACnt = time & 0x3ff
}

// doTimerB advances the 8-bit Timer B counter through its 4-bit sub-counter.
func (c *Chip) doTimerB() {
	load := c.timerBOverflow
	if c.cycles == 2 {
		load |= b2u8(c.timerBLoadLock == 0 && c.timerBLoad != 0)
		c.timerBLoadLock = c.timerBLoad
	}

	var time uint16
	if c.timerBLoadLatch != 0 {
		time = c.timerBReg
	} else {
		time = c.timerBCnt
	}
	c.timerBLoadLatch = load

	if c.cycles == 1 {
		c.timerBSubcnt++
	}
	if (c.timerBSubcnt == 0x10 && c.timerBLoadLock != 0) || c.modeTest21[2] != 0 {
		time++
	}
	c.timerBSubcnt &= 0x0f

	if c.timerBReset != 0 {
		c.timerBReset = 0
		c.timerBOverflowFl = 0
	} else {
		c.timerBOverflowFl |= c.timerBOverflow & c.timerBEnable
	}
	c.timerBOverflow = uint8(time >> 8)
	c.timerBCnt = time & 0xff
}

// keyOn latches the key-on state for the current slot and, once every 24
// ticks (when cycles == mode_kon_channel), commits the four per-operator
// key bits staged by register 0x28 into the OP1/OP2/OP3/OP4 slots of the
// targeted channel.
func (c *Chip) keyOn() {
	slot := c.cycles
	chanN := c.channel

	c.egKonLatch[slot] = c.modeKon[slot]
	c.egKonCsm[slot] = 0
	if c.channel == 2 && c.modeKonCSM != 0 {
		c.egKonLatch[slot] = 1
		c.egKonCsm[slot] = 1
	}

	if uint8(c.cycles) == c.modeKonChannel {
		c.modeKon[chanN] = c.modeKonOp[0]
		c.modeKon[chanN+12] = c.modeKonOp[1]
		c.modeKon[chanN+6] = c.modeKonOp[2]
		c.modeKon[chanN+18] = c.modeKonOp[3]
	}
}
