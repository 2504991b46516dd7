// ym2612_lfo.go - low-frequency oscillator driving AM and PM.

package ym2612

// updateLFO advances the 7-bit LFO counter at the cadence selected by
// lfo_freq. The lfo_pm/lfo_am split is derived from the counter by tick()
// at cycle 0, not here.
func (c *Chip) updateLFO() {
	if c.lfoQuotient&uint8(lfoCycles[c.lfoFreq]) == uint8(lfoCycles[c.lfoFreq]) {
		c.lfoQuotient = 0
		c.lfoCnt++
	} else {
		c.lfoQuotient += c.lfoInc
	}
	c.lfoCnt &= c.lfoEn
}
