// ym2612_io.go - write-latch edge detection and register decode/routing.

package ym2612

// doIO computes the one-tick address/data "enable" edges from the 2-bit
// shift registers, then shifts them, and advances the write-busy counter.
func (c *Chip) doIO() {
	c.writeAEn = b2u8(c.writeA&0x03 == 0x01)
	c.writeDEn = b2u8(c.writeD&0x03 == 0x01)
	c.writeA <<= 1
	c.writeD <<= 1

	c.busy = c.writeBusy
	c.writeBusyCnt += c.writeBusy
	c.writeBusy = b2u8((c.writeBusy != 0 && c.writeBusyCnt>>5 == 0) || c.writeDEn != 0)
	c.writeBusyCnt &= 0x1f
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// doRegWrite routes a staged write into per-operator, per-channel, or mode
// registers. This is the two-phase FM address/data handshake from §4.2:
// an address write with a non-zero high nibble latches write_fm_address;
// the following data write (while that flag holds) latches write_fm_data,
// which is what actually commits the operator/channel register fields.
func (c *Chip) doRegWrite() {
	slot := c.cycles % 12
	channel := c.channel

	if c.writeFMData != 0 {
		if opOffset[slot] == uint32(c.address)&0x107 {
			s := slot
			if c.address&0x08 != 0 {
				s += 12
			}
			switch c.address & 0xf0 {
			case RegDTMulti:
				m := c.data & 0x0f
				if m == 0 {
					c.multi[s] = 1
				} else {
					c.multi[s] = m << 1
				}
				c.dt[s] = (c.data >> 4) & 0x07
			case RegTL:
				c.tl[s] = c.data & 0x7f
			case RegKSAR:
				c.ar[s] = c.data & 0x1f
				c.ks[s] = (c.data >> 6) & 0x03
			case RegAMDR:
				c.dr[s] = c.data & 0x1f
				c.am[s] = (c.data >> 7) & 0x01
			case RegSR:
				c.sr[s] = c.data & 0x1f
			case RegSLRR:
				c.rr[s] = c.data & 0x0f
				sl := (c.data >> 4) & 0x0f
				sl |= (sl + 1) & 0x10
				c.sl[s] = sl
			case RegSSGEG:
				c.ssgEG[s] = c.data & 0x0f
			}
		}

		if chOffset[channel] == uint32(c.address)&0x103 {
			switch c.address & 0xfc {
			case RegFNumLo:
				c.fnum[channel] = uint16(c.data) | uint16(c.regA4&0x07)<<8
				c.block[channel] = (c.regA4 >> 3) & 0x07
				c.kcode[channel] = c.block[channel]<<2 | uint8(fnNote[c.fnum[channel]>>7])
			case RegBlockFNum:
				c.regA4 = c.data
			case RegFNum3Lo:
				c.fnum3ch[channel] = uint16(c.data) | uint16(c.regAC&0x07)<<8
				c.block3ch[channel] = (c.regAC >> 3) & 0x07
				c.kcode3ch[channel] = c.block3ch[channel]<<2 | uint8(fnNote[c.fnum3ch[channel]>>7])
			case RegBlockFNum3:
				c.regAC = c.data
			case RegFBConnect:
				c.connect[channel] = c.data & 0x07
				c.fb[channel] = (c.data >> 3) & 0x07
			case RegLRAMSPMS:
				c.pms[channel] = c.data & 0x07
				c.ams[channel] = (c.data >> 4) & 0x03
				c.panL[channel] = (c.data >> 7) & 0x01
				c.panR[channel] = (c.data >> 6) & 0x01
			}
		}
	}

	if c.writeAEn != 0 || c.writeDEn != 0 {
		if c.writeAEn != 0 {
			c.writeFMData = 0
		}
		if c.writeFMAddress != 0 && c.writeDEn != 0 {
			c.writeFMData = 1
		}

		if c.writeAEn != 0 {
			if c.writeData&0xf0 != 0x00 {
				c.address = c.writeData
				c.writeFMAddress = 1
			} else {
				c.writeFMAddress = 0
			}
		}

		if c.writeDEn != 0 && c.writeData&0x100 == 0 {
			c.applyModeWrite()
		}

		if c.writeAEn != 0 {
			c.writeFMModeA = c.writeData & 0x1ff
		}
	}

	if c.writeFMData != 0 {
		c.data = uint8(c.writeData & 0xff)
	}
}

// applyModeWrite decodes a data-edge write against the latched mode address
// (write_fm_mode_a) into the 0x20-0x2F global/mode registers.
func (c *Chip) applyModeWrite() {
	switch c.writeFMModeA {
	case RegTest1:
		for i := 0; i < 8; i++ {
			c.modeTest21[i] = uint8(c.writeData>>uint(i)) & 0x01
		}
	case RegLFO:
		if (c.writeData>>3)&0x01 != 0 {
			c.lfoEn = 0x7f
		} else {
			c.lfoEn = 0
		}
		c.lfoFreq = uint8(c.writeData & 0x07)
	case RegTimerAHi:
		c.timerAReg = (c.timerAReg & 0x03) | (c.writeData&0xff)<<2
	case RegTimerALo:
		c.timerAReg = (c.timerAReg & 0x3fc) | (c.writeData & 0x03)
	case RegTimerB:
		c.timerBReg = c.writeData & 0xff
	case RegCSMTimer:
		c.modeCh3 = uint8((c.writeData & 0xc0) >> 6)
		c.modeCSM = c.modeCh3 == 2
		c.timerALoad = uint8(c.writeData & 0x01)
		c.timerAEnable = uint8((c.writeData >> 2) & 0x01)
		c.timerAReset = uint8((c.writeData >> 4) & 0x01)
		c.timerBLoad = uint8((c.writeData >> 1) & 0x01)
		c.timerBEnable = uint8((c.writeData >> 3) & 0x01)
		c.timerBReset = uint8((c.writeData >> 5) & 0x01)
	case RegKeyOn:
		for i := 0; i < 4; i++ {
			c.modeKonOp[i] = uint8(c.writeData>>uint(4+i)) & 0x01
		}
		if c.writeData&0x03 == 0x03 {
			c.modeKonChannel = 0xff
		} else {
			c.modeKonChannel = uint8(c.writeData&0x03) + uint8((c.writeData>>2)&1)*3
		}
	case RegDACData:
		c.dacData &= 0x01
		c.dacData |= int32(c.writeData^0x80) << 1
	case RegDACEnable:
		c.dacEnable = uint8(c.writeData >> 7)
	case RegTest2:
		for i := 0; i < 8; i++ {
			c.modeTest2c[i] = uint8(c.writeData>>uint(i)) & 0x01
		}
		c.dacData &= 0x1fe
		c.dacData |= int32(c.modeTest2c[3])
		c.egCustomTimer = b2u8(c.modeTest2c[7] == 0 && c.modeTest2c[6] != 0)
	}
}
