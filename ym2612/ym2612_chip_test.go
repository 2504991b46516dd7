// ym2612_chip_test.go - end-to-end seed scenarios from the chip's external
// behaviour contract: reset/idle, pure tone, DAC passthrough, timer
// overflow, key-on/off, determinism, and reset equivalence.

package ym2612

import "testing"

func mustNewChip(t *testing.T, ct ChipType) *Chip {
	t.Helper()
	c, err := NewChip(ct, sampleQueueLength)
	if err != nil {
		t.Fatalf("NewChip: %v", err)
	}
	return c
}

func writeFM(c *Chip, addr, data uint8) {
	c.Write(PortAddr0, addr)
	c.Clock(12)
	c.Write(PortData0, data)
	c.Clock(32)
}

func TestNewChipRejectsNonPowerOfTwoCapacity(t *testing.T) {
	if _, err := NewChip(ChipYM2612, 1000); err == nil {
		t.Fatalf("expected error for non power-of-two capacity")
	}
	if _, err := NewChip(ChipYM2612, 0); err == nil {
		t.Fatalf("expected error for zero capacity")
	}
}

func TestResetIdleProducesSilence(t *testing.T) {
	c := mustNewChip(t, ChipYM2612)
	c.Reset()
	c.Clock(24 * 1000)

	for c.QueuedCount() > 0 {
		l, r, ok := c.DequeueOne()
		if !ok {
			t.Fatalf("DequeueOne reported false with QueuedCount > 0")
		}
		if l != 0 || r != 0 {
			t.Fatalf("expected silent frame on idle reset chip, got (%d, %d)", l, r)
		}
	}
}

func TestQueuedCountAfterWholeFrames(t *testing.T) {
	c := mustNewChip(t, ChipYM2612)
	const frames = 50
	c.Clock(24 * frames)
	if got := c.QueuedCount(); got != frames {
		t.Fatalf("QueuedCount() = %d, want %d", got, frames)
	}

	buf := make([][2]int16, frames)
	n := c.Dequeue(buf)
	if n != frames {
		t.Fatalf("Dequeue popped %d frames, want %d", n, frames)
	}
	if got := c.QueuedCount(); got != 0 {
		t.Fatalf("QueuedCount() after full dequeue = %d, want 0", got)
	}
}

func TestQueueOverflowOverwritesOldest(t *testing.T) {
	c := mustNewChip(t, ChipYM2612)
	capacity := sampleQueueLength
	c.Clock(24 * (capacity + 5))

	if got := c.QueuedCount(); got != uint32(capacity) {
		t.Fatalf("QueuedCount() after overflow = %d, want capacity %d", got, capacity)
	}
}

func keyOnChannel1AllOpsAlgorithm7(c *Chip) {
	// Algorithm 7 (all four operators carriers), feedback off, OP1 only
	// audible source of interest: set TL=0 and AR=max on OP1 (slot 0).
	writeFM(c, RegFBConnect+0x00, 0x07) // connect=7, fb=0, channel 1 (offset 0)
	writeFM(c, RegTL+0x00, 0x00)        // OP1 TL = 0
	writeFM(c, RegKSAR+0x00, 0x1f)      // OP1 AR = max, KS = 0
	writeFM(c, RegAMDR+0x00, 0x00)
	writeFM(c, RegSR+0x00, 0x00)
	writeFM(c, RegSLRR+0x00, 0x0f)
	// Silence OP2/OP3/OP4 so only OP1's carrier tap contributes.
	for _, base := range []uint8{0x08, 0x04, 0x0c} {
		writeFM(c, RegTL+base, 0x7f)
	}
	// fnum=0x43b, block=5 => ~440 Hz (MUL=0, so the multiplier is 1/2).
	writeFM(c, RegBlockFNum+0x00, (5<<3)|(0x43b>>8))
	writeFM(c, RegFNumLo+0x00, uint8(0x43b&0xff))
	// Key on all four operators of channel 1.
	c.Write(PortAddr0, RegKeyOn)
	c.Clock(12)
	c.Write(PortData0, 0xF0)
	c.Clock(32)
}

func TestPureToneZeroCrossingRate(t *testing.T) {
	c := mustNewChip(t, ChipYM2612)
	keyOnChannel1AllOpsAlgorithm7(c)

	// Run roughly half a second at the NTSC sample rate (~53267 Hz) and
	// count zero crossings on the left channel.
	const sampleRate = 53267
	const seconds = 0.5
	const wantSamples = sampleRate / 2

	c.Clock(24 * 1000) // let the envelope and phase settle first
	var crossings int
	var prev int16
	first := true
	samples := 0
	for samples < wantSamples {
		if c.QueuedCount() == 0 {
			c.Clock(24 * 256)
			continue
		}
		l, _, ok := c.DequeueOne()
		if !ok {
			break
		}
		if !first && (prev < 0) != (l < 0) {
			crossings++
		}
		prev = l
		first = false
		samples++
	}

	if crossings == 0 {
		t.Fatalf("expected a non-zero tone, got no zero crossings over %d samples", samples)
	}
	freq := float64(crossings) / 2 / seconds
	if freq < 400 || freq > 480 {
		t.Fatalf("zero-crossing frequency %.1f Hz outside expected ~440 Hz band", freq)
	}
}

func TestDACPassthrough(t *testing.T) {
	c := mustNewChip(t, ChipYM2612)
	writeFM(c, RegDACEnable, 0x80)
	writeFM(c, RegDACData, 0x00)
	c.Clock(24)

	c.Write(PortAddr0, RegDACData)
	c.Clock(12)
	c.Write(PortData0, 0xFF)
	c.Clock(24 * 4)

	sawHigh, sawLow := false, false
	for i := 0; i < 64 && c.QueuedCount() > 0; i++ {
		l, _, ok := c.DequeueOne()
		if !ok {
			break
		}
		if l > 500 {
			sawHigh = true
		}
		if l < -500 {
			sawLow = true
		}
	}
	if !sawHigh && !sawLow {
		t.Fatalf("expected channel 6 to swing through DAC extremes, saw neither high nor low")
	}
}

func TestTimerAOverflowRaisesIRQ(t *testing.T) {
	c := mustNewChip(t, ChipYM2612)
	// Timer A register = 0x3FE (near overflow); enable + load.
	writeFM(c, RegTimerAHi, 0x3FE>>2)
	writeFM(c, RegTimerALo, 0x3FE&0x03)
	writeFM(c, RegCSMTimer, 0x05) // load(bit0) | enable(bit2)

	c.Clock(24 * 4)

	if c.ReadIRQPin() == 0 {
		t.Fatalf("expected IRQ pin to rise after timer A overflow")
	}
	status := c.Read(PortAddr0)
	if status&0x01 == 0 {
		t.Fatalf("expected timer A overflow bit in status byte, got 0x%02x", status)
	}
}

func TestKeyOnKeyOffRoundTrip(t *testing.T) {
	c := mustNewChip(t, ChipYM2612)
	writeFM(c, RegKSAR+0x00, 0x1f)
	writeFM(c, RegAMDR+0x00, 0x05)
	writeFM(c, RegSR+0x00, 0x05)
	writeFM(c, RegSLRR+0x00, 0x05)

	c.Write(PortAddr0, RegKeyOn)
	c.Clock(12)
	c.Write(PortData0, 0xF0)
	c.Clock(24 * 10)

	if c.egState[0] == egAttack {
		c.Clock(24 * 200)
	}
	if c.egState[0] != egDecay && c.egState[0] != egSustain {
		t.Fatalf("expected OP1 envelope to reach decay/sustain after key-on, got state %d", c.egState[0])
	}
	levelAfterKeyOn := c.egLevel[0]

	c.Write(PortAddr0, RegKeyOn)
	c.Clock(12)
	c.Write(PortData0, 0x00)
	c.Clock(24 * 2000)

	if c.egState[0] != egRelease {
		t.Fatalf("expected OP1 to be in release after key-off, got state %d", c.egState[0])
	}
	if c.egLevel[0] <= levelAfterKeyOn {
		t.Fatalf("expected OP1 attenuation to have increased during release: before=0x%x after=0x%x", levelAfterKeyOn, c.egLevel[0])
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []int16 {
		c := mustNewChip(t, ChipYM2612)
		keyOnChannel1AllOpsAlgorithm7(c)
		c.Clock(24 * 500)
		var out []int16
		for c.QueuedCount() > 0 {
			l, r, ok := c.DequeueOne()
			if !ok {
				break
			}
			out = append(out, l, r)
		}
		return out
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("non-deterministic frame count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic output at sample %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestResetEquivalence(t *testing.T) {
	fresh := mustNewChip(t, ChipYM2612)

	dirty := mustNewChip(t, ChipYM2612)
	keyOnChannel1AllOpsAlgorithm7(dirty)
	dirty.Clock(24 * 300)
	dirty.Reset()

	fresh.Clock(24 * 10)
	dirty.Clock(24 * 10)

	for i := 0; i < 10; i++ {
		fl, fr, fok := fresh.DequeueOne()
		dl, dr, dok := dirty.DequeueOne()
		if fok != dok {
			t.Fatalf("dequeue availability mismatch after reset at frame %d", i)
		}
		if fok && (fl != dl || fr != dr) {
			t.Fatalf("reset chip diverges from fresh chip at frame %d: (%d,%d) vs (%d,%d)", i, fl, fr, dl, dr)
		}
	}
}
