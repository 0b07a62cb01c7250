package lcd

import "github.com/veridan/gbcore/internal/bits"

// StatusRegister is the address of the STAT register (0xFF41, §6).
const StatusRegister = 0xFF41

// writableMask covers STAT bits 6..3; bits 2..0 are derived, not stored
// (§6: "low 3 bits read-only: LYC-match + mode 0..3; bits 3..6 writable").
const writableMask = 0b0111_1000

// Status is the LCD status register (STAT). Interrupt source bits are
// read/write; the coincidence flag and mode are read-only and computed by
// the PPU from its live state on every read.
type Status struct {
	LYCInterruptSource    bool
	OAMInterruptSource    bool
	VBlankInterruptSource bool
	HBlankInterruptSource bool
}

// NewStatus returns the power-on value of STAT (all sources disabled).
func NewStatus() *Status {
	return &Status{}
}

// Write applies the writable bits (3..6) of a raw STAT byte.
func (s *Status) Write(v uint8) {
	v &= writableMask
	s.HBlankInterruptSource = bits.Test(v, 3)
	s.OAMInterruptSource = bits.Test(v, 5)
	s.VBlankInterruptSource = bits.Test(v, 4)
	s.LYCInterruptSource = bits.Test(v, 6)
}

// Read re-encodes STAT bits 3..6 only; the caller (PPU) ORs in the
// coincidence flag and current mode, which it alone knows.
func (s *Status) Read() uint8 {
	var v uint8
	if s.HBlankInterruptSource {
		v = bits.Set(v, 3)
	}
	if s.VBlankInterruptSource {
		v = bits.Set(v, 4)
	}
	if s.OAMInterruptSource {
		v = bits.Set(v, 5)
	}
	if s.LYCInterruptSource {
		v = bits.Set(v, 6)
	}
	return v
}
