// Package lcd provides the LCDC/STAT register types shared by the PPU's
// register file (§6, MMIO register table).
package lcd

// Mode is the 2-bit mode field reported in STAT bits 1..0.
type Mode uint8

const (
	// HBlank: the CPU can access both VRAM and OAM.
	HBlank Mode = 0
	// VBlank: the CPU can access both VRAM and OAM.
	VBlank Mode = 1
	// OAM: the OAM-scan mode; OAM is blocked.
	OAM Mode = 2
	// Drawing: VRAM and OAM are both blocked.
	Drawing Mode = 3
)
