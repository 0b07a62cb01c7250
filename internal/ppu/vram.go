package ppu

import "github.com/veridan/gbcore/internal/ppu/lcd"

// vramIndex maps a bus address in the VRAM window to a byte offset into
// the PPU's 16KB backing array, honoring the active VRAM bank (§6).
func (p *PPU) vramIndex(addr uint16) uint16 {
	idx := addr & 0x1FFF
	if p.vramBank == 1 {
		idx |= 0x2000
	}
	return idx
}

// readVRAMRaw bypasses mode blocking; used internally by the render step,
// which runs only during Drawing and is exempt from its own block.
func (p *PPU) readVRAMRaw(addr uint16) uint8 {
	return p.vram[p.vramIndex(addr)]
}

// ReadVRAM honors Drawing-mode blocking (§4, Invariants): reads return
// 0xFF while the PPU is composing pixels for the current scanline.
func (p *PPU) ReadVRAM(addr uint16) uint8 {
	if p.stage.kind == lcd.Drawing {
		return 0xFF
	}
	return p.readVRAMRaw(addr)
}

// WriteVRAM honors Drawing-mode blocking: writes are dropped while the PPU
// is composing pixels for the current scanline.
func (p *PPU) WriteVRAM(addr uint16, data uint8) {
	if p.stage.kind == lcd.Drawing {
		return
	}
	p.vram[p.vramIndex(addr)] = data
}

// ReadOAM honors OAM-scan/Drawing blocking unless force is set, which DMA
// transfers use to bypass it (§6).
func (p *PPU) ReadOAM(addr uint16, force bool) uint8 {
	if !force && p.oamBlocked() {
		return 0xFF
	}
	return p.oam[addr&0xFF]
}

// WriteOAM honors OAM-scan/Drawing blocking unless force is set.
func (p *PPU) WriteOAM(addr uint16, data uint8, force bool) {
	if !force && p.oamBlocked() {
		return
	}
	p.oam[addr&0xFF] = data
}

func (p *PPU) oamBlocked() bool {
	return p.stage.kind == lcd.OAM || p.stage.kind == lcd.Drawing
}
