package ppu

import "github.com/veridan/gbcore/internal/ppu/lcd"

// Read serves the PPU's memory-mapped register file (§6).
func (p *PPU) Read(addr uint16) uint8 {
	switch addr {
	case addrLCDC:
		return p.lcdc.Read()
	case addrSTAT:
		return p.readSTAT()
	case addrSCY:
		return p.scrollY
	case addrSCX:
		return p.scrollX
	case addrLY:
		return p.y
	case addrLYC:
		return p.lyc
	case addrBGP:
		return p.bgp
	case addrOBP0:
		return p.obp0
	case addrOBP1:
		return p.obp1
	case addrWY:
		return p.windowY
	case addrWX:
		return p.windowX
	case addrKEY0:
		return 0xFF
	case addrBCPS:
		return p.cgbBG.ReadSpec()
	case addrBCPD:
		if p.paletteBlocked() {
			return 0xFF
		}
		return p.cgbBG.ReadData()
	case addrOCPS:
		return p.cgbOBJ.ReadSpec()
	case addrOCPD:
		if p.paletteBlocked() {
			return 0xFF
		}
		return p.cgbOBJ.ReadData()
	default:
		return 0
	}
}

// Write serves the PPU's memory-mapped register file (§6).
func (p *PPU) Write(addr uint16, data uint8) {
	switch addr {
	case addrLCDC:
		p.lcdc.Write(data)
	case addrSTAT:
		p.stat.Write(data)
	case addrSCY:
		p.scrollY = data
	case addrSCX:
		p.scrollX = data
	case addrLY:
		// LY is read-only.
	case addrLYC:
		p.lyc = data
	case addrBGP:
		p.bgp = data
	case addrOBP0:
		p.obp0 = data
	case addrOBP1:
		p.obp1 = data
	case addrWY:
		p.windowY = data
	case addrWX:
		p.windowX = data
	case addrKEY0:
		// rKEY0 is locked post-boot; writes are ignored.
	case addrBCPS:
		p.cgbBG.WriteSpec(data)
	case addrBCPD:
		if !p.paletteBlocked() {
			p.cgbBG.WriteData(data)
		}
	case addrOCPS:
		p.cgbOBJ.WriteSpec(data)
	case addrOCPD:
		if !p.paletteBlocked() {
			p.cgbOBJ.WriteData(data)
		}
	}
}

// readSTAT composes the live mode bits and LYC=LY coincidence flag with
// the stored interrupt-source bits (§6).
func (p *PPU) readSTAT() uint8 {
	v := p.stat.Read()
	v |= uint8(p.stage.kind) & 0x3
	if p.y == p.lyc {
		v |= 1 << 2
	}
	return v
}

func (p *PPU) paletteBlocked() bool {
	return p.stage.kind == lcd.Drawing
}
