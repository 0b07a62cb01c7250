package lcd

import "github.com/veridan/gbcore/internal/bits"

// ControlRegister is the address of the LCDC register (0xFF40, §6).
const ControlRegister = 0xFF40

// Control is the LCD control register (LCDC). Its value is stored as
// follows:
//
//	Bit 7 - LCD Enable                    (0=Off, 1=On)
//	Bit 6 - Window Tile Map Area           (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Enable                  (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Area     (0=8800-97FF signed, 1=8000-8FFF unsigned)
//	Bit 3 - BG Tile Map Area               (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ Size                       (0=8x8, 1=8x16)
//	Bit 1 - OBJ Enable                     (0=Off, 1=On)
//	Bit 0 - BG/Window Enable/Priority      (0=Off, 1=On)
type Control struct {
	LCDEnable              bool
	WindowTileMapArea      uint16 // 0x9800 or 0x9C00
	WindowEnable           bool
	TileDataArea           uint16 // 0x8000 (unsigned) or 0x9000 (signed base)
	BackgroundTileMapArea  uint16 // 0x9800 or 0x9C00
	ObjSize                uint8  // 8 or 16
	ObjEnable              bool
	BackgroundWindowEnable bool // BG/Window enable-priority bit
}

// NewControl returns the power-on value of LCDC.
func NewControl() *Control {
	var c Control
	c.Write(0)
	return &c
}

// Write decodes a raw LCDC byte into the Control fields.
func (c *Control) Write(v uint8) {
	c.LCDEnable = bits.Test(v, 7)
	if bits.Test(v, 6) {
		c.WindowTileMapArea = 0x9C00
	} else {
		c.WindowTileMapArea = 0x9800
	}
	c.WindowEnable = bits.Test(v, 5)
	if bits.Test(v, 4) {
		c.TileDataArea = 0x8000
	} else {
		c.TileDataArea = 0x9000
	}
	if bits.Test(v, 3) {
		c.BackgroundTileMapArea = 0x9C00
	} else {
		c.BackgroundTileMapArea = 0x9800
	}
	c.ObjSize = 8 + bits.Val(v, 2)*8
	c.ObjEnable = bits.Test(v, 1)
	c.BackgroundWindowEnable = bits.Test(v, 0)
}

// Read re-encodes the Control fields into the raw LCDC byte.
func (c *Control) Read() uint8 {
	var v uint8
	if c.LCDEnable {
		v = bits.Set(v, 7)
	}
	if c.WindowTileMapArea == 0x9C00 {
		v = bits.Set(v, 6)
	}
	if c.WindowEnable {
		v = bits.Set(v, 5)
	}
	if c.TileDataArea == 0x8000 {
		v = bits.Set(v, 4)
	}
	if c.BackgroundTileMapArea == 0x9C00 {
		v = bits.Set(v, 3)
	}
	if c.ObjSize == 16 {
		v = bits.Set(v, 2)
	}
	if c.ObjEnable {
		v = bits.Set(v, 1)
	}
	if c.BackgroundWindowEnable {
		v = bits.Set(v, 0)
	}
	return v
}

// UsesSignedTileData reports whether BG/window tile data addressing is the
// signed form based at 0x9000 (§4.2.3 GetTileLow/GetTileHigh).
func (c *Control) UsesSignedTileData() bool {
	return c.TileDataArea == 0x9000
}
