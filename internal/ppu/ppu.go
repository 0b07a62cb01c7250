// Package ppu implements the pixel processing unit's mode state machine,
// OAM scan, pixel-FIFO drawing pipeline, and memory-mapped register file
// (§4.2). It owns VRAM, OAM, and the palettes; everything else (CPU,
// cartridge, timers, host shell) is an external collaborator reached only
// through the Requester interface passed into Clock.
package ppu

import (
	"github.com/veridan/gbcore/internal/bits"
	"github.com/veridan/gbcore/internal/interrupts"
	"github.com/veridan/gbcore/internal/ppu/lcd"
	"github.com/veridan/gbcore/internal/ppu/palette"
)

const (
	scanlineDots     = 456
	oamScanDots      = 80
	totalScanlines   = 154
	visibleScanlines = 144
	visibleColumns   = 160
)

// sprite attribute bits, OAM byte offset 3 (§4.2.3 Compositing).
const (
	attrPriority = 7
	attrYFlip    = 6
	attrXFlip    = 5
	attrDMGPal   = 4
)

// PPU is the Game Boy pixel processing unit.
type PPU struct {
	lcdc *lcd.Control
	stat *lcd.Status

	scrollY, scrollX uint8
	y, lyc           uint8
	windowY, windowX uint8

	bgp, obp0, obp1 uint8

	cgbBG  *palette.CGB
	cgbOBJ *palette.CGB

	vram     [0x4000]byte
	vramBank uint8

	oam          [160]byte
	secondary    [secondaryOAMCap]byte
	secondaryLen uint8

	cycle uint16
	x     uint8

	windowYCounter uint8
	windowYFlag    bool
	windowActive   bool

	stage pipelineStage

	bgFIFO pixelFIFO
	spFIFO pixelFIFO

	current Frame
	done    Frame
}

// New constructs a PPU with its registers at their power-on values, mode
// OAM-scan at the top of scanline 0 (§4.2.1), applying any supplied options.
func New(opts ...Opt) *PPU {
	p := &PPU{
		lcdc:    lcd.NewControl(),
		stat:    lcd.NewStatus(),
		cgbBG:   palette.NewCGB(),
		cgbOBJ:  palette.NewCGB(),
		stage:   oamScanStage(),
		current: newFrame(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReadyFrame hands off the just-completed frame buffer exactly once per
// frame, namely the first call after y becomes 0 at a scanline boundary
// (§4.2.5). It returns nil, false on every other call.
func (p *PPU) ReadyFrame() (Frame, bool) {
	if p.done == nil {
		return nil, false
	}
	f := p.done
	p.done = nil
	return f, true
}

// Clock advances the state machine by exactly one dot (§4.2.4).
func (p *PPU) Clock(bus interrupts.Requester) {
	p.cycle++
	if p.cycle == scanlineDots {
		p.endScanline(bus)
		return
	}
	switch p.stage.kind {
	case lcd.OAM:
		p.oamScanTick()
		if p.cycle == oamScanDots {
			p.enterDrawing()
		}
	case lcd.Drawing:
		p.drawingTick(bus)
	case lcd.HBlank, lcd.VBlank:
		// nothing happens between scanline boundaries in these modes.
	}
}

func (p *PPU) endScanline(bus interrupts.Requester) {
	p.cycle = 0
	p.x = 0
	p.y++
	switch {
	case p.y == visibleScanlines:
		p.stage = vBlankStage()
		bus.RequestInterrupt(interrupts.VBlank)
		if p.stat.VBlankInterruptSource {
			bus.RequestInterrupt(interrupts.LCDStat)
		}
	case p.y == totalScanlines:
		p.y = 0
		p.windowYCounter = 0
		p.windowYFlag = false
		p.stage = oamScanStage()
		p.swapFrame()
		if p.stat.OAMInterruptSource {
			bus.RequestInterrupt(interrupts.LCDStat)
		}
	case p.y < visibleScanlines:
		p.stage = oamScanStage()
		if p.stat.OAMInterruptSource {
			bus.RequestInterrupt(interrupts.LCDStat)
		}
	}
	if p.y == p.windowY {
		// window_y match latches window_y_flag for the rest of the frame
		// the first time the scanline counter reaches it (§4.2.3).
		p.windowYFlag = true
	}
	if p.y == p.lyc && p.stat.LYCInterruptSource {
		bus.RequestInterrupt(interrupts.LCDStat)
	}
}

func (p *PPU) swapFrame() {
	p.done = p.current
	p.current = newFrame()
}

func (p *PPU) enterDrawing() {
	p.stage = drawingStage()
	p.x = 0
	p.bgFIFO.clear()
	p.spFIFO.clear()
	p.stage.fetch.reset()
	p.windowActive = false
}

// --- OAM scan (§4.2.2) ---

func (p *PPU) spriteHeight() uint8 {
	return p.lcdc.ObjSize
}

func (p *PPU) oamScanTick() {
	dot := p.cycle - 1
	entry := dot / 2
	if entry >= 40 {
		return
	}
	off := entry * 4
	if dot%2 == 0 {
		entryY := p.oam[off]
		entryX := p.oam[off+1]
		diff := int(p.y) - int(entryY) + 16
		p.stage.oam.visible = diff >= 0 && diff < int(p.spriteHeight()) && entryX > 0
	} else if p.stage.oam.visible && p.secondaryLen < 10 {
		copy(p.secondary[p.secondaryLen*4:p.secondaryLen*4+4], p.oam[off:off+4])
		p.secondaryLen++
	}
}

// --- Drawing: pixel FIFO pipeline (§4.2.3) ---

func (p *PPU) drawingTick(bus interrupts.Requester) {
	fetch := &p.stage.fetch

	if !fetch.isWindow && p.lcdc.WindowEnable && p.windowYFlag &&
		p.x >= p.windowX-7 {
		fetch.reset()
		fetch.isWindow = true
		fetch.fetcherX = 0
		p.windowActive = true
	}

	if !fetch.isSprite {
		p.triggerSprite(fetch)
	}

	p.stepFetcher(fetch)

	if fetch.isSprite || p.bgFIFO.isEmpty() {
		return
	}

	bgPixel := p.bgFIFO.pop()
	var spPixel uint16
	if !p.spFIFO.isEmpty() {
		spPixel = p.spFIFO.pop()
	}
	p.composite(bgPixel, spPixel)
	p.x++
	if p.x == visibleColumns {
		p.endDrawing(bus)
	}
}

func (p *PPU) triggerSprite(fetch *fetcherState) {
	if !p.lcdc.ObjEnable {
		return
	}
	for i := uint8(0); i < p.secondaryLen; i++ {
		off := i * 4
		spriteX := p.secondary[off+1]
		if spriteX == 0 {
			continue
		}
		diff := int(p.x) - int(spriteX) + 8
		if diff >= 0 && diff < 8 {
			fetch.reset()
			fetch.isSprite = true
			fetch.spriteIdx = off
			return
		}
	}
}

func (p *PPU) endDrawing(bus interrupts.Requester) {
	p.bgFIFO.clear()
	p.spFIFO.clear()
	p.secondaryLen = 0
	if p.windowActive {
		p.windowYCounter++
	}
	p.stage = hBlankStage()
	if p.stat.HBlankInterruptSource {
		bus.RequestInterrupt(interrupts.LCDStat)
	}
}

func (p *PPU) stepFetcher(fetch *fetcherState) {
	switch fetch.stage {
	case stageGetTile:
		if fetch.cycle == 0 {
			fetch.tileIdx = p.fetchTileIndex(fetch)
			fetch.cycle = 1
			return
		}
		fetch.cycle = 0
		fetch.stage = stageGetTileLow
	case stageGetTileLow:
		if fetch.cycle == 0 {
			fetch.tileLow = p.fetchTileRow(fetch, false)
			fetch.cycle = 1
			return
		}
		fetch.cycle = 0
		fetch.stage = stageGetTileHigh
	case stageGetTileHigh:
		if fetch.cycle == 0 {
			fetch.tileHigh = p.fetchTileRow(fetch, true)
			fetch.cycle = 1
			return
		}
		fetch.cycle = 0
		fetch.stage = stagePush
	case stagePush:
		p.push(fetch)
	}
}

func (p *PPU) fetchTileIndex(fetch *fetcherState) uint8 {
	switch {
	case fetch.isSprite:
		return p.secondary[fetch.spriteIdx+2]
	case fetch.isWindow:
		mapBase := p.lcdc.WindowTileMapArea
		idx := ((uint16(p.windowYCounter) >> 3) << 5) |
			((uint16(fetch.fetcherX) - uint16(p.windowX>>3)) & 0x1F)
		return p.readVRAMRaw(mapBase + idx)
	default:
		mapBase := p.lcdc.BackgroundTileMapArea
		row := (uint16(p.y) + uint16(p.scrollY)) & 0xFF
		col := (uint16(p.scrollX>>3) + uint16(fetch.fetcherX)) & 0x1F
		idx := ((row >> 3) << 5) | col
		return p.readVRAMRaw(mapBase + idx)
	}
}

// fetchTileRow reads the low or high bit plane of the tile row selected by
// fetch.tileIdx (§4.2.3 GetTileLow/GetTileHigh).
func (p *PPU) fetchTileRow(fetch *fetcherState, high bool) uint8 {
	var base uint16
	var fineY uint8

	if fetch.isSprite {
		base = 0x8000
		entryY := p.secondary[fetch.spriteIdx]
		fineY = uint8(int(p.y) - int(entryY) + 16)
		attrs := p.secondary[fetch.spriteIdx+3]
		height := p.spriteHeight()
		if bits.Test(attrs, attrYFlip) {
			fineY = height - 1 - fineY
		}
		tile := fetch.tileIdx
		if height == 16 {
			tile = (tile & 0xFE) | ((fineY & 0x08) >> 3)
		}
		fineY &= 0x07
		base += uint16(tile) * 16
	} else if p.lcdc.UsesSignedTileData() {
		id := int8(fetch.tileIdx)
		base = uint16(0x9000 + int32(id)*16)
		fineY = uint8((uint16(p.y) + uint16(p.scrollY)) & 0x07)
		if fetch.isWindow {
			fineY = p.windowYCounter & 0x07
		}
	} else {
		base = 0x8000 + uint16(fetch.tileIdx)*16
		fineY = uint8((uint16(p.y) + uint16(p.scrollY)) & 0x07)
		if fetch.isWindow {
			fineY = p.windowYCounter & 0x07
		}
	}

	addr := base + uint16(fineY)*2
	if high {
		addr++
	}
	return p.readVRAMRaw(addr)
}

// push assembles the fetched bit planes into 8 2-bit color indices and
// loads them into the appropriate FIFO (§4.2.3 Push).
func (p *PPU) push(fetch *fetcherState) {
	var pixels [8]uint16
	for i := 0; i < 8; i++ {
		bit := 7 - i
		lo := (fetch.tileLow >> bit) & 1
		hi := (fetch.tileHigh >> bit) & 1
		pixels[i] = uint16(lo | hi<<1)
	}

	if fetch.isSprite {
		attrs := p.secondary[fetch.spriteIdx+3]
		if bits.Test(attrs, attrXFlip) {
			for l, r := 0, 7; l < r; l, r = l+1, r-1 {
				pixels[l], pixels[r] = pixels[r], pixels[l]
			}
		}
		var flags uint16
		if bits.Test(attrs, attrPriority) {
			flags |= 1 << 9
		}
		if bits.Test(attrs, attrDMGPal) {
			flags |= 1 << 8
		}
		for i := range pixels {
			pixels[i] |= flags
		}

		spriteX := p.secondary[fetch.spriteIdx+1]
		drop := 0
		if spriteX < 8 {
			drop = 8 - int(spriteX)
		}
		p.spFIFO.clear()
		p.spFIFO.load(pixels)
		for i := 0; i < drop; i++ {
			p.spFIFO.pop()
		}
		p.secondary[fetch.spriteIdx+1] = 0

		fetch.stage = stageGetTile
		fetch.cycle = 0
		fetch.isSprite = false
		return
	}

	if !p.bgFIFO.isEmpty() {
		return
	}
	p.bgFIFO.load(pixels)
	fetch.fetcherX++
	fetch.stage = stageGetTile
	fetch.cycle = 0

	if p.x == 0 && !fetch.isWindow {
		drain := int((p.scrollX + p.x) & 7)
		for i := 0; i < drain; i++ {
			p.bgFIFO.pop()
		}
	}
}

// composite mixes one background/window pixel with one sprite pixel and
// writes the resulting shade to the current frame buffer (§4.2.3
// Compositing).
func (p *PPU) composite(bgPixel, spPixel uint16) {
	bg := uint8(bgPixel & 0x3)
	sp := uint8(spPixel & 0x3)
	spPriority := spPixel&(1<<9) != 0
	spPalette := spPixel&(1<<8) != 0

	// Priority is decided against the unforced BG color index (§4.2.3
	// Compositing); LCDC.0 only forces the rendered background index to 0
	// once the background has actually been chosen.
	var index uint8
	var paletteByte uint8
	useSprite := p.lcdc.ObjEnable && sp != 0 && (!spPriority || bg == 0)
	if useSprite {
		index = sp
		if spPalette {
			paletteByte = p.obp1
		} else {
			paletteByte = p.obp0
		}
	} else {
		index = bg
		if !p.lcdc.BackgroundWindowEnable {
			index = 0
		}
		paletteByte = p.bgp
	}

	shade := palette.Shade(palette.Lookup(paletteByte, index))
	off := (int(p.y)*visibleColumns + int(p.x)) * 4
	buf := p.current
	buf[off] = shade
	buf[off+1] = shade
	buf[off+2] = shade
	buf[off+3] = shade
}
