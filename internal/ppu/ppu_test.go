package ppu

import (
	"testing"

	"github.com/veridan/gbcore/internal/interrupts"
	"github.com/veridan/gbcore/internal/ppu/lcd"
)

// recorder is a minimal interrupts.Requester that counts requests by kind.
type recorder struct {
	vblank  int
	lcdstat int
}

func (r *recorder) RequestInterrupt(kind interrupts.Kind) {
	switch kind {
	case interrupts.VBlank:
		r.vblank++
	case interrupts.LCDStat:
		r.lcdstat++
	}
}

func newEnabledPPU() *PPU {
	p := New()
	p.Write(addrLCDC, 0x91) // LCD + BG enabled, unsigned tile data, 0x9800 map
	return p
}

func TestScanlinePeriod(t *testing.T) {
	p := newEnabledPPU()
	r := &recorder{}
	startY := p.y
	for i := 0; i < 455; i++ {
		p.Clock(r)
		if p.y != startY {
			t.Fatalf("y advanced after only %d clocks", i+1)
		}
	}
	p.Clock(r)
	if p.y != startY+1 {
		t.Fatalf("y = %d after 456 clocks, want %d", p.y, startY+1)
	}
}

func TestFramePeriod(t *testing.T) {
	p := newEnabledPPU()
	r := &recorder{}
	const dotsPerFrame = 456 * 154
	readyCount := 0
	for i := 0; i < dotsPerFrame; i++ {
		p.Clock(r)
		if _, ok := p.ReadyFrame(); ok {
			readyCount++
		}
	}
	if readyCount != 1 {
		t.Fatalf("ready_frame fired %d times in one frame interval, want 1", readyCount)
	}
}

func TestVBlankOncePerFrame(t *testing.T) {
	p := newEnabledPPU()
	r := &recorder{}
	const dotsPerFrame = 456 * 154
	for i := 0; i < dotsPerFrame; i++ {
		p.Clock(r)
	}
	if r.vblank != 1 {
		t.Fatalf("vblank requested %d times, want 1", r.vblank)
	}
}

func TestLYCSignal(t *testing.T) {
	p := newEnabledPPU()
	p.lyc = 64
	r := &recorder{}
	for p.y != 64 {
		p.Clock(r)
	}
	if v := p.Read(addrSTAT); v&(1<<2) == 0 {
		t.Fatalf("STAT bit 2 clear when y == lyc")
	}
	for i := 0; i < 456; i++ {
		p.Clock(r)
	}
	if v := p.Read(addrSTAT); v&(1<<2) != 0 {
		t.Fatalf("STAT bit 2 set when y (%d) != lyc (%d)", p.y, p.lyc)
	}
}

func TestVRAMReadBlockedDuringDrawing(t *testing.T) {
	p := New()
	p.vram[0] = 0x42
	p.stage = drawingStage()
	if v := p.ReadVRAM(0x8000); v != 0xFF {
		t.Fatalf("ReadVRAM during Drawing = %#x, want 0xFF", v)
	}
	p.stage = hBlankStage()
	if v := p.ReadVRAM(0x8000); v != 0x42 {
		t.Fatalf("ReadVRAM during HBlank = %#x, want 0x42", v)
	}
}

func TestOAMDMABypassesBlocking(t *testing.T) {
	p := New()
	p.stage = drawingStage()
	p.WriteOAM(0xFE00, 0x7F, false)
	if p.oam[0] != 0 {
		t.Fatalf("unforced write during Drawing modified OAM")
	}
	p.WriteOAM(0xFE00, 0x7F, true)
	if p.oam[0] != 0x7F {
		t.Fatalf("forced write during Drawing left OAM unchanged")
	}
}

func TestBlankFrame(t *testing.T) {
	p := newEnabledPPU()
	p.Write(addrBGP, 0) // palette entry 0 -> shade index 0 -> byte 0xC0
	r := &recorder{}
	var frame Frame
	for frame == nil {
		p.Clock(r)
		if f, ok := p.ReadyFrame(); ok {
			frame = f
		}
	}
	for i, b := range frame {
		if b != 0xC0 {
			t.Fatalf("frame[%d] = %#x, want 0xC0", i, b)
		}
	}
}

func TestSolidBackgroundFrame(t *testing.T) {
	p := New()
	for addr := uint16(0x9800); addr < 0x9C00; addr++ {
		p.vram[p.vramIndex(addr)] = 0
	}
	for addr := uint16(0x8000); addr < 0x8010; addr++ {
		p.vram[p.vramIndex(addr)] = 0xFF
	}
	p.Write(addrBGP, 0b11100100)
	p.Write(addrLCDC, 0x91)

	r := &recorder{}
	var frame Frame
	for frame == nil {
		p.Clock(r)
		if f, ok := p.ReadyFrame(); ok {
			frame = f
		}
	}
	for i, b := range frame {
		if b != 0x00 {
			t.Fatalf("frame[%d] = %#x, want 0x00 (color index 3)", i, b)
		}
	}
}

func TestOAMScanObservedInVisibleScanline(t *testing.T) {
	p := newEnabledPPU()
	r := &recorder{}
	seen := map[lcd.Mode]bool{}
	for i := 0; i < 456; i++ {
		p.Clock(r)
		seen[p.stage.kind] = true
	}
	if !seen[lcd.OAM] {
		t.Fatalf("OAM-scan mode never observed in a visible scanline")
	}
}
