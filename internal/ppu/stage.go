package ppu

import "github.com/veridan/gbcore/internal/ppu/lcd"

// pipelineStage is the PPU's per-scanline mode state machine (§4.2.1): OAM
// scan, Drawing, H-Blank within a visible scanline, or V-Blank outside of
// one. It carries the sub-state needed by whichever stage is active,
// following the same "closed sum type plus small record" shape as
// fetcherState rather than a class hierarchy (§9).
type pipelineStage struct {
	kind lcd.Mode
	oam  oamScanState
	fetch fetcherState
}

func oamScanStage() pipelineStage {
	return pipelineStage{kind: lcd.OAM}
}

func drawingStage() pipelineStage {
	return pipelineStage{kind: lcd.Drawing}
}

func hBlankStage() pipelineStage {
	return pipelineStage{kind: lcd.HBlank}
}

func vBlankStage() pipelineStage {
	return pipelineStage{kind: lcd.VBlank}
}
