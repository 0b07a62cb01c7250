package ppu

// fetchStage is the pixel fetcher's state machine (§4.2.3, §9 design
// note): a closed set of four stages with different associated data, not
// a polymorphic hierarchy.
type fetchStage uint8

const (
	stageGetTile fetchStage = iota
	stageGetTileLow
	stageGetTileHigh
	stagePush
)

// fetcherState holds the fetcher's sub-state for the scanline currently
// being drawn (§9 design note).
type fetcherState struct {
	stage fetchStage

	isSprite bool
	isWindow bool

	fetcherX uint8
	tileIdx  uint8
	cycle    uint8 // 0 or 1, even/odd sub-tick within a stage

	spriteIdx uint8 // byte offset of the in-flight sprite in secondary OAM

	tileLow  uint8 // low bit plane of the fetched tile row
	tileHigh uint8 // high bit plane of the fetched tile row

	buffer [8]uint16
}

// reset flushes the fetcher back to GetTile and clears its per-fetch
// scratch state, keeping fetcherX (background/window column counter)
// intact unless the caller overwrites it, matching the window-trigger and
// sprite-trigger behavior of §4.2.3.
func (f *fetcherState) reset() {
	f.stage = stageGetTile
	f.cycle = 0
	f.isSprite = false
	f.isWindow = false
	f.buffer = [8]uint16{}
}
