package ppu

// secondaryOAMCap is the number of bytes in secondary OAM: up to 10
// visible sprite entries of 4 bytes each (§3, §4.2.2).
const secondaryOAMCap = 40

// oamScanState tracks progress through the 80-dot OAM scan (§4.2.2). The
// scanned entry and secondary-OAM write position are both derived from
// PPU.cycle and PPU.secondaryLen, so the only sub-state actually carried
// between the even and odd sub-ticks of an entry is the Y test result.
type oamScanState struct {
	visible bool // scratch: result of the even sub-tick's Y test
}
