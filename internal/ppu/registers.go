package ppu

// MMIO addresses for the PPU register file (§6).
const (
	addrLCDC    = 0xFF40
	addrSTAT    = 0xFF41
	addrSCY     = 0xFF42
	addrSCX     = 0xFF43
	addrLY      = 0xFF44
	addrLYC     = 0xFF45
	addrBGP     = 0xFF47
	addrOBP0    = 0xFF48
	addrOBP1    = 0xFF49
	addrWY      = 0xFF4A
	addrWX      = 0xFF4B
	addrKEY0    = 0xFF4C
	addrBCPS    = 0xFF68
	addrBCPD    = 0xFF69
	addrOCPS    = 0xFF6A
	addrOCPD    = 0xFF6B
)
