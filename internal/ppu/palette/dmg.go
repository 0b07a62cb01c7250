// Package palette implements the DMG greyscale and CGB color palette
// register files of §3/§6.
package palette

// Lookup resolves a 2-bit color index through a greyscale palette byte,
// yielding the 2-bit shade index to display (§4.2.3 Compositing).
func Lookup(reg uint8, index uint8) uint8 {
	return (reg >> (index * 2)) & 0x3
}

// Shade converts a 2-bit shade index into the DMG RGBA channel value,
// replicated into R, G, B and A (§6 Frame format): index 0 is white
// (0xC0), 3 is black (0x00).
func Shade(index uint8) uint8 {
	return (^index & 0x3) << 6
}
