package ppu

// FrameWidth and FrameHeight are the DMG/CGB LCD's pixel dimensions (§3).
const (
	FrameWidth  = 160
	FrameHeight = 144
)

// Frame is a fixed-size, row-major RGBA frame buffer: 4 bytes per pixel in
// R, G, B, A order (§6). Go gives us a fixed-size array directly, so
// unlike the boxed-slice workaround in the system this was distilled from,
// no unsafe allocation dance is needed (§9 Frame ownership).
type Frame = *[FrameWidth * FrameHeight * 4]byte

func newFrame() Frame {
	return new([FrameWidth * FrameHeight * 4]byte)
}
