// Package framehash gives PPU frame buffers a cheap identity check, so
// golden-frame tests and frame-dedup logic don't have to compare 92KB
// buffers byte by byte.
package framehash

import (
	"github.com/cespare/xxhash"

	"github.com/veridan/gbcore/internal/ppu"
)

// Hash returns the xxHash64 digest of a frame buffer's raw bytes.
func Hash(frame ppu.Frame) uint64 {
	return xxhash.Sum64(frame[:])
}

// Equal reports whether two frames hash identically. A hash collision
// would report a false positive; for regression tests comparing rendered
// frames against known-good references this tradeoff is the point.
func Equal(a, b ppu.Frame) bool {
	return Hash(a) == Hash(b)
}
