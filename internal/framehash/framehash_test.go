package framehash

import (
	"bytes"
	"testing"

	"github.com/veridan/gbcore/internal/ppu"
)

func blankFrame(fill byte) ppu.Frame {
	raw := new([ppu.FrameWidth * ppu.FrameHeight * 4]byte)
	for i := range raw {
		raw[i] = fill
	}
	return raw
}

func TestHashDeterministic(t *testing.T) {
	a := blankFrame(0xC0)
	b := blankFrame(0xC0)
	if Hash(a) != Hash(b) {
		t.Fatalf("identical frames hashed differently")
	}
}

func TestHashDiffersOnContent(t *testing.T) {
	a := blankFrame(0xC0)
	b := blankFrame(0x00)
	if Hash(a) == Hash(b) {
		t.Fatalf("distinct frames hashed identically")
	}
}

func TestWritePNGProducesPNGHeader(t *testing.T) {
	f := blankFrame(0xC0)
	var buf bytes.Buffer
	if err := WritePNG(&buf, f); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	header := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), header) {
		t.Fatalf("output does not start with a PNG signature")
	}
}
