package framehash

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/veridan/gbcore/internal/ppu"
)

// ToImage views a frame buffer as a standard library RGBA image, suitable
// for golden-file comparison or a PNG dump.
func ToImage(frame ppu.Frame) *image.RGBA {
	return &image.RGBA{
		Pix:    frame[:],
		Stride: ppu.FrameWidth * 4,
		Rect:   image.Rect(0, 0, ppu.FrameWidth, ppu.FrameHeight),
	}
}

// WritePNG encodes a frame as a PNG, for dumping a failing golden-frame
// test's actual output alongside the expected one.
func WritePNG(w io.Writer, frame ppu.Frame) error {
	return png.Encode(w, ToImage(frame))
}

// Diff renders a same-size image highlighting every differing pixel in
// solid red, the same approach the teacher's ROM test harness uses to
// visualize a failing frame comparison.
func Diff(a, b ppu.Frame) image.Image {
	imgA, imgB := ToImage(a), ToImage(b)
	out := image.NewRGBA(imgA.Bounds())
	draw.Draw(out, out.Bounds(), imgA, image.Point{}, draw.Src)

	bounds := imgA.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if imgA.At(x, y) != imgB.At(x, y) {
				out.Set(x, y, color.RGBA{R: 255, A: 255})
			}
		}
	}
	return out
}
