// Package timingplot renders per-scanline PPU mode-duration samples to a
// PNG, for eyeballing the OAM-scan/Drawing/H-Blank dot split across many
// scanlines instead of asserting it blind in a unit test.
package timingplot

import (
	"image"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ModeSample records how many dots a single scanline spent in each mode.
type ModeSample struct {
	Scanline int
	OAMScan  int
	Drawing  int
	HBlank   int
}

// PlotModeDurations draws one line per mode across the given samples and
// writes the result as a PNG at path.
func PlotModeDurations(samples []ModeSample, path string) error {
	p := plot.New()
	p.Title.Text = "PPU mode duration per scanline"
	p.X.Label.Text = "scanline"
	p.Y.Label.Text = "dots"

	oam := make(plotter.XYs, len(samples))
	drawing := make(plotter.XYs, len(samples))
	hblank := make(plotter.XYs, len(samples))
	for i, s := range samples {
		oam[i] = plotter.XY{X: float64(s.Scanline), Y: float64(s.OAMScan)}
		drawing[i] = plotter.XY{X: float64(s.Scanline), Y: float64(s.Drawing)}
		hblank[i] = plotter.XY{X: float64(s.Scanline), Y: float64(s.HBlank)}
	}

	if err := addLine(p, "OAM-scan", oam); err != nil {
		return err
	}
	if err := addLine(p, "Drawing", drawing); err != nil {
		return err
	}
	if err := addLine(p, "H-Blank", hblank); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	c := vgimg.NewWith(vgimg.UseImage(img))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: c}
	_, err = png.WriteTo(f)
	return err
}

func addLine(p *plot.Plot, name string, xys plotter.XYs) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}
