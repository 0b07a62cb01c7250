package timingplot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlotModeDurationsWritesFile(t *testing.T) {
	samples := []ModeSample{
		{Scanline: 0, OAMScan: 80, Drawing: 200, HBlank: 176},
		{Scanline: 1, OAMScan: 80, Drawing: 172, HBlank: 204},
	}
	path := filepath.Join(t.TempDir(), "modes.png")
	if err := PlotModeDurations(samples, path); err != nil {
		t.Fatalf("PlotModeDurations: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("output file is empty")
	}
}
