package chart

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"rectsim/pkg/rectifier"
	"rectsim/pkg/waveform"
)

var phaseColors = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // phase A / single input
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // phase B
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}, // phase C
}

var phaseNames = []string{"phase A", "phase B", "phase C"}

// Waveforms renders one simulation run as a stacked three-panel PNG chart:
// input voltage on top (one trace per phase), output voltage in the middle,
// output current at the bottom.
func Waveforms(grid waveform.TimeGrid, res *rectifier.Result, t rectifier.Topology) ([]byte, error) {
	inPlot := plot.New()
	inPlot.Title.Text = t.String() + ": input voltage"
	inPlot.Y.Label.Text = "Voltage (V)"
	for ci, ch := range res.Input {
		line, err := plotter.NewLine(points(grid, ch))
		if err != nil {
			return nil, fmt.Errorf("input trace %d: %w", ci, err)
		}
		line.Color = phaseColors[ci]
		inPlot.Add(line)
		if len(res.Input) > 1 {
			inPlot.Legend.Add(phaseNames[ci], line)
			inPlot.Legend.Top = true
		}
	}

	outPlot := plot.New()
	outPlot.Title.Text = "Output voltage"
	outPlot.Y.Label.Text = "Voltage (V)"
	outLine, err := plotter.NewLine(points(grid, res.Output))
	if err != nil {
		return nil, fmt.Errorf("output voltage trace: %w", err)
	}
	outLine.Color = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	outPlot.Add(outLine)

	curPlot := plot.New()
	curPlot.Title.Text = "Output current"
	curPlot.Y.Label.Text = "Current (A)"
	curPlot.X.Label.Text = "Time (s)"
	curLine, err := plotter.NewLine(points(grid, res.Current))
	if err != nil {
		return nil, fmt.Errorf("output current trace: %w", err)
	}
	curLine.Color = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	curPlot.Add(curLine)

	img := vgimg.New(18*vg.Centimeter, 21*vg.Centimeter)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 3, Cols: 1, PadY: 3 * vg.Millimeter}
	panels := [][]*plot.Plot{{inPlot}, {outPlot}, {curPlot}}
	canvases := plot.Align(panels, tiles, dc)
	for r, row := range panels {
		row[0].Draw(canvases[r][0])
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}
	return buf.Bytes(), nil
}

func points(grid waveform.TimeGrid, w waveform.Waveform) plotter.XYs {
	pts := make(plotter.XYs, len(w))
	for i := range w {
		pts[i].X = grid[i]
		pts[i].Y = w[i]
	}
	return pts
}
