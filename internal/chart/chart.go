// Package chart renders the rank/frequency chart with its Zipf reference curve.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	// DefaultPath is where the chart is written unless configured otherwise.
	DefaultPath = "plot.html"

	size = 16 * vg.Centimeter
)

var (
	observedColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	zipfColor     = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Zipf returns the counts Zipf's law predicts for each rank, given the
// observed top count: counts[0]/rank.
func Zipf(counts []uint32) []float64 {
	if len(counts) == 0 {
		return nil
	}
	top := float64(counts[0])
	out := make([]float64, len(counts))
	for i := range counts {
		out[i] = top / float64(i+1)
	}
	return out
}

// NewPlot builds the log-log plot of observed counts against rank with the
// Zipf curve dashed. It returns nil when there is nothing to draw.
func NewPlot(counts []uint32, title string) (*plot.Plot, error) {
	if len(counts) == 0 {
		return nil, nil
	}

	zipf := Zipf(counts)
	observedXY := make(plotter.XYs, len(counts))
	zipfXY := make(plotter.XYs, len(counts))
	yMin := zipf[len(zipf)-1]
	for i, c := range counts {
		rank := float64(i + 1)
		observedXY[i] = plotter.XY{X: rank, Y: float64(c)}
		zipfXY[i] = plotter.XY{X: rank, Y: zipf[i]}
		if float64(c) < yMin {
			yMin = float64(c)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "rank"
	p.Y.Label.Text = "count"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	observed, err := plotter.NewLine(observedXY)
	if err != nil {
		return nil, fmt.Errorf("failed to build observed series: %w", err)
	}
	observed.LineStyle.Color = observedColor
	observed.LineStyle.Width = vg.Points(1.5)

	reference, err := plotter.NewLine(zipfXY)
	if err != nil {
		return nil, fmt.Errorf("failed to build zipf series: %w", err)
	}
	reference.LineStyle.Color = zipfColor
	reference.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	p.Add(observed, reference)
	p.Legend.Add("Observed", observed)
	p.Legend.Add("Zipf", reference)
	p.Legend.Top = true

	// Log axes need a strictly positive, non-degenerate range.
	p.X.Min = 1
	p.X.Max = float64(len(counts))
	if p.X.Max <= p.X.Min {
		p.X.Max = p.X.Min * 10
	}
	p.Y.Min = yMin
	p.Y.Max = float64(counts[0])
	if p.Y.Max <= p.Y.Min {
		p.Y.Min /= 10
		p.Y.Max *= 10
	}
	return p, nil
}

// SVG draws the plot as an SVG document.
func SVG(p *plot.Plot) ([]byte, error) {
	canvas := vgsvg.New(size, size)
	p.Draw(draw.New(canvas))
	var out bytes.Buffer
	if _, err := canvas.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("failed to encode svg: %w", err)
	}
	return out.Bytes(), nil
}

// PNG draws the plot as a PNG image.
func PNG(p *plot.Plot) ([]byte, error) {
	canvas := vgimg.PngCanvas{Canvas: vgimg.New(size, size)}
	p.Draw(draw.New(canvas))
	var out bytes.Buffer
	if _, err := canvas.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return out.Bytes(), nil
}

type page struct {
	Title  string
	Image  template.URL
	Types  int
	Tokens uint64
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
	<head>
		<meta charset="utf-8">
		<title>{{.Title}}</title>
	</head>
	<body>
		<div id="content">
			<p style="text-align:center;">
{{- if .Image}}
				<img id="plot" src="{{.Image}}" alt="{{.Title}}">
			</p>
			<p style="text-align:center;">{{.Types}} types, {{.Tokens}} tokens</p>
{{- else}}
				No data: the input produced no tokens.
			</p>
{{- end}}
		</div>
	</body>
</html>
`))

// Render writes a self-contained HTML page embedding the chart as a base64
// SVG image. Empty counts produce a page stating there is no data.
func Render(w io.Writer, counts []uint32, title string) error {
	data := page{Title: title, Types: len(counts)}
	p, err := NewPlot(counts, title)
	if err != nil {
		return err
	}
	if p != nil {
		svg, err := SVG(p)
		if err != nil {
			return err
		}
		data.Image = template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg))
		for _, c := range counts {
			data.Tokens += uint64(c)
		}
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}

// WriteFile renders the chart to path. A ".svg" or ".png" extension writes the
// bare image; anything else writes the HTML page.
func WriteFile(path string, counts []uint32, title string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close chart: %w", cerr)
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg", ".png":
		return writeImage(file, path, counts, title)
	default:
		return Render(file, counts, title)
	}
}

func writeImage(w io.Writer, path string, counts []uint32, title string) error {
	p, err := NewPlot(counts, title)
	if err != nil {
		return err
	}
	if p == nil {
		p = plot.New()
		p.Title.Text = title + " (no data)"
	}
	encode := SVG
	if strings.EqualFold(filepath.Ext(path), ".png") {
		encode = PNG
	}
	img, err := encode(p)
	if err != nil {
		return err
	}
	if _, err := w.Write(img); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}
