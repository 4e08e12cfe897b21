// Package plot - chart construction and HTML rendering.
//
// Design:
//   - One constructor per chart; WriteHTML composes any number of them
//     onto a single page.
//   - Long histories are downsampled to a bounded point count before
//     rendering; 20000-iteration traces do not need 20000 DOM points to
//     read convergence off a chart.
package plot

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vdlabac/subcipher/bigram"
	"github.com/vdlabac/subcipher/cipher"
)

// maxHistoryPoints bounds the number of rendered points of a fitness trace.
const maxHistoryPoints = 2000

// HistoryLine builds a line chart of a search run's fitness history:
// x = iteration, y = current chain fitness (log-likelihood).
func HistoryLine(history []float64, title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "fitness (log-likelihood)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	// Downsample by stride so the first and the trend survive; the exact
	// intermediate wiggles are noise at this zoom level anyway.
	stride := 1
	if len(history) > maxHistoryPoints {
		stride = (len(history) + maxHistoryPoints - 1) / maxHistoryPoints
	}

	var (
		xs    = make([]string, 0, maxHistoryPoints+1)
		items = make([]opts.LineData, 0, maxHistoryPoints+1)
		i     int
	)
	for i = 0; i < len(history); i += stride {
		xs = append(xs, fmt.Sprintf("%d", i))
		items = append(items, opts.LineData{Value: history[i]})
	}

	line.SetXAxis(xs).AddSeries("chain fitness", items)
	return line
}

// ModelHeatmap builds a log10 heat map of the reference bigram matrix:
// x = second symbol, y = first symbol, value = log10 P(second|first).
func ModelHeatmap(m *bigram.Model) *charts.HeatMap {
	labels := make([]string, cipher.AlphabetSize)

	var i int
	for i = 0; i < cipher.AlphabetSize; i++ {
		labels[i] = string(cipher.Alphabet[i])
	}

	var (
		data     = make([]opts.HeatMapData, 0, cipher.AlphabetSize*cipher.AlphabetSize)
		row, col int
		v        float64
		lo       = math.Inf(1)
		hi       = math.Inf(-1)
	)
	for row = 0; row < cipher.AlphabetSize; row++ {
		for col = 0; col < cipher.AlphabetSize; col++ {
			v = math.Log10(m.Prob(row, col))
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{col, row, v}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Reference bigram matrix (log10 scale)"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: labels, Name: "second symbol"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: labels, Name: "first symbol"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
		}),
	)
	hm.AddSeries("log10 probability", data)
	return hm
}

// WriteHTML renders cs onto one page and writes it to path.
func WriteHTML(path string, cs ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(cs...)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = page.Render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
