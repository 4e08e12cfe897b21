// Package plot renders cryptanalysis diagnostics as self-contained HTML
// charts (go-echarts): the fitness-history trace of a search run and a
// heat map of the reference bigram matrix.
//
// Renderers consume exactly what the core exposes — a plain []float64
// history and the read-only bigram model — so this package stays a thin
// presentation layer with no opinion on how the numbers were produced.
package plot
