// Package viz renders dynamic array state and run traces for the terminal.
//
//   - [RenderSlots]: one cell per allocated slot, live slots highlighted
//   - [PlotTrace]: count and capacity per step via asciigraph
//   - [Summary]: styled one-screen summary of a run
//   - [LoadBar], [Sparkline]: compact gauges used by the REPL
package viz
