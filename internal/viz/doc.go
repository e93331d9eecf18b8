// Package viz renders maps, systems and input sequences for the terminal.
//
//   - [Describe]: a bordered panel with the variant name, dimensions, traits
//     and coefficient matrices
//   - [FormatMatrix]: a matrix or vector printed with gonum's formatter
//   - [PlotSequence]: an asciigraph line plot of a scalar sequence
//   - [Sparkline]: a single-row summary of a sequence
package viz
