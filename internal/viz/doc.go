// Package viz provides the terminal UI for sortlab.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: visualizer and compare tabs driven by an experiment session
//   - [RenderBars]: pseudo-3D bar chart coloured by element state
//   - [Canvas]: braille plot for arrays wider than the terminal
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	S     - Start sorting
//	G     - Generate a new array
//	R     - Reset (discards a running sort)
//	A     - Next algorithm (shift for previous)
//	[ ]   - Array size -/+ 5
//	- +   - Animation speed
//	P     - Cycle array pattern
//	T     - Cycle color themes
//	Tab   - Switch between visualizer and compare
//	?     - Show help overlay
//
// Generate, size, pattern and algorithm changes are locked while a sort is
// animating.
package viz
