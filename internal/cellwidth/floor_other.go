//go:build !windows

package cellwidth

// MinCell is the narrowest cell the terminal renders.
const MinCell = 0
