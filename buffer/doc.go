// Package buffer implements the editable, terminal-aware UTF-8 byte buffer
// of a line editor.
//
// Positions are byte offsets into the content, 0 <= pos <= Len(). All
// navigation happens in display units: one UTF-8 codepoint, or one complete
// ANSI escape sequence, so a position never lands inside either.
//
// Widths are terminal columns. Layout maps positions to (row, column) once
// the content is wrapped to a terminal width behind a prompt.
package buffer
