package buffer

// ForEachRow lays s out into terminal rows and calls fn once per row. A row
// soft-wraps before a unit that would push the column, plus the row's
// prompt and one column for the cursor, past l.TermWidth. A newline ends
// its row as a hard break. Once fn asks to stop it is not called again, but
// the walk still runs to the end: the total row count, at least 1, is
// always returned.
func ForEachRow(s []byte, l Layout, fn RowFunc) int {
	stopped := fn == nil
	emit := func(r Row) {
		if !stopped {
			stopped = fn(r)
		}
	}

	rows, col, start := 0, 0, 0
	i := 0
	for i < len(s) {
		n, w := NextUnit(s, i)
		if n <= 0 {
			break
		}
		prompt := l.ContPromptWidth
		if rows == 0 {
			prompt = l.PromptWidth
		}
		termCol := col + w + prompt + 1
		if l.TermWidth > 0 && i != 0 && termCol > l.TermWidth {
			emit(Row{Index: rows, Start: start, Len: i - start, Wrapped: true})
			rows++
			start = i
			col = 0
		}
		if s[i] == '\n' {
			emit(Row{Index: rows, Start: start, Len: i - start})
			rows++
			start = i + 1
			col = 0
		}
		i += n
		col += w
	}
	emit(Row{Index: rows, Start: start, Len: i - start})
	return rows + 1
}

// RowColAt returns where pos lands in the layout of s, along with the total
// row count. A position on the boundary of two rows belongs to the later
// one. The zero RowCol is returned for a position outside [0, len(s)].
func RowColAt(s []byte, l Layout, pos int) (RowCol, int) {
	var rc RowCol
	rows := ForEachRow(s, l, func(r Row) bool {
		if pos >= r.Start && pos <= r.Start+r.Len {
			rc = RowCol{
				Row:        r.Index,
				Col:        columnWidth(s[r.Start:pos]),
				RowStart:   r.Start,
				RowLen:     r.Len,
				FirstOnRow: pos == r.Start,
				LastOnRow:  pos == r.Start+r.Len,
			}
		}
		return false
	})
	return rc, rows
}

// PosAt returns the position on the given row closest to col: the first
// position whose width from the row start reaches col, or the row end.
// It returns -1 if the layout has no such row.
func PosAt(s []byte, l Layout, row, col int) int {
	pos := -1
	ForEachRow(s, l, func(r Row) bool {
		if r.Index != row {
			return false
		}
		end := r.Start + r.Len
		i, c := r.Start, 0
		for c < col && i < end {
			n, w := NextUnit(s[:end], i)
			if n <= 0 {
				break
			}
			i += n
			c += w
		}
		pos = i
		return true
	})
	return pos
}
