package buffer

type MoveUnit int

const (
	MoveChar MoveUnit = iota
	MoveWord
	MoveWSWord // whitespace-delimited word
	MoveLine
	MoveRow // terminal row, needs a Layout
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Layout Layout // used by MoveRow
}

// Move returns the position reached from pos by m. Moves that cannot go
// anywhere return pos clamped into the content.
func (b *Buffer) Move(pos int, m Move) int {
	pos = clampInt(pos, 0, b.count)
	switch m.Unit {
	case MoveChar:
		return b.moveChar(pos, m.Dir)
	case MoveWord:
		return b.moveWord(pos, m.Dir, b.FindWordStart, b.FindWordEnd)
	case MoveWSWord:
		return b.moveWord(pos, m.Dir, b.FindWSWordStart, b.FindWSWordEnd)
	case MoveLine:
		return b.moveLine(pos, m.Dir)
	case MoveRow:
		return b.moveRow(pos, m.Dir, m.Layout)
	case MoveDoc:
		return b.moveDoc(pos, m.Dir)
	default:
		return pos
	}
}

func (b *Buffer) moveChar(pos int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if p, _ := b.Prev(pos); p >= 0 {
			return p
		}
	case DirRight:
		if p, _ := b.Next(pos); p >= 0 {
			return p
		}
	case DirHome, DirEnd:
		return b.moveLine(pos, dir)
	}
	return pos
}

func (b *Buffer) moveWord(pos int, dir MoveDir, start, end func(int) int) int {
	switch dir {
	case DirLeft:
		return start(pos)
	case DirRight:
		return end(pos)
	case DirHome, DirEnd:
		return b.moveLine(pos, dir)
	default:
		return pos
	}
}

func (b *Buffer) moveLine(pos int, dir MoveDir) int {
	switch dir {
	case DirLeft, DirHome:
		return b.FindLineStart(pos)
	case DirRight, DirEnd:
		return b.FindLineEnd(pos)
	case DirUp, DirDown:
		return b.moveRow(pos, dir, Layout{})
	default:
		return pos
	}
}

// moveRow keeps the column while moving one terminal row up or down; the
// column is clamped to the content of the target row.
func (b *Buffer) moveRow(pos int, dir MoveDir, l Layout) int {
	rc, rows := b.RowColAt(l, pos)
	row := rc.Row
	switch dir {
	case DirUp:
		if row == 0 {
			return pos
		}
		row--
	case DirDown:
		if row >= rows-1 {
			return pos
		}
		row++
	case DirHome:
		return rc.RowStart
	case DirEnd:
		return rc.RowStart + rc.RowLen
	default:
		return pos
	}
	if p := b.PosAt(l, row, rc.Col); p >= 0 {
		return p
	}
	return pos
}

func (b *Buffer) moveDoc(pos int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp, DirLeft:
		return 0
	case DirEnd, DirDown, DirRight:
		return b.count
	default:
		return pos
	}
}
