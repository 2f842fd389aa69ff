package buffer

const defaultHistoryLimit = 1000

// Snapshot is a buffer state worth returning to.
type Snapshot struct {
	Text string
	Pos  int
}

// History keeps undo and redo stacks of snapshots.
type History struct {
	limit int
	undo  []Snapshot
	redo  []Snapshot
}

// NewHistory returns a History keeping at most limit undo states.
// A zero limit means 1000; a negative limit disables recording.
func NewHistory(limit int) *History {
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	return &History{limit: limit}
}

// Snapshot captures the content and the given cursor position.
func (b *Buffer) Snapshot(pos int) Snapshot {
	return Snapshot{Text: b.String(), Pos: pos}
}

// Restore replaces the content with s and returns its cursor, clamped.
// Nothing changes if the content cannot be stored.
func (b *Buffer) Restore(s Snapshot) int {
	if b.String() != s.Text {
		if !b.ensureExtra(max(0, len(s.Text)-b.count)) {
			return clampInt(s.Pos, 0, b.count)
		}
		b.Replace(s.Text)
	}
	return clampInt(s.Pos, 0, b.count)
}

// Push records the state before a modification and drops the redo stack.
func (h *History) Push(prev Snapshot) {
	if h.limit <= 0 {
		return
	}
	h.undo = appendLimited(h.undo, prev, h.limit)
	h.redo = nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Undo returns the state to go back to, given the current one.
func (h *History) Undo(cur Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.undo) - 1
	prev := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, cur)
	return prev, true
}

// Redo returns the state undone last, given the current one.
func (h *History) Redo(cur Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.redo) - 1
	next := h.redo[i]
	h.redo = h.redo[:i]
	if h.limit > 0 {
		h.undo = appendLimited(h.undo, cur, h.limit)
	}
	return next, true
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

func appendLimited(stack []Snapshot, s Snapshot, limit int) []Snapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}
