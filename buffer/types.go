package buffer

// Layout describes the terminal the content is wrapped into.
type Layout struct {
	// TermWidth is the terminal width in columns; 0 never wraps.
	TermWidth int
	// PromptWidth is the width of the prompt on the first row.
	PromptWidth int
	// ContPromptWidth is the width of the prompt on continuation rows.
	ContPromptWidth int
}

// Row is one terminal row of laid-out content: the bytes
// [Start, Start+Len). A row ended by a newline does not include it.
type Row struct {
	Index   int
	Start   int
	Len     int
	Wrapped bool // ended by a soft wrap
}

// RowFunc is called once per row. Returning true stops further calls.
type RowFunc func(r Row) (stop bool)

// RowCol is the location of a position in laid-out content.
// Col is in columns and excludes the prompt.
type RowCol struct {
	Row      int
	Col      int
	RowStart int
	RowLen   int

	FirstOnRow bool
	LastOnRow  bool
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
