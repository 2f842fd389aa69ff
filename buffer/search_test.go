package buffer

import "testing"

func TestFindWord_UnderscoreJoinsWords(t *testing.T) {
	s := []byte("foo  bar_baz")

	if got := FindWordStart(s, 12); got != 5 {
		t.Fatalf("FindWordStart(12)=%d, want 5", got)
	}
	if got := FindWordEnd(s, 0); got != 3 {
		t.Fatalf("FindWordEnd(0)=%d, want 3", got)
	}
	// Leading non-word units are skipped before searching.
	if got := FindWordStart(s, 5); got != 0 {
		t.Fatalf("FindWordStart(5)=%d, want 0", got)
	}
	if got := FindWordEnd(s, 3); got != 12 {
		t.Fatalf("FindWordEnd(3)=%d, want 12", got)
	}
}

func TestFindWord_MultibyteIsWordChar(t *testing.T) {
	s := []byte("über alles")
	if got := FindWordEnd(s, 0); got != 5 {
		t.Fatalf("FindWordEnd=%d, want 5", got)
	}
	if got := FindWordStart(s, 5); got != 0 {
		t.Fatalf("FindWordStart=%d, want 0", got)
	}
}

func TestFindWSWord_OnlyWhitespaceDelimits(t *testing.T) {
	s := []byte("a.b c")

	if got := FindWordStart(s, 3); got != 2 {
		t.Fatalf("FindWordStart(3)=%d, want 2", got)
	}
	if got := FindWSWordStart(s, 3); got != 0 {
		t.Fatalf("FindWSWordStart(3)=%d, want 0", got)
	}
	if got := FindWordEnd(s, 0); got != 1 {
		t.Fatalf("FindWordEnd(0)=%d, want 1", got)
	}
	if got := FindWSWordEnd(s, 0); got != 3 {
		t.Fatalf("FindWSWordEnd(0)=%d, want 3", got)
	}
	if got := FindWSWordEnd(s, 3); got != 5 {
		t.Fatalf("FindWSWordEnd(3)=%d, want 5", got)
	}
}

func TestFindLine_StartAndEnd(t *testing.T) {
	s := []byte("ab\ncd\nef")

	cases := []struct {
		pos       int
		wantStart int
		wantEnd   int
	}{
		{pos: 0, wantStart: 0, wantEnd: 2},
		{pos: 2, wantStart: 0, wantEnd: 2},
		{pos: 3, wantStart: 3, wantEnd: 5},
		{pos: 4, wantStart: 3, wantEnd: 5},
		{pos: 6, wantStart: 6, wantEnd: 8},
		{pos: 8, wantStart: 6, wantEnd: 8},
		{pos: 99, wantStart: 6, wantEnd: 8},
		{pos: -4, wantStart: 0, wantEnd: 2},
	}
	for _, tc := range cases {
		if got := FindLineStart(s, tc.pos); got != tc.wantStart {
			t.Fatalf("FindLineStart(%d)=%d, want %d", tc.pos, got, tc.wantStart)
		}
		if got := FindLineEnd(s, tc.pos); got != tc.wantEnd {
			t.Fatalf("FindLineEnd(%d)=%d, want %d", tc.pos, got, tc.wantEnd)
		}
	}
}

func TestFind_NotFoundSentinel(t *testing.T) {
	s := []byte("abc")
	isDigit := func(u []byte) bool { return len(u) == 1 && u[0] >= '0' && u[0] <= '9' }

	if got := FindBackward(s, 3, isDigit, false); got != -1 {
		t.Fatalf("FindBackward=%d, want -1", got)
	}
	if got := FindForward(s, 0, isDigit, false); got != -1 {
		t.Fatalf("FindForward=%d, want -1", got)
	}
	if got := FindForward(nil, 0, isDigit, true); got != -1 {
		t.Fatalf("FindForward(nil)=%d, want -1", got)
	}
}

func TestFind_EscapeOnlyAtomicForward(t *testing.T) {
	s := []byte("a \x1b[1mbold")
	// Forward, the escape is one multibyte unit and so part of the word.
	if got := FindWordEnd(s, 1); got != len(s) {
		t.Fatalf("FindWordEnd=%d, want %d", got, len(s))
	}
	// Backward, its bytes are seen one by one and '[' ends the word.
	if got := FindWordStart(s, len(s)); got != 4 {
		t.Fatalf("FindWordStart=%d, want 4", got)
	}
}
