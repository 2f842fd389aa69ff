package buffer

import "testing"

func TestStringWidth_IgnoresEscapes(t *testing.T) {
	if got := StringWidth("\x1b[31m中a\x1b[0m"); got != 3 {
		t.Fatalf("width=%d, want 3", got)
	}
	if got := StringWidth(""); got != 0 {
		t.Fatalf("width of empty=%d, want 0", got)
	}
}

func TestSkipUntilFit(t *testing.T) {
	if got := SkipUntilFit("abcdef", 3); got != "def" {
		t.Fatalf("got %q, want %q", got, "def")
	}
	if got := SkipUntilFit("中文字", 4); got != "文字" {
		t.Fatalf("got %q, want %q", got, "文字")
	}
	if got := SkipUntilFit("ab", 5); got != "ab" {
		t.Fatalf("got %q, want %q", got, "ab")
	}
	if got := SkipUntilFit("ab", 0); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestPrevNextChar(t *testing.T) {
	s := "aé"
	if got := PrevChar(s, 3); got != 1 {
		t.Fatalf("PrevChar(3)=%d, want 1", got)
	}
	if got := NextChar(s, 1); got != 3 {
		t.Fatalf("NextChar(1)=%d, want 3", got)
	}
	if got := NextChar(s, 3); got != -1 {
		t.Fatalf("NextChar(end)=%d, want -1", got)
	}
	if got := PrevChar(s, 0); got != -1 {
		t.Fatalf("PrevChar(0)=%d, want -1", got)
	}
	if got := PrevChar(s, 9); got != -1 {
		t.Fatalf("PrevChar(9)=%d, want -1", got)
	}
}
