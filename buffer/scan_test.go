package buffer

import "testing"

func TestNextUnit_EscapeSequenceIsOneUnit(t *testing.T) {
	s := []byte("\x1b[31mA")

	n, w := NextUnit(s, 0)
	if n != 5 || w != 0 {
		t.Fatalf("NextUnit(0)=(%d,%d), want (5,0)", n, w)
	}
	n, w = NextUnit(s, 5)
	if n != 1 || w != 1 {
		t.Fatalf("NextUnit(5)=(%d,%d), want (1,1)", n, w)
	}

	var stops []int
	for pos := 0; pos >= 0; {
		stops = append(stops, pos)
		n, _ := NextUnit(s, pos)
		if n <= 0 {
			break
		}
		pos += n
	}
	if want := []int{0, 5, 6}; !equalInts(stops, want) {
		t.Fatalf("stops=%v, want %v", stops, want)
	}
}

func TestNextUnit_EscapeGrammar(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		wantN int
	}{
		{name: "csi with params", in: "\x1b[1;32m", wantN: 7},
		{name: "csi no params", in: "\x1b[K", wantN: 3},
		{name: "csi intermediate", in: "\x1b[1 q", wantN: 5},
		{name: "osc", in: "\x1b]0;x", wantN: 5},
		{name: "single char escape", in: "\x1b7", wantN: 2},
		{name: "incomplete csi", in: "\x1b[31", wantN: 1},
		{name: "param after intermediate", in: "\x1b[ 1m", wantN: 1},
		{name: "illegal byte", in: "\x1b[3\x01m", wantN: 1},
		{name: "lone escape", in: "\x1b", wantN: 1},
	}
	for _, tc := range cases {
		n, w := NextUnit([]byte(tc.in), 0)
		if n != tc.wantN || w != 0 {
			t.Fatalf("%s: NextUnit=(%d,%d), want (%d,0)", tc.name, n, w, tc.wantN)
		}
	}
}

func TestNextUnit_UTF8Widths(t *testing.T) {
	cases := []struct {
		in    string
		wantN int
		wantW int
	}{
		{in: "a", wantN: 1, wantW: 1},
		{in: "\t", wantN: 1, wantW: 0},
		{in: "é", wantN: 2, wantW: 1},
		{in: "中", wantN: 3, wantW: 2},
		{in: "😀", wantN: 4, wantW: 2},
		{in: "\x80a", wantN: 1, wantW: 1},
		{in: "\xE4\xB8", wantN: 2, wantW: 1},
		{in: "\xFFa", wantN: 1, wantW: 1},
	}
	for _, tc := range cases {
		n, w := NextUnit([]byte(tc.in), 0)
		if n != tc.wantN || w != tc.wantW {
			t.Fatalf("NextUnit(%q)=(%d,%d), want (%d,%d)", tc.in, n, w, tc.wantN, tc.wantW)
		}
	}
}

func TestUnits_OutOfRangeIsNoUnit(t *testing.T) {
	s := []byte("ab")
	for _, pos := range []int{-1, 2, 3} {
		if n, w := NextUnit(s, pos); n != 0 || w != 0 {
			t.Fatalf("NextUnit(%d)=(%d,%d), want (0,0)", pos, n, w)
		}
	}
	for _, pos := range []int{-1, 0, 3} {
		if n, w := PrevUnit(s, pos); n != 0 || w != 0 {
			t.Fatalf("PrevUnit(%d)=(%d,%d), want (0,0)", pos, n, w)
		}
	}
	if n, _ := NextUnit(nil, 0); n != 0 {
		t.Fatalf("NextUnit(nil)=%d, want 0", n)
	}
}

func TestPrevUnit_DoesNotRecognizeEscapes(t *testing.T) {
	s := []byte("\x1b[31m")
	n, w := PrevUnit(s, len(s))
	if n != 1 || w != 1 {
		t.Fatalf("PrevUnit=(%d,%d), want (1,1)", n, w)
	}
}

func TestUnits_NextPrevRoundTrip(t *testing.T) {
	s := []byte("aé中😀\tz\nn\u0301x")
	for pos := 0; pos < len(s); {
		n, w := NextUnit(s, pos)
		if n <= 0 {
			t.Fatalf("NextUnit(%d) made no progress", pos)
		}
		pn, pw := PrevUnit(s, pos+n)
		if pn != n || pw != w {
			t.Fatalf("at %d: next=(%d,%d) prev=(%d,%d)", pos, n, w, pn, pw)
		}
		pos += n
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
