package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/iw2rmb/linebuf"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-version"}, strings.NewReader(""), &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := out.String(), linebuf.Tag()+"\n"; got != want {
		t.Fatalf("got=%q, want %q", got, want)
	}
}

func TestRun_LayoutWrapsRows(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-layout", "-width", "10", "-prompt", "> ", "-cprompt", ""}
	if err := run(args, strings.NewReader("hello world\nok\n"), &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := out.String(), "> hello w\norld\nok\n"; got != want {
		t.Fatalf("got=%q, want %q", got, want)
	}
}

func TestRun_LayoutConvertsCharset(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-layout", "-charset", "latin1", "-prompt", ""}
	if err := run(args, strings.NewReader("caf\xe9"), &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := out.String(), "café\n"; got != want {
		t.Fatalf("got=%q, want %q", got, want)
	}
}

func TestRun_UnknownCharset(t *testing.T) {
	err := run([]string{"-charset", "ebcdic"}, strings.NewReader(""), io.Discard, io.Discard)
	if !errors.Is(err, errUnknownCharset) {
		t.Fatalf("got=%v, want %v", err, errUnknownCharset)
	}
}

func TestLookupCharset(t *testing.T) {
	for _, tc := range []struct {
		name string
		want *charmap.Charmap
	}{
		{"", nil},
		{"UTF-8", nil},
		{"latin1", charmap.ISO8859_1},
		{"Latin9", charmap.ISO8859_15},
		{"cp1252", charmap.Windows1252},
		{"KOI8-R", charmap.KOI8R},
		{"cp437", charmap.CodePage437},
	} {
		got, err := lookupCharset(tc.name)
		if err != nil {
			t.Fatalf("lookupCharset(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("lookupCharset(%q): got=%v, want %v", tc.name, got, tc.want)
		}
	}
}
