package main

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var errUnknownCharset = errors.New("unknown charset")

var charsets = map[string]*charmap.Charmap{
	"latin1": charmap.ISO8859_1,
	"latin9": charmap.ISO8859_15,
	"cp1252": charmap.Windows1252,
	"koi8r":  charmap.KOI8R,
	"cp437":  charmap.CodePage437,
}

// lookupCharset maps a -charset value to a single-byte charmap. UTF-8 (or
// no value) yields nil.
func lookupCharset(name string) (*charmap.Charmap, error) {
	n := strings.ToLower(strings.ReplaceAll(name, "-", ""))
	switch n {
	case "", "utf8":
		return nil, nil
	}
	if cs, ok := charsets[n]; ok {
		return cs, nil
	}
	return nil, fmt.Errorf("%w %q", errUnknownCharset, name)
}
