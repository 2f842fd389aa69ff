// Package linebuf is a byte buffer for terminal line editing.
//
// The editing primitives live in package buffer. This package only carries
// the release version embedded at build time.
package linebuf

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embedded string

// Version returns the release version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embedded)
}

// Tag is Version in git tag form.
func Tag() string {
	return "v" + Version()
}

// ValidVersion reports whether v is a SemVer 2.0.0 string. A leading `v`
// is rejected.
func ValidVersion(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
