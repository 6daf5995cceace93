// Package scrawl carries module-wide identity shared by the editing packages
// and the terminal front-end.
package scrawl

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version returns the release version embedded at build time, without a
// leading "v".
func Version() string {
	return strings.TrimSpace(rawVersion)
}
