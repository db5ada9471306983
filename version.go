package jot

import _ "embed"

// Version is the release of jot, kept in the VERSION file.
//
//go:embed VERSION
var Version string
