//go:build tools

package fql

// Pin the formatter's version in go.mod/go.sum without making it part of
// the build.
import (
	_ "mvdan.cc/gofumpt"
)
