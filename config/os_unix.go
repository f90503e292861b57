//go:build !windows

package config

import (
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"
)

// badFileName replaces names which have nothing left after cleaning.
const badFileName = "_bad_file_name_"

// CleanFileName makes single path segment safe to use as output file or
// directory name. Separators and control characters are dropped, leading
// dots are removed so result is never hidden or relative.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if sym == os.PathSeparator || sym == os.PathListSeparator || unicode.IsControl(sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(strings.TrimSpace(out), ".")
	if len(out) == 0 {
		return badFileName
	}
	return out
}

// EnableColorOutput reports if log lines written to stream may be colored.
func EnableColorOutput(stream *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(stream.Fd()))
}
