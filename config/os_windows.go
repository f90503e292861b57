//go:build windows

package config

import (
	"os"
	"strings"
	"unicode"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

const badFileName = "_bad_file_name_"

// CleanFileName makes single path segment safe to use as output file or
// directory name. Windows does not accept trailing dots and spaces either.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(`<>":/\|?*`, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimRight(strings.TrimLeft(strings.TrimSpace(out), "."), ". ")
	if len(out) == 0 {
		return badFileName
	}
	return out
}

// EnableColorOutput reports if log lines written to stream may be colored
// and turns on VT100 sequence processing for the console.
func EnableColorOutput(stream *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	// VT processing is only available starting with Windows 10
	if v, _, err := k.GetIntegerValue("CurrentMajorVersionNumber"); err != nil || v < 10 {
		return false
	}

	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	h := windows.Handle(stream.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
