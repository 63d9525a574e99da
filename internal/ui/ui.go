// Package ui writes user-facing progress and diagnostics to stderr.
//
// Structured, leveled logging lives in internal/log; this package is only
// for the short lines a person running a deployment reads.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Prefix tags every progress line.
const Prefix = "[execrole]"

var writer io.Writer = os.Stderr

// SetWriter overrides the output writer (for testing). nil restores stderr.
func SetWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	writer = w
}

var color = detectColor(os.Stderr)

func detectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColorEnabled overrides color detection (for testing).
func SetColorEnabled(enabled bool) {
	color = enabled
}

// ColorEnabled reports whether color output is enabled.
func ColorEnabled() bool {
	return color
}

func ansi(code, s string) string {
	if !color {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Bold returns s wrapped in bold ANSI codes.
func Bold(s string) string { return ansi("1", s) }

// Green returns s wrapped in green ANSI codes.
func Green(s string) string { return ansi("32", s) }

// Red returns s wrapped in red ANSI codes.
func Red(s string) string { return ansi("31", s) }

// Yellow returns s wrapped in yellow ANSI codes.
func Yellow(s string) string { return ansi("33", s) }

// Cyan returns s wrapped in cyan ANSI codes.
func Cyan(s string) string { return ansi("36", s) }

// Progressf prints a formatted progress line tagged with Prefix.
func Progressf(format string, args ...any) {
	fmt.Fprintf(writer, "%s %s\n", Cyan(Prefix), fmt.Sprintf(format, args...))
}

// Warnf prints a formatted user-facing warning.
func Warnf(format string, args ...any) {
	fmt.Fprintf(writer, "%s %s\n", Yellow("Warning:"), fmt.Sprintf(format, args...))
}

// Errorf prints a formatted user-facing error.
func Errorf(format string, args ...any) {
	fmt.Fprintf(writer, "%s %s\n", Red("Error:"), fmt.Sprintf(format, args...))
}

// Infof prints a formatted message with no prefix.
func Infof(format string, args ...any) {
	fmt.Fprintf(writer, format+"\n", args...)
}
