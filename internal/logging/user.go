package logging

import (
	"fmt"
	"os"
)

// User-facing output for the claude-builder CLI. These print directly
// to stdout/stderr with an emoji prefix and are independent of the
// structured slog output configured by Setup.

// UserInfo prints an informational message to stdout.
func UserInfo(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message to stdout, used after a
// document is generated.
func UserSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning to stderr.
func UserWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

// UserError prints an error to stderr, used for per-document failures.
func UserError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}
