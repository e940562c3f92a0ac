// Package logging provides logging for claude-builder.
//
// Two kinds of output are supported:
//
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for the CLI user
//
// Debug logs are written using slog and controlled by verbosity settings:
// Setup(verbose, jsonOutput, w) installs the handler, and Debug messages
// are suppressed unless verbose mode is enabled. JSON output is available
// for machine consumption.
//
// User output (UserInfo, UserSuccess, UserWarning, UserError) writes
// directly to stdout/stderr with emoji prefixes and is independent of the
// structured logger.
package logging
