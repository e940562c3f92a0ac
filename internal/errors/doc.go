// Package errors provides typed errors with exit codes for claude-builder.
//
// # Error Types
//
// BuilderError is the base error type that wraps an error with an exit code:
//
//	type BuilderError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess          = 0  // Success
//	ExitGeneralError     = 1  // General/unknown errors
//	ExitAnalyzeFailed    = 2  // Project analysis failed
//	ExitTemplateNotFound = 3  // Document template does not exist
//	ExitRenderFailed     = 4  // Document rendering failed
//	ExitWriteFailed      = 5  // Document write failed
//	ExitConfigError      = 6  // Configuration error
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.TemplateNotFound("devops")
//	errors.AnalyzeFailed("/path/to/project", err)
//	errors.RenderFailed("mlops", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
