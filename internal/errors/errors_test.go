package errors

import (
	"fmt"
	"testing"
)

func TestBuilderError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *BuilderError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestBuilderError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause
	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestBuilderError_ExitCode(t *testing.T) {
	tests := []struct {
		code int
		name string
	}{
		{ExitSuccess, "success"},
		{ExitGeneralError, "general"},
		{ExitAnalyzeFailed, "analyze failed"},
		{ExitTemplateNotFound, "template not found"},
		{ExitRenderFailed, "render failed"},
		{ExitWriteFailed, "write failed"},
		{ExitConfigError, "config error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "test")
			if got := err.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestTemplateNotFound(t *testing.T) {
	err := TemplateNotFound("devops")

	if err.Code != ExitTemplateNotFound {
		t.Errorf("Code = %d, want %d", err.Code, ExitTemplateNotFound)
	}

	if err.Message != "template not found: devops" {
		t.Errorf("Message = %q, want %q", err.Message, "template not found: devops")
	}
}

func TestRenderFailed(t *testing.T) {
	cause := fmt.Errorf("undefined field")
	err := RenderFailed("mlops", cause)

	if err.Code != ExitRenderFailed {
		t.Errorf("Code = %d, want %d", err.Code, ExitRenderFailed)
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"builder error", TemplateNotFound("devops"), ExitTemplateNotFound},
		{"wrapped builder error", fmt.Errorf("outer: %w", ConfigError("bad config", nil)), ExitConfigError},
		{"plain error", fmt.Errorf("plain"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
