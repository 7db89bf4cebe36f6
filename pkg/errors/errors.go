// Package errors provides the unified error type and factory functions for the
// go-selfies codec.  Every layer (grammar, graph, decoder, encoder, interfaces)
// uses AppError as the single carrier for structured error information, so the
// CLI and HTTP surfaces can render failures consistently and tests can assert
// on typed codes instead of message strings.
package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// stackDepth is the maximum number of frames captured per error.
const stackDepth = 32

// captureStack returns a formatted call-stack string starting two frames above
// the caller (skipping captureStack itself and New/Wrap).
func captureStack(skip int) string {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		f, more := frames.Next()
		// Trim standard-library noise to keep traces readable.
		if !strings.Contains(f.File, "runtime/") {
			fmt.Fprintf(&sb, "\n\t%s:%d %s", f.File, f.Line, f.Function)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// AppError — the canonical codec error type
// ─────────────────────────────────────────────────────────────────────────────

// AppError is the single structured error type used throughout go-selfies.
// It satisfies the standard error interface and supports Go 1.13+ error
// wrapping so that errors.Is / errors.As / errors.Unwrap work transparently.
//
// Usage:
//
//	return errors.New(errors.ErrCodeSMILESUnknownElement, "unknown element").
//	           WithDetail("smiles=" + smiles)
//	return errors.Wrap(parseErr, errors.ErrCodeSMILESParseFailed, "encode failed")
type AppError struct {
	// Code is the typed error code that uniquely identifies the failure category.
	Code ErrorCode

	// Message is the primary human-readable description of the error.
	Message string

	// Detail carries supplementary context (the offending SMILES or SELFIES
	// symbol, table keys, etc.) that aids debugging.
	Detail string

	// Cause is the underlying error that triggered this AppError, enabling
	// errors.Is / errors.As traversal of the full error chain.
	Cause error

	// Stack contains the formatted call-stack captured at the point of error
	// creation.  Stack is intentionally not included in Error() output; callers
	// that need it can inspect the field directly.
	Stack string
}

// Error implements the standard error interface.
// Format: "[<code_name>] <message>: <detail>"
// The detail segment is omitted when Detail is empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code.String(), e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap returns the underlying cause error, enabling errors.Is and errors.As
// to traverse the full error chain.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set to the
// supplied string.  It is safe to call on a nil pointer (returns nil).
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithCause returns a shallow copy of the receiver with Cause set to err.
func (e *AppError) WithCause(err error) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Cause = err
	return &clone
}

// ─────────────────────────────────────────────────────────────────────────────
// Primary factory functions
// ─────────────────────────────────────────────────────────────────────────────

// New constructs a fresh AppError with the given code and message.
// A call-stack snapshot is captured automatically.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Stack:   captureStack(1),
	}
}

// Wrap constructs an AppError that wraps an existing error.
// If err is nil, Wrap returns nil so it can be used inline.
//
// When err is already an *AppError and code is CodeUnknown the original code
// is preserved, preventing loss of the original classification during
// cross-layer propagation.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	// Preserve original code when the caller is just adding context.
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
		Stack:   captureStack(1),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Error-chain inspection helpers
// ─────────────────────────────────────────────────────────────────────────────

// IsCode reports whether any error in err's chain is an *AppError with the
// given code.
//
//	if errors.IsCode(err, errors.ErrCodeKekulizationFailed) { ... }
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsEncoderError reports whether any error in err's chain belongs to the
// SMILES/encoder module (SMI_* codes).
func IsEncoderError(err error) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ModuleForCode(ae.Code) == "SMI" {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsDecoderError reports whether any error in err's chain belongs to the
// SELFIES/decoder module (SFS_* codes).
func IsDecoderError(err error) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ModuleForCode(ae.Code) == "SFS" {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the ErrorCode from the first *AppError found in err's chain.
// If no *AppError is present, CodeUnknown is returned.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// ─────────────────────────────────────────────────────────────────────────────
// Convenience factory functions
// ─────────────────────────────────────────────────────────────────────────────

// InvalidParam constructs a CodeInvalidParam AppError.
func InvalidParam(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidParam,
		Message: message,
		Stack:   captureStack(1),
	}
}

// Internal constructs a CodeInternal AppError.  Use this for unexpected
// failures where no more specific code applies.
func Internal(message string) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Stack:   captureStack(1),
	}
}

// EncoderErr constructs an encoder-side AppError with the given code; the
// offending SMILES is recorded in Detail.
func EncoderErr(code ErrorCode, message, smiles string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Detail:  "smiles=" + smiles,
		Stack:   captureStack(1),
	}
}

// DecoderErr constructs a decoder-side AppError with the given code; the
// offending symbol and the full SELFIES input are recorded in Detail.
func DecoderErr(code ErrorCode, message, symbol, selfies string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Detail:  fmt.Sprintf("symbol=%s selfies=%s", symbol, selfies),
		Stack:   captureStack(1),
	}
}

//Personal.AI order the ending
