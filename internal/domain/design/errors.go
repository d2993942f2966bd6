package design

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known error categories raised by the design store.
type ErrorCode string

const (
	ErrCodeUnknownPartType ErrorCode = "UNKNOWN_PART_TYPE"
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeDuplicate       ErrorCode = "DUPLICATE_ID"
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeState           ErrorCode = "INVALID_STATE"
)

// DomainError represents a typed error enriched with contextual data.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches another DomainError with the same code. Messages are ignored so
// callers can compare against the exported sentinels.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrUnknownPartType = &DomainError{Code: ErrCodeUnknownPartType, Message: "unknown part type"}
	ErrNotFound        = &DomainError{Code: ErrCodeNotFound, Message: "not found"}
	ErrDuplicate       = &DomainError{Code: ErrCodeDuplicate, Message: "duplicate identifier"}
)

// CodeOf extracts the error code from err, or "" when err is not a DomainError.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

func newDomainError(code ErrorCode, message string, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

func newUnknownPartTypeError(partType string) *DomainError {
	return newDomainError(ErrCodeUnknownPartType, fmt.Sprintf("part type %q is not in the catalog", partType), map[string]interface{}{
		"type": partType,
	})
}

func newAreaNotFoundError(area string) *DomainError {
	return newDomainError(ErrCodeNotFound, fmt.Sprintf("area %q does not exist in the current layout", area), map[string]interface{}{
		"area_id": area,
	})
}

func newDuplicatePartError(id string) *DomainError {
	return newDomainError(ErrCodeDuplicate, fmt.Sprintf("part %q already exists", id), map[string]interface{}{
		"part_id": id,
	})
}
