package errors

import "errors"

func asError(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// Is reports whether err matches target; two *Error values match on code
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the code from err. A plain context error is CANCELED or
// DEADLINE_EXCEEDED; anything else that is not an *Error is INTERNAL.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := asError(err); ok {
		return e.Code
	}
	if code, ok := codeFromContext(err); ok {
		return code
	}
	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	if e, ok := asError(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsNotFound checks for NOT_FOUND
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsInvalidArgument checks for INVALID_ARGUMENT
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }

// IsAlreadyExists checks for ALREADY_EXISTS
func IsAlreadyExists(err error) bool { return HasCode(err, CodeAlreadyExists) }

// IsPermissionDenied checks for PERMISSION_DENIED
func IsPermissionDenied(err error) bool { return HasCode(err, CodePermissionDenied) }

// IsUnauthenticated checks for UNAUTHENTICATED
func IsUnauthenticated(err error) bool { return HasCode(err, CodeUnauthenticated) }

// IsInternal checks for INTERNAL
func IsInternal(err error) bool { return HasCode(err, CodeInternal) }

// IsOutOfRange checks for OUT_OF_RANGE
func IsOutOfRange(err error) bool { return HasCode(err, CodeOutOfRange) }
