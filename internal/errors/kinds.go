package errors

import "fmt"

// Kind classifies rule violations raised while constructing domain values.
type Kind string

const (
	// KindFormat marks malformed textual input such as bad dice notation.
	KindFormat Kind = "format"
	// KindRange marks a numeric value outside its allowed domain.
	KindRange Kind = "range"
	// KindStructural marks an aggregate-level invariant violation.
	KindStructural Kind = "structural"
)

const (
	metaKind  = "kind"
	metaField = "field"
)

// FormatErrorf creates an invalid argument error of kind format for field
func FormatErrorf(field, format string, args ...any) *Error {
	return newKind(CodeInvalidArgument, KindFormat, field, fmt.Sprintf(format, args...))
}

// RangeErrorf creates an out of range error of kind range for field
func RangeErrorf(field, format string, args ...any) *Error {
	return newKind(CodeOutOfRange, KindRange, field, fmt.Sprintf(format, args...))
}

// StructuralErrorf creates an invalid argument error of kind structural for field
func StructuralErrorf(field, format string, args ...any) *Error {
	return newKind(CodeInvalidArgument, KindStructural, field, fmt.Sprintf(format, args...))
}

func newKind(code Code, kind Kind, field, message string) *Error {
	err := New(code, message).WithMeta(metaKind, string(kind))
	if field != "" {
		err.WithMeta(metaField, field)
	}
	return err
}

// GetKind returns the rule violation kind carried by err, or "" when none
func GetKind(err error) Kind {
	meta := GetMeta(err)
	if meta == nil {
		return ""
	}
	kind, _ := meta[metaKind].(string)
	return Kind(kind)
}

// GetField returns the field name a rule violation refers to, or ""
func GetField(err error) string {
	meta := GetMeta(err)
	if meta == nil {
		return ""
	}
	field, _ := meta[metaField].(string)
	return field
}

// IsFormatError checks if an error is a format violation
func IsFormatError(err error) bool {
	return GetKind(err) == KindFormat
}

// IsRangeError checks if an error is a range violation
func IsRangeError(err error) bool {
	return GetKind(err) == KindRange
}

// IsStructuralError checks if an error is a structural violation
func IsStructuralError(err error) bool {
	return GetKind(err) == KindStructural
}
