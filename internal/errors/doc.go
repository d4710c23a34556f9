// Package errors provides the structured error type used across the compendium.
//
// Every layer returns *Error values carrying a Code, a user-facing Message,
// an optional Cause and free-form Meta:
//
//	err := errors.NotFoundf("monster %s not found", name)
//	err := errors.Wrap(err, "failed to load monster")
//
// Rule violations raised while constructing domain values additionally carry
// a Kind in their metadata, together with the offending field:
//
//	errors.FormatErrorf("notation", "invalid dice notation %q", text)
//	errors.RangeErrorf("Str", "Str must be between 1 and 30")
//	errors.StructuralErrorf("speed", "Speed must be a non-negative multiple of 5")
//
// Check them with IsFormatError, IsRangeError and IsStructuralError, or read
// GetKind and GetField.
//
// Dependency configs collect problems with the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
//
// Handlers convert errors with ToGRPCError; metadata travels as a
// google.rpc.ErrorInfo detail and FromGRPCError restores it on the client.
package errors
