// Package errors provides structured error types for the layout codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go type and layout kind names,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
//		Path("person", "age").
//		GoType("string").
//		LayoutKind("u8").
//		Detail("cannot convert string to integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseEncode, path, "string", "u8")
//	err := errors.Truncated(errors.PhaseDecode, path, 8, 3)
//
// Decode and encode failures always carry one of the codec kinds:
// KindTruncatedInput, KindInvalidEncoding, KindTypeMismatch, KindFieldMissing
// or KindMalformedText. Use HasKind to test for a kind regardless of phase.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
