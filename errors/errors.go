package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // bytes to value
	PhaseEncode   Phase = "encode"   // value to bytes
	PhaseParse    Phase = "parse"    // textual input
	PhaseFormat   Phase = "format"   // textual output
	PhaseValidate Phase = "validate" // layout validation
	PhaseDerive   Phase = "derive"   // layout derivation from type descriptors
	PhaseStore    Phase = "store"    // layout registry
	PhaseLoad     Phase = "load"     // schema and config loading
)

// Kind categorizes the error
type Kind string

const (
	KindTruncatedInput  Kind = "truncated_input"
	KindInvalidEncoding Kind = "invalid_encoding"
	KindTypeMismatch    Kind = "type_mismatch"
	KindFieldMissing    Kind = "field_missing"
	KindMalformedText   Kind = "malformed_text"
	KindFieldUnknown    Kind = "field_unknown"
	KindTrailingBytes   Kind = "trailing_bytes"
	KindOverflow        Kind = "overflow"
	KindInvalidLayout   Kind = "invalid_layout"
	KindUnsupported     Kind = "unsupported"
	KindNotFound        Kind = "not_found"
	KindInvalidInput    Kind = "invalid_input"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	GoType     string
	LayoutKind string
	Detail     string
	Path       []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.LayoutKind != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.LayoutKind != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", layout kind ")
			b.WriteString(e.LayoutKind)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("layout kind ")
			b.WriteString(e.LayoutKind)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.LayoutKind != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// HasKind reports whether any *Error in err's chain has the given kind,
// regardless of phase.
func HasKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}

// KindOf returns the kind of the outermost *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Prefix prepends path segments to err's path when err is an *Error, and
// returns err unchanged otherwise. It is used while unwinding recursive
// descents so the path is only materialized on failure.
func Prefix(err error, segments ...string) error {
	var e *Error
	if !stderrors.As(err, &e) || len(segments) == 0 {
		return err
	}
	path := make([]string, 0, len(segments)+len(e.Path))
	path = append(path, segments...)
	e.Path = append(path, e.Path...)
	return err
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// LayoutKind sets the layout kind name
func (b *Builder) LayoutKind(k string) *Builder {
	b.err.LayoutKind = k
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Truncated creates a truncated input error for a read of need bytes with only have remaining
func Truncated(phase Phase, path []string, need uint64, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncatedInput,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes, %d remaining", need, have),
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, layoutKind string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindTypeMismatch,
		Path:       path,
		GoType:     goType,
		LayoutKind: layoutKind,
	}
}

// InvalidUTF8 creates an invalid encoding error for a string payload
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidEncoding,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not found", fieldName),
	}
}

// FieldUnknown creates an unknown field error
func FieldUnknown(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldUnknown,
		Path:   path,
		Detail: fmt.Sprintf("unknown field %q", fieldName),
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, limit string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Detail: fmt.Sprintf("value %v exceeds %s", value, limit),
		Value:  value,
	}
}

// MalformedText creates a malformed text error wrapping the parser failure
func MalformedText(cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMalformedText,
		Detail: "input is not a valid JSON document",
		Cause:  cause,
	}
}

// InvalidLayout creates an invalid layout error
func InvalidLayout(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidLayout,
		Path:   path,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a schema or config loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}
