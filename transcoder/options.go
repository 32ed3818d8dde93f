package transcoder

import "github.com/wippyai/layout-codec/transcoder/internal/abi"

// Default limits applied by New unless overridden.
const (
	DefaultMaxListLength = abi.MaxListLength
	DefaultMaxStringSize = abi.MaxStringSize
)

// Option configures a Codec.
type Option func(*options)

type options struct {
	compiler              *Compiler
	prefix                string
	indent                string
	maxListLength         uint64
	maxStringSize         uint64
	disallowUnknownFields bool
	disallowTrailingBytes bool
}

func defaultOptions() options {
	return options{
		maxListLength: DefaultMaxListLength,
		maxStringSize: DefaultMaxStringSize,
	}
}

// WithMaxListLength bounds the element count of every array, in both
// directions. Longer arrays fail with overflow.
func WithMaxListLength(n uint64) Option {
	return func(o *options) { o.maxListLength = n }
}

// WithMaxStringSize bounds the byte length of every string, in both
// directions. Longer strings fail with overflow.
func WithMaxStringSize(n uint64) Option {
	return func(o *options) { o.maxStringSize = n }
}

// WithDisallowUnknownFields makes Encode reject struct values carrying keys
// the layout does not declare.
func WithDisallowUnknownFields() Option {
	return func(o *options) { o.disallowUnknownFields = true }
}

// WithDisallowTrailingBytes makes Decode reject input with bytes left over
// after the value.
func WithDisallowTrailingBytes() Option {
	return func(o *options) { o.disallowTrailingBytes = true }
}

// WithIndent makes Format and Serialize emit indented JSON, as json.Indent
// does with the same arguments.
func WithIndent(prefix, indent string) Option {
	return func(o *options) {
		o.prefix = prefix
		o.indent = indent
	}
}

// WithCompiler makes New take the compiled layout from c, compiling and
// caching it there on first use.
func WithCompiler(c *Compiler) Option {
	return func(o *options) { o.compiler = c }
}
