package sas7bdat

import "fmt"

// Kind identifies the category of a sas7bdat error, letting callers switch
// on a stable, closed set rather than parsing error strings.
type Kind int

const (
	// KindBadArgument marks a construction-time field that exceeds its
	// byte budget, contains a disallowed character, or is out of range.
	KindBadArgument Kind = iota
	// KindBadSchema marks a schema whose variable list is empty, too
	// long, or contains duplicates after normalisation.
	KindBadSchema
	// KindType marks a row value whose runtime type does not match its
	// variable's kind.
	KindType
	// KindTruncation marks a character value whose UTF-8 byte length
	// exceeds its variable's length.
	KindTruncation
	// KindArity marks a row whose value count differs from the schema's
	// variable count.
	KindArity
	// KindTooManyRows marks a WriteRow call past the declared row total.
	KindTooManyRows
	// KindExporterClosed marks a WriteRow call made after Close.
	KindExporterClosed
	// KindSequenceExhausted marks a request for more than 0x7FFF pages.
	KindSequenceExhausted
	// KindIO marks an underlying stream failure.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindBadArgument:
		return "BadArgument"
	case KindBadSchema:
		return "BadSchema"
	case KindType:
		return "Type"
	case KindTruncation:
		return "Truncation"
	case KindArity:
		return "Arity"
	case KindTooManyRows:
		return "TooManyRows"
	case KindExporterClosed:
		return "ExporterClosed"
	case KindSequenceExhausted:
		return "SequenceExhausted"
	case KindIO:
		return "Io"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by this package. It carries a
// Kind a caller can match with errors.Is against the package-level sentinels
// below, plus a human-readable message and an optional wrapped cause.
type Error struct {
	Kind  Kind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("sas7bdat: %s: %s: %v", e.Kind, e.Msg, e.cause)
	}
	return fmt.Sprintf("sas7bdat: %s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the package-level sentinel for the error's Kind, so
// errors.Is(err, sas7bdat.ErrTruncation) works regardless of message text.
func (e *Error) Unwrap() error {
	return sentinelFor(e.Kind)
}

// Is reports whether e's Kind sentinel matches target, so errors.Is can
// compare two *Error values carrying the same Kind but different messages.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return sentinelFor(e.Kind) == target
}

func newErr(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapErr(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), cause: cause}
}

// Sentinel errors for the closed set of error kinds spec.md §7 defines.
// Compare with errors.Is, e.g. errors.Is(err, sas7bdat.ErrTruncation).
var (
	ErrBadArgument       = sentinel(KindBadArgument)
	ErrBadSchema         = sentinel(KindBadSchema)
	ErrType              = sentinel(KindType)
	ErrTruncation        = sentinel(KindTruncation)
	ErrArity             = sentinel(KindArity)
	ErrTooManyRows       = sentinel(KindTooManyRows)
	ErrExporterClosed    = sentinel(KindExporterClosed)
	ErrSequenceExhausted = sentinel(KindSequenceExhausted)
	ErrIO                = sentinel(KindIO)
)

type kindSentinel struct{ kind Kind }

func (s *kindSentinel) Error() string { return "sas7bdat: " + s.kind.String() }

func sentinel(k Kind) error { return &kindSentinel{kind: k} }

func sentinelFor(k Kind) error {
	switch k {
	case KindBadArgument:
		return ErrBadArgument
	case KindBadSchema:
		return ErrBadSchema
	case KindType:
		return ErrType
	case KindTruncation:
		return ErrTruncation
	case KindArity:
		return ErrArity
	case KindTooManyRows:
		return ErrTooManyRows
	case KindExporterClosed:
		return ErrExporterClosed
	case KindSequenceExhausted:
		return ErrSequenceExhausted
	case KindIO:
		return ErrIO
	default:
		return ErrIO
	}
}
