package media

import "errors"

// ErrorKind classifies pipeline failures. Validation kinds are terminal with
// no side effects; IO and Codec abort the attempt after rollback; Consistency
// means the commit step failed after successful writes.
type ErrorKind int

const (
	KindUnsupportedFormat ErrorKind = iota + 1
	KindTooLarge
	KindTooSmall
	KindCorrupt
	KindUnreadable
	KindCodec
	KindIO
	KindConsistency
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedFormat:
		return "UnsupportedFormat"
	case KindTooLarge:
		return "TooLarge"
	case KindTooSmall:
		return "TooSmall"
	case KindCorrupt:
		return "Corrupt"
	case KindUnreadable:
		return "Unreadable"
	case KindCodec:
		return "CodecError"
	case KindIO:
		return "IOError"
	case KindConsistency:
		return "ConsistencyError"
	}
	return "Unknown"
}

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf extracts the ErrorKind from err, or 0 when err does not wrap a
// media error.
func KindOf(err error) ErrorKind {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind
	}
	return 0
}

// IsValidation reports whether err is a terminal ingest rejection, as
// opposed to an infrastructure failure.
func IsValidation(err error) bool {
	switch KindOf(err) {
	case KindUnsupportedFormat, KindTooLarge, KindTooSmall, KindCorrupt, KindUnreadable:
		return true
	}
	return false
}
