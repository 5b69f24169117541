package dotazure

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies an Error. Callers decide how to recover by kind,
// never by message.
type ErrorKind int

const (
	// KindIo is any filesystem failure not otherwise classified.
	KindIo ErrorKind = iota
	// KindNotFound means a project, config file, or environment file is absent.
	KindNotFound
	// KindInvalidData means a file was read but its contents were unusable.
	KindInvalidData
)

func (k ErrorKind) String() string {
	switch k {
	case KindIo:
		return "io"
	case KindNotFound:
		return "not found"
	case KindInvalidData:
		return "invalid data"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every operation in this package.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Message == "" && e.Err == nil:
		return e.Kind.String()
	case e.Message == "":
		return e.Err.Error()
	case e.Err == nil:
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, &Error{Kind: KindNotFound}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind ErrorKind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind ErrorKind, err error, message string) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// ioError wraps a filesystem error, classifying a missing file as KindNotFound.
func ioError(err error, message string) error {
	kind := KindIo
	if errors.Is(err, fs.ErrNotExist) {
		kind = KindNotFound
	}
	return wrapError(kind, err, message)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func hasKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// IsNotFound reports whether err is a KindNotFound error.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsInvalidData reports whether err is a KindInvalidData error.
func IsInvalidData(err error) bool { return hasKind(err, KindInvalidData) }

// IsIo reports whether err is a KindIo error.
func IsIo(err error) bool { return hasKind(err, KindIo) }
