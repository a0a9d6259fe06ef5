package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the transport layer can map it to a response
// without inspecting messages.
type Kind int

const (
	// KindInternal covers store failures and unexpected conditions. Details
	// are logged but not exposed to callers.
	KindInternal Kind = iota
	// KindInvalid marks missing or malformed client input.
	KindInvalid
	// KindNotFound marks a referenced entity that does not exist.
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Invalidf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Internalf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause while keeping the kind and public message.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func kindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindInternal, false
}

func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

func IsInvalid(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindInvalid
}

// PublicMessage returns the message safe to show a caller. Internal errors
// collapse to a generic message so store details never leak.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "internal server error"
}
