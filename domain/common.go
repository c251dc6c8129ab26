package domain

import (
	"errors"
	"sort"
	"strings"
)

const (
	RoleUser = "user"

	DefaultPageSize = 6
	MaxPageSize     = 100
	MaxPage         = 1 << 20
)

var (
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"
)

// Error kinds. Every error returned by a service wraps exactly one of these,
// the HTTP layer picks the status code from the kind.
var (
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("already exists")
	ErrNotLinked        = errors.New("relation does not exist")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("you do not have permission to perform this action")
	ErrUnauthenticated  = errors.New("authentication credentials were not provided")
)

var (
	ErrTokenNotFound = NewError(ErrUnauthenticated, "failed to token not found")
	ErrTokenInvalid  = NewError(ErrUnauthenticated, "token is invalid")
	ErrTokenExpired  = NewError(ErrUnauthenticated, "token is expired")
	ErrTokenRevoked  = NewError(ErrUnauthenticated, "token has been revoked")
	ErrParseID       = NewError(ErrValidation, "failed to parse id")
)

type Error struct {
	kind error
	msg  string
}

func NewError(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// FieldErrors maps a request field to the messages describing why it was rejected.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(f[field], ", "))
	}
	return strings.Join(parts, "; ")
}

func (f FieldErrors) Unwrap() error { return ErrValidation }

// OrNil lets callers build up errors and return them in one line.
func (f FieldErrors) OrNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
