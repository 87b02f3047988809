package server

import (
	"errors"
	"fmt"
)

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

// kode error yang dipetakan handler ke status HTTP
var (
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound plan / cache yang diminta tidak ada
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	// ErrBadParamInput request tidak valid, termasuk query plan yang tidak punya path
	ErrBadParamInput = errors.New("invalid request parameter")
)

var MessageInternalServerError string = "internal server error"
