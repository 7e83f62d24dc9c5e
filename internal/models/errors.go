package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode means the persisted blob could not be read back as a category list.
	ErrDecode = errors.New("decode categories")
	// ErrParse means the target amount is not a non-negative integer.
	ErrParse = errors.New("parse target amount")
	// ErrEncode means the category list could not be serialized.
	ErrEncode = errors.New("encode categories")
	// ErrWrite means the persisted slot rejected the encoded list.
	ErrWrite = errors.New("write categories")
)

// ParseError reports the target text that failed to parse.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("target amount %q %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
