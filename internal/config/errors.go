package config

import (
	"errors"
	"fmt"
)

// ErrMissingField is wrapped by a ReadError when the placement file lacks a field
var ErrMissingField = errors.New("missing field")

// Read/write operations reported in errors
const (
	OpOpen   = "open"
	OpDecode = "decode"
	OpField  = "field"
	OpMkdir  = "mkdir"
	OpEncode = "encode"
	OpWrite  = "write"
)

// ReadError describes why the placement file could not be used. It is
// recovered by substituting defaults and never reaches the user.
type ReadError struct {
	Path string
	Op   string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("placement read %s (%s): %v", e.Path, e.Op, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError describes a failed placement save. The in-memory placement stays
// authoritative for the session.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("placement write %s (%s): %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
