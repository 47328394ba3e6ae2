package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("product not found")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Op names the context of a failed backend call
type Op string

const (
	OpLoad   Op = "load"
	OpSave   Op = "save"
	OpDelete Op = "delete"
	OpLogin  Op = "login"
)

const loginFallback = "Login failed. Please check your credentials."

// OpError is returned by every data-access call that fails, whether at the
// transport or with a non-2xx status. Status is 0 for transport errors.
type OpError struct {
	Op      Op
	Status  int
	Message string // backend-provided text, if any
	Err     error
}

func (e *OpError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s failed (status %d): %s", e.Op, e.Status, msg)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, msg)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown to the user for this failure.
func (e *OpError) UserMessage() string {
	switch e.Op {
	case OpLoad:
		return "Failed to load products."
	case OpSave:
		return "Failed to save product"
	case OpDelete:
		return "Failed to delete product"
	case OpLogin:
		if e.Message != "" {
			return e.Message
		}
		return loginFallback
	}
	return "Something went wrong"
}

// UserMessage extracts the presentable text from any error, falling back to
// a generic message for errors that are not an *OpError.
func UserMessage(err error) string {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.UserMessage()
	}
	return "Something went wrong"
}
