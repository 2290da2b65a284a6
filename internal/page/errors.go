package page

import "errors"

// ErrTimeout is wrapped by Tab implementations when a bounded wait expires
var ErrTimeout = errors.New("timeout")

// Page object errors
var (
	ErrNavigationTimeout      = errors.New("navigation did not complete in time")
	ErrElementNotInteractable = errors.New("element is not interactable")
	ErrElementNotFound        = errors.New("element not found")
	ErrParse                  = errors.New("no number found in text")
	ErrUnknownColumn          = errors.New("unknown column")
	ErrUnknownStatus          = errors.New("unknown status")
	ErrAttemptsExhausted      = errors.New("retry attempts exhausted")
)
