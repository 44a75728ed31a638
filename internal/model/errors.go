package model

import (
	"errors"
	"strings"
)

// ErrInvalidInput is matched by every input validation failure.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError lists every CRITICAL message raised while validating ModelInputs.
type ValidationError struct {
	Messages []CalculationMessage
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		parts = append(parts, m.Code+": "+m.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
