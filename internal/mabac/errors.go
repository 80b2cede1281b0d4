package mabac

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates input that cannot form a rectangular N×K matrix.
	ErrShape = errors.New("invalid matrix shape")

	// ErrInvalidCriterion indicates a malformed criterion definition.
	ErrInvalidCriterion = errors.New("invalid criterion")
)

// ShapeError describes why the input could not be shaped into a decision matrix.
type ShapeError struct {
	Stage  Stage
	Reason string
	// Row is the offending alternative index, or -1 when not row specific.
	Row int
}

func (e *ShapeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%s: %s: %s (row %d)", ErrShape, e.Stage, e.Reason, e.Row)
	}
	return fmt.Sprintf("%s: %s: %s", ErrShape, e.Stage, e.Reason)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}

func newShapeError(stage Stage, row int, format string, args ...any) *ShapeError {
	return &ShapeError{Stage: stage, Row: row, Reason: fmt.Sprintf(format, args...)}
}

// CriterionError reports an invalid criterion definition.
type CriterionError struct {
	Code   string
	Reason string
}

func (e *CriterionError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidCriterion, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidCriterion, e.Code, e.Reason)
}

func (e *CriterionError) Unwrap() error {
	return ErrInvalidCriterion
}

// IsShapeError reports whether err is a shape error.
func IsShapeError(err error) bool {
	return errors.Is(err, ErrShape)
}

// IsCriterionError reports whether err is an invalid criterion error.
func IsCriterionError(err error) bool {
	return errors.Is(err, ErrInvalidCriterion)
}
