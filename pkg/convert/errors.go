package convert

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is.
var (
	// ErrUnrecognizedKind means no rule of the requested direction handles a node kind.
	ErrUnrecognizedKind = errors.New("unrecognized node kind")
	// ErrStructuralViolation means a node breaks a shape rule the translation depends on.
	ErrStructuralViolation = errors.New("structural violation")
)

// Direction names a translation direction.
type Direction string

// Translation directions.
const (
	ToShiftDirection  Direction = "estree->shift"
	ToESTreeDirection Direction = "shift->estree"
)

// UnrecognizedKindError reports a node kind missing from a dispatch table.
type UnrecognizedKindError struct {
	Kind      string
	Direction Direction
}

func (e *UnrecognizedKindError) Error() string {
	return fmt.Sprintf("%s: %q has no %s rule", ErrUnrecognizedKind, e.Kind, e.Direction)
}

func (e *UnrecognizedKindError) Unwrap() error {
	return ErrUnrecognizedKind
}

// StructuralError reports a node whose shape cannot be translated.
type StructuralError struct {
	Kind   string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s in %s: %s", ErrStructuralViolation, e.Kind, e.Reason)
}

func (e *StructuralError) Unwrap() error {
	return ErrStructuralViolation
}

func structuralf(kind, format string, args ...any) error {
	return &StructuralError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
