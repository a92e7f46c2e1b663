package modelx

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrModelNotFound indicates that a requested model is not
	// registered.
	ErrModelNotFound = errors.New("modelx: model not found")
	// ErrInvalidDefinition indicates a definition document error.
	ErrInvalidDefinition = errors.New("modelx: invalid definition")
	// ErrInvalidRelation indicates a relation error.
	ErrInvalidRelation = errors.New("modelx: invalid relation")
	// ErrInvalidMixin indicates a mixin error.
	ErrInvalidMixin = errors.New("modelx: invalid mixin")
)

// NotFoundError represents an error when a model is not registered.
type NotFoundError struct {
	name string
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("modelx: model %q not found", e.name)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrModelNotFound) to return true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrModelNotFound
}

// Name returns the model name that was looked up.
func (e *NotFoundError) Name() string {
	return e.name
}

// NewNotFoundError returns a new NotFoundError for the given model name.
func NewNotFoundError(name string) *NotFoundError {
	return &NotFoundError{name: name}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrModelNotFound)
}

// DefinitionError represents a definition document error: a missing,
// unreadable or malformed definition file.
type DefinitionError struct {
	Model   string // Model being extended
	Path    string // Definition file path (if resolved)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	var b strings.Builder
	b.WriteString("modelx: definition error")
	if e.Model != "" {
		b.WriteString(" for model ")
		b.WriteString(e.Model)
	}
	if e.Path != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.Path)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DefinitionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for
// DefinitionError.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// NewDefinitionError creates a new DefinitionError.
func NewDefinitionError(model, path, message string, cause error) *DefinitionError {
	return &DefinitionError{
		Model:   model,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// RelationError represents a relation error.
type RelationError struct {
	Model    string // Owning model
	Relation string // Relation name
	Kind     string // Relation kind as written in the document
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *RelationError) Error() string {
	var b strings.Builder
	b.WriteString("modelx: relation error")
	if e.Relation != "" {
		b.WriteString(" on relation ")
		b.WriteString(e.Relation)
	}
	if e.Model != "" {
		b.WriteString(" of model ")
		b.WriteString(e.Model)
	}
	if e.Kind != "" {
		fmt.Fprintf(&b, " (kind: %s)", e.Kind)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *RelationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for
// RelationError.
func (e *RelationError) Is(target error) bool {
	return target == ErrInvalidRelation
}

// NewRelationError creates a new RelationError.
func NewRelationError(model, relation, kind, message string, cause error) *RelationError {
	return &RelationError{
		Model:    model,
		Relation: relation,
		Kind:     kind,
		Message:  message,
		Cause:    cause,
	}
}

// MixinError represents a mixin error: an unregistered mixin name or a
// failure while applying a mixin to a model.
type MixinError struct {
	Model   string // Model being extended
	Mixin   string // Mixin name
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *MixinError) Error() string {
	var b strings.Builder
	b.WriteString("modelx: mixin error")
	if e.Mixin != "" {
		b.WriteString(" on mixin ")
		b.WriteString(e.Mixin)
	}
	if e.Model != "" {
		b.WriteString(" of model ")
		b.WriteString(e.Model)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *MixinError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for
// MixinError.
func (e *MixinError) Is(target error) bool {
	return target == ErrInvalidMixin
}

// NewMixinError creates a new MixinError.
func NewMixinError(model, mixin, message string, cause error) *MixinError {
	return &MixinError{
		Model:   model,
		Mixin:   mixin,
		Message: message,
		Cause:   cause,
	}
}

// IsDefinitionError reports whether the error is a DefinitionError.
func IsDefinitionError(err error) bool {
	var defErr *DefinitionError
	return errors.As(err, &defErr)
}

// IsRelationError reports whether the error is a RelationError.
func IsRelationError(err error) bool {
	var relErr *RelationError
	return errors.As(err, &relErr)
}

// IsMixinError reports whether the error is a MixinError.
func IsMixinError(err error) bool {
	var mixErr *MixinError
	return errors.As(err, &mixErr)
}
