package extend

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Options configures an extension pass.
type Options struct {
	// FolderPath is the default folder searched for definition files.
	// Requests without their own folder path inherit it.
	FolderPath string
	// Behaviors maps model names to the behavior invoked after the
	// model's definition document has been applied.
	Behaviors map[string]Behavior
	// Logger receives structured progress logging. Silent by default.
	Logger zerolog.Logger
}

// Option configures an extension pass.
type Option func(*Options) error

// WithFolderPath sets the default folder searched for definition
// files. Per-model folder paths take precedence.
func WithFolderPath(path string) Option {
	return func(o *Options) error {
		if path == "" {
			return fmt.Errorf("modelx: folder path cannot be empty")
		}
		o.FolderPath = path
		return nil
	}
}

// WithBehavior registers the behavior invoked for the named model
// after its definition document has been applied.
func WithBehavior(model string, fn Behavior) Option {
	return func(o *Options) error {
		if model == "" {
			return fmt.Errorf("modelx: behavior model name cannot be empty")
		}
		o.Behaviors[model] = fn
		return nil
	}
}

// WithLogger sets the logger for the extension pass.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) error {
		o.Logger = logger
		return nil
	}
}

// Apply applies options to the receiver.
// It returns the first error encountered.
func (o *Options) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (o *Options) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewOptions creates Options with the given options applied.
func NewOptions(opts ...Option) (*Options, error) {
	o := &Options{
		Behaviors: make(map[string]Behavior),
		Logger:    zerolog.Nop(),
	}
	if err := o.Apply(opts...); err != nil {
		return nil, err
	}
	return o, nil
}
