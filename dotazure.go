package dotazure

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
)

// Loader finds and applies the active environment's .env file.
// Each setter returns a modified copy.
type Loader struct {
	context *Context
	replace bool
	applier Applier
	logger  *log.Logger
}

// NewLoader returns a Loader that resolves the Context from the working
// directory and keeps variables that are already set.
func NewLoader() Loader {
	return Loader{}
}

// Context sets an already resolved Context, skipping discovery.
func (l Loader) Context(c Context) Loader {
	l.context = &c
	return l
}

// Replace sets whether variables from the file overwrite ones already set.
func (l Loader) Replace(replace bool) Loader {
	l.replace = replace
	return l
}

// Applier swaps the component that applies the file. Defaults to DotenvApplier.
func (l Loader) Applier(a Applier) Loader {
	l.applier = a
	return l
}

// Logger enables progress logging. Loaders are silent by default.
func (l Loader) Logger(logger *log.Logger) Loader {
	l.logger = logger
	return l
}

func (l Loader) logf(format string, args ...any) {
	if l.logger != nil {
		l.logger.Printf(format, args...)
	}
}

// resolve returns the configured Context or discovers one.
// ok is false when no project or environment config exists.
func (l Loader) resolve() (ctx Context, ok bool, err error) {
	if l.context != nil {
		if l.context.projectDir == "" || l.context.environmentName == "" {
			return Context{}, false, newError(KindInvalidData, "context has no project directory or environment name; use ContextBuilder.Build")
		}
		return *l.context, true, nil
	}
	ctx, err = NewContextBuilder().Build()
	if err != nil {
		if IsNotFound(err) {
			l.logf("Nothing to load: %v", err)
			return Context{}, false, nil
		}
		return Context{}, false, err
	}
	return ctx, true, nil
}

// Path returns the environment file that Load would apply, without
// applying it. ok is false if no project could be found.
func (l Loader) Path() (path string, ok bool, err error) {
	ctx, ok, err := l.resolve()
	if !ok || err != nil {
		return "", false, err
	}
	return ctx.EnvironmentFile(), true, nil
}

// Load applies the environment file and reports whether one was applied.
//
// A missing project, config.json, or .env file is not an error; Load
// returns false instead.
func (l Loader) Load() (bool, error) {
	path, ok, err := l.Path()
	if !ok || err != nil {
		return false, err
	}

	applier := l.applier
	if applier == nil {
		applier = DotenvApplier{}
	}

	if err := applier.Apply(path, l.replace); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logf("No environment file at %s", path)
			return false, nil
		}
		return false, wrapError(KindIo, err, fmt.Sprintf("failed to load %s", path))
	}

	l.logf("Loaded environment file %s (replace=%t)", path, l.replace)
	return true, nil
}

// MustLoad is like Load but panics on error.
func (l Loader) MustLoad() bool {
	loaded, err := l.Load()
	if err != nil {
		panic(err)
	}
	return loaded
}

// Load applies the default environment of the project containing the
// working directory. Variables that are already set are not replaced.
func Load() (bool, error) {
	return NewLoader().Load()
}

// MustLoad is like Load but panics on error.
func MustLoad() bool {
	return NewLoader().MustLoad()
}

// AutoLoad is a convenience function for use in init() functions.
// It loads with default settings and logs any errors.
func AutoLoad() {
	if _, err := Load(); err != nil {
		log.Printf("Warning: failed to auto-load azd environment: %v", err)
	}
}
