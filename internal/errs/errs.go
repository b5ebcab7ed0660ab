// Package errs defines the error taxonomy shared by the generation pipeline.
//
// Every typed error matches exactly one sentinel through errors.Is, so callers
// can branch on the failure class without caring which stage produced it.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDriver indicates a connection, query or fetch failure.
	ErrDriver = errors.New("ormgen: driver error")
	// ErrBuild indicates a descriptor could not be assembled from catalog rows.
	ErrBuild = errors.New("ormgen: build error")
	// ErrTemplate indicates a template failed to compile, execute or format.
	ErrTemplate = errors.New("ormgen: template error")
	// ErrEncoding indicates rendered output is not valid UTF-8 text.
	ErrEncoding = errors.New("ormgen: encoding error")
	// ErrConfig indicates missing or invalid configuration.
	ErrConfig = errors.New("ormgen: config error")
)

// DriverError wraps a failure reported by the database driver.
type DriverError struct {
	Op    string // "connect", "list tables", "describe", ...
	Table string
	Cause error
}

func (e *DriverError) Error() string {
	var b strings.Builder
	b.WriteString("driver error")
	if e.Op != "" {
		b.WriteString(" during ")
		b.WriteString(e.Op)
	}
	if e.Table != "" {
		fmt.Fprintf(&b, " of table %q", e.Table)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *DriverError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrDriver.
func (e *DriverError) Is(target error) bool { return target == ErrDriver }

// NewDriverError creates a DriverError. A nil cause returns nil so call sites
// can wrap unconditionally.
func NewDriverError(op, table string, cause error) error {
	if cause == nil {
		return nil
	}
	return &DriverError{Op: op, Table: table, Cause: cause}
}

// BuildError reports a descriptor that is missing a required field.
type BuildError struct {
	Table   string
	Row     int // -1 when the error is not tied to a row
	Field   string
	Message string
}

func (e *BuildError) Error() string {
	var b strings.Builder
	b.WriteString("build error")
	if e.Table != "" {
		fmt.Fprintf(&b, " on table %q", e.Table)
	}
	if e.Row >= 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether target is ErrBuild.
func (e *BuildError) Is(target error) bool { return target == ErrBuild }

// NewBuildError creates a BuildError.
func NewBuildError(table string, row int, field, message string) *BuildError {
	return &BuildError{Table: table, Row: row, Field: field, Message: message}
}

// TemplateError reports a template that failed in the given phase
// ("compile", "execute" or "format").
type TemplateError struct {
	Template string
	Phase    string
	Cause    error
}

func (e *TemplateError) Error() string {
	var b strings.Builder
	b.WriteString("template error")
	if e.Template != "" {
		fmt.Fprintf(&b, " in %q", e.Template)
	}
	if e.Phase != "" {
		b.WriteString(" during ")
		b.WriteString(e.Phase)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *TemplateError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrTemplate.
func (e *TemplateError) Is(target error) bool { return target == ErrTemplate }

// NewTemplateError creates a TemplateError.
func NewTemplateError(name, phase string, cause error) *TemplateError {
	return &TemplateError{Template: name, Phase: phase, Cause: cause}
}

// EncodingError reports rendered bytes that are not valid UTF-8.
type EncodingError struct {
	Template string
	Offset   int // byte offset of the first invalid sequence
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: output of %q is not valid UTF-8 at byte %d", e.Template, e.Offset)
}

// Is reports whether target is ErrEncoding.
func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// ConfigError reports a missing or invalid option.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("config error for %q: %s", e.Option, e.Message)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// NewConfigError creates a ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}
