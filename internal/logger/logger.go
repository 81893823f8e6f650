// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

var (
	// nullLogger is a logger that discards all log messages.
	nullLogger = &instance{log: hclog.NewNullLogger()}
)

//go:generate ${TOOLS_BIN}/stringer -type=Level
type Level int

const (
	OFF Level = iota
	ERROR
	WARN
	INFO
	DEBUG
	TRACE
)

// ParseLevel returns the Level matching level, ignoring case, or an error
// wrapping ErrInvalidLevel when level is not a known level name.
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF":
		return OFF, nil
	default:
		return INFO, &DirectiveError{Item: level, err: ErrInvalidLevel}
	}
}

func (l Level) convertedLevel() hclog.Level {
	switch l {
	case TRACE:
		return hclog.Trace
	case DEBUG:
		return hclog.Debug
	case INFO:
		return hclog.Info
	case WARN:
		return hclog.Warn
	case ERROR:
		return hclog.Error
	case OFF:
		return hclog.Off
	default:
		return hclog.Info
	}
}

// Format selects how records are rendered.
type Format int

const (
	// TextFormat renders a human readable line per record.
	TextFormat Format = iota
	// JSONFormat renders a JSON object per record.
	JSONFormat
)

// FormatFromString maps "json" to JSONFormat, anything else to TextFormat.
func FormatFromString(format string) Format {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return JSONFormat
	}

	return TextFormat
}

// ColorMode controls ANSI coloring of text output.
type ColorMode int

const (
	ColorNever ColorMode = iota
	ColorAuto
	ColorAlways
)

// ColorFromString maps "always" and "never" to their modes, anything else to ColorAuto.
func ColorFromString(mode string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

func (c ColorMode) convertedColor() hclog.ColorOption {
	switch c {
	case ColorAuto:
		return hclog.AutoColor
	case ColorAlways:
		return hclog.ForceColor
	default:
		return hclog.ColorOff
	}
}

// Logger describes the interface that must be implemented by all loggers
type Logger interface {
	// WithName returns a new Logger instance nested under the current name.
	WithName(name string) Logger

	// SetLevel updates the logger level.
	SetLevel(level Level)

	// Trace emit a message and key/value pairs at the TRACE level.
	Trace(msg string, args ...interface{})

	// Debug emit a message and key/value pairs at the DEBUG level.
	Debug(msg string, args ...interface{})

	// Info emit a message and key/value pairs at the INFO level.
	Info(msg string, args ...interface{})

	// Warn emit a message and key/value pairs at the WARN level.
	Warn(msg string, args ...interface{})

	// Error emit a message and key/value pairs at the ERROR level.
	Error(msg string, args ...interface{})
}

// Make sure that intLogger is a Logger.
var _ Logger = &instance{}

// instance is a Logger implementation.
type instance struct {
	log    hclog.Logger
	filter *Filter
}

type options struct {
	filter *Filter
	format Format
	color  ColorMode
}

// Option customizes a logger built by NewLogger.
type Option func(*options)

// WithFilter makes every named logger derive its level from filter.
func WithFilter(filter *Filter) Option {
	return func(o *options) {
		o.filter = filter
	}
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithColor sets the color mode for text output.
func WithColor(color ColorMode) Option {
	return func(o *options) {
		o.color = color
	}
}

// NewLogger creates a new logger instance writing to writer.
// Without a filter the logger starts at INFO and named loggers share its level.
func NewLogger(writer io.Writer, opts ...Option) Logger {
	o := &options{format: TextFormat, color: ColorNever}
	for _, opt := range opts {
		opt(o)
	}

	level := INFO
	if o.filter != nil {
		level = o.filter.LevelFor("")
	}

	color := o.color.convertedColor()
	if o.format == JSONFormat {
		color = hclog.ColorOff
	}

	return &instance{
		log: hclog.New(&hclog.LoggerOptions{
			JSONFormat:        o.format == JSONFormat,
			Output:            writer,
			TimeFn:            time.Now,
			Level:             level.convertedLevel(),
			Color:             color,
			IndependentLevels: o.filter != nil,
		}),
		filter: o.filter,
	}
}

func (i instance) WithName(name string) Logger {
	named := i.log.Named(name)
	if i.filter != nil {
		named.SetLevel(i.filter.LevelFor(named.Name()).convertedLevel())
	}

	return &instance{
		log:    named,
		filter: i.filter,
	}
}

func (i instance) SetLevel(level Level) {
	i.log.SetLevel(level.convertedLevel())
}

func (i instance) Trace(msg string, args ...interface{}) {
	i.log.Trace(msg, args...)
}

func (i instance) Debug(msg string, args ...interface{}) {
	i.log.Debug(msg, args...)
}

func (i instance) Info(msg string, args ...interface{}) {
	i.log.Info(msg, args...)
}

func (i instance) Warn(msg string, args ...interface{}) {
	i.log.Warn(msg, args...)
}

func (i instance) Error(msg string, args ...interface{}) {
	i.log.Error(msg, args...)
}
