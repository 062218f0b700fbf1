// Package errors provides structured diagnostics for the flipclock
// engine.
//
// The engine's public operations never fail hard: invalid input and
// unparseable configuration degrade to a safe visual default, and the
// only trace is a diagnostic routed through this package. Hosts that
// want those diagnostics somewhere other than stderr install their own
// handler via SetHandler.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of a diagnostic.
type Kind int

const (
	// KindUnknown indicates a diagnostic of unknown type.
	KindUnknown Kind = iota
	// KindInput indicates an invalid numeric value fed to a tracker.
	KindInput
	// KindConfig indicates bad construction configuration, such as an
	// unparseable countdown target.
	KindConfig
	// KindRender indicates a rendering surface error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FlipError represents a structured diagnostic from the flipclock engine.
type FlipError struct {
	// Op is the operation that produced the diagnostic
	// (e.g., "wheel.Tracker.Update").
	Op string
	// Kind categorizes the diagnostic.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the diagnostic was produced.
	Timestamp time.Time
}

func (e *FlipError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FlipError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives diagnostics reported by the engine.
type Handler interface {
	// HandleError is called when a diagnostic is reported.
	HandleError(err *FlipError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
