// Copyright 2025 Cameron F. Abrams. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/io"
)

// ParameterError indicates missing or non-physical fluid parameters;
// e.g. Tc ≤ 0, Pc ≤ 0, an unknown family name, or a compound that is not in
// the database
type ParameterError struct {
	Msg string
}

// DomainError indicates a request outside the model's domain: non-positive
// T or P, or a state that is under-specified for the requested property.
// Missing names the independent variable still required, if any.
type DomainError struct {
	Msg     string
	Missing string
}

// ConvergenceError indicates that root filtering left no physical root or
// that an iterative solve exhausted its iteration budget
type ConvergenceError struct {
	Msg string
	It  int // iterations spent; zero when not applicable
}

// PhaseError indicates a request for a phase that does not exist at the
// current conditions
type PhaseError struct {
	Msg  string
	Kind PhaseKind
}

func (e *ParameterError) Error() string   { return e.Msg }
func (e *DomainError) Error() string      { return e.Msg }
func (e *ConvergenceError) Error() string { return e.Msg }
func (e *PhaseError) Error() string       { return e.Msg }

// ErrParameter returns a new ParameterError with formatted message
func ErrParameter(msg string, prm ...interface{}) *ParameterError {
	return &ParameterError{Msg: io.Sf(msg, prm...)}
}

// ErrDomain returns a new DomainError with formatted message.
// missing may be empty when no additional variable would help.
func ErrDomain(missing, msg string, prm ...interface{}) *DomainError {
	return &DomainError{Msg: io.Sf(msg, prm...), Missing: missing}
}

// ErrConvergence returns a new ConvergenceError with formatted message
func ErrConvergence(it int, msg string, prm ...interface{}) *ConvergenceError {
	return &ConvergenceError{Msg: io.Sf(msg, prm...), It: it}
}

// ErrPhase returns a new PhaseError with formatted message
func ErrPhase(kind PhaseKind, msg string, prm ...interface{}) *PhaseError {
	return &PhaseError{Msg: io.Sf(msg, prm...), Kind: kind}
}
