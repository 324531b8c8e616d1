// Simplicity Type Inference
// Copyright (C) 2026 the simplicity-infer contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package errkind gives every failure that can cross the inference engine's
// public boundary one of exactly four kinds, and some small error-wrapping
// helpers built on github.com/pkg/errors and go-multierror.
package errkind

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Kind distinguishes the four ways InferTypes can fail to produce a type
// annotation. Clash and OccursCheck are deliberately conflated at the
// public boundary into one "no principal type" signal; Kind exists so that
// tests and internal code can still tell them apart.
type Kind uint8

const (
	// None means no error.
	None Kind = iota
	// Malformed means the input expression DAG itself failed
	// validation, before inference was ever attempted.
	Malformed
	// AllocationFailure is a hard failure: some allocation returned
	// failure. The caller gets ok=false and no result.
	AllocationFailure
	// Clash is a soft failure: two bound representatives had
	// incompatible constructors. The caller gets ok=true, typeDag=nil.
	Clash
	// OccursCheck is a soft failure: freezing found a cyclic binding
	// graph. The caller gets ok=true, typeDag=nil, same as Clash.
	OccursCheck
)

// String names the kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Malformed:
		return "malformed input"
	case AllocationFailure:
		return "allocation failure"
	case Clash:
		return "clash"
	case OccursCheck:
		return "occurs check"
	default:
		return "unknown error kind"
	}
}

// Soft reports whether this kind surfaces as ok=true, typeDag=nil (a type
// error) as opposed to ok=false (a hard allocation failure).
func (k Kind) Soft() bool {
	return k == Clash || k == OccursCheck
}

// Error pairs a Kind with the underlying wrapped error.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil || e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

// Unwrap lets errors.Is/errors.As see through to the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New builds a new *Error of the given kind from a format string.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// Wrap attaches a Kind to an existing error, adding context with
// errors.Wrapf from github.com/pkg/errors. If err is already an
// *Error, its Kind is preserved and only the message is extended.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return &Error{Kind: e.Kind, Err: errors.Wrapf(e.Err, format, args...)}
	}
	return &Error{Kind: kind, Err: errors.Wrapf(err, format, args...)}
}

// Aggregate combines zero or more errors (ignoring nils) into a single
// error via multierror, for call sites (like graph validation) that want
// to report every problem found instead of just the first.
func Aggregate(errs ...error) error {
	return AggregateFormatted(nil, errs...)
}

// AggregateFormatted is Aggregate with a custom multierror.ErrorFormat.
// format may be nil, in which case multierror's default formatting is
// used.
func AggregateFormatted(format multierror.ErrorFormatFunc, errs ...error) error {
	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result != nil && format != nil {
		result.ErrorFormat = format
	}
	return result.ErrorOrNil()
}
