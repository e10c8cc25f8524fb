// Copyright 2026 The accelcfg Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cfgerr defines the typed error surface shared by the tokenizer,
// entry parser, schema dispatcher and module coordinator, so that every
// layer can report failures through one error shape regardless of which
// package raised them.
package cfgerr

import "fmt"

// Kind names one of the error categories the core distinguishes. The names
// are semantic, not Go type identifiers: every kind is carried by the same
// *Error wrapper.
type Kind int

const (
	// Syntax: the tokenizer or parser could not advance.
	Syntax Kind = iota
	// Capacity: too many values or attributes in one entry.
	Capacity
	// InvalidIdentifier: a name or attribute key violates identifier rules.
	InvalidIdentifier
	// UnknownDirective: no spec matches the entry name at the current scope.
	UnknownDirective
	// Duplicate: a non-repeatable spec matched twice.
	Duplicate
	// MissingRequired: a spec with no default and allow_none=false was never matched.
	MissingRequired
	// ValueOutOfRange: a stock handler's value failed a range/length/multiple-of check.
	ValueOutOfRange
	// BadValue: a stock handler could not interpret the value at all.
	BadValue
	// AllocationFailure: a copied string could not be reserved.
	AllocationFailure
	// Lifecycle: a module hook returned a non-nil error, or a module could
	// not be registered (coordinator running, or name already taken).
	Lifecycle
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case Capacity:
		return "capacity error"
	case InvalidIdentifier:
		return "invalid identifier"
	case UnknownDirective:
		return "unknown directive"
	case Duplicate:
		return "duplicate directive"
	case MissingRequired:
		return "required directive missing"
	case ValueOutOfRange:
		return "value out of range"
	case BadValue:
		return "bad value"
	case AllocationFailure:
		return "allocation failure"
	case Lifecycle:
		return "lifecycle error"
	default:
		return "error"
	}
}

// Error is the single error type every core layer returns. Name is the
// directive, attribute key, or module name the error concerns, whichever
// applies; it may be empty. Snippet is set for errors the entry parser
// raises (Syntax, Capacity, InvalidIdentifier) once they reach
// config.Dispatch or a nested-block handler.
type Error struct {
	Kind    Kind
	Name    string
	Snippet string
	Cause   error
}

func New(kind Kind, name string, cause error) *Error {
	return &Error{Kind: kind, Name: name, Cause: cause}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Name != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Name)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	if e.Snippet != "" {
		msg = fmt.Sprintf("%s\n%s", msg, e.Snippet)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is a *Error with the same Kind, so that callers
// can write errors.Is(err, cfgerr.New(cfgerr.Duplicate, "", nil)) or, more
// idiomatically, use Kind directly via errors.As.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}
