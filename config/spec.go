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

package config

import "fmt"

// HandlerFunc is the callback a Spec invokes when its directive is matched.
// It receives the Context (needed only to recurse into a nested block) and
// the parsed Entry, and may fail.
type HandlerFunc func(ctx *Context, spec *Spec, entry Entry) error

// Spec declaratively binds one directive name to a handler, cardinality
// policy and default. A module owns the Specs it registers; the dispatcher
// only reads them, apart from the call counter it resets and increments.
type Spec struct {
	// Name is matched against Entry.Name. Must be a valid identifier.
	Name string
	// Doc is a one-line human-readable description, surfaced by tools such
	// as the describe CLI subcommand. Purely informational.
	Doc string
	// Handler is invoked once per matched entry, and once more per parse
	// if Default is set and the directive was never matched. The target
	// storage and any per-handler constraint (range, length, ...) are
	// closed over by Handler itself — see the stock handler constructors
	// in handlers.go — rather than carried as opaque Dest/SpecExt fields
	// here, so there is nothing for assertInvariants or the dispatcher to
	// type-assert.
	Handler HandlerFunc
	// Default is the literal textual body that would follow Name up to
	// ';' — e.g. "8080" for `port 8080;`. Nil means no default.
	Default *string
	// AllowNone means absence is not an error when Default is nil.
	AllowNone bool
	// AllowRepeat means the directive may appear more than once.
	AllowRepeat bool

	// callCounter is reset to 0 at the start of every Dispatch/
	// DispatchChildren call and incremented after every successful
	// Handler invocation (including synthesized defaults).
	callCounter int
}

// Calls reports how many times this spec's handler has succeeded during the
// current parse (including a synthesized default, if one was applied).
func (s *Spec) Calls() int { return s.callCounter }

// assertInvariants validates the registration-time invariants the spec
// checks at the start of every parse: Name is a valid identifier, Handler
// is set, and Default (if present) itself parses as a valid directive body.
func assertInvariants(spec *Spec) error {
	if !IsIdentifier(spec.Name) {
		return &Error{Kind: ErrInvalidIdentifier, Name: spec.Name}
	}
	if spec.Handler == nil {
		panic(fmt.Sprintf("accelcfg: spec %q has a nil handler", spec.Name))
	}
	if spec.Default != nil {
		if _, err := defaultEntry(spec); err != nil {
			return &Error{Kind: ErrBadValue, Name: spec.Name, Cause: fmt.Errorf("default does not parse: %w", err)}
		}
	}
	return nil
}
