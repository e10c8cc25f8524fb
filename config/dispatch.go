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

import (
	"errors"
	"fmt"

	"github.com/nganet/accelcfg/internal/cfgerr"
	"github.com/nganet/accelcfg/internal/cfgparse"
)

// SchemaOwner is the part of a module the dispatcher needs: a name (for
// diagnostics) and an ordered, non-empty-or-not set of Specs. The module
// coordinator's Module type implements this; tests can implement it
// directly without pulling in lifecycle hooks.
type SchemaOwner interface {
	ModuleName() string
	Specs() []*Spec
}

// Context is the handle a HandlerFunc receives to recurse into a nested
// `{ ... }` block. It wraps the parser position shared by the whole parse,
// per the spec's "shared parser state across a recursive handler" note —
// passed explicitly here instead of reached via pointer arithmetic.
type Context struct {
	p *cfgparse.Parser
}

// Dispatch is the schema dispatcher's entry point: it resets every spec's
// call counter, asserts spec invariants, then repeatedly parses entries
// from input and fans each one out to the first module whose schema claims
// it, in module registration order.
func Dispatch(input string, modules []SchemaOwner) error {
	for _, m := range modules {
		for _, spec := range m.Specs() {
			spec.callCounter = 0
			if err := assertInvariants(spec); err != nil {
				return err
			}
		}
	}

	ctx := &Context{p: cfgparse.New(input)}
	for {
		if ctx.p.AtEnd() {
			break
		}
		entry, err := ctx.p.ParseEntry()
		if err != nil {
			return attachSnippet(ctx.p, err)
		}
		if entry.IsZero() {
			break
		}
		spec := lookupModules(modules, entry.Name)
		if spec == nil {
			return &Error{Kind: ErrUnknownDirective, Name: entry.Name}
		}
		if err := handleEntry(ctx, spec, entry); err != nil {
			return err
		}
	}

	for _, m := range modules {
		if err := finish(ctx, m.Specs()); err != nil {
			return err
		}
	}
	return nil
}

// DispatchChildren implements the stock nested-block handler's recursion:
// it consumes '{', dispatches every directive up to the matching '}'
// against childSpecs, consumes '}', and runs finish on childSpecs. It
// shares the caller's parser position, so no buffer is duplicated.
func (c *Context) DispatchChildren(childSpecs []*Spec) error {
	for _, spec := range childSpecs {
		spec.callCounter = 0
		if err := assertInvariants(spec); err != nil {
			return err
		}
	}

	if err := c.p.ConsumeLBrace(); err != nil {
		return attachSnippet(c.p, err)
	}
	for !c.p.AtRBrace() {
		if c.p.AtEnd() {
			return attachSnippet(c.p, &Error{Kind: ErrSyntax, Name: "", Cause: fmt.Errorf("unterminated block")})
		}
		entry, err := c.p.ParseEntry()
		if err != nil {
			return attachSnippet(c.p, err)
		}
		spec := findSpec(childSpecs, entry.Name)
		if spec == nil {
			return &Error{Kind: ErrUnknownDirective, Name: entry.Name}
		}
		if err := handleEntry(c, spec, entry); err != nil {
			return err
		}
	}
	if err := c.p.ConsumeRBrace(); err != nil {
		return attachSnippet(c.p, err)
	}
	return finish(c, childSpecs)
}

// handleEntry implements handle_entry: duplicate-cardinality check, then
// the handler call, then the call counter bump on success.
func handleEntry(ctx *Context, spec *Spec, entry Entry) error {
	if spec.callCounter > 0 && !spec.AllowRepeat {
		return &Error{Kind: ErrDuplicate, Name: spec.Name}
	}
	if err := spec.Handler(ctx, spec, entry); err != nil {
		return err
	}
	spec.callCounter++
	return nil
}

// finish applies a spec's default or checks allow_none/required for every
// spec that was never matched during this parse.
func finish(ctx *Context, specs []*Spec) error {
	for _, spec := range specs {
		if spec.callCounter > 0 {
			continue
		}
		switch {
		case spec.Default != nil:
			if err := applyDefault(ctx, spec); err != nil {
				return err
			}
		case spec.AllowNone:
			continue
		default:
			return &Error{Kind: ErrMissingRequired, Name: spec.Name}
		}
	}
	return nil
}

// defaultEntry synthesizes "<name> <deflt>;" and parses it in isolation,
// used both to validate a Default at registration/parse-start and to
// produce the Entry applyDefault feeds back through the handler.
func defaultEntry(spec *Spec) (Entry, error) {
	text := fmt.Sprintf("%s %s;", spec.Name, *spec.Default)
	return cfgparse.New(text).ParseEntry()
}

// applyDefault synthesizes a spec's default text, parses it, feeds the
// resulting entry to the spec's Handler, and bumps the call counter. It is
// only reached for a spec that was never matched, so handleEntry's duplicate
// check would have nothing to reject. A default that fails to parse
// or to handle is a programming error: assertInvariants already validated
// that it parses, so only handler failure can happen here, and that means
// the module registered an inconsistent (default, handler, spec_ext)
// triple — unrecoverable.
func applyDefault(ctx *Context, spec *Spec) error {
	entry, err := defaultEntry(spec)
	if err != nil {
		panic(fmt.Sprintf("accelcfg: spec %q default %q no longer parses: %v", spec.Name, *spec.Default, err))
	}
	if err := spec.Handler(ctx, spec, entry); err != nil {
		panic(fmt.Sprintf("accelcfg: spec %q default %q failed validation: %v", spec.Name, *spec.Default, err))
	}
	spec.callCounter++
	return nil
}

func lookupModules(modules []SchemaOwner, name string) *Spec {
	for _, m := range modules {
		if spec := findSpec(m.Specs(), name); spec != nil {
			return spec
		}
	}
	return nil
}

func findSpec(specs []*Spec, name string) *Spec {
	for _, spec := range specs {
		if spec.Name == name {
			return spec
		}
	}
	return nil
}

// attachSnippet ensures every error surfaced by the parser during dispatch
// carries an input-context snippet, per the spec's dispatch algorithm,
// without discarding the more specific error Kind cfgparse already chose
// (Capacity, InvalidIdentifier, or Syntax).
func attachSnippet(p *cfgparse.Parser, err error) error {
	var ce *cfgerr.Error
	if errors.As(err, &ce) && ce.Snippet == "" {
		ce.Snippet = p.Snippet(80)
	}
	return err
}
