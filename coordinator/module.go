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

// Package coordinator implements the module lifecycle coordinator:
// registration, ordered multi-phase activation (setup -> parse -> start),
// and reverse-order roll-back on partial failure.
package coordinator

import "github.com/nganet/accelcfg/config"

// Hooks are the optional lifecycle callbacks a Module may implement. Any of
// them may be nil, in which case that phase is a no-op for this module.
type Hooks struct {
	Init    func() error
	Setup   func() error
	Start   func() error
	Stop    func() error
	Cleanup func() error
	Exit    func() error
}

// Module is an independent subsystem that owns a schema set and lifecycle
// hooks. The Coordinator borrows a Module; the Module owns its Specs and
// whatever storage their handlers write into.
type Module struct {
	Name  string
	Hooks Hooks
	specs []*config.Spec
}

// New constructs a Module with the given name and schema set. Hooks default
// to all-nil; set m.Hooks directly or use WithHooks.
func New(name string, specs ...*config.Spec) *Module {
	return &Module{Name: name, specs: specs}
}

// WithHooks sets m's lifecycle hooks and returns m, for chaining with New.
func (m *Module) WithHooks(h Hooks) *Module {
	m.Hooks = h
	return m
}

// ModuleName implements config.SchemaOwner.
func (m *Module) ModuleName() string { return m.Name }

// Specs implements config.SchemaOwner.
func (m *Module) Specs() []*config.Spec { return m.specs }
