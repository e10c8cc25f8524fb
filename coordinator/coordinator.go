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

package coordinator

import (
	"fmt"

	"github.com/nganet/accelcfg/config"
	"github.com/nganet/accelcfg/internal/collections"
)

// Coordinator owns an ordered list of registered modules and drives them
// through setup/parse/start and stop/cleanup. It is single-threaded
// cooperative with respect to the parser and the module list: a module
// handler must not call back into Register/Unregister/StartAll/StopAll on
// the Coordinator that is currently dispatching it.
type Coordinator struct {
	logger  config.Logger
	modules []*Module
	running bool
}

// New constructs an empty Coordinator. If logger is nil, config.DefaultLogger
// is used.
func New(logger config.Logger) *Coordinator {
	if logger == nil {
		logger = config.DefaultLogger()
	}
	return &Coordinator{logger: logger}
}

// Running reports whether the most recent StartAll succeeded without a
// matching StopAll since.
func (c *Coordinator) Running() bool { return c.running }

// Register appends m to the module list in call order, after running its
// Init hook (if any). Forbidden while the coordinator is running.
func (c *Coordinator) Register(m *Module) error {
	if c.running {
		return lifecycleErr(m.Name, "register", fmt.Errorf("cannot register while running"))
	}
	if c.moduleNames().Contains(m.Name) {
		return lifecycleErr(m.Name, "register", fmt.Errorf("a module named %q is already registered", m.Name))
	}
	if m.Hooks.Init != nil {
		if err := m.Hooks.Init(); err != nil {
			return lifecycleErr(m.Name, "init", err)
		}
	}
	c.modules = append(c.modules, m)
	return nil
}

// Unregister removes m from the module list and runs its Exit hook (if
// any). Permitted while running, but logs a warning: the caller is doing
// something dangerous, such as a forced unload.
func (c *Coordinator) Unregister(m *Module) {
	if c.running {
		c.logger.Printf("accelcfg: unregistering module %q while the coordinator is running", m.Name)
	}
	for i, mod := range c.modules {
		if mod == m {
			c.modules = append(c.modules[:i], c.modules[i+1:]...)
			break
		}
	}
	if m.Hooks.Exit != nil {
		if err := m.Hooks.Exit(); err != nil {
			c.logger.Printf("accelcfg: module %q exit hook failed: %v", m.Name, err)
		}
	}
}

// StartAll drives every registered module through setup, then parses
// cfgText and dispatches it against every module's schema, then drives
// every module through start — all in registration order. Any failure
// triggers reverse roll-back: every module that received Setup eventually
// receives Cleanup; every module that received Start eventually receives
// Stop before Cleanup.
func (c *Coordinator) StartAll(cfgText string) error {
	setupDone := make([]*Module, 0, len(c.modules))
	for _, m := range c.modules {
		if m.Hooks.Setup != nil {
			if err := m.Hooks.Setup(); err != nil {
				c.cleanupReverse(setupDone)
				return lifecycleErr(m.Name, "setup", err)
			}
		}
		setupDone = append(setupDone, m)
	}

	owners := make([]config.SchemaOwner, len(c.modules))
	for i, m := range c.modules {
		owners[i] = m
	}
	if err := config.Dispatch(cfgText, owners); err != nil {
		c.cleanupReverse(setupDone)
		return err
	}

	startedDone := make([]*Module, 0, len(c.modules))
	for _, m := range c.modules {
		if m.Hooks.Start != nil {
			if err := m.Hooks.Start(); err != nil {
				c.stopReverse(startedDone)
				c.cleanupReverse(setupDone)
				return lifecycleErr(m.Name, "start", err)
			}
		}
		startedDone = append(startedDone, m)
	}

	c.running = true
	return nil
}

// StopAll drives every registered module through stop, then through
// cleanup, both in reverse registration order. Every Stop completes before
// any Cleanup begins, since peers may still reference each other during
// Stop. Errors from Stop/Cleanup are logged and otherwise ignored: this is
// best-effort teardown, so one misbehaving module cannot wedge shutdown.
func (c *Coordinator) StopAll() {
	c.stopReverse(c.modules)
	c.cleanupReverse(c.modules)
	c.running = false
}

func (c *Coordinator) stopReverse(modules []*Module) {
	for i := len(modules) - 1; i >= 0; i-- {
		m := modules[i]
		if m.Hooks.Stop == nil {
			continue
		}
		if err := m.Hooks.Stop(); err != nil {
			c.logger.Printf("accelcfg: module %q stop failed: %v", m.Name, err)
		}
	}
}

func (c *Coordinator) cleanupReverse(modules []*Module) {
	for i := len(modules) - 1; i >= 0; i-- {
		m := modules[i]
		if m.Hooks.Cleanup == nil {
			continue
		}
		if err := m.Hooks.Cleanup(); err != nil {
			c.logger.Printf("accelcfg: module %q cleanup failed: %v", m.Name, err)
		}
	}
}

func (c *Coordinator) moduleNames() collections.Set[string] {
	names := make(collections.Set[string], len(c.modules))
	for _, m := range c.modules {
		names.Add(m.Name)
	}
	return names
}

func lifecycleErr(name, phase string, cause error) error {
	return &config.Error{Kind: config.ErrLifecycle, Name: fmt.Sprintf("%s/%s", name, phase), Cause: cause}
}
