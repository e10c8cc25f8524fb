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
	"strings"
)

// ToggleDriver is a minimal stand-in for the external driver the spec
// describes but deliberately leaves unspecified: "a textual state toggle
// with values start and stop". Writing the current value is a no-op;
// writing "start" calls StartAll, "stop" calls StopAll; anything else is
// rejected. The real OS-specific control channel that produces these
// writes is out of scope here, same as in the spec.
type ToggleDriver struct {
	c       *Coordinator
	cfgText func() (string, error)
	current string
}

// NewToggleDriver wraps c. cfgText is called to obtain the configuration
// text each time "start" is written.
func NewToggleDriver(c *Coordinator, cfgText func() (string, error)) *ToggleDriver {
	return &ToggleDriver{c: c, cfgText: cfgText, current: "stop"}
}

// Current returns the last value accepted by Set.
func (t *ToggleDriver) Current() string { return t.current }

// Set writes value to the toggle, case-insensitively. A value equal to the
// current one is a no-op.
func (t *ToggleDriver) Set(value string) error {
	folded := strings.ToLower(value)
	if folded != "start" && folded != "stop" {
		return fmt.Errorf("accelcfg: invalid toggle value %q, want start or stop", value)
	}
	if folded == t.current {
		return nil
	}
	switch folded {
	case "start":
		text, err := t.cfgText()
		if err != nil {
			return fmt.Errorf("accelcfg: reading configuration: %w", err)
		}
		if err := t.c.StartAll(text); err != nil {
			return err
		}
	case "stop":
		t.c.StopAll()
	}
	t.current = folded
	return nil
}
