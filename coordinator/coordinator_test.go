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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nganet/accelcfg/config"
)

func recorder(order *[]string, name string) func() error {
	return func() error {
		*order = append(*order, name)
		return nil
	}
}

func TestRegisterRunsInitInOrder(t *testing.T) {
	var order []string
	c := New(nil)
	a := New("a").WithHooks(Hooks{Init: recorder(&order, "a")})
	b := New("b").WithHooks(Hooks{Init: recorder(&order, "b")})
	require.NoError(t, c.Register(a))
	require.NoError(t, c.Register(b))
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestRegisterForbiddenWhileRunning(t *testing.T) {
	c := New(nil)
	m := New("m")
	require.NoError(t, c.Register(m))
	require.NoError(t, c.StartAll(""))

	err := c.Register(New("late"))
	require.Error(t, err)
	var cerr *config.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, config.ErrLifecycle, cerr.Kind)
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Register(New("dup")))
	err := c.Register(New("dup"))
	require.Error(t, err)
	var cerr *config.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, config.ErrLifecycle, cerr.Kind)
}

func TestUnregisterRunsExitAndRemoves(t *testing.T) {
	c := New(nil)
	exited := false
	m := New("m").WithHooks(Hooks{Exit: func() error { exited = true; return nil }})
	require.NoError(t, c.Register(m))
	c.Unregister(m)
	assert.True(t, exited)
	require.NoError(t, c.StartAll(""))
	assert.True(t, c.Running())
}

func TestStartAllRunsPhasesInOrderAndSetsRunning(t *testing.T) {
	var order []string
	var dest int32
	spec := &config.Spec{Name: "opt", Handler: config.Int(&dest, config.IntConstraint{})}

	m := New("m", spec).WithHooks(Hooks{
		Setup: func() error { order = append(order, "setup"); return nil },
		Start: func() error { order = append(order, "start"); return nil },
	})
	c := New(nil)
	require.NoError(t, c.Register(m))

	require.False(t, c.Running())
	require.NoError(t, c.StartAll("opt 9;"))
	assert.True(t, c.Running())
	assert.EqualValues(t, 9, dest)
	assert.Equal(t, []string{"setup", "start"}, order)
}

func TestStartAllRollsBackOnSetupFailure(t *testing.T) {
	var order []string
	boom := errors.New("boom")
	first := New("first").WithHooks(Hooks{
		Setup:   func() error { order = append(order, "setup:first"); return nil },
		Cleanup: func() error { order = append(order, "cleanup:first"); return nil },
	})
	second := New("second").WithHooks(Hooks{
		Setup: func() error { order = append(order, "setup:second"); return boom },
	})
	c := New(nil)
	require.NoError(t, c.Register(first))
	require.NoError(t, c.Register(second))

	err := c.StartAll("")
	require.Error(t, err)
	var cerr *config.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, config.ErrLifecycle, cerr.Kind)
	assert.False(t, c.Running())
	assert.Equal(t, []string{"setup:first", "setup:second", "cleanup:first"}, order)
}

func TestStartAllRollsBackOnDispatchFailure(t *testing.T) {
	var order []string
	var dest int32
	spec := &config.Spec{Name: "opt", Handler: config.Int(&dest, config.IntConstraint{})}

	m := New("m", spec).WithHooks(Hooks{
		Setup:   func() error { order = append(order, "setup"); return nil },
		Start:   func() error { order = append(order, "start"); return nil },
		Cleanup: func() error { order = append(order, "cleanup"); return nil },
	})
	c := New(nil)
	require.NoError(t, c.Register(m))

	err := c.StartAll("nope 1;")
	require.Error(t, err)
	var cerr *config.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, config.ErrUnknownDirective, cerr.Kind)
	assert.Equal(t, []string{"setup", "cleanup"}, order)
	assert.False(t, c.Running())
}

func TestStartAllRollsBackOnStartFailure(t *testing.T) {
	var order []string
	boom := errors.New("boom")
	first := New("first").WithHooks(Hooks{
		Setup:   func() error { order = append(order, "setup:first"); return nil },
		Start:   func() error { order = append(order, "start:first"); return nil },
		Stop:    func() error { order = append(order, "stop:first"); return nil },
		Cleanup: func() error { order = append(order, "cleanup:first"); return nil },
	})
	second := New("second").WithHooks(Hooks{
		Setup:   func() error { order = append(order, "setup:second"); return nil },
		Start:   func() error { order = append(order, "start:second"); return boom },
		Cleanup: func() error { order = append(order, "cleanup:second"); return nil },
	})
	c := New(nil)
	require.NoError(t, c.Register(first))
	require.NoError(t, c.Register(second))

	err := c.StartAll("")
	require.Error(t, err)
	var cerr *config.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, config.ErrLifecycle, cerr.Kind)
	assert.False(t, c.Running())

	// first was started, so it must be stopped before either cleanup runs;
	// second was never started, so it gets no Stop call at all.
	assert.Equal(t, []string{
		"setup:first", "setup:second",
		"start:first", "start:second",
		"stop:first",
		"cleanup:second", "cleanup:first",
	}, order)
}

func TestStopAllRunsAllStopsBeforeAnyCleanup(t *testing.T) {
	var order []string
	first := New("first").WithHooks(Hooks{
		Stop:    func() error { order = append(order, "stop:first"); return nil },
		Cleanup: func() error { order = append(order, "cleanup:first"); return nil },
	})
	second := New("second").WithHooks(Hooks{
		Stop:    func() error { order = append(order, "stop:second"); return nil },
		Cleanup: func() error { order = append(order, "cleanup:second"); return nil },
	})
	c := New(nil)
	require.NoError(t, c.Register(first))
	require.NoError(t, c.Register(second))
	require.NoError(t, c.StartAll(""))

	order = nil
	c.StopAll()
	assert.False(t, c.Running())
	assert.Equal(t, []string{"stop:second", "stop:first", "cleanup:second", "cleanup:first"}, order)
}

func TestStopAllHookErrorsAreBestEffort(t *testing.T) {
	boom := errors.New("boom")
	cleaned := false
	first := New("first").WithHooks(Hooks{
		Stop: func() error { return boom },
	})
	second := New("second").WithHooks(Hooks{
		Cleanup: func() error { cleaned = true; return boom },
	})
	c := New(nil)
	require.NoError(t, c.Register(first))
	require.NoError(t, c.Register(second))
	require.NoError(t, c.StartAll(""))

	assert.NotPanics(t, func() { c.StopAll() })
	assert.True(t, cleaned)
	assert.False(t, c.Running())
}
