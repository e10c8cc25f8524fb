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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testModule struct {
	name  string
	specs []*Spec
}

func (m *testModule) ModuleName() string { return m.name }
func (m *testModule) Specs() []*Spec     { return m.specs }

func oneModule(specs ...*Spec) []SchemaOwner {
	return []SchemaOwner{&testModule{name: "m", specs: specs}}
}

// Scenario 1: `opt 42;` with an Int spec.
func TestScenarioIntBasic(t *testing.T) {
	var dest int32
	spec := &Spec{Name: "opt", Handler: Int(&dest, IntConstraint{})}
	require.NoError(t, Dispatch("opt 42;", oneModule(spec)))
	assert.EqualValues(t, 42, dest)
	assert.Equal(t, 1, spec.Calls())
}

// Scenario 2: hex, binary, and "leading zero is still base 10".
func TestScenarioIntBases(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  int32
	}{
		{"opt 0x10;", 16},
		{"opt 0b101;", 5},
		{"opt 010;", 10},
	} {
		var dest int32
		spec := &Spec{Name: "opt", Handler: Int(&dest, IntConstraint{})}
		require.NoError(t, Dispatch(tc.input, oneModule(spec)), tc.input)
		assert.EqualValues(t, tc.want, dest, tc.input)
	}
}

func TestIntRangeAndMultipleOf(t *testing.T) {
	var dest int32
	spec := &Spec{Name: "opt", Handler: Int(&dest, IntConstraint{Min: 0, Max: 10})}
	err := Dispatch("opt 42;", oneModule(spec))
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrValueOutOfRange, cerr.Kind)

	spec2 := &Spec{Name: "opt", Handler: Int(&dest, IntConstraint{MultipleOf: 4})}
	err = Dispatch("opt 6;", oneModule(spec2))
	require.Error(t, err)
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrValueOutOfRange, cerr.Kind)
}

// Scenario 3: bool acceptance, case-insensitive, and bad value.
func TestScenarioBool(t *testing.T) {
	var flag bool
	spec := &Spec{Name: "flag", Handler: Bool(&flag)}
	require.NoError(t, Dispatch("flag yes;", oneModule(spec)))
	assert.True(t, flag)

	spec2 := &Spec{Name: "flag", Handler: Bool(&flag)}
	require.NoError(t, Dispatch("flag DISABLE;", oneModule(spec2)))
	assert.False(t, flag)

	spec3 := &Spec{Name: "flag", Handler: Bool(&flag)}
	err := Dispatch("flag maybe;", oneModule(spec3))
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrBadValue, cerr.Kind)
}

// Scenario 4: attributes preserved in order, no values.
func TestScenarioAttributes(t *testing.T) {
	var got Entry
	spec := &Spec{
		Name: "srv",
		Handler: func(ctx *Context, spec *Spec, entry Entry) error {
			got = entry
			return nil
		},
	}
	require.NoError(t, Dispatch("srv host=a.example p=80;", oneModule(spec)))
	assert.Empty(t, got.Values)
	assert.Equal(t, []Attr{{Key: "host", Value: "a.example"}, {Key: "p", Value: "80"}}, got.Attrs)
}

// Scenario 5: nested block with two child directives.
func TestScenarioNestedBlock(t *testing.T) {
	var a, b int32
	childA := &Spec{Name: "a", Handler: Int(&a, IntConstraint{})}
	childB := &Spec{Name: "b", Handler: Int(&b, IntConstraint{})}
	section := &Spec{Name: "section", Handler: NestedBlock([]*Spec{childA, childB})}

	require.NoError(t, Dispatch("section { a 1; b 2; }", oneModule(section)))
	assert.EqualValues(t, 1, a)
	assert.EqualValues(t, 2, b)
}

// Scenario 6: unknown directive inside a nested block aborts dispatch.
func TestScenarioNestedUnknownDirective(t *testing.T) {
	var a int32
	childA := &Spec{Name: "a", Handler: Int(&a, IntConstraint{})}
	section := &Spec{Name: "section", Handler: NestedBlock([]*Spec{childA})}

	err := Dispatch("section { a 1; c 3; }", oneModule(section))
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrUnknownDirective, cerr.Kind)
	assert.Equal(t, "c", cerr.Name)
}

// Scenario 7: unclosed quoted literal surfaces SyntaxError with a snippet.
func TestScenarioUnclosedQuote(t *testing.T) {
	spec := &Spec{Name: "name", Handler: String(make([]byte, 32), StringConstraint{})}
	err := Dispatch("name \"abc\\n...", oneModule(spec))
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrSyntax, cerr.Kind)
	assert.NotEmpty(t, cerr.Snippet)
}

// Scenario 8: a non-repeatable spec matched twice is a Duplicate.
func TestScenarioDuplicate(t *testing.T) {
	var dest int32
	spec := &Spec{Name: "dup", Handler: Int(&dest, IntConstraint{})}
	err := Dispatch("dup 1; dup 2;", oneModule(spec))
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrDuplicate, cerr.Kind)
}

func TestDuplicateAllowedWhenAllowRepeat(t *testing.T) {
	var calls []int32
	spec := &Spec{
		Name:        "dup",
		AllowRepeat: true,
		Handler: func(ctx *Context, spec *Spec, entry Entry) error {
			n, err := parseInt32(entry.Values[0])
			require.NoError(t, err)
			calls = append(calls, n)
			return nil
		},
	}
	require.NoError(t, Dispatch("dup 1; dup 2;", oneModule(spec)))
	assert.Equal(t, []int32{1, 2}, calls)
}

// Scenario 9: empty input, required directive missing.
func TestScenarioMissingRequired(t *testing.T) {
	var dest int32
	spec := &Spec{Name: "opt", Handler: Int(&dest, IntConstraint{})}
	err := Dispatch("", oneModule(spec))
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrMissingRequired, cerr.Kind)
	assert.Equal(t, "opt", cerr.Name)
}

// Scenario 10: same input with allow_none=true succeeds, handler never called.
func TestScenarioAllowNone(t *testing.T) {
	var dest int32
	spec := &Spec{Name: "opt", Handler: Int(&dest, IntConstraint{}), AllowNone: true}
	require.NoError(t, Dispatch("", oneModule(spec)))
	assert.Zero(t, spec.Calls())
}

// Default round-trip: a spec with a Default succeeds via applyDefault when
// the directive was never matched.
func TestDefaultRoundTrip(t *testing.T) {
	var dest int32
	deflt := "7"
	spec := &Spec{Name: "opt", Handler: Int(&dest, IntConstraint{}), Default: &deflt}
	require.NoError(t, Dispatch("", oneModule(spec)))
	assert.EqualValues(t, 7, dest)
	assert.Equal(t, 1, spec.Calls())
}

func TestEnumCaseInsensitive(t *testing.T) {
	var dest int
	spec := &Spec{Name: "mode", Handler: Enum(&dest, []EnumValue{{"fast", 1}, {"slow", 2}})}
	require.NoError(t, Dispatch("mode FAST;", oneModule(spec)))
	assert.Equal(t, 1, dest)
}

func TestStringOverflow(t *testing.T) {
	spec := &Spec{Name: "name", Handler: String(make([]byte, 4), StringConstraint{})}
	err := Dispatch(`name toolong;`, oneModule(spec))
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrValueOutOfRange, cerr.Kind)
}

func TestStringCopies(t *testing.T) {
	buf := make([]byte, 8)
	spec := &Spec{Name: "name", Handler: String(buf, StringConstraint{})}
	require.NoError(t, Dispatch(`name abc;`, oneModule(spec)))
	assert.Equal(t, "abc", string(buf[:3]))
}
