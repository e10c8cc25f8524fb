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
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var fold = cases.Fold() // locale-independent case folding, used by Bool/Enum

// validateShape rejects entries with values/attributes/children the stock
// handler doesn't accept. It does not check how many values there are;
// singleValue adds the "exactly one value" check.
func validateShape(spec *Spec, entry Entry, allowValues, allowAttrs, allowChildren bool) error {
	if !allowValues && len(entry.Values) > 0 {
		return &Error{Kind: ErrBadValue, Name: spec.Name, Cause: fmt.Errorf("does not take values")}
	}
	if !allowAttrs && len(entry.Attrs) > 0 {
		return &Error{Kind: ErrBadValue, Name: spec.Name, Cause: fmt.Errorf("does not take attributes")}
	}
	if !allowChildren && entry.HasChildren {
		return &Error{Kind: ErrBadValue, Name: spec.Name, Cause: fmt.Errorf("does not take a nested block")}
	}
	return nil
}

func singleValue(spec *Spec, entry Entry) (string, error) {
	if err := validateShape(spec, entry, true, false, false); err != nil {
		return "", err
	}
	if len(entry.Values) != 1 {
		return "", &Error{Kind: ErrBadValue, Name: spec.Name, Cause: fmt.Errorf("expected exactly one value, got %d", len(entry.Values))}
	}
	return entry.Values[0], nil
}

var boolWords = map[string]bool{
	"1": true, "y": true, "on": true, "yes": true, "true": true, "enable": true,
	"0": false, "n": false, "off": false, "no": false, "false": false, "disable": false,
}

// Bool builds a HandlerFunc storing a single value into dest, accepting
// "1 y on yes true enable" as true and "0 n off no false disable" as false,
// case-insensitively.
func Bool(dest *bool) HandlerFunc {
	return func(ctx *Context, spec *Spec, entry Entry) error {
		value, err := singleValue(spec, entry)
		if err != nil {
			return err
		}
		b, ok := boolWords[fold.String(value)]
		if !ok {
			return &Error{Kind: ErrBadValue, Name: spec.Name, Cause: fmt.Errorf("%q is not a recognized boolean", value)}
		}
		*dest = b
		return nil
	}
}

// IntConstraint optionally restricts an Int directive's value. A Min==Max
// pair (the zero value included) disables range checking, matching the
// spec's "optional range [min,max] when min != max". MultipleOf == 0
// disables the multiple-of check.
type IntConstraint struct {
	Min, Max   int32
	MultipleOf int32
}

// Int builds a HandlerFunc parsing a single value as a 32-bit signed
// integer. A "0x" or "0b" prefix (case-insensitive) selects base 16 or 2;
// otherwise base 10 — leading zeros do NOT imply octal.
func Int(dest *int32, ext IntConstraint) HandlerFunc {
	return func(ctx *Context, spec *Spec, entry Entry) error {
		value, err := singleValue(spec, entry)
		if err != nil {
			return err
		}
		n, err := parseInt32(value)
		if err != nil {
			return &Error{Kind: ErrBadValue, Name: spec.Name, Cause: err}
		}
		if ext.Min != ext.Max && (n < ext.Min || n > ext.Max) {
			return &Error{Kind: ErrValueOutOfRange, Name: spec.Name, Cause: fmt.Errorf("%d not in [%d,%d]", n, ext.Min, ext.Max)}
		}
		if ext.MultipleOf != 0 && n%ext.MultipleOf != 0 {
			return &Error{Kind: ErrValueOutOfRange, Name: spec.Name, Cause: fmt.Errorf("%d is not a multiple of %d", n, ext.MultipleOf)}
		}
		*dest = n
		return nil
	}
}

func parseInt32(value string) (int32, error) {
	neg := false
	rest := value
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "+") {
		rest = rest[1:]
	}

	base := 10
	switch {
	case hasFoldPrefix(rest, "0x"):
		base = 16
		rest = rest[2:]
	case hasFoldPrefix(rest, "0b"):
		base = 2
		rest = rest[2:]
	}

	n, err := strconv.ParseInt(rest, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid integer: %w", value, err)
	}
	if neg {
		n = -n
	}
	return int32(n), nil
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && fold.String(s[:len(prefix)]) == prefix
}

// StringConstraint optionally restricts a String directive's length beyond
// the destination buffer's own capacity. Zero means "no extra check".
type StringConstraint struct {
	MinLen, MaxLen int
}

// String builds a HandlerFunc that copies a single value into dest, a
// caller-provided fixed buffer: values that would overflow the buffer, or
// that fall outside an optional length range, are rejected rather than
// truncated.
func String(dest []byte, ext StringConstraint) HandlerFunc {
	return func(ctx *Context, spec *Spec, entry Entry) error {
		value, err := singleValue(spec, entry)
		if err != nil {
			return err
		}
		if len(value) > len(dest) {
			return &Error{Kind: ErrValueOutOfRange, Name: spec.Name, Cause: fmt.Errorf("value of length %d overflows %d-byte buffer", len(value), len(dest))}
		}
		if ext.MinLen > 0 && len(value) < ext.MinLen || ext.MaxLen > 0 && len(value) > ext.MaxLen {
			return &Error{Kind: ErrValueOutOfRange, Name: spec.Name, Cause: fmt.Errorf("length %d not in [%d,%d]", len(value), ext.MinLen, ext.MaxLen)}
		}
		n := copy(dest, value)
		for i := n; i < len(dest); i++ {
			dest[i] = 0
		}
		return nil
	}
}

// EnumValue is one (name, value) pair an Enum directive may resolve to.
type EnumValue struct {
	Name  string
	Value int
}

// Enum builds a HandlerFunc mapping a single identifier value,
// case-insensitively, to an integer via mapping.
func Enum(dest *int, mapping []EnumValue) HandlerFunc {
	return func(ctx *Context, spec *Spec, entry Entry) error {
		value, err := singleValue(spec, entry)
		if err != nil {
			return err
		}
		folded := fold.String(value)
		for _, m := range mapping {
			if fold.String(m.Name) == folded {
				*dest = m.Value
				return nil
			}
		}
		return &Error{Kind: ErrBadValue, Name: spec.Name, Cause: fmt.Errorf("%q is not one of the recognized enum values", value)}
	}
}

// NestedBlock builds a HandlerFunc accepting a `{ ... }` body: it validates
// that the entry carries no values or attributes and does have children,
// then recurses into childSpecs via the shared parser position.
func NestedBlock(childSpecs []*Spec) HandlerFunc {
	return func(ctx *Context, spec *Spec, entry Entry) error {
		if err := validateShape(spec, entry, false, false, true); err != nil {
			return err
		}
		if !entry.HasChildren {
			return &Error{Kind: ErrBadValue, Name: spec.Name, Cause: fmt.Errorf("expected a nested block")}
		}
		return ctx.DispatchChildren(childSpecs)
	}
}
