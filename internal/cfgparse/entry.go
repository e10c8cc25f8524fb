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

// Package cfgparse implements the PFSM, the token-driven entry parser that
// accumulates one directive — name, values, attributes, "has children" flag
// — per call to ParseEntry. It sits directly on top of cfglex: it keeps one
// token of look-ahead rather than true peek, per the spec's own suggested
// simplification of the original's prev-token/prev-literal bookkeeping.
package cfgparse

// MaxVals is the maximum number of values one entry may carry.
const MaxVals = 16

// MaxAttrs is the maximum number of attributes one entry may carry.
const MaxAttrs = 16

// Attr is one (key, value) attribute pair. Keys are identifiers; values are
// arbitrary strings. Duplicates are accepted at parse time.
type Attr struct {
	Key   string
	Value string
}

// Entry is a parsed directive: a name plus its values, attributes, and
// whether it opens a nested `{ ... }` block. An Entry is only valid until
// the next call to ParseEntry on the same Parser — copy anything you want
// to retain past that point.
type Entry struct {
	Name        string
	Values      []string
	Attrs       []Attr
	HasChildren bool
}

// IsZero reports whether e is the empty Entry ParseEntry returns at a clean
// end of input (no name was ever set).
func (e Entry) IsZero() bool { return e.Name == "" }
