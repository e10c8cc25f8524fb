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

// Package config implements the schema-driven dispatch layer: Entry and
// Spec, the Dispatcher that matches parsed entries to registered specs and
// enforces cardinality/defaults, and the stock handlers (Bool, Int, String,
// Enum, nested block) every module can reuse instead of hand-rolling
// parsing logic. It sits on top of the internal tokenizer/parser and is the
// surface modules actually program against.
package config

import (
	"github.com/nganet/accelcfg/internal/cfgerr"
	"github.com/nganet/accelcfg/internal/cfgparse"
)

// Entry is a parsed directive: a name plus its values, attributes, and
// whether it opens a nested block. It is only valid for the duration of the
// handler call that receives it — copy anything you want to retain.
type Entry = cfgparse.Entry

// Attr is one (key, value) attribute pair.
type Attr = cfgparse.Attr

// ErrorKind names one of the error categories the core distinguishes.
type ErrorKind = cfgerr.Kind

// Error kinds, re-exported from the internal error package so callers never
// need to import it directly.
const (
	ErrSyntax             = cfgerr.Syntax
	ErrCapacity           = cfgerr.Capacity
	ErrInvalidIdentifier  = cfgerr.InvalidIdentifier
	ErrUnknownDirective   = cfgerr.UnknownDirective
	ErrDuplicate          = cfgerr.Duplicate
	ErrMissingRequired    = cfgerr.MissingRequired
	ErrValueOutOfRange    = cfgerr.ValueOutOfRange
	ErrBadValue           = cfgerr.BadValue
	ErrAllocationFailure  = cfgerr.AllocationFailure
	ErrLifecycle          = cfgerr.Lifecycle
)

// Error is the typed error every failing operation in this module returns.
type Error = cfgerr.Error

// IsIdentifier reports whether s is a valid directive or attribute-key
// identifier: a non-empty ASCII-letter-led string of letters, digits and
// underscores.
func IsIdentifier(s string) bool { return cfgparse.IsIdentifier(s) }
