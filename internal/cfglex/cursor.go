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

// Package cfglex implements the character-level tokenizer (TFSM) for the
// configuration language: a tagged-state machine that turns an input buffer
// into one token at a time, eating whitespace and "#"-to-newline comments
// silently.
package cfglex

import "fmt"

// Cursor is a 1-based line/column position in the source buffer, kept for
// error reporting and debug tracing.
type Cursor struct {
	Line, Column int
}

// CursorInit is the starting position of a fresh input buffer.
var CursorInit = Cursor{Line: 1, Column: 1}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// advance returns the cursor position after consuming ch.
func (c Cursor) advance(ch byte) Cursor {
	if ch == '\n' {
		c.Line++
		c.Column = 1
	} else {
		c.Column++
	}
	return c
}
