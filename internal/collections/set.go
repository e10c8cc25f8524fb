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

// Package collections provides a minimal generic Set, used by the module
// coordinator for duplicate-name detection and by the config loader for
// deduplicating matched glob paths.
package collections

import (
	"iter"
	"maps"
	"slices"
)

// Set is a generic implementation of a mathematical set for comparable types.
// It is implemented as a map with empty struct values for minimal memory usage.
type Set[T comparable] map[T]struct{}

// Add inserts an element into the Set.
// Returns the Set to allow chaining.
func (s Set[T]) Add(elem T) Set[T] {
	s[elem] = struct{}{}
	return s
}

// AddSeq inserts all elements from the given sequence to the Set.
// Returns the Set to allow chaining.
func (s Set[T]) AddSeq(elems iter.Seq[T]) Set[T] {
	for elem := range elems {
		s.Add(elem)
	}
	return s
}

// AddSlice inserts all elements from the given slice to the Set.
// Returns the Set to allow chaining.
func (s Set[T]) AddSlice(elems []T) Set[T] {
	return s.AddSeq(slices.Values(elems))
}

// Contains checks whether an element exists in the Set.
func (s Set[T]) Contains(elem T) bool {
	_, exists := s[elem]
	return exists
}

// All returns a sequence containing all elements in the Set. The order is not
// guaranteed.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

// SortedValues returns a sorted slice containing all elements in the Set.
func (s Set[T]) SortedValues(cmp func(l, r T) int) []T {
	return slices.SortedFunc(s.All(), cmp)
}
