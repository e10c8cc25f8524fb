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

// Package load resolves configuration file glob patterns on disk and reads
// them into the text Dispatch expects, transparently decompressing files
// stored as .xz.
package load

import (
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ulikunitz/xz"

	"github.com/nganet/accelcfg/internal/collections"
)

// Text expands each of patterns against the filesystem rooted at root using
// doublestar glob syntax (so "conf.d/**/*.cfg" matches recursively),
// concatenating every matched file's contents in sorted, deduplicated path
// order. A file whose name ends in .xz is decompressed on the fly. Patterns
// that match nothing are silently skipped, matching shell glob semantics.
func Text(root string, patterns []string) (string, error) {
	seen := make(collections.Set[string])
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return "", &globError{pattern: pattern}
		}
		matches, err := doublestar.Glob(os.DirFS(root), pattern)
		if err != nil {
			return "", err
		}
		seen.AddSlice(matches)
	}
	paths := seen.SortedValues(strings.Compare)

	var sb strings.Builder
	for _, p := range paths {
		data, err := readFile(root, p)
		if err != nil {
			return "", err
		}
		sb.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

func readFile(root, relPath string) ([]byte, error) {
	f, err := os.DirFS(root).Open(relPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(relPath), ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, err
		}
		r = xzr
	}
	return io.ReadAll(r)
}

type globError struct {
	pattern string
}

func (e *globError) Error() string {
	return "load: invalid glob pattern " + e.pattern
}
