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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nganet/accelcfg/config/examplemod"
	"github.com/nganet/accelcfg/config/load"
	"github.com/nganet/accelcfg/coordinator"
)

var validatePatterns []string

var validateCmd = &cobra.Command{
	Use:   "validate <root>...",
	Short: "Validate one or more configuration trees against the built-in schema",
	Long: `validate loads every file matching --glob under each given root
(an xz-compressed file is decompressed transparently), parses and
dispatches it against the reference module schema, and reports the first
error per root. Roots are validated concurrently; validate exits non-zero
if any root fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, roots []string) error {
		g := new(errgroup.Group)
		results := make([]error, len(roots))
		for i, root := range roots {
			i, root := i, root
			g.Go(func() error {
				results[i] = validateRoot(root)
				return nil
			})
		}
		_ = g.Wait()

		failed := false
		for i, root := range roots {
			if results[i] != nil {
				failed = true
				fmt.Printf("%s: FAIL: %v\n", root, results[i])
			} else {
				fmt.Printf("%s: OK\n", root)
			}
		}
		if failed {
			return fmt.Errorf("one or more configuration roots failed validation")
		}
		return nil
	},
}

func validateRoot(root string) error {
	text, err := load.Text(root, validatePatterns)
	if err != nil {
		return fmt.Errorf("loading: %w", err)
	}

	var cfg examplemod.Config
	c := coordinator.New(logger)
	if err := c.Register(examplemod.New(&cfg)); err != nil {
		return err
	}
	if err := c.StartAll(text); err != nil {
		return err
	}
	c.StopAll()
	return nil
}

func init() {
	validateCmd.Flags().StringSliceVar(&validatePatterns, "glob", []string{"**/*.cfg"}, "doublestar glob patterns matched under each root")
	rootCmd.AddCommand(validateCmd)
}
