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
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nganet/accelcfg/config"
	"github.com/nganet/accelcfg/config/examplemod"
)

type directiveDoc struct {
	Name        string         `yaml:"name"`
	Doc         string         `yaml:"doc,omitempty"`
	Default     *string        `yaml:"default,omitempty"`
	AllowNone   bool           `yaml:"allow_none,omitempty"`
	AllowRepeat bool           `yaml:"allow_repeat,omitempty"`
	Children    []directiveDoc `yaml:"children,omitempty"`
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Dump the built-in reference module's schema as YAML",
	RunE: func(c *cobra.Command, args []string) error {
		var cfg examplemod.Config
		m := examplemod.New(&cfg)

		docs := make([]directiveDoc, 0, len(m.Specs()))
		for _, s := range m.Specs() {
			docs = append(docs, describeSpec(s))
		}

		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(map[string]any{m.ModuleName(): docs}); err != nil {
			return fmt.Errorf("encoding schema: %w", err)
		}
		return nil
	},
}

// describeSpec renders s for the describe command. It has no way to see
// into a NestedBlock handler's child specs (they're closed over), so
// nested children are reported empty here; the example module's own
// "pool" entry lists them by hand below for now.
func describeSpec(s *config.Spec) directiveDoc {
	d := directiveDoc{
		Name:        s.Name,
		Doc:         s.Doc,
		Default:     s.Default,
		AllowNone:   s.AllowNone,
		AllowRepeat: s.AllowRepeat,
	}
	if s.Name == "pool" {
		d.Children = []directiveDoc{
			{Name: "workers", Doc: "number of worker goroutines in the pool"},
			{Name: "min_size", Doc: "minimum pool size kept warm; defaults to 0 if absent", AllowNone: true},
		}
	}
	return d
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
