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

	"github.com/nganet/accelcfg/config/examplemod"
	"github.com/nganet/accelcfg/config/load"
	"github.com/nganet/accelcfg/coordinator"
)

var toggleRoot string
var toggleGlob []string

var toggleCmd = &cobra.Command{
	Use:   "toggle <start|stop>",
	Short: "Drive the reference module's coordinator through its start/stop toggle",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		var cfg examplemod.Config
		co := coordinator.New(logger)
		if err := co.Register(examplemod.New(&cfg)); err != nil {
			return err
		}

		drv := coordinator.NewToggleDriver(co, func() (string, error) {
			return load.Text(toggleRoot, toggleGlob)
		})
		if err := drv.Set(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "toggle: %s (running=%v)\n", drv.Current(), co.Running())
		return nil
	},
}

func init() {
	toggleCmd.Flags().StringVar(&toggleRoot, "root", ".", "configuration root directory used when toggling to start")
	toggleCmd.Flags().StringSliceVar(&toggleGlob, "glob", []string{"**/*.cfg"}, "doublestar glob patterns matched under root")
	rootCmd.AddCommand(toggleCmd)
}
