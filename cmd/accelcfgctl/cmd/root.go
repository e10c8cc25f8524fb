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

// Package cmd implements the accelcfgctl command-line tool: validating
// configuration trees offline, describing a module's schema, and driving
// the start/stop toggle of a running coordinator.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "accelcfgctl",
		Short:        "accelcfgctl",
		Long:         `accelcfgctl validates, describes, and toggles accelerator module configuration.`,
		SilenceUsage: true,
	}

	verbose bool
	logger  = logrus.StandardLogger()
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	})
	return rootCmd.Execute()
}
