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

// Package examplemod is a reference module exercising every stock handler
// in config: Int, Bool, String, Enum, and a nested block. It exists as a
// worked example for authors writing their own modules, and as a fixture
// for coordinator and CLI tests.
package examplemod

import (
	"math"

	"github.com/nganet/accelcfg/config"
	"github.com/nganet/accelcfg/coordinator"
)

// LogLevel mirrors the "log_level" enum directive.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Config holds the values this module's directives write into.
type Config struct {
	Enabled   bool
	QueueSize int32
	Name      [32]byte
	LogLevel  LogLevel

	Pool struct {
		Workers int32
		MinSize int32
	}
}

// New builds the module's schema bound to cfg, and wraps it in a
// coordinator.Module named "example". Callers register the returned module
// with a coordinator.Coordinator.
func New(cfg *Config) *coordinator.Module {
	defaultQueue := "64"

	poolSpec := &config.Spec{Name: "workers", Handler: config.Int(&cfg.Pool.Workers, config.IntConstraint{Min: 1, Max: 256})}
	minSizeSpec := &config.Spec{Name: "min_size", Handler: config.Int(&cfg.Pool.MinSize, config.IntConstraint{Min: 0}), AllowNone: true}

	poolSpec.Doc = "number of worker goroutines in the pool"
	minSizeSpec.Doc = "minimum pool size kept warm; defaults to 0 if absent"

	specs := []*config.Spec{
		{Name: "enabled", Doc: "turns the module on", Handler: config.Bool(&cfg.Enabled), AllowNone: true},
		{Name: "queue_size", Doc: "pending-request queue capacity, multiple of 8", Handler: config.Int(&cfg.QueueSize, config.IntConstraint{Min: 1, Max: math.MaxInt32, MultipleOf: 8}), Default: &defaultQueue},
		{Name: "name", Doc: "up to 32 bytes, zero-padded", Handler: config.String(cfg.Name[:], config.StringConstraint{MaxLen: len(cfg.Name)}), AllowNone: true},
		{
			Name: "log_level",
			Doc:  "one of error, warn, info, debug",
			Handler: config.Enum((*int)(&cfg.LogLevel), []config.EnumValue{
				{Name: "error", Value: int(LogLevelError)},
				{Name: "warn", Value: int(LogLevelWarn)},
				{Name: "info", Value: int(LogLevelInfo)},
				{Name: "debug", Value: int(LogLevelDebug)},
			}),
			AllowNone: true,
		},
		{Name: "pool", Doc: "nested worker-pool settings", Handler: config.NestedBlock([]*config.Spec{poolSpec, minSizeSpec}), AllowNone: true},
	}

	return coordinator.New("example", specs...)
}
