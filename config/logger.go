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

package config

import "log"

// Logger is the process-wide log sink this package's callers are expected
// to supply; the core never instantiates one itself (see spec §1: log
// sinks are an external collaborator, not re-specified here). *log.Logger
// satisfies this already; so does *logrus.Logger.
type Logger interface {
	Printf(format string, args ...any)
}

// DefaultLogger returns the standard library's global logger, used when a
// caller doesn't care to wire anything more specific.
func DefaultLogger() Logger { return log.Default() }
