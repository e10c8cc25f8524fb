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

package examplemod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nganet/accelcfg/coordinator"
)

func TestExampleModuleFullConfig(t *testing.T) {
	var cfg Config
	m := New(&cfg)

	c := coordinator.New(nil)
	require.NoError(t, c.Register(m))
	require.NoError(t, c.StartAll(`
		enabled yes;
		queue_size 128;
		name "accelerator-0";
		log_level debug;
		pool {
			workers 8;
			min_size 2;
		}
	`))

	assert.True(t, cfg.Enabled)
	assert.EqualValues(t, 128, cfg.QueueSize)
	assert.Equal(t, "accelerator-0", stringFromBuf(cfg.Name[:]))
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.EqualValues(t, 8, cfg.Pool.Workers)
	assert.EqualValues(t, 2, cfg.Pool.MinSize)
}

func TestExampleModuleDefaultsAndOptionalFields(t *testing.T) {
	var cfg Config
	m := New(&cfg)

	c := coordinator.New(nil)
	require.NoError(t, c.Register(m))
	require.NoError(t, c.StartAll(""))

	assert.False(t, cfg.Enabled)
	assert.EqualValues(t, 64, cfg.QueueSize, "queue_size must fall back to its default")
	assert.Equal(t, LogLevelError, cfg.LogLevel, "log_level zero value is error")
}

func stringFromBuf(buf []byte) string {
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n])
}
