// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the clock and allocator state when some piece of work
// begins, so that its cost can be logged once it ends.
type PerfStats struct {
	start  time.Time
	allocs uint64
	gcs    uint32
}

// NewPerfStats takes a snapshot now.
func NewPerfStats() *PerfStats {
	stats := readMemStats()
	return &PerfStats{time.Now(), stats.TotalAlloc, stats.NumGC}
}

// Elapsed returns the time since the snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Log a debug message annotated with the time taken, memory allocated and
// collections run since the snapshot.  This does nothing unless debug logging
// is enabled.
func (p *PerfStats) Log(format string, args ...any) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	//
	stats := readMemStats()
	//
	log.WithFields(log.Fields{
		"elapsed": p.Elapsed(),
		"kb":      (stats.TotalAlloc - p.allocs) / 1024,
		"gc":      stats.NumGC - p.gcs,
	}).Debugf(format, args...)
}

func readMemStats() *runtime.MemStats {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	//
	return &stats
}
