// Copyright 2022 CUE Authors
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

// Package stats collects counters for key events during elaboration:
// arena growth, scope materialization, and lookup activity. It has no
// effect on elaboration itself; it exists so a driver can report on
// Compilation behavior without the core needing a logging dependency.
package stats

import "fmt"

// Counts holds counters for a single Compilation's lifetime.
type Counts struct {
	// Allocations is the number of arena-backed symbols created.
	Allocations int64

	// ScopesMaterialized counts scope-kind symbols allocated from the
	// Compilation's arena (Compilation.AllocScope).
	ScopesMaterialized int64

	// Lookups counts calls to the Symbol/Scope engine's Lookup.
	Lookups int64

	// WildcardImportsConsulted counts wildcard imports recorded through
	// the Compilation's TrackImport.
	WildcardImportsConsulted int64

	// PackedTypesCached counts distinct (width, flags) packed-array types
	// allocated by the type registry.
	PackedTypesCached int64

	// PackedTypeHits counts calls to GetPacked that returned a
	// previously-cached type.
	PackedTypeHits int64

	// FramesPushed / FramesPopped track the evaluation context's frame
	// stack traffic.
	FramesPushed int64
	FramesPopped int64

	// DiagnosticsEmitted counts semantic diagnostics appended through
	// Compilation.AddDiag. Parse diagnostics, and semantic diagnostics
	// that the registries append directly, are not counted.
	DiagnosticsEmitted int64
}

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	c.Allocations += other.Allocations
	c.ScopesMaterialized += other.ScopesMaterialized
	c.Lookups += other.Lookups
	c.WildcardImportsConsulted += other.WildcardImportsConsulted
	c.PackedTypesCached += other.PackedTypesCached
	c.PackedTypeHits += other.PackedTypeHits
	c.FramesPushed += other.FramesPushed
	c.FramesPopped += other.FramesPopped
	c.DiagnosticsEmitted += other.DiagnosticsEmitted
}

// String renders a short multi-line report, used by cmd/svc's --stats
// flag.
func (c Counts) String() string {
	return fmt.Sprintf(`Allocations:        %d
ScopesMaterialized: %d
Lookups:            %d (wildcard imports tracked: %d)
PackedTypes:        %d cached, %d cache hits
Frames:             %d pushed, %d popped
Diagnostics:        %d`,
		c.Allocations, c.ScopesMaterialized,
		c.Lookups, c.WildcardImportsConsulted,
		c.PackedTypesCached, c.PackedTypeHits,
		c.FramesPushed, c.FramesPopped,
		c.DiagnosticsEmitted)
}
