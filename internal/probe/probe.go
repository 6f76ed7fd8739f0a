/*
 * Copyright 2022 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package probe declares the runtime ABI this engine's instrumentation
// calls into, and places the module constructor/destructor pair that
// initialize and tear down the profiling runtime.
package probe

import (
    `fmt`

    `github.com/loopprofile/looptime/internal/hostir`
)

// Name is one of the seven INSTRUMENT_* runtime entry points.
type Name string

const (
    Initialize Name = "INSTRUMENT_initialize"
    Cleanup    Name = "INSTRUMENT_cleanup"
    EnterLoop  Name = "INSTRUMENT_enter_loop"
    Header     Name = "INSTRUMENT_header"
    Latch      Name = "INSTRUMENT_latch"
    ExitLoop   Name = "INSTRUMENT_exit_loop"
    Path       Name = "INSTRUMENT_path"
)

// all is the fixed probe set every declare pass installs. Header has no
// counterpart in the six-probe ABI this engine's ancestor declared; it is
// carried anyway because the instrumenter places a header call at every
// instrumented loop header.
var all = []Name{Initialize, Cleanup, EnterLoop, Header, Latch, ExitLoop, Path}

const _CtorDtorPriority = 65535

// Table is per-compilation-unit state: which probes have been declared so
// far, and the module-scoped fallback-name counter used when a loop
// carries no source location. It is always constructor-injected, never a
// package-level singleton, so two Engines never share fallback counters.
type Table struct {
    unit     string
    declared map[Name]bool
    nextID   int
    ctorDone bool
}

// NewTable returns an empty Table scoped to the named compilation unit
// (used only for the loop-name fallback format).
func NewTable(unit string) *Table {
    return &Table{unit: unit, declared: make(map[Name]bool)}
}

// Declare marks every probe in the ABI as declared exactly once, mirroring
// Instrument::declare's getOrInsertFunction idempotency, and reports
// whether this call actually performed the (one-time) declaration.
func (self *Table) Declare() bool {
    if self.declared[Initialize] {
        return false
    }

    for _, n := range all {
        self.declared[n] = true
    }

    return true
}

// PlaceCtorDtor reports whether the module-level constructor/destructor
// pair (priority 65535, matching the original's appendToGlobalCtors call)
// still needs to be placed, and marks it placed if so. Instrument and
// InstrumentProbesOnly call it for every loop; only the first call on a
// Table reports needed.
func (self *Table) PlaceCtorDtor() (priority int, needed bool) {
    if self.ctorDone {
        return _CtorDtorPriority, false
    }

    self.ctorDone = true
    return _CtorDtorPriority, true
}

// FallbackName returns a stable per-unit name for a loop with no usable
// source location, in the "<unit>: loop <n>" form.
func (self *Table) FallbackName(l *hostir.Loop) string {
    self.nextID++
    return fmt.Sprintf("%s: loop %d", self.unit, self.nextID)
}
