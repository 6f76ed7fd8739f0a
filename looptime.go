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

// Package looptime instruments innermost loops with Ball-Larus path
// counters and writes a PathProfile.json report describing every
// discovered path.
package looptime

import (
    `os`

    `github.com/loopprofile/looptime/internal/config`
    `github.com/loopprofile/looptime/internal/hostir`
    `github.com/loopprofile/looptime/internal/instrument`
    `github.com/loopprofile/looptime/internal/pathprofile`
    `github.com/loopprofile/looptime/internal/probe`
    `github.com/loopprofile/looptime/internal/report`
)

// Token is the pipeline-registration name a host compiler dispatches this
// pass under.
const Token = "looptime"

// Unit instruments every innermost loop of one compilation unit and
// accumulates a single PathProfile.json report across all of them.
type Unit struct {
    engine  *pathprofile.Engine
    probes  *probe.Table
    doc     *report.Document
    opts    config.Options
}

// NewUnit returns a Unit named after the compilation unit (used only for
// the loop fallback-name format), reading its tunables from the
// environment.
func NewUnit(name string) *Unit {
    opts := config.FromEnv()
    probes := probe.NewTable(name)

    return &Unit{
        engine: pathprofile.NewEngine(opts, probes),
        probes: probes,
        opts:   opts,
        doc:    &report.Document{BasicBlocks: map[string][]string{}, Paths: map[string][]string{}},
    }
}

// InstrumentLoop runs the full pipeline over l: it builds the reduced
// loop graph, solves the chord increments, splices counter-update code
// into l, and merges l's paths into the Unit's accumulated report. A
// *pathprofile.PathOverflowWarning is returned alongside a successfully
// instrumented loop and is safe for the caller to log and ignore.
func (self *Unit) InstrumentLoop(l *hostir.Loop) error {
    result, runErr := self.engine.Run(l)

    if result == nil {
        if _, skipped := runErr.(*pathprofile.NonInnermostSkip); skipped {
            if err := instrument.InstrumentProbesOnly(l, self.probes); err != nil {
                return err
            }
        }

        return runErr
    }

    if err := instrument.Instrument(l, result.Graph, result.Incs, self.probes); err != nil {
        return err
    }

    self.merge(l.Name, report.Build(l, result.Graph, result.Vals))

    return runErr
}

// merge folds one loop's report into the Unit's accumulated document.
// Ball-Larus path numbers are only unique within the loop that produced
// them, so two loops both have a path "0" -- merging Paths under the bare
// path number would silently collide entries from different loops. This
// namespaces each merged key by its owning loop's name; a Unit
// instrumenting a single loop still sees the bare BasicBlocks names the
// external report schema describes.
func (self *Unit) merge(loopName string, doc *report.Document) {
    for k, v := range doc.BasicBlocks {
        self.doc.BasicBlocks[k] = v
    }

    for k, v := range doc.Paths {
        self.doc.Paths[loopName+"#"+k] = v
    }
}

// WriteReport serializes the Unit's accumulated report to its configured
// path (LOOPTIME_REPORT_PATH, default "PathProfile.json").
func (self *Unit) WriteReport() error {
    data, err := report.Marshal(self.doc)

    if err != nil {
        return err
    }

    return os.WriteFile(self.opts.ReportPath, data, 0644)
}
