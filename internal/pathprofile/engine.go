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

package pathprofile

import (
    `github.com/loopprofile/looptime/internal/config`
    `github.com/loopprofile/looptime/internal/hostir`
    `github.com/loopprofile/looptime/internal/probe`
)

type runState int

const (
    stateBuild runState = iota
    stateValues
    stateSpanningTree
    stateIncrements
    stateDone
)

// Result bundles everything a caller needs after Run: the reduced loop
// graph, its edge values, spanning tree, and the increments an
// Instrumenter should apply.
type Result struct {
    Loop  *hostir.Loop
    Graph *LoopGraph
    Vals  *EdgeValues
    Tree  *SpanningTree
    Incs  Increments
}

// Engine runs the Ball-Larus pipeline over one loop at a time. It owns no
// package-level state: Options and the probe Table are constructor
// arguments, so two Engines never interfere with each other's fallback
// counters or path-overflow thresholds.
type Engine struct {
    opts   config.Options
    probes *probe.Table
    state  runState
}

// NewEngine returns an Engine reading its tunables from opts and sharing
// probes with any other Engine instrumenting the same compilation unit.
func NewEngine(opts config.Options, probes *probe.Table) *Engine {
    return &Engine{opts: opts, probes: probes}
}

// Probes returns the probe.Table this Engine was constructed with, so a
// caller can pass it on to the Instrumenter.
func (self *Engine) Probes() *probe.Table {
    return self.probes
}

// Run drives one loop through LoopGraphBuilder, PathValues, MaxSpanTree,
// and IncrementSolver, in that order, returning a PathOverflowWarning
// (not fatal) if the loop's total path count exceeds the configured
// counter width. A loop that is not innermost (it encloses another
// loop's header) never enters that pipeline at all: Run returns a nil
// Result alongside a *NonInnermostSkip, which is not a failure -- the
// caller still owes the loop its header/latch/exit_loop probes.
func (self *Engine) Run(l *hostir.Loop) (*Result, error) {
    if l.Name == "" {
        l.Name = self.probes.FallbackName(l)
    }

    if !l.Innermost {
        return nil, &NonInnermostSkip{Loop: l.Name}
    }

    lg, err := BuildLoopGraph(l)

    if err != nil {
        return nil, err
    }

    self.state = stateValues

    ev, err := ComputeEdgeValues(lg)

    if err != nil {
        return nil, err
    }

    self.state = stateSpanningTree
    lg.AddSyntheticBackEdge()
    ev.Val[EdgeKey{From: lg.Exit.ID(), To: lg.Entry.ID()}] = 0
    tree := MaxSpanningTree(lg, ev)

    self.state = stateIncrements
    incs := SolveIncrements(lg, ev, tree)

    self.state = stateDone

    result := &Result{Loop: l, Graph: lg, Vals: ev, Tree: tree, Incs: incs}

    if int64(ev.Total) > self.opts.MaxPathCount {
        return result, &PathOverflowWarning{Loop: l.Name, PathCount: int64(ev.Total)}
    }

    return result, nil
}
