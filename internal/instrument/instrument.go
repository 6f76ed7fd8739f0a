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

// Package instrument splices the counter-update code a resolved set of
// chord increments implies into a loop's basic blocks.
package instrument

import (
    `fmt`

    `github.com/loopprofile/looptime/internal/graph`
    `github.com/loopprofile/looptime/internal/hostir`
    `github.com/loopprofile/looptime/internal/pathprofile`
    `github.com/loopprofile/looptime/internal/probe`
)

const _PathNumVar = "pathnumptr"

// Instrument implements the Instrumenter component: it allocates the path
// counter in the preheader, zeroes it in the header, splits every chord
// edge with a fresh block that loads, adjusts, and stores the counter, and
// places the header/latch/exit_loop probe calls. enter_loop is declared
// but never called: neither Instrument nor InstrumentProbesOnly emits it.
func Instrument(l *hostir.Loop, lg *pathprofile.LoopGraph, incs pathprofile.Increments, probes *probe.Table) error {
    // Declare/PlaceCtorDtor are idempotent per Table: the first Instrument
    // call for a compilation unit performs them, later calls are no-ops.
    probes.Declare()
    probes.PlaceCtorDtor()

    l.Preheader.InsertFirst(hostir.Instr{Op: "alloca " + _PathNumVar})

    placeProbes(l, probes)

    l.Header.InsertFirst(hostir.Instr{Op: "store 0, " + _PathNumVar})

    latch := l.Latch()

    for _, n := range lg.G.Nodes() {
        for _, e := range lg.G.Successors(n) {
            key := pathprofile.EdgeKey{From: e.From.ID(), To: e.To.ID()}
            inc, ok := incs[key]

            if !ok {
                continue
            }

            if e.From.ID() == lg.Exit.ID() && e.To.ID() == lg.Entry.ID() {
                emitCounterUpdate(latch, inc)
                continue
            }

            splitChord(l, e, inc)
        }
    }

    latch.InsertBeforeTerm(hostir.Instr{Op: fmt.Sprintf("call %s, %s", probe.Path, _PathNumVar)})

    return nil
}

// InstrumentProbesOnly places the header/latch/exit_loop probe calls
// without touching the path counter or any chord: it is what a loop that
// is not innermost gets instead of the full Instrument pipeline, since
// path profiling only ever covers one innermost loop at a time.
func InstrumentProbesOnly(l *hostir.Loop, probes *probe.Table) error {
    probes.Declare()
    probes.PlaceCtorDtor()

    placeProbes(l, probes)

    return nil
}

// placeProbes inserts the header call at the block's first insertion
// point, the latch call before the latch's terminator, and an exit_loop
// call at the first insertion point of every exit block.
func placeProbes(l *hostir.Loop, probes *probe.Table) {
    l.Header.InsertFirst(hostir.Instr{Op: "call " + string(probe.Header)})

    latch := l.Latch()
    latch.InsertBeforeTerm(hostir.Instr{Op: "call " + string(probe.Latch)})

    for _, exit := range l.Exits {
        exit.InsertFirst(hostir.Instr{Op: "call " + string(probe.ExitLoop)})
    }
}

// splitChord implements SplitEdge (original_source/llvm's
// PathProfiler::instrumentPathProfile): it inserts a fresh block between
// the chord's source and destination and gives that new block, not the
// source block itself, the load/add-or-sub/store sequence. A source block
// with more than one successor -- an early-exit branch, say -- must not
// have every one of its outgoing edges see an update meant for only one
// of them, which is what appending to the source block's tail would do.
//
// The synthetic exit->entry chord is the one exception: it has no
// standalone block appropriate to split, since it exists to close the
// reduced graph's cycle, not to model a real control-flow edge. Its
// increment is emitted directly on the latch, immediately before the
// latch's terminator -- see the caller in Instrument.
func splitChord(l *hostir.Loop, e graph.Edge, inc int) {
    from, ok := e.From.(*hostir.Block)

    if !ok {
        return
    }

    to, ok := e.To.(*hostir.Block)

    if !ok {
        return
    }

    mid := &hostir.Block{Id: nextBlockID(l), Name: fmt.Sprintf("%s.%s.split", from.Name, to.Name)}

    from.ReplaceSucc(to, mid)
    mid.TermBranch(to)

    emitCounterUpdate(mid, inc)

    registerBlock(l, mid)
}

// emitCounterUpdate appends the load/add-or-sub/store sequence a chord's
// increment implies to b, immediately before b's terminator.
func emitCounterUpdate(b *hostir.Block, inc int) {
    op := "add"

    if inc < 0 {
        op = "sub"
        inc = -inc
    }

    b.InsertBeforeTerm(
        hostir.Instr{Op: fmt.Sprintf("load %s -> newpathnum", _PathNumVar)},
        hostir.Instr{Op: fmt.Sprintf("%s newpathnum, %d", op, inc)},
        hostir.Instr{Op: "store newpathnum, " + _PathNumVar},
    )
}

// nextBlockID returns an id not already used by any block in l or any of
// its enclosing loops, so a freshly split block never collides with an
// existing graph.Node identity.
func nextBlockID(l *hostir.Loop) int {
    max := 0

    for cur := l; cur != nil; cur = cur.Parent {
        for _, b := range cur.Blocks {
            if b.Id > max {
                max = b.Id
            }
        }
    }

    return max + 1
}

// registerBlock appends b to l.Blocks and to every loop enclosing l, so a
// split block is visible to whichever loop or ancestor loop later walks
// its own Blocks.
func registerBlock(l *hostir.Loop, b *hostir.Block) {
    for cur := l; cur != nil; cur = cur.Parent {
        cur.Blocks = append(cur.Blocks, b)
    }
}
