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

// Package pathprofile implements the Ball-Larus path-profiling core: it
// reduces a loop body to an acyclic entry/exit graph, assigns each edge a
// path-count value, extracts a maximum spanning tree, and solves the
// chord increments an instrumentation pass needs to place.
package pathprofile

import (
    `github.com/loopprofile/looptime/internal/graph`
    `github.com/loopprofile/looptime/internal/hostir`
)

// LoopGraph is the acyclic, single-entry/single-exit graph LoopGraphBuilder
// produces: the loop body with the latch-to-header back edge removed. The
// synthetic zero-weight exit-to-entry edge is added separately, by
// AddSyntheticBackEdge.
type LoopGraph struct {
    G     *graph.Graph
    Entry *hostir.Block
    Exit  *hostir.Block
}

// BuildLoopGraph implements LoopGraphBuilder: it keeps only blocks
// reachable backward from the loop's latch (the "proper loop" body, per
// the reachability filter every Ball-Larus construction starts from),
// wires edges between retained blocks, removes the latch->header back
// edge, and returns the resulting acyclic graph. The synthetic exit->entry
// edge is not inserted here; callers add it with AddSyntheticBackEdge.
func BuildLoopGraph(l *hostir.Loop) (*LoopGraph, error) {
    if !l.IsSimplifyForm() {
        return nil, &NotSimplifiedError{Loop: l.Name}
    }

    latch := l.Latch()
    retained := reachableFromLatch(l, latch)

    g := graph.New()

    for _, b := range l.Blocks {
        if retained[b.Id] {
            g.AddNode(b)
        }
    }

    for _, b := range l.Blocks {
        if !retained[b.Id] {
            continue
        }

        for _, s := range b.Succ {
            if retained[s.Id] {
                g.AddEdge(b, s, 1)
            }
        }
    }

    g.RemoveEdge(latch, l.Header)

    if _, cyclic := graph.CycleDetect(g); cyclic {
        return nil, &IrreducibleLoopError{Loop: l.Name}
    }

    return &LoopGraph{G: g, Entry: l.Header, Exit: latch}, nil
}

// AddSyntheticBackEdge inserts the zero-weight exit->entry edge
// PathValues never sees but MaxSpanTree and everything downstream of it
// must: it makes the reduced loop graph eligible to close its own cycle
// back into the spanning tree. Callers run this strictly after
// ComputeEdgeValues, since Val/NumPaths are only meaningful over the
// acyclic graph.
func (self *LoopGraph) AddSyntheticBackEdge() {
    self.G.AddEdge(self.Exit, self.Entry, 0)
}

// reachableFromLatch returns the set of block ids that can reach latch by
// following predecessor edges within the loop body -- the "backward
// reachable from the latch" filter the profiler graph is built from.
func reachableFromLatch(l *hostir.Loop, latch *hostir.Block) map[int]bool {
    inLoop := make(map[int]bool, len(l.Blocks))

    for _, b := range l.Blocks {
        inLoop[b.Id] = true
    }

    seen := map[int]bool{latch.Id: true}
    stack := []*hostir.Block{latch}

    for len(stack) > 0 {
        b := stack[len(stack)-1]
        stack = stack[:len(stack)-1]

        for _, p := range b.Pred {
            if inLoop[p.Id] && !seen[p.Id] {
                seen[p.Id] = true
                stack = append(stack, p)
            }
        }
    }

    return seen
}
