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
    `github.com/oleiade/lane`

    `github.com/loopprofile/looptime/internal/graph`
)

// SpanningTree is the maximum spanning tree MaxSpanningTree extracts from
// a LoopGraph's undirected view. edges records, per undirected edge
// (keyed on the smaller-id-first EdgeKey), whether that edge belongs to
// the tree; every graph edge not in edges is a chord IncrementSolver
// must place a counter update on.
type SpanningTree struct {
    edges map[EdgeKey]bool
}

// IsTreeEdge reports whether the directed edge from -> to belongs to the
// spanning tree, regardless of the direction it was discovered in.
func (self *SpanningTree) IsTreeEdge(from graph.Node, to graph.Node) bool {
    return self.edges[undirected(from.ID(), to.ID())]
}

func undirected(a int64, b int64) EdgeKey {
    if a < b {
        return EdgeKey{From: a, To: b}
    }

    return EdgeKey{From: b, To: a}
}

type neighbor struct {
    node   graph.Node
    weight int
}

// MaxSpanningTree implements MaxSpanTree: Prim's algorithm over the
// undirected view of lg.G (successor and predecessor edges both count as
// incident), using each edge's Ball-Larus value as its weight, breaking
// ties toward whichever candidate a lane.PQueue (max-priority) surfaces
// first and re-validating the popped weight against the live best-known
// distance, since a max-priority queue does not itself dedupe stale
// entries.
func MaxSpanningTree(lg *LoopGraph, ev *EdgeValues) *SpanningTree {
    adjacency := make(map[int64][]neighbor)
    byID := make(map[int64]graph.Node)

    for _, n := range lg.G.Nodes() {
        byID[n.ID()] = n
    }

    for _, n := range lg.G.Nodes() {
        for _, e := range lg.G.Successors(n) {
            w := ev.Val[keyOf(e)]
            adjacency[n.ID()] = append(adjacency[n.ID()], neighbor{node: e.To, weight: w})
            adjacency[e.To.ID()] = append(adjacency[e.To.ID()], neighbor{node: n, weight: w})
        }
    }

    dist := make(map[int64]int)
    parent := make(map[int64]int64)
    inTree := make(map[int64]bool)
    tree := &SpanningTree{edges: make(map[EdgeKey]bool)}

    nodes := lg.G.Nodes()

    if len(nodes) == 0 {
        return tree
    }

    first := nodes[0].ID()
    dist[first] = 1

    pq := lane.NewPQueue(lane.MAXPQ)
    pq.Push(first, 1)

    for pq.Size() > 0 {
        idv, prio := pq.Pop()
        id := idv.(int64)

        if inTree[id] || prio != dist[id] {
            continue
        }

        inTree[id] = true

        if p, ok := parent[id]; ok {
            tree.edges[undirected(id, p)] = true
        }

        for _, nb := range adjacency[id] {
            if inTree[nb.node.ID()] {
                continue
            }

            if cur, ok := dist[nb.node.ID()]; !ok || nb.weight > cur {
                dist[nb.node.ID()] = nb.weight
                parent[nb.node.ID()] = id
                pq.Push(nb.node.ID(), nb.weight)
            }
        }
    }

    return tree
}
