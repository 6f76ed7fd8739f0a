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
    `fmt`

    `github.com/oleiade/lane`

    `github.com/loopprofile/looptime/internal/graph`
)

// Increments maps each chord (a non-tree edge of the LoopGraph) to the
// signed amount instrumentation must add to the running path counter when
// control crosses it.
type Increments map[EdgeKey]int

// treeAdj is an undirected adjacency list over spanning-tree edges,
// remembering each edge's original directed form so a tree-path walk can
// tell which direction it crossed the edge in.
type treeAdj map[int64][]graph.Edge

func buildTreeAdjacency(lg *LoopGraph, tree *SpanningTree) treeAdj {
    adj := make(treeAdj)

    for _, n := range lg.G.Nodes() {
        for _, e := range lg.G.Successors(n) {
            if !tree.IsTreeEdge(e.From, e.To) {
                continue
            }

            adj[e.From.ID()] = append(adj[e.From.ID()], e)
            adj[e.To.ID()] = append(adj[e.To.ID()], e)
        }
    }

    return adj
}

// treePath returns the sequence of tree edges on the unique path from src
// to dst, via a BFS over the undirected tree adjacency. ok is false only
// if dst is unreachable from src within the tree, which cannot happen for
// a spanning tree of a connected graph.
func treePath(adj treeAdj, src graph.Node, dst graph.Node) (path []graph.Edge, ok bool) {
    type step struct {
        edge graph.Edge
        from int64
    }

    prev := make(map[int64]step)
    visited := map[int64]bool{src.ID(): true}

    q := lane.NewQueue()
    q.Enqueue(src)

    for !q.Empty() {
        cur := q.Dequeue().(graph.Node)

        if cur.ID() == dst.ID() {
            break
        }

        for _, e := range adj[cur.ID()] {
            other := e.To

            if other.ID() == cur.ID() {
                other = e.From
            }

            if visited[other.ID()] {
                continue
            }

            visited[other.ID()] = true
            prev[other.ID()] = step{edge: e, from: cur.ID()}
            q.Enqueue(other)
        }
    }

    id := dst.ID()

    for id != src.ID() {
        s, found := prev[id]

        if !found {
            return nil, false
        }

        path = append([]graph.Edge{s.edge}, path...)
        id = s.from
    }

    return path, true
}

// SolveIncrements implements IncrementSolver: for every chord (edge not
// in tree), it walks the unique tree path between the chord's endpoints,
// accumulating -Val(e) for every tree edge crossed in its original
// direction and +Val(e) for every tree edge crossed reversed, then adds
// the chord's own value last. Zero increments are omitted.
func SolveIncrements(lg *LoopGraph, ev *EdgeValues, tree *SpanningTree) Increments {
    adj := buildTreeAdjacency(lg, tree)
    inc := make(Increments)

    for _, n := range lg.G.Nodes() {
        for _, e := range lg.G.Successors(n) {
            if tree.IsTreeEdge(e.From, e.To) {
                continue
            }

            path, ok := treePath(adj, e.From, e.To)

            if !ok {
                panic(&InvariantViolation{Detail: fmt.Sprintf("chord %d -> %d has no path through the spanning tree", e.From.ID(), e.To.ID())})
            }

            sum := 0
            cur := e.From.ID()

            for _, te := range path {
                w := ev.Val[keyOf(te)]

                if te.From.ID() == cur {
                    sum -= w
                    cur = te.To.ID()
                } else {
                    sum += w
                    cur = te.From.ID()
                }
            }

            sum += ev.Val[keyOf(e)]

            if sum != 0 {
                inc[keyOf(e)] = sum
            }
        }
    }

    return inc
}
