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

package graph

import (
    `github.com/oleiade/lane`
)

// CycleDetect reports whether g contains a cycle and, if so, returns one
// witness cycle as a node sequence starting and ending at the same node.
// The algorithm mirrors TopoOrder's Kahn pass: run it, then chase
// predecessor pointers among the vertices whose indegree never reached
// zero until one repeats.
func CycleDetect(g *Graph) (cycle []Node, found bool) {
    indeg := make(map[int64]int)

    for _, n := range g.Nodes() {
        indeg[n.ID()] = g.Indegree(n)
    }

    q := lane.NewQueue()

    for _, n := range g.Nodes() {
        if indeg[n.ID()] == 0 {
            q.Enqueue(n)
        }
    }

    for !q.Empty() {
        n := q.Dequeue().(Node)

        for _, e := range g.Successors(n) {
            indeg[e.To.ID()]--

            if indeg[e.To.ID()] == 0 {
                q.Enqueue(e.To)
            }
        }
    }

    path := make(map[int64]Node)
    byID := make(map[int64]Node)
    var root Node

    for _, n := range g.Nodes() {
        byID[n.ID()] = n

        if indeg[n.ID()] > 0 {
            root = n

            for _, e := range g.Successors(n) {
                if indeg[e.To.ID()] > 0 {
                    path[e.To.ID()] = n
                }
            }
        }
    }

    if root == nil {
        return nil, false
    }

    visited := make(map[int64]bool)

    for !visited[root.ID()] {
        visited[root.ID()] = true
        next, ok := path[root.ID()]

        if !ok {
            break
        }

        root = next
    }

    var out []Node
    v := root

    for {
        out = append([]Node{v}, out...)
        next, ok := path[v.ID()]

        if !ok || next.ID() == root.ID() {
            break
        }

        v = next
    }

    out = append([]Node{root}, out...)

    return out, true
}
