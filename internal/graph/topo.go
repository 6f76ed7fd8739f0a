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

// TopoOrder returns g's nodes in topological order via Kahn's algorithm.
// The second result is false if g contains a cycle, in which case the
// slice is nil.
func TopoOrder(g *Graph) ([]Node, bool) {
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

    var order []Node

    for !q.Empty() {
        n := q.Dequeue().(Node)
        order = append(order, n)

        for _, e := range g.Successors(n) {
            indeg[e.To.ID()]--

            if indeg[e.To.ID()] == 0 {
                q.Enqueue(e.To)
            }
        }
    }

    if len(order) != len(g.Nodes()) {
        return nil, false
    }

    return order, true
}

// ReverseTopoOrder returns g's nodes in reverse topological order, the
// traversal PathValues needs to accumulate Val/NumPaths bottom-up.
func ReverseTopoOrder(g *Graph) ([]Node, bool) {
    order, ok := TopoOrder(g)

    if !ok {
        return nil, false
    }

    out := make([]Node, len(order))

    for i, n := range order {
        out[len(order)-1-i] = n
    }

    return out, true
}
