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
    `github.com/loopprofile/looptime/internal/graph`
)

// EdgeKey identifies a directed edge by its endpoint ids, usable as a map
// key (graph.Edge itself embeds interfaces and is not comparable).
type EdgeKey struct {
    From int64
    To   int64
}

func keyOf(e graph.Edge) EdgeKey {
    return EdgeKey{From: e.From.ID(), To: e.To.ID()}
}

// EdgeValues holds the Ball-Larus Val() assignment for every edge in a
// LoopGraph, plus each vertex's NumPaths count.
type EdgeValues struct {
    Val      map[EdgeKey]int
    NumPaths map[int64]int
    Total    int
}

// ComputeEdgeValues implements PathValues: it walks lg.G in reverse
// topological order (the exit's NumPaths is 1 by definition, since an
// edgeless vertex has exactly one path, the empty one, to itself) and
// assigns each edge v->w the running sum of the path counts of v's
// successors that come before w in adjacency order.
func ComputeEdgeValues(lg *LoopGraph) (*EdgeValues, error) {
    order, ok := graph.ReverseTopoOrder(lg.G)

    if !ok {
        return nil, &IrreducibleLoopError{Loop: lg.Entry.Name}
    }

    ev := &EdgeValues{
        Val:      make(map[EdgeKey]int),
        NumPaths: make(map[int64]int),
    }

    for _, v := range order {
        succ := lg.G.Successors(v)

        if len(succ) == 0 {
            ev.NumPaths[v.ID()] = 1
            continue
        }

        total := 0

        for _, e := range succ {
            ev.Val[keyOf(e)] = total
            total += ev.NumPaths[e.To.ID()]
        }

        ev.NumPaths[v.ID()] = total
    }

    ev.Total = ev.NumPaths[lg.Entry.ID()]

    return ev, nil
}
