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

// Package graph is a small directed-graph library over an opaque node
// handle. It replaces the pointer-graph-plus-inheritance-chain shape of
// the system this engine is modeled on with one flat adjacency structure,
// shared by every algorithm that needs it.
package graph

// Node is the opaque handle every graph algorithm in this package
// operates over. It is deliberately shaped to match
// gonum.org/v1/gonum/graph.Node so callers can host the same identifiers
// inside gonum tooling for cross-checking.
type Node interface {
    ID() int64
}

// Edge is a directed edge between two nodes carrying an integer weight.
// Weight is unused by Graph/TopoOrder/CycleDetect and is populated by
// pathprofile when it builds the edge-value graph.
type Edge struct {
    From   Node
    To     Node
    Weight int
}

// Graph is a directed multigraph-free adjacency structure: at most one
// edge per ordered (from, to) pair. Successor order is insertion order,
// not map order, so every traversal over a Graph is reproducible.
type Graph struct {
    nodes    map[int64]Node
    order    []int64
    succ     map[int64][]Edge
    pred     map[int64][]Edge
    indegree map[int64]int
}

// New returns an empty Graph.
func New() *Graph {
    return &Graph{
        nodes:    make(map[int64]Node),
        succ:     make(map[int64][]Edge),
        pred:     make(map[int64][]Edge),
        indegree: make(map[int64]int),
    }
}

// AddNode inserts n if it is not already present. Re-adding an existing
// node is a no-op.
func (self *Graph) AddNode(n Node) {
    id := n.ID()

    if _, ok := self.nodes[id]; ok {
        return
    }

    self.nodes[id] = n
    self.order = append(self.order, id)
}

// AddEdge inserts a directed edge from -> to with the given weight. Both
// endpoints must already have been added with AddNode. Re-adding an
// existing (from, to) pair replaces its weight without disturbing
// adjacency order, and isNew reports false. connect's idempotency is part
// of the graph contract: callers that only care whether the edge already
// existed can use the return value instead of a separate HasEdge check.
func (self *Graph) AddEdge(from Node, to Node, weight int) (isNew bool) {
    fid, tid := from.ID(), to.ID()

    for i, e := range self.succ[fid] {
        if e.To.ID() == tid {
            self.succ[fid][i].Weight = weight
            self.replacePredWeight(fid, tid, weight)
            return false
        }
    }

    self.succ[fid] = append(self.succ[fid], Edge{From: from, To: to, Weight: weight})
    self.pred[tid] = append(self.pred[tid], Edge{From: from, To: to, Weight: weight})
    self.indegree[tid]++

    return true
}

func (self *Graph) replacePredWeight(fid int64, tid int64, weight int) {
    for i, e := range self.pred[tid] {
        if e.From.ID() == fid {
            self.pred[tid][i].Weight = weight
            return
        }
    }
}

// RemoveEdge deletes the directed edge from -> to, if present.
func (self *Graph) RemoveEdge(from Node, to Node) {
    fid, tid := from.ID(), to.ID()

    if removeEdge(self.succ, fid, tid) {
        removeEdge(self.pred, tid, fid)
        self.indegree[tid]--
    }
}

func removeEdge(m map[int64][]Edge, key int64, other int64) bool {
    edges := m[key]

    for i, e := range edges {
        var target int64

        if e.To.ID() == other {
            target = e.To.ID()
        } else if e.From.ID() == other {
            target = e.From.ID()
        } else {
            continue
        }

        if target == other {
            m[key] = append(edges[:i], edges[i+1:]...)
            return true
        }
    }

    return false
}

// RemoveNode deletes n and cascades to remove every edge incident to it,
// both outgoing and incoming, keeping succ/pred/indegree/order consistent.
// Removing a node not present is a no-op.
func (self *Graph) RemoveNode(n Node) {
    id := n.ID()

    if _, ok := self.nodes[id]; !ok {
        return
    }

    for _, e := range append([]Edge{}, self.succ[id]...) {
        self.RemoveEdge(e.From, e.To)
    }

    for _, e := range append([]Edge{}, self.pred[id]...) {
        self.RemoveEdge(e.From, e.To)
    }

    delete(self.nodes, id)
    delete(self.succ, id)
    delete(self.pred, id)
    delete(self.indegree, id)

    for i, oid := range self.order {
        if oid == id {
            self.order = append(self.order[:i], self.order[i+1:]...)
            break
        }
    }
}

// Contains reports whether n has been added to the graph.
func (self *Graph) Contains(n Node) bool {
    _, ok := self.nodes[n.ID()]
    return ok
}

// AllEdges returns every edge in the graph, ordered by source node
// insertion order and then by each source's successor insertion order.
func (self *Graph) AllEdges() []Edge {
    var out []Edge

    for _, id := range self.order {
        out = append(out, self.succ[id]...)
    }

    return out
}

// Nodes returns every node in insertion order.
func (self *Graph) Nodes() []Node {
    out := make([]Node, 0, len(self.order))

    for _, id := range self.order {
        out = append(out, self.nodes[id])
    }

    return out
}

// Successors returns the outgoing edges of n, in insertion order.
func (self *Graph) Successors(n Node) []Edge {
    return self.succ[n.ID()]
}

// Predecessors returns the incoming edges of n, in insertion order.
func (self *Graph) Predecessors(n Node) []Edge {
    return self.pred[n.ID()]
}

// Indegree returns the number of incoming edges of n.
func (self *Graph) Indegree(n Node) int {
    return self.indegree[n.ID()]
}

// Outdegree returns the number of outgoing edges of n.
func (self *Graph) Outdegree(n Node) int {
    return len(self.succ[n.ID()])
}

// Entries returns every node with zero indegree.
func (self *Graph) Entries() []Node {
    var out []Node

    for _, id := range self.order {
        if self.indegree[id] == 0 {
            out = append(out, self.nodes[id])
        }
    }

    return out
}

// Exits returns every node with zero outdegree.
func (self *Graph) Exits() []Node {
    var out []Node

    for _, id := range self.order {
        if len(self.succ[id]) == 0 {
            out = append(out, self.nodes[id])
        }
    }

    return out
}

// EdgeWeight returns the weight of the edge from -> to and whether it
// exists.
func (self *Graph) EdgeWeight(from Node, to Node) (int, bool) {
    for _, e := range self.succ[from.ID()] {
        if e.To.ID() == to.ID() {
            return e.Weight, true
        }
    }

    return 0, false
}

// HasEdge reports whether a directed edge from -> to exists.
func (self *Graph) HasEdge(from Node, to Node) bool {
    _, ok := self.EdgeWeight(from, to)
    return ok
}
