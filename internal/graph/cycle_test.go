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
    `testing`

    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`
    `gonum.org/v1/gonum/graph/simple`
    `gonum.org/v1/gonum/graph/topo`
)

func TestCycleDetect_NoCycle(t *testing.T) {
    g := New()
    a, b, c := node(1), node(2), node(3)

    g.AddNode(a)
    g.AddNode(b)
    g.AddNode(c)
    g.AddEdge(a, b, 1)
    g.AddEdge(b, c, 1)

    _, found := CycleDetect(g)
    assert.False(t, found)
}

func TestCycleDetect_FindsWitness(t *testing.T) {
    g := New()
    a, b, c := node(1), node(2), node(3)

    g.AddNode(a)
    g.AddNode(b)
    g.AddNode(c)
    g.AddEdge(a, b, 1)
    g.AddEdge(b, c, 1)
    g.AddEdge(c, a, 1)

    cycle, found := CycleDetect(g)
    require.True(t, found)
    require.Len(t, cycle, 4, "a 3-vertex cycle closes back on its starting vertex")
    assert.Equal(t, cycle[0].ID(), cycle[len(cycle)-1].ID(), "the witness must start and end at the same vertex")

    seen := make(map[int64]bool)

    for _, n := range cycle[:len(cycle)-1] {
        assert.False(t, seen[n.ID()], "witness cycle must not repeat a vertex before closing")
        seen[n.ID()] = true
    }
}

// TestCycleDetect_AgreesWithGonum cross-checks the hand-rolled witness
// algorithm against gonum's Johnson's-algorithm cycle finder: whenever one
// says a cycle exists, so must the other.
func TestCycleDetect_AgreesWithGonum(t *testing.T) {
    g := New()
    gonumG := simple.NewDirectedGraph()

    nodes := []node{1, 2, 3, 4}

    for _, n := range nodes {
        g.AddNode(n)
        gonumG.AddNode(simple.Node(n.ID()))
    }

    edges := [][2]node{{1, 2}, {2, 3}, {3, 4}, {4, 2}}

    for _, e := range edges {
        g.AddEdge(e[0], e[1], 1)
        gonumG.SetEdge(simple.Edge{F: simple.Node(e[0].ID()), T: simple.Node(e[1].ID())})
    }

    _, found := CycleDetect(g)
    cycles := topo.DirectedCyclesIn(gonumG)

    assert.Equal(t, len(cycles) > 0, found)
}
