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
    `testing`

    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`

    `github.com/loopprofile/looptime/internal/fixtures`
    `github.com/loopprofile/looptime/internal/hostir`
)

func countEdges(lg *LoopGraph) int {
    n := 0

    for _, node := range lg.G.Nodes() {
        n += len(lg.G.Successors(node))
    }

    return n
}

func TestMaxSpanningTree_SizeIsVerticesMinusOne(t *testing.T) {
    scenarios := map[string]func() *hostir.Loop{
        "diamond":                fixtures.Diamond,
        "linear":                 fixtures.Linear,
        "two-diamonds-in-series": fixtures.TwoDiamondsInSeries,
        "nested-inner-loop":      fixtures.NestedInnerLoop,
    }

    for name, build := range scenarios {
        lg, err := BuildLoopGraph(build())
        require.NoError(t, err, name)

        ev, err := ComputeEdgeValues(lg)
        require.NoError(t, err, name)

        lg.AddSyntheticBackEdge()
        ev.Val[EdgeKey{From: lg.Exit.ID(), To: lg.Entry.ID()}] = 0

        tree := MaxSpanningTree(lg, ev)

        treeSize := 0

        for _, node := range lg.G.Nodes() {
            for _, e := range lg.G.Successors(node) {
                if tree.IsTreeEdge(e.From, e.To) {
                    treeSize++
                }
            }
        }

        assert.Equal(t, len(lg.G.Nodes())-1, treeSize, "%s: spanning tree must have V-1 edges", name)
    }
}

func TestMaxSpanningTree_Diamond(t *testing.T) {
    lg, err := BuildLoopGraph(fixtures.Diamond())
    require.NoError(t, err)

    ev, err := ComputeEdgeValues(lg)
    require.NoError(t, err)

    lg.AddSyntheticBackEdge()
    ev.Val[EdgeKey{From: lg.Exit.ID(), To: lg.Entry.ID()}] = 0

    tree := MaxSpanningTree(lg, ev)

    var left, right *hostir.Block

    for _, n := range lg.G.Nodes() {
        b := n.(*hostir.Block)

        switch b.Name {
        case "left":
            left = b
        case "right":
            right = b
        }
    }

    require.NotNil(t, left)
    require.NotNil(t, right)

    // header -> right carries the higher edge value (1) and is taken by
    // Prim's algorithm before header -> left (value 0); both end up in
    // the tree.
    assert.True(t, tree.IsTreeEdge(lg.Entry, right))
    assert.True(t, tree.IsTreeEdge(lg.Entry, left))
    assert.True(t, tree.IsTreeEdge(lg.Exit, lg.Entry), "the synthetic back edge closes the spanning tree here")
}
