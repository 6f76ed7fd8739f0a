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

func TestComputeEdgeValues_Diamond(t *testing.T) {
    lg, err := BuildLoopGraph(fixtures.Diamond())
    require.NoError(t, err)

    ev, err := ComputeEdgeValues(lg)
    require.NoError(t, err)

    assert.Equal(t, 2, ev.Total, "a diamond loop body has exactly two acyclic paths")
    assert.Equal(t, 2, ev.NumPaths[lg.Entry.ID()])
    assert.Equal(t, 1, ev.NumPaths[lg.Exit.ID()])
}

func TestComputeEdgeValues_Linear(t *testing.T) {
    lg, err := BuildLoopGraph(fixtures.Linear())
    require.NoError(t, err)

    ev, err := ComputeEdgeValues(lg)
    require.NoError(t, err)

    assert.Equal(t, 1, ev.Total, "a linear loop body has exactly one acyclic path")
}

func TestComputeEdgeValues_TwoDiamondsInSeries(t *testing.T) {
    lg, err := BuildLoopGraph(fixtures.TwoDiamondsInSeries())
    require.NoError(t, err)

    ev, err := ComputeEdgeValues(lg)
    require.NoError(t, err)

    assert.Equal(t, 4, ev.Total, "two diamonds chained in series multiply their path counts")
}

func TestComputeEdgeValues_EveryEdgeValueNonNegative(t *testing.T) {
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

        for _, n := range lg.G.Nodes() {
            for _, e := range lg.G.Successors(n) {
                assert.GreaterOrEqual(t, ev.Val[keyOf(e)], 0, "%s: edge value must never be negative", name)
            }
        }
    }
}
