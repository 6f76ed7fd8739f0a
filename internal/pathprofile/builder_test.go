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
)

func TestBuildLoopGraph_Diamond(t *testing.T) {
    lg, err := BuildLoopGraph(fixtures.Diamond())
    require.NoError(t, err)

    assert.Len(t, lg.G.Nodes(), 4)
    assert.False(t, lg.G.HasEdge(lg.Exit, lg.Entry), "back edge must not be present before AddSyntheticBackEdge")
}

func TestBuildLoopGraph_IrreducibleMultiLatch(t *testing.T) {
    _, err := BuildLoopGraph(fixtures.IrreducibleMultiLatch())
    require.Error(t, err)
    assert.IsType(t, &NotSimplifiedError{}, err)
}

func TestBuildLoopGraph_RetainsOnlyReachableFromLatch(t *testing.T) {
    lg, err := BuildLoopGraph(fixtures.TriangleWithEarlyExit())
    require.NoError(t, err)

    assert.Len(t, lg.G.Nodes(), 3)
}
