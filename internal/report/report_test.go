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

package report

import (
    `encoding/json`
    `testing`

    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`

    `github.com/loopprofile/looptime/internal/fixtures`
    `github.com/loopprofile/looptime/internal/pathprofile`
)

func TestBuild_Diamond(t *testing.T) {
    loop := fixtures.Diamond()
    lg, err := pathprofile.BuildLoopGraph(loop)
    require.NoError(t, err)

    ev, err := pathprofile.ComputeEdgeValues(lg)
    require.NoError(t, err)

    lg.AddSyntheticBackEdge()

    doc := Build(loop, lg, ev)

    assert.Len(t, doc.Paths, 2, "a diamond loop has exactly two distinct paths")
    assert.Len(t, doc.BasicBlocks, 4)

    _, hasZero := doc.Paths["0"]
    assert.True(t, hasZero, "the left arm must be assigned path number 0")
}

func TestMarshal_RoundTrips(t *testing.T) {
    loop := fixtures.Linear()
    lg, err := pathprofile.BuildLoopGraph(loop)
    require.NoError(t, err)

    ev, err := pathprofile.ComputeEdgeValues(lg)
    require.NoError(t, err)

    lg.AddSyntheticBackEdge()
    doc := Build(loop, lg, ev)

    data, err := Marshal(doc)
    require.NoError(t, err)

    var out Document
    require.NoError(t, json.Unmarshal(data, &out))
    assert.Equal(t, doc.Paths, out.Paths)
}

func TestBlockLines_FallsBackToUnavailable(t *testing.T) {
    loop := fixtures.Linear()
    lg, err := pathprofile.BuildLoopGraph(loop)
    require.NoError(t, err)

    for name, lines := range Build(loop, lg, &pathprofile.EdgeValues{Val: map[pathprofile.EdgeKey]int{}, NumPaths: map[int64]int{}}).BasicBlocks {
        assert.Equal(t, []string{"unavailable"}, lines, name)
    }
}
