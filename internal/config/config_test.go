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

package config

import (
    `testing`

    `github.com/stretchr/testify/assert`
)

func TestFromEnv_Defaults(t *testing.T) {
    t.Setenv(_E_ReportPath, "")
    t.Setenv(_E_MaxPathCount, "")

    opts := FromEnv()

    assert.Equal(t, "PathProfile.json", opts.ReportPath)
    assert.Equal(t, int64(_DefaultMaxPathCount), opts.MaxPathCount)
}

func TestFromEnv_ReadsOverrides(t *testing.T) {
    t.Setenv(_E_ReportPath, "custom.json")
    t.Setenv(_E_MaxPathCount, "128")

    opts := FromEnv()

    assert.Equal(t, "custom.json", opts.ReportPath)
    assert.Equal(t, int64(128), opts.MaxPathCount)
}

func TestFromEnv_PanicsOnMalformedMaxPathCount(t *testing.T) {
    t.Setenv(_E_MaxPathCount, "not-a-number")

    assert.Panics(t, func() {
        FromEnv()
    })
}
