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

// Package config reads the engine's environment-variable tunables, the
// same way internal/opts does for its own package.
package config

import (
    `os`
    `strconv`
)

const (
    _E_ReportPath   = "LOOPTIME_REPORT_PATH"
    _E_MaxPathCount = "LOOPTIME_MAX_PATH_COUNT"
)

const _DefaultMaxPathCount = 1 << 31

// Options holds the engine's tunables.
type Options struct {
    ReportPath   string
    MaxPathCount int64
}

// FromEnv reads Options from the environment, falling back to defaults
// for anything unset. It panics on a malformed value, mirroring
// internal/opts's parseOrDefault.
func FromEnv() Options {
    return Options{
        ReportPath:   stringOrDefault(_E_ReportPath, "PathProfile.json"),
        MaxPathCount: int64OrDefault(_E_MaxPathCount, _DefaultMaxPathCount),
    }
}

func stringOrDefault(key string, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }

    return def
}

func int64OrDefault(key string, def int64) int64 {
    v := os.Getenv(key)

    if v == "" {
        return def
    }

    n, err := strconv.ParseInt(v, 10, 64)

    if err != nil || n <= 0 {
        panic("looptime: invalid value for " + key)
    }

    return n
}
