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

// Command looptime-fixtures runs the profiling engine over the worked
// loop-shape examples and prints each one's total path count and chord
// increments, as an executable cross-check of the algorithm.
package main

import (
    `flag`
    `fmt`
    `os`

    `github.com/loopprofile/looptime/internal/config`
    `github.com/loopprofile/looptime/internal/fixtures`
    `github.com/loopprofile/looptime/internal/hostir`
    `github.com/loopprofile/looptime/internal/pathprofile`
    `github.com/loopprofile/looptime/internal/probe`
)

var scenarios = map[string]func() *hostir.Loop{
    "diamond":                  fixtures.Diamond,
    "linear":                   fixtures.Linear,
    "two-diamonds-in-series":   fixtures.TwoDiamondsInSeries,
    "triangle-with-early-exit":   fixtures.TriangleWithEarlyExit,
    "nested-inner-loop":          fixtures.NestedInnerLoop,
    "nested-outer-loop":          fixtures.NestedOuterLoop,
    "synthetic-chord-standalone": fixtures.SyntheticChordStandalone,
    "irreducible-multi-latch":    fixtures.IrreducibleMultiLatch,
}

func main() {
    name := flag.String("scenario", "", "scenario to run (default: all)")
    flag.Parse()

    engine := pathprofile.NewEngine(config.FromEnv(), probe.NewTable("looptime-fixtures"))

    if *name != "" {
        run(engine, *name)
        return
    }

    for _, k := range []string{"diamond", "linear", "two-diamonds-in-series", "triangle-with-early-exit", "nested-inner-loop", "nested-outer-loop", "synthetic-chord-standalone", "irreducible-multi-latch"} {
        run(engine, k)
    }
}

func run(engine *pathprofile.Engine, name string) {
    build, ok := scenarios[name]

    if !ok {
        fmt.Fprintf(os.Stderr, "unknown scenario %q\n", name)
        os.Exit(1)
    }

    loop := build()
    result, err := engine.Run(loop)

    fmt.Printf("=== %s ===\n", name)

    if result == nil {
        fmt.Printf("  error: %v\n", err)
        return
    }

    fmt.Printf("  total paths: %d\n", result.Vals.Total)

    for k, v := range result.Incs {
        fmt.Printf("  chord %d -> %d: increment %+d\n", k.From, k.To, v)
    }

    if err != nil {
        fmt.Printf("  warning: %v\n", err)
    }
}
