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

import `fmt`

// NotSimplifiedError is returned when a loop lacks a single preheader or
// a single latch, the shape this engine requires.
type NotSimplifiedError struct {
    Loop string
}

func (self *NotSimplifiedError) Error() string {
    return fmt.Sprintf("pathprofile: loop %q is not in simplified form (needs one preheader and one latch)", self.Loop)
}

// IrreducibleLoopError is returned when the loop body, after the
// latch-to-header back edge is removed, still contains a cycle.
type IrreducibleLoopError struct {
    Loop string
}

func (self *IrreducibleLoopError) Error() string {
    return fmt.Sprintf("pathprofile: loop %q is irreducible", self.Loop)
}

// PathOverflowWarning is returned by Engine.Run when the number of
// distinct paths through a loop exceeds the configured MaxPathCount. It is not fatal: callers may log it and instrument anyway.
type PathOverflowWarning struct {
    Loop      string
    PathCount int64
}

func (self *PathOverflowWarning) Error() string {
    return fmt.Sprintf("pathprofile: loop %q has %d distinct paths, which overflows a 32-bit path counter", self.Loop, self.PathCount)
}

// NonInnermostSkip is returned by Engine.Run when a loop encloses a nested
// loop. It is not actually an error: Ball-Larus path profiling only ever
// covers one innermost loop at a time, so Run deliberately skips the
// BuildLoopGraph/ComputeEdgeValues/MaxSpanningTree/SolveIncrements pipeline
// for it. Callers still owe the loop its header/latch/exit_loop probes.
type NonInnermostSkip struct {
    Loop string
}

func (self *NonInnermostSkip) Error() string {
    return fmt.Sprintf("pathprofile: loop %q encloses a nested loop, skipping path profiling", self.Loop)
}

// InvariantViolation marks a state this package's own algorithms guarantee
// can never arise from valid input -- a bug in the algorithm itself, not a
// malformed loop. Call sites panic with it rather than returning it.
type InvariantViolation struct {
    Detail string
}

func (self *InvariantViolation) Error() string {
    return "pathprofile: invariant violated: " + self.Detail
}
