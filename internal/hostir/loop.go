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

package hostir

// Loop is the loop descriptor the profiling engine consumes. Latches holds
// every block with a back-edge into Header; len(Latches) > 1 marks an
// irreducible loop, which the engine refuses to instrument. Innermost is
// false for a loop that encloses another loop's Header within its Blocks;
// such a loop gets its header/latch/exit probes placed but skips Ball-Larus
// path profiling entirely, since a nested loop back edge would otherwise
// enter the reduced graph as a false chord. Parent is the immediately
// enclosing loop, or nil at the outermost nesting level.
type Loop struct {
    Header    *Block
    Preheader *Block
    Latches   []*Block
    Blocks    []*Block
    Exits     []*Block
    Innermost bool
    Parent    *Loop
    Name      string
}

// Latch returns the loop's single latch block, or nil if the loop has
// zero or more than one latch.
func (self *Loop) Latch() *Block {
    if len(self.Latches) != 1 {
        return nil
    }

    return self.Latches[0]
}

// IsSimplifyForm reports whether the loop has exactly one preheader and
// exactly one latch, the shape the engine requires.
func (self *Loop) IsSimplifyForm() bool {
    return self.Preheader != nil && len(self.Latches) == 1
}
