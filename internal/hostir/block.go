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

// Package hostir is a minimal basic-block IR standing in for the module
// context of a real host compiler. It is deliberately small: just enough
// structure for the profiling engine to read a loop's shape and splice
// counter-update instructions into it.
package hostir

// Instr is a single instruction inside a Block. The engine never
// interprets Instr beyond splicing new ones in and reading SrcLine for
// report generation, so it carries only what instrumentation needs.
type Instr struct {
    Op       string
    SrcFile  string
    SrcLine  int
}

// Block is one basic block: a straight-line instruction list ending in a
// Term. Id is stable for the lifetime of the containing Loop and is used
// as the graph.Node identity.
type Block struct {
    Id    int
    Name  string
    Ins   []Instr
    Pred  []*Block
    Succ  []*Block
    Term  Terminator
}

// ID implements graph.Node.
func (self *Block) ID() int64 {
    return int64(self.Id)
}

// Terminator classifies how control leaves a Block.
type Terminator int

const (
    TermReturn Terminator = iota
    TermBranch
    TermCondition
    TermSwitch
)

// connect records b as a successor of self, and self as a predecessor of
// b, mirroring internal/atm/ssa's termBranch/termCondition bookkeeping.
func (self *Block) connect(b *Block) {
    for _, s := range self.Succ {
        if s == b {
            return
        }
    }

    self.Succ = append(self.Succ, b)
    b.Pred = append(b.Pred, self)
}

// ReplaceSucc rewires self's successor edge into old so it points at
// replacement instead, preserving old's position in Succ (and so the
// true/false order TermCondition relies on). It is used to splice a fresh
// block into the middle of an existing edge; old's Pred entry for self is
// dropped and replacement gains one in its place.
func (self *Block) ReplaceSucc(old *Block, replacement *Block) {
    for i, s := range self.Succ {
        if s == old {
            self.Succ[i] = replacement
            break
        }
    }

    for i, p := range old.Pred {
        if p == self {
            old.Pred = append(old.Pred[:i], old.Pred[i+1:]...)
            break
        }
    }

    replacement.Pred = append(replacement.Pred, self)
}

// TermBranch sets an unconditional successor.
func (self *Block) TermBranch(to *Block) {
    self.Term = TermBranch
    self.connect(to)
}

// TermCondition sets a two-way conditional successor pair (true-branch,
// false-branch), in that order.
func (self *Block) TermCondition(t *Block, f *Block) {
    self.Term = TermCondition
    self.connect(t)
    self.connect(f)
}

// InsertFirst splices ins at the block's first insertion point (after any
// leading phi-like bookkeeping instructions -- this IR has none, so this
// is simply the front of Ins).
func (self *Block) InsertFirst(ins ...Instr) {
    self.Ins = append(append([]Instr{}, ins...), self.Ins...)
}

// InsertBeforeTerm splices ins immediately before the block's terminator.
func (self *Block) InsertBeforeTerm(ins ...Instr) {
    self.Ins = append(self.Ins, ins...)
}
