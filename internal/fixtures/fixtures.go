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

// Package fixtures builds small, hand-wired hostir.Loop values for the
// worked examples this engine's algorithms are checked against, the same
// way internal/atm/ssa's own tests build a CFG by hand rather than
// parsing source text.
package fixtures

import (
    `github.com/loopprofile/looptime/internal/hostir`
)

type builder struct {
    next int
}

func (b *builder) block(name string) *hostir.Block {
    b.next++
    return &hostir.Block{Id: b.next, Name: name}
}

// Diamond builds a loop whose body is a single if/else diamond: header
// branches to two arms that both rejoin at the latch.
func Diamond() *hostir.Loop {
    b := &builder{}
    pre := b.block("preheader")
    header := b.block("header")
    left := b.block("left")
    right := b.block("right")
    latch := b.block("latch")

    exit := b.block("exit")

    pre.TermBranch(header)
    header.TermCondition(left, right)
    left.TermBranch(latch)
    right.TermBranch(latch)
    latch.TermCondition(header, exit)

    return &hostir.Loop{
        Header: header, Preheader: pre, Latches: []*hostir.Block{latch},
        Blocks: []*hostir.Block{header, left, right, latch},
        Exits:     []*hostir.Block{exit},
        Innermost: true,
        Name:      "diamond",
    }
}

// Linear builds a loop whose body is a single straight-line block between
// header and latch -- the trivial one-path case.
func Linear() *hostir.Loop {
    b := &builder{}
    pre := b.block("preheader")
    header := b.block("header")
    body := b.block("body")
    latch := b.block("latch")
    exit := b.block("exit")

    pre.TermBranch(header)
    header.TermBranch(body)
    body.TermBranch(latch)
    latch.TermCondition(header, exit)

    return &hostir.Loop{
        Header: header, Preheader: pre, Latches: []*hostir.Block{latch},
        Blocks: []*hostir.Block{header, body, latch},
        Exits:     []*hostir.Block{exit},
        Innermost: true,
        Name:      "linear",
    }
}

// TwoDiamondsInSeries builds a loop body with two if/else diamonds
// chained one after another before the latch.
func TwoDiamondsInSeries() *hostir.Loop {
    b := &builder{}
    pre := b.block("preheader")
    header := b.block("header")
    l1 := b.block("left1")
    r1 := b.block("right1")
    mid := b.block("mid")
    l2 := b.block("left2")
    r2 := b.block("right2")
    latch := b.block("latch")
    exit := b.block("exit")

    pre.TermBranch(header)
    header.TermCondition(l1, r1)
    l1.TermBranch(mid)
    r1.TermBranch(mid)
    mid.TermCondition(l2, r2)
    l2.TermBranch(latch)
    r2.TermBranch(latch)
    latch.TermCondition(header, exit)

    return &hostir.Loop{
        Header: header, Preheader: pre, Latches: []*hostir.Block{latch},
        Blocks: []*hostir.Block{header, l1, r1, mid, l2, r2, latch},
        Exits:     []*hostir.Block{exit},
        Innermost: true,
        Name:      "two-diamonds-in-series",
    }
}

// TriangleWithEarlyExit builds a loop body shaped like a triangle: header
// branches either straight to the latch or through a body block that can
// itself branch out of the loop early.
func TriangleWithEarlyExit() *hostir.Loop {
    b := &builder{}
    pre := b.block("preheader")
    header := b.block("header")
    body := b.block("body")
    earlyExit := b.block("early_exit")
    latch := b.block("latch")
    exit := b.block("exit")

    pre.TermBranch(header)
    header.TermCondition(body, latch)
    body.TermCondition(latch, earlyExit)
    latch.TermCondition(header, exit)

    return &hostir.Loop{
        Header: header, Preheader: pre, Latches: []*hostir.Block{latch},
        Blocks: []*hostir.Block{header, body, latch},
        Exits:     []*hostir.Block{exit, earlyExit},
        Innermost: true,
        Name:      "triangle-with-early-exit",
    }
}

// SyntheticChordStandalone builds a loop shaped so that the synthetic
// exit->entry back edge ends up outside the maximum spanning tree: header
// branches straight to a, which itself branches to {b, latch}, and b
// branches to latch. a->latch outweighs the synthetic edge during Prim's
// seed-at-header walk, so (a, latch) is chosen for the tree instead of
// (latch, header), leaving the synthetic edge a standalone chord with a
// nonzero increment that must be emitted on the latch terminator directly,
// not through a split block spliced into the real back edge.
func SyntheticChordStandalone() *hostir.Loop {
    b := &builder{}
    pre := b.block("preheader")
    header := b.block("header")
    a := b.block("a")
    bBlock := b.block("b")
    latch := b.block("latch")
    exit := b.block("exit")

    pre.TermBranch(header)
    header.TermBranch(a)
    a.TermCondition(bBlock, latch)
    bBlock.TermBranch(latch)
    latch.TermCondition(header, exit)

    return &hostir.Loop{
        Header: header, Preheader: pre, Latches: []*hostir.Block{latch},
        Blocks:    []*hostir.Block{header, a, bBlock, latch},
        Exits:     []*hostir.Block{exit},
        Innermost: true,
        Name:      "synthetic-chord-standalone",
    }
}

// nestedLoopBlocks wires an outer loop whose body contains a fully formed
// inner loop, and returns both loop descriptors so callers can drive
// either the outer (non-innermost) or the inner (innermost) loop through
// the engine independently.
func nestedLoopBlocks() (outer *hostir.Loop, inner *hostir.Loop) {
    b := &builder{}
    outerPre := b.block("outer_preheader")
    outerHeader := b.block("outer_header")
    innerPre := b.block("inner_preheader")
    innerHeader := b.block("inner_header")
    innerBody := b.block("inner_body")
    innerLatch := b.block("inner_latch")
    outerLatch := b.block("outer_latch")
    outerExit := b.block("outer_exit")
    innerExit := b.block("inner_exit")

    outerPre.TermBranch(outerHeader)
    outerHeader.TermBranch(innerPre)
    innerPre.TermBranch(innerHeader)
    innerHeader.TermCondition(innerBody, innerExit)
    innerBody.TermBranch(innerLatch)
    innerLatch.TermCondition(innerHeader, innerExit)
    innerExit.TermBranch(outerLatch)
    outerLatch.TermCondition(outerHeader, outerExit)

    outer = &hostir.Loop{
        Header: outerHeader, Preheader: outerPre, Latches: []*hostir.Block{outerLatch},
        Blocks: []*hostir.Block{outerHeader, innerPre, innerHeader, innerBody, innerLatch, innerExit, outerLatch},
        Exits:     []*hostir.Block{outerExit},
        Innermost: false,
        Name:      "nested-outer-loop",
    }

    inner = &hostir.Loop{
        Header: innerHeader, Preheader: innerPre, Latches: []*hostir.Block{innerLatch},
        Blocks: []*hostir.Block{innerHeader, innerBody, innerLatch},
        Exits:  []*hostir.Block{innerExit},
        Innermost: true,
        Parent:    outer,
        Name:      "nested-inner-loop",
    }

    return outer, inner
}

// NestedInnerLoop returns the inner loop's descriptor from a loop nest, its
// Parent pointing back at the enclosing outer loop.
func NestedInnerLoop() *hostir.Loop {
    _, inner := nestedLoopBlocks()
    return inner
}

// NestedOuterLoop returns the outer loop's descriptor from a loop nest: it
// is not innermost, so the engine skips path profiling for it and only
// places header/latch/exit_loop probes.
func NestedOuterLoop() *hostir.Loop {
    outer, _ := nestedLoopBlocks()
    return outer
}

// IrreducibleMultiLatch builds a loop with two latches jumping back into
// the header from different arms of a diamond -- the multi-latch shape
// this engine's Non-goals exclude from profiling.
func IrreducibleMultiLatch() *hostir.Loop {
    b := &builder{}
    pre := b.block("preheader")
    header := b.block("header")
    left := b.block("left")
    right := b.block("right")
    exit := b.block("exit")

    pre.TermBranch(header)
    header.TermCondition(left, right)
    left.TermCondition(header, exit)
    right.TermCondition(header, exit)

    return &hostir.Loop{
        Header: header, Preheader: pre, Latches: []*hostir.Block{left, right},
        Blocks: []*hostir.Block{header, left, right},
        Exits:     []*hostir.Block{exit},
        Innermost: true,
        Name:      "irreducible-multi-latch",
    }
}
