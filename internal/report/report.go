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

// Package report enumerates the acyclic paths of a loop graph and writes
// the PathProfile.json document describing them.
package report

import (
    `encoding/json`
    `fmt`
    `sort`

    `golang.org/x/exp/maps`

    `github.com/loopprofile/looptime/internal/hostir`
    `github.com/loopprofile/looptime/internal/pathprofile`
)

// Document is the PathProfile.json shape: block names to their
// deduplicated, sorted source locations, and path numbers to the ordered
// block sequence that path visits.
type Document struct {
    BasicBlocks map[string][]string `json:"BasicBlocks"`
    Paths       map[string][]string `json:"Paths"`
}

type frame struct {
    node *hostir.Block
    path []*hostir.Block
}

// Build enumerates every entry-to-exit path in lg with an explicit work
// stack (a non-recursive reimplementation of the DFS the reference
// implementation left recursive) and assigns each path its Ball-Larus
// number by summing ev's edge values along it.
func Build(l *hostir.Loop, lg *pathprofile.LoopGraph, ev *pathprofile.EdgeValues) *Document {
    doc := &Document{
        BasicBlocks: make(map[string][]string),
        Paths:       make(map[string][]string),
    }

    for _, n := range lg.G.Nodes() {
        b := n.(*hostir.Block)
        doc.BasicBlocks[b.Name] = blockLines(b)
    }

    entry := lg.Entry
    exit := lg.Exit

    stack := []frame{{node: entry, path: []*hostir.Block{entry}}}

    for len(stack) > 0 {
        top := stack[len(stack)-1]
        stack = stack[:len(stack)-1]

        if top.node == exit {
            doc.Paths[fmt.Sprintf("%d", pathNumber(lg, ev, top.path))] = names(top.path)
            continue
        }

        for _, e := range lg.G.Successors(top.node) {
            w := e.To.(*hostir.Block)
            next := append(append([]*hostir.Block{}, top.path...), w)
            stack = append(stack, frame{node: w, path: next})
        }
    }

    return doc
}

func pathNumber(lg *pathprofile.LoopGraph, ev *pathprofile.EdgeValues, path []*hostir.Block) int {
    total := 0

    for i := 0; i+1 < len(path); i++ {
        total += ev.Val[pathprofile.EdgeKey{From: path[i].ID(), To: path[i+1].ID()}]
    }

    return total
}

func names(path []*hostir.Block) []string {
    out := make([]string, len(path))

    for i, b := range path {
        out[i] = b.Name
    }

    return out
}

func blockLines(b *hostir.Block) []string {
    seen := make(map[string]struct{})

    for _, ins := range b.Ins {
        if ins.SrcFile == "" {
            seen["unavailable"] = struct{}{}
            continue
        }

        seen[fmt.Sprintf("%s:%d", ins.SrcFile, ins.SrcLine)] = struct{}{}
    }

    if len(seen) == 0 {
        seen["unavailable"] = struct{}{}
    }

    out := maps.Keys(seen)
    sort.Strings(out)

    return out
}

// Marshal renders doc as indented JSON.
func Marshal(doc *Document) ([]byte, error) {
    return json.MarshalIndent(doc, "", "    ")
}
