// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package selection parses the operator's pick of snapshot entries. The
// grammar is deliberately permissive: single indices, comma or whitespace
// separated lists, i-j ranges, and the sentinels "a"/"all" and "q"/"quit".
// Malformed tokens and out-of-range indices contribute nothing instead of
// failing the parse, so skimming a long file list never costs the operator
// a retyped line.
package selection

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Kind discriminates the three possible parse outcomes.
type Kind int

const (
	// KindIndices is an explicit index set, possibly empty.
	KindIndices Kind = iota
	// KindAll selects every entry.
	KindAll
	// KindCancelled aborts the run.
	KindCancelled
)

// Selection is the validated result of parsing one input line. It is always
// evaluated against exactly one snapshot and never reused.
type Selection struct {
	kind    Kind
	indices map[int]struct{}
}

// Parse interprets text against a snapshot of maxIndex entries. It is total:
// any input maps to one of the three kinds, never an error. A reversed range
// (e.g. "5-2") contributes nothing rather than being auto-corrected;
// silently reversing operator intent would be worse than a visible no-op.
func Parse(text string, maxIndex int) Selection {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "q", "quit":
		return Selection{kind: KindCancelled}
	case "a", "all":
		return Selection{kind: KindAll}
	}

	set := make(map[int]struct{})
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, tok := range tokens {
		if n, err := strconv.Atoi(tok); err == nil {
			addIndex(set, n, maxIndex)
			continue
		}
		lo, hi, ok := parseRange(tok)
		if !ok {
			continue
		}
		// Clamp to the valid window before expanding, so a huge but
		// well-formed bound cannot turn into a huge iteration.
		if lo < 1 {
			lo = 1
		}
		if hi > maxIndex {
			hi = maxIndex
		}
		for n := lo; n <= hi; n++ {
			addIndex(set, n, maxIndex)
		}
	}
	return Selection{kind: KindIndices, indices: set}
}

// Kind returns the outcome discriminator.
func (s Selection) Kind() Kind {
	return s.kind
}

// Indices returns the accepted indices in ascending order. It is only
// meaningful for KindIndices.
func (s Selection) Indices() []int {
	out := make([]int, 0, len(s.indices))
	for n := range s.indices {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Empty reports whether an index selection accepted nothing. Callers surface
// this to the operator instead of proceeding with an empty stage.
func (s Selection) Empty() bool {
	return s.kind == KindIndices && len(s.indices) == 0
}

// addIndex admits n only when it maps to a real snapshot entry.
func addIndex(set map[int]struct{}, n, maxIndex int) {
	if n >= 1 && n <= maxIndex {
		set[n] = struct{}{}
	}
}

// parseRange splits an "i-j" token. Both halves must be integers; anything
// else is a malformed token for the caller to skip.
func parseRange(tok string) (lo, hi int, ok bool) {
	left, right, found := strings.Cut(tok, "-")
	if !found {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.Atoi(right)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
