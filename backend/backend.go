//
// Copyright 2014, Sander van Harmelen
// Copyright 2020, Christian Rebischke
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package backend implements the multi-pattern matching engines behind a
// PathSpec: the layered "last-match-wins with directory/file priority"
// semantics Git actually implements, independent of which regex engine
// compiled each pattern.
package backend

import "sort"

// PatternMatcher is the minimal surface a compiled pattern must expose for a
// backend to test it against a path. It deliberately does not depend on the
// root pathspec package's Pattern type, so this package stays free of an
// import cycle; the root package wraps each of its patterns in a small
// adapter that implements this interface.
type PatternMatcher interface {
	// Test matches an already-normalized path. ok reports whether the
	// pattern's regex matched at all; dirHit reports whether the match
	// carried the directory marker.
	Test(path string) (ok, dirHit bool)
	// Include reports this pattern's polarity: true for an include
	// pattern, false for exclude. Meaningless when the pattern is NoOp.
	Include() bool
	// NoOp reports whether this pattern slot is a blank/comment line that
	// never participates in matching.
	NoOp() bool
}

// Result is the verdict a Matcher returns for one path.
type Result struct {
	Matched bool
	Include bool
	Index   int
}

// Matcher is the contract every matching engine implements.
type Matcher interface {
	MatchFile(path string) Result
}

// candidate is one pattern's hit against a path, used by backends that
// gather hits before resolving a winner (e.g. the RE2 backend, which does
// not assume its hits arrive in pattern order).
type candidate struct {
	index   int
	include bool
	dirHit  bool
}

// priority returns the precedence class of a hit: 1 for a
// directory-descendant match, 2 for a plain file match.
func priority(dirHit bool) int {
	if dirHit {
		return 1
	}
	return 2
}

// shouldUpdate implements the update rule for candidates examined in
// ascending index order: does the hit at index i, with the given polarity
// and directory-hit flag, replace the current best (bestIndex,
// bestPriority)? A file-priority hit beats a directory one, a later hit
// beats an earlier hit of equal priority, and an include pattern hitting as
// a directory beats anything earlier regardless of priority — that last
// clause is what re-includes files under a whitelisted directory.
func shouldUpdate(i, bestIndex, bestPriority int, include, dirHit bool) (update bool, newPriority int) {
	p := priority(dirHit)
	update = p > bestPriority ||
		(p == bestPriority && i > bestIndex) ||
		(include && dirHit && i > bestIndex)
	return update, p
}

// resolve applies shouldUpdate across an unordered set of candidate hits
// and returns the winning verdict. Candidates are sorted by index first, so
// backends that collect hits from an engine with no ordering guarantee
// (e.g. a multi-pattern automaton) still resolve deterministically.
func resolve(cands []candidate) Result {
	sort.Slice(cands, func(i, j int) bool { return cands[i].index < cands[j].index })
	best := Result{Index: -1}
	bestPriority := 0
	for _, c := range cands {
		update, p := shouldUpdate(c.index, best.Index, bestPriority, c.include, c.dirHit)
		if update {
			best = Result{Matched: true, Include: c.include, Index: c.index}
			bestPriority = p
		}
	}
	return best
}
