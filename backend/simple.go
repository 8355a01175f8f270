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

package backend

// simpleEntry pairs a pattern with its position in the caller's original
// (unfiltered) pattern list, so "index of the decisive pattern" always
// refers to that original list even though NoOp entries are filtered out
// before matching.
type simpleEntry struct {
	pattern PatternMatcher
	index   int
}

// simpleMatcher is the reference backend: it tests every pattern in turn
// and applies the last-match-wins-with-directory-priority rule.
type simpleMatcher struct {
	entries  []simpleEntry
	reversed bool
}

// NewSimple builds the reference backend from patterns. When reversed is
// true, entries are iterated from the highest original index down to the
// lowest, which lets MatchFile stop as soon as the verdict can no longer
// change: at the first file-priority hit, or at the first include pattern
// hitting as a directory. This is a performance optimization only; both
// construction modes produce identical verdicts.
func NewSimple(patterns []PatternMatcher, reversed bool) Matcher {
	entries := make([]simpleEntry, 0, len(patterns))
	for i, p := range patterns {
		if p.NoOp() {
			continue
		}
		entries = append(entries, simpleEntry{pattern: p, index: i})
	}
	if reversed {
		for l, r := 0, len(entries)-1; l < r; l, r = l+1, r-1 {
			entries[l], entries[r] = entries[r], entries[l]
		}
	}
	return &simpleMatcher{entries: entries, reversed: reversed}
}

func (m *simpleMatcher) MatchFile(path string) Result {
	if m.reversed {
		return m.matchReversed(path)
	}
	best := Result{Index: -1}
	bestPriority := 0
	for _, e := range m.entries {
		ok, dirHit := e.pattern.Test(path)
		if !ok {
			continue
		}
		update, p := shouldUpdate(e.index, best.Index, bestPriority, e.pattern.Include(), dirHit)
		if update {
			best = Result{Matched: true, Include: e.pattern.Include(), Index: e.index}
			bestPriority = p
		}
	}
	return best
}

// matchReversed walks the patterns from the highest index down. The verdict
// is decided by the first hit that is either file-priority or an include
// pattern hitting as a directory; until then, only the highest-index
// exclude directory hit is remembered. An include directory hit hands the
// verdict to that remembered exclusion if one exists, because in forward
// order the include would have reopened the match for every exclusion after
// it.
func (m *simpleMatcher) matchReversed(path string) Result {
	trailingExclude := -1
	for _, e := range m.entries {
		ok, dirHit := e.pattern.Test(path)
		if !ok {
			continue
		}
		if !dirHit {
			return Result{Matched: true, Include: e.pattern.Include(), Index: e.index}
		}
		if e.pattern.Include() {
			if trailingExclude >= 0 {
				return Result{Matched: true, Include: false, Index: trailingExclude}
			}
			return Result{Matched: true, Include: true, Index: e.index}
		}
		if trailingExclude < 0 {
			trailingExclude = e.index
		}
	}
	if trailingExclude >= 0 {
		return Result{Matched: true, Include: false, Index: trailingExclude}
	}
	return Result{Index: -1}
}
