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

import (
	"fmt"

	re2 "github.com/wasilibs/go-re2"
)

// RegexSource describes one compiled pattern's regex in source form, ready
// to be recompiled under a different regex engine. It is the bridge between
// the root package's stdlib-regexp-backed Pattern and an accelerated
// backend: rather than depending on *regexp.Regexp directly, a backend only
// needs the source text and the name of the directory-marker group (if
// any).
type RegexSource struct {
	Source      string
	Include     bool
	NoOp        bool
	DirMarkName string // empty when this dialect has no directory marker
}

type re2Entry struct {
	re         *re2.Regexp
	include    bool
	dirMarkIdx int
	index      int
}

// re2Matcher recompiles every non-NoOp pattern's regex source with
// wasilibs/go-re2 (a WASM-hosted RE2 engine with a regexp.Regexp-compatible
// surface) and resolves hits with the exact same priority rule the simple
// backend uses. Hits are collected before a winner is picked rather than
// assumed to arrive in any particular order.
type re2Matcher struct {
	entries []re2Entry
}

// NewRE2 builds the RE2-accelerated backend. It fails if any regex source
// cannot be recompiled under RE2 — this should not happen for regexes
// produced by this module's own gitignore translators, but hand-built
// patterns using RE2-incompatible constructs (e.g. backreferences) can
// trigger it.
func NewRE2(sources []RegexSource) (Matcher, error) {
	m := &re2Matcher{entries: make([]re2Entry, 0, len(sources))}
	for i, s := range sources {
		if s.NoOp {
			continue
		}
		re, err := re2.Compile(s.Source)
		if err != nil {
			return nil, fmt.Errorf("recompile pattern %d under RE2: %w", i, err)
		}
		dirMarkIdx := -1
		if s.DirMarkName != "" {
			dirMarkIdx = re.SubexpIndex(s.DirMarkName)
		}
		m.entries = append(m.entries, re2Entry{
			re:         re,
			include:    s.Include,
			dirMarkIdx: dirMarkIdx,
			index:      i,
		})
	}
	return m, nil
}

func (m *re2Matcher) MatchFile(path string) Result {
	cands := make([]candidate, 0, 4)
	for _, e := range m.entries {
		if e.dirMarkIdx < 0 {
			if e.re.MatchString(path) {
				cands = append(cands, candidate{index: e.index, include: e.include})
			}
			continue
		}
		loc := e.re.FindStringSubmatchIndex(path)
		if loc == nil {
			continue
		}
		base := 2 * e.dirMarkIdx
		dirHit := base >= 0 && base+1 < len(loc) && loc[base] >= 0
		cands = append(cands, candidate{index: e.index, include: e.include, dirHit: dirHit})
	}
	return resolve(cands)
}
