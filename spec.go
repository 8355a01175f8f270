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

package pathspec

import (
	"iter"

	"github.com/shibumi/go-pathspec/v2/backend"
	"github.com/shibumi/go-pathspec/v2/pathutil"
)

// CheckResult is the tri-state answer to a single path query: Include is
// nil when no pattern matched at all, distinguishing "explicitly excluded"
// from "no verdict".
type CheckResult struct {
	Path    string
	Include *bool
	Index   *int
}

// PathSpec is an ordered collection of patterns with an associated matching
// backend, built once at construction and immutable thereafter.
type PathSpec struct {
	patterns    []Pattern
	backend     backend.Matcher
	backendName string
}

// NewPathSpec assembles a PathSpec directly from an already-compiled
// pattern list (including any NoOp entries the caller wants to keep around
// for stable indexing) and builds its backend.
func NewPathSpec(patterns []Pattern, backendName string) (*PathSpec, error) {
	b, resolved, err := buildBackend(backendName, patterns)
	if err != nil {
		return nil, err
	}
	return &PathSpec{patterns: patterns, backend: b, backendName: resolved}, nil
}

// FromLinesNamed resolves name through the pattern registry (LookupPattern)
// and otherwise behaves exactly like FromLines. It is the named-factory
// counterpart for callers that only have a registry name on hand (e.g. a
// "gitignore"/"gitwildmatch" string read from configuration) rather than a
// PatternFactory value.
func FromLinesNamed(name string, lines []string, backendName string) (*PathSpec, error) {
	factory, err := LookupPattern(name)
	if err != nil {
		return nil, err
	}
	return FromLines(factory, lines, backendName)
}

// FromLines compiles one pattern per line with factory and builds a
// PathSpec. Blank/comment/no-op lines are compiled (so a malformed blank
// line still reports a translation error) but then dropped, so pattern
// indices on the resulting spec refer to the compiled list, not the
// original line numbers.
func FromLines(factory PatternFactory, lines []string, backendName string) (*PathSpec, error) {
	patterns := make([]Pattern, 0, len(lines))
	for _, line := range lines {
		p, err := factory(line)
		if err != nil {
			return nil, err
		}
		if p.Polarity() == NoOp {
			continue
		}
		patterns = append(patterns, p)
	}
	return NewPathSpec(patterns, backendName)
}

// Patterns returns the compiled pattern list backing spec, in precedence
// order (later patterns may override earlier ones).
func (s *PathSpec) Patterns() []Pattern { return s.patterns }

// Len reports the number of compiled patterns, including any NoOp entries
// the caller preserved via NewPathSpec.
func (s *PathSpec) Len() int { return len(s.patterns) }

// Add returns a new PathSpec whose pattern list is the concatenation of s
// and other, with a freshly built backend. Neither s nor other is modified.
func (s *PathSpec) Add(other *PathSpec) (*PathSpec, error) {
	combined := make([]Pattern, 0, len(s.patterns)+len(other.patterns))
	combined = append(combined, s.patterns...)
	combined = append(combined, other.patterns...)
	return NewPathSpec(combined, s.backendName)
}

// Equal reports whether a and b have the same compiled pattern list,
// element for element.
func Equal(a, b *PathSpec) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.patterns) != len(b.patterns) {
		return false
	}
	for i := range a.patterns {
		if !PatternEqual(a.patterns[i], b.patterns[i]) {
			return false
		}
	}
	return true
}

// normalize prepares path for regex matching: pathutil.Normalize folds the
// native separator and any caller-supplied override separators (seps) to
// "/", then NormalizePath strips a leading "/" or "./".
func (s *PathSpec) normalize(path string, seps ...string) string {
	return NormalizePath(pathutil.Normalize(path, seps...))
}

// CheckFile reports the tri-state verdict for path: Include is nil when no
// pattern matched. seps overrides which path separators are folded to "/"
// before matching (see pathutil.Normalize); the native separator is always
// recognized regardless of seps.
func (s *PathSpec) CheckFile(path string, seps ...string) CheckResult {
	result := s.backend.MatchFile(s.normalize(path, seps...))
	cr := CheckResult{Path: path}
	if result.Matched {
		include := result.Include
		index := result.Index
		cr.Include = &include
		cr.Index = &index
	}
	return cr
}

// CheckFiles applies CheckFile to every path, preserving order and length.
func (s *PathSpec) CheckFiles(paths []string, seps ...string) []CheckResult {
	out := make([]CheckResult, len(paths))
	for i, p := range paths {
		out[i] = s.CheckFile(p, seps...)
	}
	return out
}

// CheckFilesSeq is the lazy-sequence equivalent of CheckFiles.
func (s *PathSpec) CheckFilesSeq(paths iter.Seq[string], seps ...string) iter.Seq[CheckResult] {
	return func(yield func(CheckResult) bool) {
		for p := range paths {
			if !yield(s.CheckFile(p, seps...)) {
				return
			}
		}
	}
}

// MatchFile reports whether path is included: true iff some pattern matched
// and the decisive one was an include pattern. seps overrides which path
// separators are folded to "/" before matching.
func (s *PathSpec) MatchFile(path string, seps ...string) bool {
	result := s.backend.MatchFile(s.normalize(path, seps...))
	return result.Matched && result.Include
}

// MatchFiles returns the subset of paths that MatchFile reports as
// included, or (if negate is true) the subset it reports as not included.
func (s *PathSpec) MatchFiles(paths []string, negate bool, seps ...string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if s.MatchFile(p, seps...) != negate {
			out = append(out, p)
		}
	}
	return out
}

// MatchFilesSeq is the lazy-sequence equivalent of MatchFiles.
func (s *PathSpec) MatchFilesSeq(paths iter.Seq[string], negate bool, seps ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for p := range paths {
			if s.MatchFile(p, seps...) != negate {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// MatchEntries filters entries to those whose Path MatchFile reports as
// included (or, if negate is true, not included).
func (s *PathSpec) MatchEntries(entries []pathutil.TreeEntry, negate bool, seps ...string) []pathutil.TreeEntry {
	out := make([]pathutil.TreeEntry, 0, len(entries))
	for _, e := range entries {
		path := e.Path
		if e.IsDir() {
			path += "/"
		}
		if s.MatchFile(path, seps...) != negate {
			out = append(out, e)
		}
	}
	return out
}

// buildBackend resolves a backend name to a constructed backend.Matcher.
// "best" prefers the RE2-accelerated backend, falling back to "simple" if
// RE2 construction fails; "simple" and "re2" request a specific backend and
// return *BackendUnavailableError if that backend can't be built.
func buildBackend(name string, patterns []Pattern) (backend.Matcher, string, error) {
	switch name {
	case "", "best":
		if b, err := newRE2Backend(patterns); err == nil {
			return b, "re2", nil
		}
		return backend.NewSimple(toPatternMatchers(patterns), true), "simple", nil
	case "simple":
		return backend.NewSimple(toPatternMatchers(patterns), true), "simple", nil
	case "re2":
		b, err := newRE2Backend(patterns)
		if err != nil {
			return nil, "", &BackendUnavailableError{Name: name, Err: err}
		}
		return b, "re2", nil
	default:
		return nil, "", &BackendUnavailableError{Name: name}
	}
}

func newRE2Backend(patterns []Pattern) (backend.Matcher, error) {
	sources := make([]backend.RegexSource, len(patterns))
	for i, p := range patterns {
		sources[i] = backend.RegexSource{
			Source:      p.RegexSource(),
			Include:     p.Polarity() == Include,
			NoOp:        p.Polarity() == NoOp,
			DirMarkName: p.DirMarkGroup(),
		}
	}
	return backend.NewRE2(sources)
}

func toPatternMatchers(patterns []Pattern) []backend.PatternMatcher {
	out := make([]backend.PatternMatcher, len(patterns))
	for i, p := range patterns {
		out[i] = patternMatcherAdapter{p}
	}
	return out
}

// patternMatcherAdapter adapts the root Pattern interface to
// backend.PatternMatcher without the backend package needing to import
// this one.
type patternMatcherAdapter struct{ p Pattern }

func (a patternMatcherAdapter) Test(path string) (bool, bool) { return a.p.Test(path) }
func (a patternMatcherAdapter) Include() bool                 { return a.p.Polarity() == Include }
func (a patternMatcherAdapter) NoOp() bool                    { return a.p.Polarity() == NoOp }
