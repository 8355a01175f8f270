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

// GitIgnoreSpec is a PathSpec that defaults to the gitignore spec dialect
// (NewGitWildmatchPattern, with its DirMark capture group) and enforces
// gitignore match semantics end to end. Its type, not a runtime tag, is
// what keeps it from comparing equal to a plain PathSpec built from a
// different dialect: GitIgnoreSpecEqual only accepts *GitIgnoreSpec on
// both sides.
type GitIgnoreSpec struct {
	*PathSpec
}

// GitIgnoreSpecFromLines compiles each line with the gitignore spec dialect
// and builds a GitIgnoreSpec around the result.
func GitIgnoreSpecFromLines(lines []string, backendName string) (*GitIgnoreSpec, error) {
	ps, err := FromLines(NewGitWildmatchPattern, lines, backendName)
	if err != nil {
		return nil, err
	}
	return &GitIgnoreSpec{ps}, nil
}

// Add returns a new GitIgnoreSpec combining s and other's patterns, in that
// order. Neither s nor other is modified.
func (s *GitIgnoreSpec) Add(other *GitIgnoreSpec) (*GitIgnoreSpec, error) {
	combined, err := s.PathSpec.Add(other.PathSpec)
	if err != nil {
		return nil, err
	}
	return &GitIgnoreSpec{combined}, nil
}

// GitIgnoreSpecEqual reports whether a and b were built from the same
// compiled pattern list.
func GitIgnoreSpecEqual(a, b *GitIgnoreSpec) bool {
	if a == nil || b == nil {
		return a == b
	}
	return Equal(a.PathSpec, b.PathSpec)
}
