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

// NewGitIgnoreBasicPattern compiles one gitignore line using the documented
// dialect: exactly what the gitignore(5) documentation describes, with no
// DIR_MARK capture group and therefore no directory re-inclusion priority
// (matching degenerates to plain last-match-wins for patterns compiled this
// way). Registered as "gitignore".
//
// This dialect is not bit-exact with real Git: Git actually re-includes
// files underneath a directory that a later include pattern whitelists, even
// though the directory itself was previously excluded, and that behavior is
// undocumented. Use the spec dialect (GitIgnoreSpec, or the "gitwildmatch"
// factory name) when exact Git compatibility matters.
func NewGitIgnoreBasicPattern(line string) (Pattern, error) {
	re, polarity, dirOnly, noop, strippedLine, err := compileGitignoreSegments(line, false)
	if err != nil {
		return nil, err
	}
	if noop {
		return &RegexPattern{line: strippedLine, polarity: NoOp, dirMarkIdx: -1}, nil
	}
	return &RegexPattern{
		line:       strippedLine,
		polarity:   polarity,
		dirOnly:    dirOnly,
		re:         re,
		dirMarkIdx: -1,
	}, nil
}

func init() {
	mustRegisterBuiltin("gitignore", NewGitIgnoreBasicPattern)
}
