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

// gitIgnoreSpecPatternName is the internal registry name for the spec
// dialect. GitIgnoreSpec always compiles against this factory; it is not
// exported because new code should go through GitIgnoreSpecFromLines rather
// than look the name up by string.
const gitIgnoreSpecPatternName = "gitignore-spec"

// NewGitWildmatchPattern compiles one gitignore line using the spec dialect:
// the one that replicates Git's actual behavior, including the directory
// re-inclusion edge case the documentation does not mention. This is the
// dialect GitIgnoreSpec uses, and the one registered as "gitwildmatch".
func NewGitWildmatchPattern(line string) (Pattern, error) {
	re, polarity, dirOnly, noop, strippedLine, err := compileGitignoreSegments(line, true)
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
		dirMarkIdx: re.SubexpIndex(DirMark),
	}, nil
}

func init() {
	mustRegisterBuiltin(gitIgnoreSpecPatternName, NewGitWildmatchPattern)
	// Deprecated alias, kept for callers that still look the dialect up
	// under its historical name.
	mustRegisterBuiltin("gitwildmatch", NewGitWildmatchPattern)
}
