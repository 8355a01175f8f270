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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromReaderAndFromFileMatchFromLines(t *testing.T) {
	lines := []string{
		`\ `,
		`  a\ `,
		" ",
		"     ",
		"  abc  ",
		"",
		"# I'm a comment",
		"/",
		"i_am_a_valid_line",
	}

	want := []string{`\ `, `a\ `, "abc", "i_am_a_valid_line"}

	fromLines, err := FromLines(NewGitWildmatchPattern, lines, "")
	require.NoError(t, err)
	requirePatternLines(t, fromLines, want)

	r := bytes.NewBufferString(strings.Join(lines, "\n"))
	fromReader, err := FromReader(NewGitWildmatchPattern, r, "")
	require.NoError(t, err)
	requirePatternLines(t, fromReader, want)

	tempFile := filepath.Join(t.TempDir(), "ignore_temp")
	require.NoError(t, os.WriteFile(tempFile, []byte(strings.Join(lines, "\n")), 0o644))

	fromFile, err := FromFile(NewGitWildmatchPattern, tempFile, "")
	require.NoError(t, err)
	requirePatternLines(t, fromFile, want)
}

func TestGitIgnoreSpecFromFile(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), ".gitignore")
	require.NoError(t, os.WriteFile(tempFile, []byte("*.txt\n!b.txt\n"), 0o644))

	spec, err := GitIgnoreSpecFromFile(tempFile, "")
	require.NoError(t, err)
	require.True(t, spec.MatchFile("a.txt"))
	require.False(t, spec.MatchFile("b.txt"))
}

func requirePatternLines(t *testing.T, spec *PathSpec, want []string) {
	t.Helper()
	require.Equal(t, len(want), spec.Len())
	for i, pattern := range spec.Patterns() {
		require.Equal(t, want[i], pattern.Line())
	}
}
