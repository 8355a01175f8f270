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
	"bufio"
	"io"
	"os"
)

// FromReader scans r line by line and builds a PathSpec with factory,
// the same way FromLines would from a pre-split slice. Useful for building
// a spec straight from an opened ignore file without the caller having to
// buffer it into a []string first.
func FromReader(factory PatternFactory, r io.Reader, backendName string) (*PathSpec, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	return FromLines(factory, lines, backendName)
}

// FromFile opens path and delegates to FromReader.
func FromFile(factory PatternFactory, path string, backendName string) (*PathSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(factory, f, backendName)
}

// GitIgnoreSpecFromFile opens path (typically a .gitignore file) and builds
// a GitIgnoreSpec from its contents using the gitignore spec dialect.
func GitIgnoreSpecFromFile(path string, backendName string) (*GitIgnoreSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return GitIgnoreSpecFromReader(f, backendName)
}

// GitIgnoreSpecFromReader is the GitIgnoreSpec counterpart of FromReader.
func GitIgnoreSpecFromReader(r io.Reader, backendName string) (*GitIgnoreSpec, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	return GitIgnoreSpecFromLines(lines, backendName)
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	const approximateLines = 20
	lines := make([]string, 0, approximateLines)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
