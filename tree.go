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
	"github.com/shibumi/go-pathspec/v2/pathutil"
)

// TreeOption configures a filesystem tree query (MatchTreeFiles,
// MatchTreeEntries, CheckTreeFiles).
type TreeOption func(*pathutil.WalkOptions)

// WithOnError sets the handler called with I/O errors encountered while
// walking (e.g. a broken symlink). If it returns nil, the offending entry
// is skipped; a non-nil return aborts the walk and that error is returned
// to the caller.
func WithOnError(fn func(error) error) TreeOption {
	return func(o *pathutil.WalkOptions) { o.OnError = fn }
}

// WithFollowLinks controls whether directory symlinks are followed (with
// cycle detection). Defaults to true.
func WithFollowLinks(follow bool) TreeOption {
	return func(o *pathutil.WalkOptions) { o.FollowLinks = follow }
}

func applyTreeOptions(opts []TreeOption) pathutil.WalkOptions {
	o := pathutil.DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// MatchTreeEntries walks root and returns every TreeEntry (files and
// directories) whose path MatchFile reports as included. Directory paths
// are tested with a trailing "/", matching the convention MatchEntries
// uses.
func (s *PathSpec) MatchTreeEntries(root string, opts ...TreeOption) ([]pathutil.TreeEntry, error) {
	walkOpts := applyTreeOptions(opts)
	var entries []pathutil.TreeEntry
	for e, err := range pathutil.IterTreeEntries(root, walkOpts) {
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return s.MatchEntries(entries, false), nil
}

// MatchTreeFiles walks root and returns the relative paths of every file
// (including file-kind symlinks, excluding directories) that MatchFile
// reports as included.
func (s *PathSpec) MatchTreeFiles(root string, opts ...TreeOption) ([]string, error) {
	walkOpts := applyTreeOptions(opts)
	var paths []string
	for e, err := range pathutil.IterTreeFiles(root, walkOpts) {
		if err != nil {
			return nil, err
		}
		if s.MatchFile(e.Path) {
			paths = append(paths, e.Path)
		}
	}
	return paths, nil
}

// CheckTreeFiles walks root and returns the CheckResult for every file
// (excluding directories) beneath it.
func (s *PathSpec) CheckTreeFiles(root string, opts ...TreeOption) ([]CheckResult, error) {
	walkOpts := applyTreeOptions(opts)
	var results []CheckResult
	for e, err := range pathutil.IterTreeFiles(root, walkOpts) {
		if err != nil {
			return nil, err
		}
		results = append(results, s.CheckFile(e.Path))
	}
	return results, nil
}
