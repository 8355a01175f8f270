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

package pathutil

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
)

// EntryKind classifies a TreeEntry without requiring callers to re-stat it.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
	KindSymlink
	KindOther
)

// TreeEntry is one node produced by IterTreeEntries/IterTreeFiles: its path
// relative to the walk root (native separator), and its kind. Symlink
// entries record whether their target is a directory, so IsDir answers
// without a re-stat.
type TreeEntry struct {
	Path  string
	kind  EntryKind
	isDir bool
}

func (e TreeEntry) Kind() EntryKind { return e.kind }
func (e TreeEntry) IsDir() bool     { return e.kind == KindDir || e.isDir }

// RecursionError is raised when a symlink cycle is detected during a tree
// walk: RealPath resolved to the same real directory at both FirstPath and
// SecondPath.
type RecursionError struct {
	RealPath   string
	FirstPath  string
	SecondPath string
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("real path %q reached via both %q and %q", e.RealPath, e.FirstPath, e.SecondPath)
}

// WalkOptions configures IterTreeEntries/IterTreeFiles.
type WalkOptions struct {
	// OnError is called with I/O errors encountered while walking (e.g. a
	// broken symlink). If it returns nil, the offending entry is skipped
	// and the walk continues; a non-nil return aborts the walk with that
	// error. A nil OnError behaves like a handler that always returns nil.
	OnError func(error) error
	// FollowLinks enables descending into directory symlinks, with
	// cycle detection. The zero value (false) does not follow them;
	// DefaultWalkOptions sets it to true.
	FollowLinks bool
}

// DefaultWalkOptions returns the default walk options: symlinks are
// followed, and I/O errors are ignored. The root package's tree queries
// start from these.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{FollowLinks: true}
}

// IterTreeEntries walks the directory tree rooted at root and yields every
// file, directory, and symlink beneath it (the root itself is not yielded).
// Paths are relative to root and use the native separator.
//
// Each directory's real (canonicalized) path is recorded on entry and
// removed again on subtree exit. Symlinks to directories are followed when
// opts.FollowLinks is true; one that resolves to a directory already on the
// current ancestry chain yields a *RecursionError carrying the relative
// paths of the two encounters and stops that branch, while sibling symlinks
// to the same non-cyclic target are each walked once rather than flagged as
// a cycle.
func IterTreeEntries(root string, opts WalkOptions) iter.Seq2[TreeEntry, error] {
	return func(yield func(TreeEntry, error) bool) {
		// fastwalk invokes its callback from its own worker goroutine, but
		// an iterator's yield must run on the consumer's goroutine. Bridge
		// the two over a channel; done unblocks the walker when the
		// consumer stops early.
		type item struct {
			entry TreeEntry
			err   error
		}
		ch := make(chan item)
		done := make(chan struct{})
		defer close(done)

		w := &walker{
			opts:    opts,
			visited: map[string]string{},
			send: func(e TreeEntry, err error) bool {
				select {
				case ch <- item{entry: e, err: err}:
					return true
				case <-done:
					return false
				}
			},
		}
		go func() {
			defer close(ch)
			w.walk(root, "")
		}()

		for it := range ch {
			if !yield(it.entry, it.err) {
				return
			}
		}
	}
}

// IterTreeFiles is IterTreeEntries filtered to omit directories (including
// symlinks whose target is a directory), keeping file-kind symlinks.
func IterTreeFiles(root string, opts WalkOptions) iter.Seq2[TreeEntry, error] {
	return func(yield func(TreeEntry, error) bool) {
		for entry, err := range IterTreeEntries(root, opts) {
			if err == nil && entry.IsDir() {
				continue
			}
			if !yield(entry, err) {
				return
			}
		}
	}
}

type walker struct {
	opts    WalkOptions
	send    func(TreeEntry, error) bool
	visited map[string]string // real path -> first relative path seen
	stopped bool
}

func (w *walker) handleError(err error) error {
	if w.opts.OnError != nil {
		return w.opts.OnError(err)
	}
	return nil
}

// walk enumerates one directory level, emitting entries with paths relative
// to the walk root, and recurses into each subdirectory itself rather than
// letting fastwalk do it: every directory's real (canonicalized) path is
// recorded in the cycle map on entry and removed again on subtree exit, so
// a symlink back to any directory on the current ancestry chain is caught
// on its first arrival, while sibling symlinks to the same non-cyclic
// target are each walked normally.
//
// full is the directory's filesystem path (possibly via a symlink); rel is
// its root-relative path, "" for the root itself.
func (w *walker) walk(full, rel string) {
	real, err := filepath.EvalSymlinks(full)
	if err != nil {
		if handled := w.handleError(err); handled != nil {
			w.emitErr(handled)
			w.stopped = true
		}
		return
	}
	if first, seen := w.visited[real]; seen {
		w.emitErr(&RecursionError{RealPath: real, FirstPath: first, SecondPath: rel})
		return
	}
	w.visited[real] = rel
	defer delete(w.visited, real)

	type subdir struct {
		full string
		rel  string
	}
	var subdirs []subdir

	// A single worker keeps callback invocations serial: the cycle map and
	// the emission order both depend on it. fs.SkipDir on every directory
	// restricts fastwalk to this level; recursion happens below, under the
	// cycle map.
	conf := &fastwalk.Config{Follow: false, NumWorkers: 1}
	_ = fastwalk.Walk(conf, full, func(path string, d os.DirEntry, err error) error {
		if w.stopped {
			return fs.SkipAll
		}
		if path == full {
			if err != nil {
				if handled := w.handleError(err); handled != nil {
					w.emitErr(handled)
					w.stopped = true
				}
				return fs.SkipAll
			}
			return nil
		}
		if err != nil {
			if handled := w.handleError(err); handled != nil {
				w.emitErr(handled)
				w.stopped = true
				return fs.SkipAll
			}
			return nil
		}

		relPath := filepath.Base(path)
		if rel != "" {
			relPath = filepath.Join(rel, relPath)
		}

		switch {
		case d.Type()&os.ModeSymlink != 0:
			info, statErr := os.Stat(path)
			if statErr != nil {
				if w.opts.FollowLinks {
					// Dangling link: hand the error over and skip the entry.
					if handled := w.handleError(statErr); handled != nil {
						w.emitErr(handled)
						w.stopped = true
						return fs.SkipAll
					}
					return nil
				}
				if !w.emit(TreeEntry{Path: relPath, kind: KindSymlink}) {
					return fs.SkipAll
				}
				return nil
			}
			if !w.emit(TreeEntry{Path: relPath, kind: KindSymlink, isDir: info.IsDir()}) {
				return fs.SkipAll
			}
			if info.IsDir() && w.opts.FollowLinks {
				subdirs = append(subdirs, subdir{full: path, rel: relPath})
			}
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		case d.IsDir():
			if !w.emit(TreeEntry{Path: relPath, kind: KindDir}) {
				return fs.SkipAll
			}
			subdirs = append(subdirs, subdir{full: path, rel: relPath})
			return fs.SkipDir
		default:
			if !w.emit(TreeEntry{Path: relPath, kind: KindFile}) {
				return fs.SkipAll
			}
			return nil
		}
	})

	for _, sd := range subdirs {
		if w.stopped {
			return
		}
		w.walk(sd.full, sd.rel)
	}
}

func (w *walker) emit(e TreeEntry) bool {
	return w.emit2(e, nil)
}

func (w *walker) emitErr(err error) {
	w.emit2(TreeEntry{}, err)
}

func (w *walker) emit2(e TreeEntry, err error) bool {
	if w.stopped {
		return false
	}
	if !w.send(e, err) {
		w.stopped = true
		return false
	}
	return true
}
