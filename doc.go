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

// Package pathspec compiles collections of gitignore-style patterns into a
// PathSpec that can answer whether a path is included or excluded, together
// with the index of the decisive pattern.
//
// A blank line matches no files, so it can serve as a separator for readability.
//
// A line starting with # serves as a comment. Put a backslash ("\") in front of
// the first hash for patterns that begin with a hash.
//
// An optional prefix "!" which negates the pattern; any matching file excluded
// by a previous pattern will become included again. If a negated pattern matches,
// this overrides lower precedence patterns. Put a backslash ("\") in front of the
// first "!" for patterns that begin with a literal "!", for example "\!important!.txt".
//
// If the pattern ends with a slash, it is removed for the purpose of the following
// description, but it would only find a match with a directory. In other words,
// foo/ will match a directory foo and paths underneath it, but will not match a
// regular file or a symbolic link foo.
//
// If the pattern does not contain a slash /, it is treated as a shell glob pattern
// and checked for a match against the pathname relative to the location of the
// .gitignore file.
//
// Otherwise, the pattern is treated as a shell glob suitable for consumption by
// fnmatch(3) with the FNM_PATHNAME flag: wildcards in the pattern will not match
// a / in the pathname. For example, "Documentation/*.html" matches
// "Documentation/git.html" but not "Documentation/ppc/ppc.html".
//
// A leading slash matches the beginning of the pathname. For example, "/*.c"
// matches "cat-file.c" but not "mozilla-sha1/sha1.c".
//
// Two consecutive asterisks ("**") in patterns matched against full pathname may
// have special meaning:
//
// A leading "**" followed by a slash means match in all directories. For example,
// "**/foo" matches file or directory "foo" anywhere, the same as pattern "foo".
// "**/foo/bar" matches file or directory "bar" anywhere that is directly under
// directory "foo".
//
// A trailing "/**" matches everything inside. For example, "abc/**" matches all
// files inside directory "abc", with infinite depth.
//
// A slash followed by two consecutive asterisks then a slash matches zero or more
// directories. For example, "a/**/b" matches "a/b", "a/x/b", "a/x/y/b" and so on.
//
// Other consecutive asterisks are treated as ordinary "*" wildcards.
//
// This package compiles patterns into two dialects: the "documented" dialect
// (registered as "gitignore"), which implements only what the gitignore
// documentation states, and the "spec" dialect (registered as "gitwildmatch",
// and used internally by GitIgnoreSpec), which additionally replicates Git's
// actual behavior of re-including files under a directory that a later,
// higher-priority pattern whitelists — even though the directory itself was
// previously excluded.
package pathspec
