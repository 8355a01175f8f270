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

// Package pathutil provides path normalization and symlink-cycle-safe
// directory tree traversal used by PathSpec's tree-matching operations.
package pathutil

import "strings"

// Normalize replaces every native path separator, and every separator in
// seps, with "/". If seps is empty, the host OS's native separator set is
// used (so on Windows, "\\" is normalized in addition to "/"; elsewhere "/"
// is already the only separator and normalization is a no-op).
func Normalize(path string, seps ...string) string {
	seps = append(defaultSeparators(), seps...)
	for _, sep := range seps {
		if sep == "" || sep == "/" {
			continue
		}
		path = strings.ReplaceAll(path, sep, "/")
	}
	return path
}
