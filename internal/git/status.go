// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package git

import "strings"

// StatusCode classifies one entry of a status query.
type StatusCode int

// Status codes, in rough order of how often they appear in practice.
const (
	StatusModified StatusCode = iota
	StatusAdded
	StatusDeleted
	StatusUntracked
	StatusRenamed
	StatusOther
)

// String returns the single-letter marker used when listing changes.
func (c StatusCode) String() string {
	switch c {
	case StatusModified:
		return "M"
	case StatusAdded:
		return "A"
	case StatusDeleted:
		return "D"
	case StatusUntracked:
		return "?"
	case StatusRenamed:
		return "R"
	default:
		return "-"
	}
}

// StatusEntry is one line of porcelain status output: a classified change
// and the path it applies to.
type StatusEntry struct {
	Code StatusCode
	Path string
}

// parsePorcelain converts `git status --porcelain` output into entries,
// preserving git's ordering. Lines too short to carry the XY field are
// skipped.
func parsePorcelain(out string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		code := codeFromXY(line[0], line[1])
		path := line[3:]
		if code == StatusRenamed {
			// Renames read "R  old -> new"; the new name is the
			// stageable target.
			if _, after, found := strings.Cut(path, " -> "); found {
				path = after
			}
		}
		entries = append(entries, StatusEntry{Code: code, Path: path})
	}
	return entries
}

// hasStagedEntries reports whether porcelain output lists any change in the
// index column (X). Worktree-only changes carry ' ' there and untracked
// files carry '?'.
func hasStagedEntries(out string) bool {
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 2 {
			continue
		}
		if x := line[0]; x != ' ' && x != '?' {
			return true
		}
	}
	return false
}

// codeFromXY maps the two porcelain status columns (index, worktree) to a
// single classification. Untracked wins outright; otherwise the more
// specific of the two columns decides.
func codeFromXY(x, y byte) StatusCode {
	switch {
	case x == '?' || y == '?':
		return StatusUntracked
	case x == 'R' || y == 'R':
		return StatusRenamed
	case x == 'A' || y == 'A':
		return StatusAdded
	case x == 'D' || y == 'D':
		return StatusDeleted
	case x == 'M' || y == 'M':
		return StatusModified
	default:
		return StatusOther
	}
}
