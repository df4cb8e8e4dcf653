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

import (
	"reflect"
	"testing"
)

func TestParsePorcelain(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []StatusEntry
	}{
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
		{
			name: "modified in worktree",
			out:  " M main.go\n",
			want: []StatusEntry{{Code: StatusModified, Path: "main.go"}},
		},
		{
			name: "modified in index and worktree",
			out:  "MM main.go\n",
			want: []StatusEntry{{Code: StatusModified, Path: "main.go"}},
		},
		{
			name: "added",
			out:  "A  new.go\n",
			want: []StatusEntry{{Code: StatusAdded, Path: "new.go"}},
		},
		{
			name: "deleted from worktree",
			out:  " D gone.go\n",
			want: []StatusEntry{{Code: StatusDeleted, Path: "gone.go"}},
		},
		{
			name: "untracked",
			out:  "?? notes.txt\n",
			want: []StatusEntry{{Code: StatusUntracked, Path: "notes.txt"}},
		},
		{
			name: "rename records the new path",
			out:  "R  old.go -> new.go\n",
			want: []StatusEntry{{Code: StatusRenamed, Path: "new.go"}},
		},
		{
			name: "copied maps to other",
			out:  "C  a.go -> b.go\n",
			want: []StatusEntry{{Code: StatusOther, Path: "a.go -> b.go"}},
		},
		{
			name: "ordering preserved",
			out:  " M a.txt\n?? b.txt\n D c.txt\n",
			want: []StatusEntry{
				{Code: StatusModified, Path: "a.txt"},
				{Code: StatusUntracked, Path: "b.txt"},
				{Code: StatusDeleted, Path: "c.txt"},
			},
		},
		{
			name: "path with spaces",
			out:  " M some dir/a file.txt\n",
			want: []StatusEntry{{Code: StatusModified, Path: "some dir/a file.txt"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parsePorcelain(tt.out); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePorcelain(%q) = %v, want %v", tt.out, got, tt.want)
			}
		})
	}
}

func TestHasStagedEntries(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want bool
	}{
		{
			name: "empty output",
			out:  "",
			want: false,
		},
		{
			name: "worktree-only modification",
			out:  " M main.go\n",
			want: false,
		},
		{
			name: "untracked only",
			out:  "?? notes.txt\n",
			want: false,
		},
		{
			name: "staged addition on a fresh repository",
			out:  "A  new.go\n",
			want: true,
		},
		{
			name: "staged among worktree changes",
			out:  " M a.go\nM  b.go\n?? c.go\n",
			want: true,
		},
		{
			name: "staged rename",
			out:  "R  old.go -> new.go\n",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasStagedEntries(tt.out); got != tt.want {
				t.Errorf("hasStagedEntries(%q) = %v, want %v", tt.out, got, tt.want)
			}
		})
	}
}

func TestStatusCodeString(t *testing.T) {
	tests := []struct {
		code StatusCode
		want string
	}{
		{StatusModified, "M"},
		{StatusAdded, "A"},
		{StatusDeleted, "D"},
		{StatusUntracked, "?"},
		{StatusRenamed, "R"},
		{StatusOther, "-"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("StatusCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
