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

// Package changeset captures the working-tree status as an immutable,
// ordered snapshot. The snapshot is taken exactly once per run; every later
// index and path lookup is served from it, never from a fresh status query,
// so selections cannot silently drift onto paths that changed mid-run.
package changeset

import (
	"context"
	"fmt"

	stagerrors "github.com/sirseerhq/stagehand/internal/errors"
	"github.com/sirseerhq/stagehand/internal/git"
)

// Record is one change in the snapshot. Indices are contiguous, 1-based,
// assigned in the order git reported the entries, and never renumbered.
type Record struct {
	Index int
	Code  git.StatusCode
	Path  string
}

// Snapshot is the immutable change list for one run.
type Snapshot struct {
	records []Record
}

// Take queries the working-tree status once and freezes it into a Snapshot.
// A clean tree (empty index and no working-tree changes) returns
// errors.ErrNoChanges, which callers treat as a normal termination.
func Take(ctx context.Context, svc git.Service) (*Snapshot, error) {
	entries, err := svc.QueryStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query status: %w", err)
	}
	if len(entries) == 0 {
		return nil, stagerrors.ErrNoChanges
	}

	records := make([]Record, len(entries))
	for i, e := range entries {
		records[i] = Record{Index: i + 1, Code: e.Code, Path: e.Path}
	}
	return &Snapshot{records: records}, nil
}

// Len returns the number of records.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Records returns a copy of the record list in snapshot order.
func (s *Snapshot) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Record looks up a record by its 1-based index.
func (s *Snapshot) Record(index int) (Record, bool) {
	if index < 1 || index > len(s.records) {
		return Record{}, false
	}
	return s.records[index-1], true
}
