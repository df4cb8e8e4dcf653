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

package changeset

import (
	"context"
	"errors"
	"testing"

	stagerrors "github.com/sirseerhq/stagehand/internal/errors"
	"github.com/sirseerhq/stagehand/internal/git"
)

// statusStub implements git.Service with canned status output. Only
// QueryStatus matters to this package.
type statusStub struct {
	entries []git.StatusEntry
	err     error
	queries int
}

func (s *statusStub) QueryStatus(ctx context.Context) ([]git.StatusEntry, error) {
	s.queries++
	return s.entries, s.err
}

func (s *statusStub) ResetIndex(ctx context.Context) error              { return nil }
func (s *statusStub) StageAll(ctx context.Context) error                { return nil }
func (s *statusStub) StagePath(ctx context.Context, path string) error  { return nil }
func (s *statusStub) IsIndexEmpty(ctx context.Context) (bool, error)    { return true, nil }
func (s *statusStub) Commit(ctx context.Context, message string) error  { return nil }
func (s *statusStub) Push(ctx context.Context, remote, br string) error { return nil }
func (s *statusStub) CurrentBranch(ctx context.Context) (string, error) { return "main", nil }

func TestTakeAssignsContiguousIndices(t *testing.T) {
	stub := &statusStub{entries: []git.StatusEntry{
		{Code: git.StatusModified, Path: "a.txt"},
		{Code: git.StatusUntracked, Path: "b.txt"},
		{Code: git.StatusDeleted, Path: "c.txt"},
	}}

	snap, err := Take(context.Background(), stub)
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}
	if snap.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", snap.Len())
	}

	for i, rec := range snap.Records() {
		if rec.Index != i+1 {
			t.Errorf("Records()[%d].Index = %d, want %d", i, rec.Index, i+1)
		}
	}

	rec, ok := snap.Record(3)
	if !ok {
		t.Fatal("Record(3) not found")
	}
	if rec.Path != "c.txt" || rec.Code != git.StatusDeleted {
		t.Errorf("Record(3) = %+v, want deleted c.txt", rec)
	}
}

func TestTakeCleanTree(t *testing.T) {
	stub := &statusStub{}

	_, err := Take(context.Background(), stub)
	if !errors.Is(err, stagerrors.ErrNoChanges) {
		t.Errorf("Take() error = %v, want ErrNoChanges", err)
	}
}

func TestTakeQueryFailure(t *testing.T) {
	stub := &statusStub{err: errors.New("boom")}

	_, err := Take(context.Background(), stub)
	if err == nil {
		t.Fatal("Take() expected error")
	}
	if errors.Is(err, stagerrors.ErrNoChanges) {
		t.Error("query failure must not look like a clean tree")
	}
}

// The snapshot is taken once; later lookups never re-query.
func TestSnapshotIsImmutable(t *testing.T) {
	stub := &statusStub{entries: []git.StatusEntry{
		{Code: git.StatusModified, Path: "a.txt"},
	}}

	snap, err := Take(context.Background(), stub)
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}

	// Mutating the returned slice must not affect the snapshot.
	records := snap.Records()
	records[0].Path = "tampered"

	rec, _ := snap.Record(1)
	if rec.Path != "a.txt" {
		t.Errorf("Record(1).Path = %q, want a.txt", rec.Path)
	}

	snap.Record(1)
	snap.Records()
	if stub.queries != 1 {
		t.Errorf("status queried %d times, want 1", stub.queries)
	}
}

func TestRecordOutOfRange(t *testing.T) {
	stub := &statusStub{entries: []git.StatusEntry{
		{Code: git.StatusModified, Path: "a.txt"},
	}}

	snap, err := Take(context.Background(), stub)
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}

	for _, idx := range []int{0, -1, 2} {
		if _, ok := snap.Record(idx); ok {
			t.Errorf("Record(%d) found, want miss", idx)
		}
	}
}
