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

// Package stage decides what ends up in the index. It dispatches on the run
// mode and applies the operator's selection against the snapshot, mutating
// the external index through the injected git.Service. Its post-condition is
// that the index is non-empty when it returns nil.
package stage

import (
	"context"
	"fmt"
	"io"

	"github.com/sirseerhq/stagehand/internal/changeset"
	stagerrors "github.com/sirseerhq/stagehand/internal/errors"
	"github.com/sirseerhq/stagehand/internal/git"
	"github.com/sirseerhq/stagehand/internal/selection"
)

// Mode selects the staging strategy for one run. It is fixed before the
// snapshot is taken and never changes mid-run.
type Mode int

const (
	// ModeSelective prompts for a subset of the snapshot.
	ModeSelective Mode = iota
	// ModeAll stages every working-tree change.
	ModeAll
	// ModeStagedOnly commits whatever is already staged, staging nothing.
	ModeStagedOnly
)

// Orchestrator applies a mode and selection to the index. Per-path staging
// progress is written to the progress writer one line at a time.
type Orchestrator struct {
	svc      git.Service
	progress io.Writer
}

// NewOrchestrator returns an Orchestrator writing progress to w.
func NewOrchestrator(svc git.Service, w io.Writer) *Orchestrator {
	return &Orchestrator{svc: svc, progress: w}
}

// Apply mutates the index according to mode. For ModeSelective, sel must be
// the already-parsed selection; for the other modes it is ignored.
func (o *Orchestrator) Apply(ctx context.Context, mode Mode, sel selection.Selection, snap *changeset.Snapshot) error {
	switch mode {
	case ModeAll:
		// Independent of the snapshot: files that appeared after it
		// was taken are included too.
		if err := o.svc.StageAll(ctx); err != nil {
			return fmt.Errorf("failed to stage changes: %w", err)
		}
		return nil

	case ModeStagedOnly:
		empty, err := o.svc.IsIndexEmpty(ctx)
		if err != nil {
			return fmt.Errorf("failed to inspect index: %w", err)
		}
		if empty {
			return stagerrors.ErrEmptyStage
		}
		return nil

	case ModeSelective:
		return o.applySelective(ctx, sel, snap)
	}
	return fmt.Errorf("unknown staging mode %d", mode)
}

// applySelective clears the index and stages the selected records in index
// order. The reset runs for every obtained selection, including a cancel:
// it happens only after the operator has committed to an answer, and it
// guarantees selective staging is never additive across resubmissions.
func (o *Orchestrator) applySelective(ctx context.Context, sel selection.Selection, snap *changeset.Snapshot) error {
	if err := o.svc.ResetIndex(ctx); err != nil {
		return fmt.Errorf("failed to reset index: %w", err)
	}

	switch sel.Kind() {
	case selection.KindCancelled:
		return stagerrors.ErrUserCancelled
	case selection.KindAll:
		if err := o.svc.StageAll(ctx); err != nil {
			return fmt.Errorf("failed to stage changes: %w", err)
		}
		return nil
	}

	if sel.Empty() {
		return stagerrors.ErrEmptySelection
	}

	staged := 0
	for _, idx := range sel.Indices() {
		rec, ok := snap.Record(idx)
		if !ok {
			continue
		}
		if err := o.svc.StagePath(ctx, rec.Path); err != nil {
			return fmt.Errorf("failed to stage %s: %w", rec.Path, err)
		}
		fmt.Fprintf(o.progress, "staged %s %s\n", rec.Code, rec.Path)
		staged++
	}
	if staged == 0 {
		return stagerrors.ErrEmptySelection
	}
	return nil
}
