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

// Package pipeline runs the final commit-then-push leg of the workflow. The
// two steps fail independently: a commit failure is fatal and push is never
// attempted, while a push failure leaves the fresh local commit in place.
// There are no retries at this layer.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	stagerrors "github.com/sirseerhq/stagehand/internal/errors"
	"github.com/sirseerhq/stagehand/internal/git"
)

// MessagePrompter supplies a commit message from the operator when none was
// given up front. An empty result means "use the default".
type MessagePrompter interface {
	ReadCommitMessage() (string, error)
}

// Options configures one pipeline run.
type Options struct {
	// Remote and Branch name the push target. Empty values fall back to
	// the configured upstream.
	Remote string
	Branch string
	// Push disables the push step when false; the run ends after commit.
	Push bool
	// Now is the clock used for the default message. Nil means time.Now.
	Now func() time.Time
}

// Pipeline commits the staged set and pushes it.
type Pipeline struct {
	svc     git.Service
	inspect git.Inspector
	prompt  MessagePrompter
	opts    Options
}

// New returns a Pipeline over svc.
func New(svc git.Service, prompt MessagePrompter, opts Options) *Pipeline {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Pipeline{
		svc:     svc,
		inspect: git.NewInspector(),
		prompt:  prompt,
		opts:    opts,
	}
}

// Run commits the staged set with the resolved message, then pushes. The
// message argument wins when non-empty; otherwise the operator is prompted
// and a timestamped default fills in if they supply nothing.
func (p *Pipeline) Run(ctx context.Context, message string) error {
	// The orchestrator already guarantees a non-empty index; this guards
	// against the tree changing underneath us between the two steps.
	empty, err := p.svc.IsIndexEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect index: %w", err)
	}
	if empty {
		return fmt.Errorf("%w: nothing staged", stagerrors.ErrCommitFailed)
	}

	msg, err := p.resolveMessage(message)
	if err != nil {
		return err
	}

	if err := p.svc.Commit(ctx, msg); err != nil {
		return p.commitError(err)
	}

	if !p.opts.Push {
		return nil
	}

	remote, branch := p.opts.Remote, p.opts.Branch
	if remote != "" && branch == "" {
		b, err := p.svc.CurrentBranch(ctx)
		if err != nil {
			return fmt.Errorf("%w: cannot resolve current branch: %v", stagerrors.ErrPushFailed, err)
		}
		branch = b
	}
	if err := p.svc.Push(ctx, remote, branch); err != nil {
		return p.pushError(err)
	}
	return nil
}

// resolveMessage picks the commit message: explicit argument, then operator
// input, then the timestamped default.
func (p *Pipeline) resolveMessage(message string) (string, error) {
	if msg := strings.TrimSpace(message); msg != "" {
		return msg, nil
	}
	line, err := p.prompt.ReadCommitMessage()
	if err != nil {
		return "", fmt.Errorf("%w: failed to read commit message: %v", stagerrors.ErrCommitFailed, err)
	}
	if msg := strings.TrimSpace(line); msg != "" {
		return msg, nil
	}
	return fmt.Sprintf("Auto commit on %s", p.opts.Now().Format("2006-01-02 15:04:05")), nil
}

// commitError converts a failed commit into the fatal sentinel with an
// operator-readable cause.
func (p *Pipeline) commitError(err error) error {
	switch {
	case p.inspect.IsNothingToCommit(err):
		return fmt.Errorf("%w: nothing staged", stagerrors.ErrCommitFailed)
	case p.inspect.IsHookRejected(err):
		return fmt.Errorf("%w: rejected by a commit hook: %v", stagerrors.ErrCommitFailed, err)
	case p.inspect.IsIdentityUnset(err):
		return fmt.Errorf("%w: git identity not configured, set user.name and user.email: %v", stagerrors.ErrCommitFailed, err)
	default:
		return fmt.Errorf("%w: %v", stagerrors.ErrCommitFailed, err)
	}
}

// pushError converts a failed push into its sentinel. The commit already
// exists locally and is not rolled back.
func (p *Pipeline) pushError(err error) error {
	switch {
	case p.inspect.IsNonFastForward(err):
		return fmt.Errorf("%w: remote rejected (non-fast-forward), the commit remains local: %v", stagerrors.ErrPushFailed, err)
	case p.inspect.IsAuthError(err):
		return fmt.Errorf("%w: authentication failed, the commit remains local: %v", stagerrors.ErrPushFailed, err)
	case p.inspect.IsNetworkError(err):
		return fmt.Errorf("%w: network failure, the commit remains local: %v", stagerrors.ErrPushFailed, err)
	default:
		return fmt.Errorf("%w: the commit remains local: %v", stagerrors.ErrPushFailed, err)
	}
}
