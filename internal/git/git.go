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

// Package git is the boundary to the versioned-storage system. It exposes the
// small set of primitives the workflow needs (status query, stage, commit,
// push) behind the Service interface, with an implementation that shells out
// to the git binary. Callers inject a Service, so tests substitute an
// in-memory fake instead of a real repository.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Service is the capability interface to the external versioned-storage
// system. All operations are synchronous; none of them retry.
type Service interface {
	// QueryStatus returns the uncommitted changes of the working tree and
	// index, in the order git reports them. A clean tree yields an empty
	// slice, not an error.
	QueryStatus(ctx context.Context) ([]StatusEntry, error)

	// ResetIndex unstages everything. Idempotent: resetting an already
	// empty index is a no-op.
	ResetIndex(ctx context.Context) error

	// StageAll stages every change in the working tree, including files
	// that appeared after the last status query.
	StageAll(ctx context.Context) error

	// StagePath stages a single path. Idempotent per path.
	StagePath(ctx context.Context, path string) error

	// IsIndexEmpty reports whether the index holds no staged changes.
	IsIndexEmpty(ctx context.Context) (bool, error)

	// Commit records the staged changes with the given message.
	Commit(ctx context.Context, message string) error

	// Push publishes the current branch. Empty remote and branch mean
	// "use the configured upstream".
	Push(ctx context.Context, remote, branch string) error

	// CurrentBranch returns the name of the checked-out branch.
	CurrentBranch(ctx context.Context) (string, error)
}

// CommandError is returned when a git invocation fails. It captures the
// subcommand, its arguments and any stderr output so failures can be
// classified and reported without re-running the command.
type CommandError struct {
	Subcommand string
	Args       []string
	Stderr     string
	Err        error
}

// Error implements the error interface with the command and its output.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Subcommand)
	if out := strings.TrimSpace(e.Stderr); out != "" {
		msg = fmt.Sprintf("%s: %s", msg, out)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecService implements Service by running the git binary against a
// repository directory.
type ExecService struct {
	// Dir is the repository path handed to git via -C.
	Dir string
}

// NewExecService returns a Service operating on the repository at dir.
func NewExecService(dir string) *ExecService {
	return &ExecService{Dir: dir}
}

// IsRepository reports whether path is inside a git working tree.
func IsRepository(ctx context.Context, path string) bool {
	cmd := exec.CommandContext(ctx, "git", "-C", path, "rev-parse", "--is-inside-work-tree")
	return cmd.Run() == nil
}

// QueryStatus runs `git status --porcelain` and parses each line into a
// StatusEntry.
func (s *ExecService) QueryStatus(ctx context.Context) ([]StatusEntry, error) {
	out, err := s.output(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parsePorcelain(out), nil
}

// ResetIndex runs `git reset` to clear all staged changes.
func (s *ExecService) ResetIndex(ctx context.Context) error {
	return s.run(ctx, "reset", "--quiet")
}

// StageAll runs `git add -A`.
func (s *ExecService) StageAll(ctx context.Context) error {
	return s.run(ctx, "add", "-A")
}

// StagePath runs `git add -- <path>`.
func (s *ExecService) StagePath(ctx context.Context, path string) error {
	return s.run(ctx, "add", "--", path)
}

// IsIndexEmpty runs `git diff --cached --quiet`. Exit code 1 means the index
// has staged changes, which is not an error for our purposes. On a repository
// with no commits yet there is no HEAD to diff against and git exits 128; the
// status listing answers the question instead.
func (s *ExecService) IsIndexEmpty(ctx context.Context) (bool, error) {
	err := s.run(ctx, "diff", "--cached", "--quiet")
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		switch exitErr.ExitCode() {
		case 1:
			return false, nil
		case 128:
			out, statusErr := s.output(ctx, "status", "--porcelain")
			if statusErr != nil {
				return false, err
			}
			return !hasStagedEntries(out), nil
		}
	}
	return false, err
}

// Commit runs `git commit -m <message>`.
func (s *ExecService) Commit(ctx context.Context, message string) error {
	return s.run(ctx, "commit", "-m", message)
}

// Push runs `git push`, targeting remote and branch when both are given.
func (s *ExecService) Push(ctx context.Context, remote, branch string) error {
	if remote != "" && branch != "" {
		return s.run(ctx, "push", remote, branch)
	}
	return s.run(ctx, "push")
}

// CurrentBranch runs `git branch --show-current`.
func (s *ExecService) CurrentBranch(ctx context.Context) (string, error) {
	out, err := s.output(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// run executes a git subcommand, discarding stdout.
func (s *ExecService) run(ctx context.Context, args ...string) error {
	_, err := s.output(ctx, args...)
	return err
}

// output executes a git subcommand and returns its stdout.
func (s *ExecService) output(ctx context.Context, args ...string) (string, error) {
	full := append([]string{"-C", s.Dir}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Subcommand: args[0],
			Args:       args[1:],
			Stderr:     stderr.String(),
			Err:        err,
		}
	}
	return stdout.String(), nil
}
