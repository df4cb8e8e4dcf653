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

// Package errors defines sentinel errors for the terminal conditions of a
// stagehand run. Every path through the workflow ends in exactly one of
// these, and the CLI maps each to an exit code for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrNoChanges indicates the working tree and the index are both clean.
	// This is a normal termination, not a failure. Maps to exit code 0.
	ErrNoChanges = errors.New("nothing to commit, working tree clean")

	// ErrUserCancelled indicates the operator quit during selection.
	// Maps to exit code 0.
	ErrUserCancelled = errors.New("cancelled by user")

	// ErrEmptyStage indicates staged-only mode was requested but the index
	// holds nothing. Reported as a warning, maps to exit code 0.
	ErrEmptyStage = errors.New("no changes are currently staged")

	// ErrEmptySelection indicates the selection matched no files, so nothing
	// was staged. Reported as a warning, maps to exit code 0.
	ErrEmptySelection = errors.New("no valid selection")

	// ErrCommitFailed indicates the commit step failed. Push is never
	// attempted after this. Maps to exit code 1.
	ErrCommitFailed = errors.New("commit failed")

	// ErrPushFailed indicates the push step failed after a successful
	// commit. The local commit is retained. Maps to exit code 1.
	ErrPushFailed = errors.New("push failed")
)
