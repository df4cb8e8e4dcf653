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

// Package main implements the stagehand command-line interface. This tool
// snapshots the working tree, lets the operator pick a subset of changes to
// stage through a small selection grammar, then commits and pushes.
//
// The CLI supports:
//   - Interactive selective staging (default behavior)
//   - Staging everything with the --all flag
//   - Committing only the already-staged set with the --staged flag
//   - A commit message from trailing arguments, a prompt, or a
//     timestamped default
//   - Push target configuration via YAML file, environment, or flags
//
// Usage:
//
//	stagehand [flags] [message...]
//
// Example:
//
//	stagehand                     # pick changes interactively
//	stagehand -a "fix the build"  # stage everything, commit, push
//	stagehand -s --no-push        # commit what is staged, skip the push
//
// Exit codes:
//   - 0: Success, or a recognized non-error termination (clean tree,
//     user cancellation, nothing to stage)
//   - 1: Staging, selection, commit or push failure
package main
