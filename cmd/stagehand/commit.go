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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/stagehand/internal/changeset"
	"github.com/sirseerhq/stagehand/internal/config"
	stagerrors "github.com/sirseerhq/stagehand/internal/errors"
	"github.com/sirseerhq/stagehand/internal/git"
	"github.com/sirseerhq/stagehand/internal/pipeline"
	"github.com/sirseerhq/stagehand/internal/prompt"
	"github.com/sirseerhq/stagehand/internal/selection"
	"github.com/sirseerhq/stagehand/internal/stage"
)

// newRootCommand builds the one and only command. Invoked without flags it
// runs the interactive selective workflow; trailing arguments are joined
// into the commit message.
func newRootCommand() *cobra.Command {
	var (
		allMode    bool
		stagedMode bool
		remote     string
		noPush     bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "stagehand [flags] [message...]",
		Short: "Selectively stage, commit and push working-tree changes",
		Long: `stagehand snapshots the uncommitted changes of the current repository,
lets you pick a subset by index (single numbers, comma or space separated
lists, ranges like 3-5, 'a' for all, 'q' to quit), stages exactly that
subset, then commits and pushes.

Without a message argument you are prompted for one; leaving the prompt
empty produces a timestamped default.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			if allMode && stagedMode {
				return fmt.Errorf("--all and --staged are mutually exclusive")
			}
			mode := stage.ModeSelective
			if allMode {
				mode = stage.ModeAll
			}
			if stagedMode {
				mode = stage.ModeStagedOnly
			}

			return runCommit(cmd.Context(), commitOptions{
				mode:       mode,
				message:    strings.Join(args, " "),
				remote:     remote,
				noPush:     noPush,
				configPath: configPath,
			})
		},
	}

	cmd.Flags().BoolVarP(&allMode, "all", "a", false, "Stage every change without prompting")
	cmd.Flags().BoolVarP(&stagedMode, "staged", "s", false, "Commit only what is already staged")
	cmd.Flags().StringVar(&remote, "remote", "", "Push target remote (overrides config)")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Stop after committing")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file")

	return cmd
}

// commitOptions carries the resolved CLI inputs into the run.
type commitOptions struct {
	mode       stage.Mode
	message    string
	remote     string
	noPush     bool
	configPath string
}

// runCommit wires the real dependencies and executes the workflow against
// the repository containing the current directory.
func runCommit(ctx context.Context, opts commitOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}
	if !git.IsRepository(ctx, cwd) {
		return fmt.Errorf("not a git repository: %s", cwd)
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Flags win over environment and file settings.
	if opts.remote != "" {
		cfg.Git.Remote = opts.remote
	}
	if opts.noPush {
		cfg.Git.Push = false
	}

	svc := git.NewExecService(cwd)
	prompter := prompt.New(os.Stdin, os.Stderr)

	return runWorkflow(ctx, svc, prompter, cfg, opts.mode, opts.message, os.Stderr)
}

// runWorkflow is the whole state machine: snapshot, mode dispatch, staging,
// commit, push. Dependencies are injected so tests drive it against an
// in-memory repository fake.
func runWorkflow(ctx context.Context, svc git.Service, prompter *prompt.Prompter, cfg *config.Config, mode stage.Mode, message string, progress io.Writer) error {
	snap, err := changeset.Take(ctx, svc)
	if err != nil {
		return err
	}

	var sel selection.Selection
	if mode == stage.ModeSelective {
		prompter.ListChanges(snap.Records())
		line, err := prompter.ReadSelection()
		if err != nil {
			return fmt.Errorf("failed to read selection: %w", err)
		}
		sel = selection.Parse(line, snap.Len())
	}

	orch := stage.NewOrchestrator(svc, progress)
	if err := orch.Apply(ctx, mode, sel, snap); err != nil {
		return err
	}

	if message == "" {
		message = cfg.Commit.DefaultMessage
	}

	pipe := pipeline.New(svc, prompter, pipeline.Options{
		Remote: cfg.Git.Remote,
		Branch: cfg.Git.Branch,
		Push:   cfg.Git.Push,
	})
	if err := pipe.Run(ctx, message); err != nil {
		return err
	}

	if cfg.Git.Push {
		fmt.Fprintln(progress, "Committed and pushed.")
	} else {
		fmt.Fprintln(progress, "Committed.")
	}
	return nil
}

// reportTerminal prints the single human-readable line for a terminal
// condition. Informational terminations are not prefixed as errors.
func reportTerminal(w io.Writer, err error) {
	switch {
	case errors.Is(err, stagerrors.ErrEmptyStage), errors.Is(err, stagerrors.ErrEmptySelection):
		fmt.Fprintf(w, "Warning: %v\n", err)
	case mapErrorToExitCode(err) == 0:
		fmt.Fprintf(w, "%v\n", err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// mapErrorToExitCode maps terminal conditions to exit codes. Clean tree,
// user cancellation and empty stage/selection are recognized non-error
// terminations; everything else fails the invocation.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, stagerrors.ErrNoChanges) ||
		errors.Is(err, stagerrors.ErrUserCancelled) ||
		errors.Is(err, stagerrors.ErrEmptyStage) ||
		errors.Is(err, stagerrors.ErrEmptySelection) {
		return 0
	}

	return 1
}
