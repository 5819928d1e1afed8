// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/degradient/cmd/degradient/opts"
	"github.com/walteh/degradient/pkg/log"
	"github.com/walteh/degradient/pkg/operation"
)

// NewRunCmd creates the run command
func NewRunCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replace gradient classes in place",
		Long: `Run rewrites every matching file under the configured roots.
It will:
1. Replace each gradient class string with its solid colour counterpart
2. Print every modified file
3. Count the gradient classes left under the marker roots

Files that cannot be read or written are reported and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Rewrite(cmd, ro)
		},
	}

	return cmd
}

// Rewrite runs one rewrite pass. It is also the action of the bare root command.
func Rewrite(cmd *cobra.Command, ro *opts.RootOpts) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)
	console := log.FromContext(ctx)

	if ro.Config.DryRun {
		console.Infof("Dry run over %s, no file will be written", ro.Config)
	}

	op, err := operation.NewRewriteOperation(ro.OperationOptions(console))
	if err != nil {
		return errors.Errorf("creating rewrite operation: %w", err)
	}

	runner := operation.NewRunner(logger, ro.Async)
	if err := runner.Run(ctx, op); err != nil {
		return errors.Errorf("rewriting files: %w", err)
	}

	if summary := op.Summary(); summary != nil && len(summary.Failed) > 0 {
		logger.Warn().Int("failed", len(summary.Failed)).Msg("some files could not be processed")
		console.Errorf("%d of %d files could not be processed", len(summary.Failed), summary.Scanned)
	}

	return nil
}
