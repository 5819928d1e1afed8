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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/degradient/pkg/log"
	"github.com/walteh/degradient/pkg/rewrite"
	"github.com/walteh/degradient/pkg/scan"
)

// 🎯 Failure is a file the rewrite pass could not process
type Failure struct {
	Path string // relative to the configured base
	Err  error
}

// 📊 Summary is the outcome of one rewrite pass
type Summary struct {
	// Scanned is the number of files handed to the rewriter
	Scanned int
	// Modified lists the rewritten files, relative to the base, in processing order
	Modified []string
	// Failed lists the files that could not be read or written
	Failed []Failure
	// Remaining is the marker count taken after the pass, nil when it could not be taken
	Remaining *scan.Result
	// RemainingErr is why Remaining is nil
	RemainingErr error
}

// 🔄 RewriteOperation rewrites every matching file under the configured roots
// and then counts what is left of the marker
type RewriteOperation struct {
	BaseOperation
	rewriter *rewrite.Rewriter
	summary  *Summary
}

// 🏭 NewRewriteOperation creates a rewrite operation
func NewRewriteOperation(opts Options) (*RewriteOperation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}

	rules, err := base.Config.RuleSet()
	if err != nil {
		return nil, errors.Errorf("loading rules: %w", err)
	}

	rw, err := rewrite.New(rewrite.Options{
		Fs:     base.Fs,
		Rules:  rules,
		DryRun: base.Config.DryRun,
	})
	if err != nil {
		return nil, errors.Errorf("creating rewriter: %w", err)
	}

	return &RewriteOperation{
		BaseOperation: base,
		rewriter:      rw,
	}, nil
}

// 🏃 Execute runs the operation, keeping the summary for Summary
func (op *RewriteOperation) Execute(ctx context.Context) error {
	summary, err := op.Run(ctx)
	op.summary = summary
	return err
}

// 📊 Summary returns the summary of the last Execute, or nil
func (op *RewriteOperation) Summary() *Summary {
	return op.summary
}

// 🏃 Run discovers the files, rewrites them one at a time and reports the
// remaining marker count. Per file failures and count failures are recorded
// in the summary; only cancellation returns an error.
func (op *RewriteOperation) Run(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)

	files := op.discover(ctx)
	summary := &Summary{Scanned: len(files)}

	logger.Debug().Int("files", len(files)).Bool("dry_run", op.Config.DryRun).Msg("starting rewrite")

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, errors.Errorf("rewriting files: %w", err)
		}

		rel := op.Config.Rel(path)

		res, err := op.rewriter.Rewrite(ctx, path)
		if err != nil {
			summary.Failed = append(summary.Failed, Failure{Path: rel, Err: err})
			op.Logger.LogFileOperation(ctx, log.FileOperation{
				Path:   rel,
				Status: log.FileFailed,
				Err:    err,
			})
			continue
		}

		status := log.FileUnchanged
		if res.Outcome == rewrite.Modified {
			status = log.FileModified
			summary.Modified = append(summary.Modified, rel)
		}
		op.Logger.LogFileOperation(ctx, log.FileOperation{
			Path:         rel,
			Status:       status,
			Replacements: res.Replacements,
		})
	}

	op.Logger.LogNewline()
	op.Logger.Successf("Complete! Modified %d files", len(summary.Modified))

	remaining, err := scan.Count(ctx, op.countOptions(), op.Config.MarkerRootPaths()...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return summary, errors.Errorf("counting remaining markers: %w", ctxErr)
		}
		summary.RemainingErr = err
		logger.Warn().Err(err).Msg("remaining gradient instances unavailable")
		op.Logger.Warningf("Remaining gradient instances unavailable: %v", err)
		return summary, nil
	}

	summary.Remaining = remaining
	op.Logger.Statf("Remaining gradient instances: %d", remaining.Lines)

	return summary, nil
}

// 📂 discover lists the files of every root in root order. A root that
// cannot be walked is logged and skipped.
func (op *RewriteOperation) discover(ctx context.Context) []string {
	logger := zerolog.Ctx(ctx)

	var files []string
	for _, root := range op.Config.RootPaths() {
		found, err := scan.Discover(ctx, op.Fs, op.Config.Filter(), root)
		if err != nil {
			logger.Warn().Err(err).Str("root", root).Msg("skipping root")
			continue
		}
		files = append(files, found...)
	}
	return files
}

func (op *BaseOperation) countOptions() scan.Options {
	return scan.Options{
		Fs:      op.Fs,
		Filter:  op.Config.CountFilter(),
		Marker:  op.Config.Marker,
		Workers: op.Config.Workers,
	}
}
