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

// Package rewrite applies a text.RuleSet to files in place.
package rewrite

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/degradient/pkg/text"
)

// Outcome is what a rewrite did to a file.
type Outcome int

const (
	Unchanged Outcome = iota // content identical, file not touched
	Modified                 // content differed and was written back
)

func (o Outcome) String() string {
	switch o {
	case Modified:
		return "modified"
	default:
		return "unchanged"
	}
}

// ErrIOFailure matches every *IOError.
var ErrIOFailure = errors.Base("io failure")

// ErrInvalidUTF8 is the cause of a "decode" IOError.
var ErrInvalidUTF8 = errors.Base("invalid utf-8")

// IOError reports a file that could not be read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIOFailure }

// Result describes one rewritten file.
type Result struct {
	Path         string
	Outcome      Outcome
	Replacements int
}

// Options configures a Rewriter.
type Options struct {
	// Fs is the filesystem files are read from and written to
	Fs afero.Fs
	// Rules is applied to every file, in order
	Rules *text.RuleSet
	// DryRun computes outcomes without writing
	DryRun bool
}

// Rewriter rewrites single files with a fixed rule set.
type Rewriter struct {
	fs     afero.Fs
	rules  *text.RuleSet
	dryRun bool
}

// New creates a Rewriter.
func New(opts Options) (*Rewriter, error) {
	if opts.Fs == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	if opts.Rules == nil {
		return nil, errors.Errorf("rules are required")
	}
	return &Rewriter{
		fs:     opts.Fs,
		rules:  opts.Rules,
		dryRun: opts.DryRun,
	}, nil
}

// Rewrite loads path, applies every rule once and overwrites the file when
// the content changed. The write is in place; there is no temp file or backup.
func (r *Rewriter) Rewrite(ctx context.Context, path string) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()

	info, err := r.fs.Stat(path)
	if err != nil {
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}

	original, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(original) {
		return nil, &IOError{Op: "decode", Path: path, Err: ErrInvalidUTF8}
	}

	result, err := r.rules.ReplaceText(ctx, bytes.NewReader(original))
	if err != nil {
		return nil, errors.Errorf("replacing text in %s: %w", path, err)
	}

	if !result.WasModified {
		logger.Debug().Int("replacements", result.ReplacementCount).Msg("file unchanged")
		return &Result{Path: path, Outcome: Unchanged, Replacements: result.ReplacementCount}, nil
	}

	if r.dryRun {
		logger.Debug().Int("replacements", result.ReplacementCount).Msg("dry run, not writing")
	} else if err := afero.WriteFile(r.fs, path, result.ModifiedContent, info.Mode().Perm()); err != nil {
		return nil, &IOError{Op: "write", Path: path, Err: err}
	}

	logger.Debug().Int("replacements", result.ReplacementCount).Msg("file rewritten")

	return &Result{Path: path, Outcome: Modified, Replacements: result.ReplacementCount}, nil
}
