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

package scan

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// ErrSearchUnavailable matches every *SearchError.
var ErrSearchUnavailable = errors.Base("search unavailable")

// SearchError reports a root that could not be searched.
type SearchError struct {
	Root string
	Err  error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("searching %s: %v", e.Root, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

func (e *SearchError) Is(target error) bool { return target == ErrSearchUnavailable }

// Options configures Count.
type Options struct {
	Fs      afero.Fs
	Filter  Filter
	Marker  string
	Workers int // <= 0 means runtime.NumCPU()
}

// FileCount is the marker tally of one file.
type FileCount struct {
	Path        string
	Lines       int // lines containing the marker
	Occurrences int // total marker occurrences
}

// Result aggregates a count. Files only lists files with at least one match,
// in discovery order.
type Result struct {
	Files       []FileCount
	Lines       int
	Occurrences int
}

// Count tallies marker lines under roots. Lines matches the line count of
// `grep -r <marker> <root> --include=*<suffix>`. Files that cannot be read are
// logged and skipped; a root that cannot be walked fails the whole count with
// a *SearchError.
func Count(ctx context.Context, opts Options, roots ...string) (*Result, error) {
	if opts.Marker == "" {
		return nil, errors.Errorf("marker is required")
	}
	logger := zerolog.Ctx(ctx)

	var files []string
	for _, root := range roots {
		found, err := Discover(ctx, opts.Fs, opts.Filter, root)
		if err != nil {
			return nil, &SearchError{Root: root, Err: err}
		}
		files = append(files, found...)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	counts := make([]FileCount, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := afero.ReadFile(opts.Fs, path)
			if err != nil {
				logger.Warn().Err(err).Str("file", path).Msg("skipping unreadable file")
				return nil
			}
			counts[i] = countMarker(path, string(content), opts.Marker)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Errorf("counting markers: %w", err)
	}

	result := &Result{}
	for _, c := range counts {
		if c.Lines == 0 {
			continue
		}
		result.Files = append(result.Files, c)
		result.Lines += c.Lines
		result.Occurrences += c.Occurrences
	}

	logger.Debug().
		Int("files", len(files)).
		Int("lines", result.Lines).
		Int("occurrences", result.Occurrences).
		Msg("counted markers")

	return result, nil
}

func countMarker(path, content, marker string) FileCount {
	fc := FileCount{Path: path}
	for _, line := range strings.Split(content, "\n") {
		if n := strings.Count(line, marker); n > 0 {
			fc.Lines++
			fc.Occurrences += n
		}
	}
	return fc
}
