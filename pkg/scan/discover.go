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

// Package scan finds frontend sources and counts leftover gradient markers.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// Filter selects files by name suffix and skips doublestar exclude globs.
// Globs are matched against the slash-separated path relative to the root.
type Filter struct {
	Suffix  string
	Exclude []string
}

func (f Filter) excluded(rel string) bool {
	for _, pattern := range f.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Discover walks root and returns every file that passes the filter, in
// lexical walk order. An unreadable root is an error; unreadable entries
// below it are logged and skipped.
func Discover(ctx context.Context, fsys afero.Fs, filter Filter, root string) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	var files []string

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if rel != "." && filter.excluded(rel) {
				logger.Debug().Str("dir", path).Msg("excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(info.Name(), filter.Suffix) || filter.excluded(rel) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	logger.Debug().Str("root", root).Int("files", len(files)).Msg("discovered files")
	return files, nil
}
