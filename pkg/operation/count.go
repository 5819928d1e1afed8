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

	"github.com/walteh/degradient/pkg/scan"
)

// 🔍 CountOperation counts marker lines without touching any file
type CountOperation struct {
	BaseOperation
	roots  []string
	result *scan.Result
}

// 🏭 NewCountOperation creates a count operation over roots. With no roots
// the configured marker roots are searched.
func NewCountOperation(opts Options, roots ...string) (*CountOperation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		roots = base.Config.MarkerRootPaths()
	}
	return &CountOperation{
		BaseOperation: base,
		roots:         roots,
	}, nil
}

// 🏃 Execute runs the count. Unlike the rewrite pass, a root that cannot be
// searched is an error here.
func (op *CountOperation) Execute(ctx context.Context) error {
	zerolog.Ctx(ctx).Debug().Strs("roots", op.roots).Msg("counting markers")

	result, err := scan.Count(ctx, op.countOptions(), op.roots...)
	if err != nil {
		return errors.Errorf("counting %q: %w", op.Config.Marker, err)
	}
	op.result = result
	return nil
}

// 📊 Result returns the count of the last Execute, or nil
func (op *CountOperation) Result() *scan.Result {
	return op.result
}
