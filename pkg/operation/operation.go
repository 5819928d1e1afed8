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

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/degradient/pkg/config"
	"github.com/walteh/degradient/pkg/log"
)

// 🎯 Operation is a single unit of work run by an OperationRunner
type Operation interface {
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies shared by every operation
type Options struct {
	// Config is the resolved degradient configuration
	Config *config.Config
	// Fs is the filesystem files are discovered, read and written on
	Fs afero.Fs
	// Logger prints the user facing console lines
	Logger *log.Logger
}

// 📦 BaseOperation holds the common operation dependencies
type BaseOperation struct {
	Config *config.Config
	Fs     afero.Fs
	Logger *log.Logger
}

// 🏭 NewBaseOperation validates opts and builds a BaseOperation
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Fs == nil {
		return BaseOperation{}, errors.Errorf("filesystem is required")
	}
	if opts.Logger == nil {
		return BaseOperation{}, errors.Errorf("logger is required")
	}
	return BaseOperation{
		Config: opts.Config,
		Fs:     opts.Fs,
		Logger: opts.Logger,
	}, nil
}
