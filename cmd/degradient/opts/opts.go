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

package opts

import (
	"io"

	"github.com/spf13/afero"

	"github.com/walteh/degradient/pkg/config"
	"github.com/walteh/degradient/pkg/log"
	"github.com/walteh/degradient/pkg/operation"
)

// RootOpts contains shared options used by all commands. Config is filled in
// once flags are parsed; the console logger travels in the command context.
type RootOpts struct {
	Out    io.Writer
	Fs     afero.Fs
	Config *config.Config
	Async  bool
}

// OperationOptions returns the options every operation is built from
func (o *RootOpts) OperationOptions(console *log.Logger) operation.Options {
	return operation.Options{
		Config: o.Config,
		Fs:     o.Fs,
		Logger: console,
	}
}
