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
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/degradient/cmd/degradient/opts"
	"github.com/walteh/degradient/pkg/log"
	"github.com/walteh/degradient/pkg/operation"
)

// NewCountCmd creates the count command
func NewCountCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [dir...]",
		Short: "Count remaining gradient classes",
		Long: `Count lists every file that still contains the marker, with its line and
occurrence counts. Without arguments the configured marker roots are searched.
Nothing is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)
			console.Header("counting gradients")

			roots := make([]string, len(args))
			for i, arg := range args {
				roots[i] = ro.Config.Resolve(arg)
			}

			op, err := operation.NewCountOperation(ro.OperationOptions(console), roots...)
			if err != nil {
				return errors.Errorf("creating count operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				return err
			}

			result := op.Result()
			if len(result.Files) > 0 {
				data := pterm.TableData{{"File", "Lines", "Occurrences"}}
				for _, f := range result.Files {
					data = append(data, []string{
						ro.Config.Rel(f.Path),
						strconv.Itoa(f.Lines),
						strconv.Itoa(f.Occurrences),
					})
				}

				table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
				if err != nil {
					return errors.Errorf("rendering table: %w", err)
				}
				fmt.Fprintln(ro.Out, table)
			}

			console.Statf("Remaining gradient instances: %d", result.Lines)

			return nil
		},
	}

	return cmd
}
