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

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/degradient/cmd/degradient/opts"
	"github.com/walteh/degradient/pkg/log"
	"github.com/walteh/degradient/pkg/text"
)

// NewLintCmd creates the lint command
func NewLintCmd(ro *opts.RootOpts) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report anomalies in the active rule list",
		Long: `Lint checks the active rule list for:
- replacements with two classes glued together
- duplicated patterns
- patterns shadowed by an earlier, shorter pattern
- replacements that a later run would rewrite again
- equivalent gradients mapped to different replacements`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console := log.FromContext(cmd.Context())
			console.Header("linting rules")

			rules, err := ro.Config.RuleSet()
			if err != nil {
				return errors.Errorf("loading rules: %w", err)
			}

			findings := text.Lint(rules.Rules())
			if len(findings) == 0 {
				console.Successf("No anomalies in %d rules", rules.Len())
				return nil
			}

			for _, f := range findings {
				fmt.Fprint(ro.Out, pterm.Warning.Sprintln(f.String()))
			}
			console.Statf("%d findings in %d rules", len(findings), rules.Len())

			if strict {
				return errors.Errorf("rule list has %d findings", len(findings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any finding is reported")

	return cmd
}
