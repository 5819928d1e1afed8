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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/degradient/cmd/degradient/opts"
	"github.com/walteh/degradient/pkg/text"
)

// NewRulesCmd creates the rules command
func NewRulesCmd(ro *opts.RootOpts) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the active rule list",
		Long: `Rules prints the rules in application order. The yaml and json outputs can
be pasted into a config file as a starting point for a custom list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := ro.Config.RuleSet()
			if err != nil {
				return errors.Errorf("loading rules: %w", err)
			}
			rules := set.Rules()

			switch output {
			case "table":
				data := pterm.TableData{{"#", "From", "To"}}
				for i, r := range rules {
					data = append(data, []string{strconv.Itoa(i), r.FromText, r.ToText})
				}
				table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
				if err != nil {
					return errors.Errorf("rendering table: %w", err)
				}
				fmt.Fprintln(ro.Out, table)
			case "yaml":
				enc := yaml.NewEncoder(ro.Out)
				enc.SetIndent(2)
				if err := enc.Encode(rulesDocument{Rules: rules}); err != nil {
					return errors.Errorf("encoding yaml: %w", err)
				}
				if err := enc.Close(); err != nil {
					return errors.Errorf("encoding yaml: %w", err)
				}
			case "json":
				enc := json.NewEncoder(ro.Out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(rulesDocument{Rules: rules}); err != nil {
					return errors.Errorf("encoding json: %w", err)
				}
			default:
				return errors.Errorf("unknown output %q, want table, yaml or json", output)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, yaml or json")

	return cmd
}

// rulesDocument matches the rules section of a config file
type rulesDocument struct {
	Rules []text.ReplacementRule `json:"rules" yaml:"rules"`
}
