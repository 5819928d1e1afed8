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

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/degradient/pkg/text"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
//
//	base  = "frontend"
//	roots = ["app", "components"]
//
//	rule {
//	  from = "bg-gradient-to-br from-gray-900 to-gray-950"
//	  to   = "bg-gray-900"
//	}
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"marker": cty.StringVal(text.Marker),
		},
	}

	type hclConfig struct {
		Base        *string  `hcl:"base,optional"`
		Roots       []string `hcl:"roots,optional"`
		Suffix      *string  `hcl:"suffix,optional"`
		Exclude     []string `hcl:"exclude,optional"`
		Marker      *string  `hcl:"marker,optional"`
		MarkerRoots []string `hcl:"marker_roots,optional"`
		Workers     *int     `hcl:"workers,optional"`
		DryRun      *bool    `hcl:"dry_run,optional"`
		Rules       []struct {
			From string `hcl:"from"`
			To   string `hcl:"to"`
		} `hcl:"rule,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		Roots:       hclCfg.Roots,
		Exclude:     hclCfg.Exclude,
		MarkerRoots: hclCfg.MarkerRoots,
	}
	if hclCfg.Base != nil {
		cfg.Base = *hclCfg.Base
	}
	if hclCfg.Suffix != nil {
		cfg.Suffix = *hclCfg.Suffix
	}
	if hclCfg.Marker != nil {
		cfg.Marker = *hclCfg.Marker
	}
	if hclCfg.Workers != nil {
		cfg.Workers = *hclCfg.Workers
	}
	if hclCfg.DryRun != nil {
		cfg.DryRun = *hclCfg.DryRun
	}
	for _, r := range hclCfg.Rules {
		cfg.Rules = append(cfg.Rules, text.ReplacementRule{FromText: r.From, ToText: r.To})
	}

	return cfg, nil
}
