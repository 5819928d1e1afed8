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

package text

import (
	"context"
	"io"
	"regexp"

	"gitlab.com/tozd/go/errors"
)

type compiledRule struct {
	rule    ReplacementRule
	pattern *regexp.Regexp
}

// RuleSet is an immutable, ordered, compiled list of replacement rules.
// Rules are applied one after another to the same buffer, so an earlier rule
// consumes text before a later overlapping rule sees it.
type RuleSet struct {
	rules []compiledRule
}

var _ TextReplacer = (*RuleSet)(nil)

// NewRuleSet compiles rules into a RuleSet. Every metacharacter in FromText is
// quoted, so "/" and "." only ever match themselves.
func NewRuleSet(rules []ReplacementRule) (*RuleSet, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	set := &RuleSet{rules: make([]compiledRule, 0, len(rules))}
	for i, rule := range rules {
		pattern, err := regexp.Compile(regexp.QuoteMeta(rule.FromText))
		if err != nil {
			return nil, errors.Errorf("rule %d: compiling pattern: %w", i, err)
		}
		set.rules = append(set.rules, compiledRule{rule: rule, pattern: pattern})
	}

	return set, nil
}

// DefaultRuleSet compiles DefaultRules.
func DefaultRuleSet() *RuleSet {
	set, err := NewRuleSet(DefaultRules())
	if err != nil {
		panic(err)
	}
	return set
}

// ValidateRules checks that all rules are valid
func ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from is required", i)
		}
	}
	return nil
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Rules returns a copy of the rules in application order.
func (s *RuleSet) Rules() []ReplacementRule {
	out := make([]ReplacementRule, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.rule
	}
	return out
}

// Apply runs one pass of every rule over content and returns the result with
// the number of matches replaced.
func (s *RuleSet) Apply(content string) (string, int) {
	count := 0
	for _, r := range s.rules {
		matches := r.pattern.FindAllStringIndex(content, -1)
		if len(matches) == 0 {
			continue
		}
		count += len(matches)
		content = r.pattern.ReplaceAllLiteralString(content, r.rule.ToText)
	}
	return content, count
}

// ReplaceText implements TextReplacer.ReplaceText
func (s *RuleSet) ReplaceText(ctx context.Context, content io.Reader) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	modified, count := s.Apply(string(originalContent))

	return &ReplacementResult{
		WasModified:      modified != string(originalContent),
		ReplacementCount: count,
		OriginalContent:  originalContent,
		ModifiedContent:  []byte(modified),
	}, nil
}
