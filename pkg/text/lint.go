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
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FindingKind classifies a problem in a rule list.
type FindingKind string

const (
	// FindingGlued: a replacement token runs two classes together (e.g. "bg-blue-500shadow-glow-blue").
	FindingGlued FindingKind = "glued"
	// FindingDuplicate: the same pattern appears more than once.
	FindingDuplicate FindingKind = "duplicate"
	// FindingShadowed: an earlier pattern always consumes this pattern's matches first.
	FindingShadowed FindingKind = "shadowed"
	// FindingDivergent: two patterns with the same colour stops are replaced differently.
	FindingDivergent FindingKind = "divergent"
	// FindingNotIdempotent: a replacement contains text that some pattern matches again.
	FindingNotIdempotent FindingKind = "not-idempotent"
)

// Finding is a single lint result. Other is the index of the related rule, or -1.
type Finding struct {
	Kind    FindingKind
	Index   int
	Other   int
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("rule %d: %s: %s", f.Index, f.Kind, f.Message)
}

// a colour shade immediately followed by a letter
var gluedToken = regexp.MustCompile(`-\d{2,3}[a-z]`)

// Lint reports authoring anomalies in an ordered rule list. It never changes
// the rules; the caller decides what to do with the findings.
func Lint(rules []ReplacementRule) []Finding {
	var findings []Finding

	for j, rule := range rules {
		for _, tok := range strings.Fields(rule.ToText) {
			if gluedToken.MatchString(tok) {
				findings = append(findings, Finding{
					Kind:    FindingGlued,
					Index:   j,
					Other:   -1,
					Message: fmt.Sprintf("replacement token %q joins two classes", tok),
				})
			}
		}

		for i := 0; i < j; i++ {
			earlier := rules[i].FromText
			switch {
			case earlier == "":
				continue
			case earlier == rule.FromText:
				findings = append(findings, Finding{
					Kind:    FindingDuplicate,
					Index:   j,
					Other:   i,
					Message: fmt.Sprintf("pattern repeats rule %d", i),
				})
			case strings.Contains(rule.FromText, earlier):
				findings = append(findings, Finding{
					Kind:    FindingShadowed,
					Index:   j,
					Other:   i,
					Message: fmt.Sprintf("rule %d matches first and leaves nothing for this pattern", i),
				})
			}
		}

		for i, other := range rules {
			if other.FromText != "" && strings.Contains(rule.ToText, other.FromText) {
				findings = append(findings, Finding{
					Kind:    FindingNotIdempotent,
					Index:   j,
					Other:   i,
					Message: fmt.Sprintf("replacement is matched again by rule %d", i),
				})
			}
		}
	}

	findings = append(findings, divergent(rules)...)

	sort.SliceStable(findings, func(a, b int) bool {
		return findings[a].Index < findings[b].Index
	})

	return findings
}

// divergent finds rules that differ only in gradient direction but map to
// different replacements.
func divergent(rules []ReplacementRule) []Finding {
	var findings []Finding
	first := map[string]int{}

	for j, rule := range rules {
		key := stopKey(rule.FromText)
		if key == "" {
			continue
		}
		i, seen := first[key]
		if !seen {
			first[key] = j
			continue
		}
		if rules[i].FromText == rule.FromText {
			continue
		}
		if strings.Trim(rules[i].ToText, "'\"") == strings.Trim(rule.ToText, "'\"") {
			continue
		}
		findings = append(findings, Finding{
			Kind:    FindingDivergent,
			Index:   j,
			Other:   i,
			Message: fmt.Sprintf("same colour stops as rule %d with a different replacement", i),
		})
	}

	return findings
}

// stopKey returns the pattern's classes without quotes and without the
// bg-gradient-to-* direction class.
func stopKey(pattern string) string {
	if !strings.Contains(pattern, Marker) {
		return ""
	}
	var stops []string
	for _, tok := range strings.Fields(strings.Trim(pattern, "'\"")) {
		if strings.HasPrefix(tok, Marker) {
			continue
		}
		stops = append(stops, tok)
	}
	return strings.Join(stops, " ")
}
