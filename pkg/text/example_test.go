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

package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/degradient/pkg/text"
)

func ExampleRuleSet_ReplaceText() {
	set := text.DefaultRuleSet()

	content := strings.NewReader(`<div className="h-2 bg-gradient-to-r from-purple-500 to-pink-500" />`)

	result, err := set.ReplaceText(context.Background(), content)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: <div className="h-2 bg-purple-500 shadow-glow-purple" />
	// Changes: 1
	// Was Modified: true
}

func ExampleLint() {
	rules := []text.ReplacementRule{
		{FromText: "bg-gradient-to-r from-blue-500 to-purple-500", ToText: "bg-blue-500shadow-glow-blue"},
	}

	for _, f := range text.Lint(rules) {
		fmt.Println(f)
	}

	// Output:
	// rule 0: glued: replacement token "bg-blue-500shadow-glow-blue" joins two classes
}
