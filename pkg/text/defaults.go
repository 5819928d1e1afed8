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

// Marker is the substring that identifies a gradient utility class.
const Marker = "bg-gradient"

// defaultRules is the built-in gradient list. Entries are kept exactly as
// authored, including the ones Lint reports.
var defaultRules = [...]ReplacementRule{
	// buttons
	{
		FromText: "bg-gradient-to-r from-blue-600 to-purple-600 hover:from-blue-700 hover:to-purple-700",
		ToText:   "bg-blue-600 hover:bg-blue-700 border-2 border-blue-500 hover:border-blue-400 shadow-glow-blue hover:shadow-glow-blue-lg",
	},
	{
		FromText: "bg-gradient-to-r from-green-600 to-emerald-600 hover:from-green-700 hover:to-emerald-700",
		ToText:   "bg-emerald-600 hover:bg-emerald-700 border-2 border-emerald-500 hover:border-emerald-400 shadow-glow-green",
	},

	// backgrounds
	{FromText: "bg-gradient-to-br from-blue-900/20 to-blue-900/5", ToText: "bg-blue-900/10"},
	{FromText: "bg-gradient-to-br from-purple-900/20 to-purple-900/5", ToText: "bg-purple-900/10"},
	{FromText: "bg-gradient-to-br from-green-900/20 to-green-900/5", ToText: "bg-green-900/10"},
	{FromText: "bg-gradient-to-br from-blue-900/20 to-purple-900/20", ToText: "bg-blue-900/15 border-2 border-blue-800/20"},
	{FromText: "bg-gradient-to-br from-blue-500/20 to-purple-500/20", ToText: "bg-blue-500/20 border-2 border-blue-500/30 shadow-glow-blue"},
	{FromText: "bg-gradient-to-br from-gray-900 to-gray-950", ToText: "bg-gray-900"},
	{FromText: "bg-gradient-to-r from-gray-900 to-gray-800", ToText: "bg-gray-900"},

	// progress bars
	{FromText: "bg-gradient-to-r from-purple-500 to-pink-500", ToText: "bg-purple-500 shadow-glow-purple"},
	{FromText: "bg-gradient-to-r from-blue-500 to-purple-500", ToText: "bg-blue-500shadow-glow-blue"},
	{FromText: "bg-gradient-to-r from-green-500 to-emerald-500", ToText: "bg-emerald-500 shadow-glow-green"},

	// inline conditionals
	{
		FromText: "'bg-gradient-to-r from-blue-600 to-purple-600 hover:from-blue-700 hover:to-purple-700'",
		ToText:   "'bg-blue-600 hover:bg-blue-700 border-2 border-blue-500 hover:border-blue-400 shadow-glow-blue hover:shadow-glow-blue-lg'",
	},
	{
		FromText: "'bg-gradient-to-r from-blue-600 to-purple-600'",
		ToText:   "'bg-blue-600 border-2 border-blue-500 shadow-glow-blue'",
	},

	// section backgrounds
	{FromText: "bg-gradient-to-r from-blue-900/20 via-purple-900/20 to-pink-900/20", ToText: "bg-blue-950/20 border-t border-blue-900/20"},

	// badges
	{FromText: "bg-gradient-to-r from-blue-500/20 to-purple-500/20", ToText: "bg-blue-500/20 border-2 border-blue-500/40 shadow-glow-blue"},

	// text
	{FromText: "bg-gradient-to-r from-blue-400 to-purple-400 bg-clip-text text-transparent", ToText: "text-blue-400 text-glow-blue"},
	{FromText: "bg-gradient-to-r from-blue-400 via-purple-400 to-pink-400 bg-clip-text text-transparent", ToText: "text-blue-400 text-glow-blue"},
}

// DefaultRules returns a copy of the built-in gradient rules in application order.
func DefaultRules() []ReplacementRule {
	out := make([]ReplacementRule, len(defaultRules))
	copy(out, defaultRules[:])
	return out
}
