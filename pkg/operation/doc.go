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

/*
Package operation implements the rewrite pass and the marker count.

	+-------------+      +-------------+      +-------------+
	|  Discover   | ---> |   Rewrite   | ---> |    Count    |
	| (scan pkg)  |      | (per file)  |      | (scan pkg)  |
	+-------------+      +-------------+      +-------------+

🎯 Purpose:
- Walks every configured root for files with the configured suffix
- Hands each file, one at a time, to the rewriter
- Prints a line per modified or failed file and a final tally
- Counts the marker lines left behind

🔄 Flow:
1. Discover files under each root (missing roots are skipped)
2. Rewrite each file in discovery order
3. Print "✅ Complete! Modified N files"
4. Print "📊 Remaining gradient instances: N" when the count succeeds

⚡ Failure model:
- A file that cannot be read or written is reported and skipped
- A count that cannot be taken is logged and left out of the output
- Only context cancellation stops a pass early

🔍 Example:

	op, err := operation.NewRewriteOperation(operation.Options{
		Config: cfg,
		Fs:     afero.NewOsFs(),
		Logger: console,
	})
	if err != nil {
		return err
	}
	summary, err := op.Run(ctx)
*/
package operation
