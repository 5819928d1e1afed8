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

package scan

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tsxFilter = Filter{
	Suffix:  ".tsx",
	Exclude: []string{"**/node_modules", "**/node_modules/**"},
}

func newTree(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func TestDiscover(t *testing.T) {
	fs := newTree(t, map[string]string{
		"frontend/app/page.tsx":                   "",
		"frontend/app/layout.tsx":                 "",
		"frontend/app/dashboard/page.tsx":         "",
		"frontend/app/styles.css":                 "",
		"frontend/app/util.ts":                    "",
		"frontend/app/node_modules/lib/index.tsx": "",
		"frontend/components/ui/gauge.tsx":        "",
		"frontend/components/Navbar.tsx":          "",
		"frontend/components/Navbar.tsx.bak":      "",
	})

	tests := []struct {
		name string
		root string
		want []string
	}{
		{
			name: "app",
			root: "frontend/app",
			want: []string{
				"frontend/app/dashboard/page.tsx",
				"frontend/app/layout.tsx",
				"frontend/app/page.tsx",
			},
		},
		{
			name: "components",
			root: "frontend/components",
			want: []string{
				"frontend/components/Navbar.tsx",
				"frontend/components/ui/gauge.tsx",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Discover(context.Background(), fs, tsxFilter, tt.root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(context.Background(), afero.NewMemMapFs(), tsxFilter, "nope")
	require.Error(t, err)
}

func TestCount(t *testing.T) {
	fs := newTree(t, map[string]string{
		"app/a.tsx": "<div className=\"bg-gradient-to-t from-black\" />\n<p className=\"bg-gradient-to-b bg-gradient-x\" />\n",
		"app/b.tsx": "<div className=\"bg-gray-900\" />\n",
		"app/c.tsx": "bg-gradient-to-l",
		"app/d.ts":  "bg-gradient-to-l",
	})

	for _, workers := range []int{1, 4} {
		result, err := Count(context.Background(), Options{
			Fs:      fs,
			Filter:  tsxFilter,
			Marker:  "bg-gradient",
			Workers: workers,
		}, "app")
		require.NoError(t, err)

		assert.Equal(t, 3, result.Lines)
		assert.Equal(t, 4, result.Occurrences)
		assert.Equal(t, []FileCount{
			{Path: "app/a.tsx", Lines: 2, Occurrences: 3},
			{Path: "app/c.tsx", Lines: 1, Occurrences: 1},
		}, result.Files)
	}
}

func TestCount_NothingLeft(t *testing.T) {
	fs := newTree(t, map[string]string{"app/a.tsx": "bg-gray-900"})

	result, err := Count(context.Background(), Options{Fs: fs, Filter: tsxFilter, Marker: "bg-gradient"}, "app")
	require.NoError(t, err)
	assert.Zero(t, result.Lines)
	assert.Empty(t, result.Files)
}

func TestCount_SearchUnavailable(t *testing.T) {
	_, err := Count(context.Background(), Options{
		Fs:     afero.NewMemMapFs(),
		Filter: tsxFilter,
		Marker: "bg-gradient",
	}, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSearchUnavailable)

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, "missing", searchErr.Root)
}

func TestCount_RequiresMarker(t *testing.T) {
	_, err := Count(context.Background(), Options{Fs: afero.NewMemMapFs(), Filter: tsxFilter}, "app")
	assert.Error(t, err)
}
