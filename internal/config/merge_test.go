package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		layers   []map[string]any
		expected map[string]any
	}{
		{
			name:     "no layers",
			expected: map[string]any{},
		},
		{
			name: "highest precedence wins",
			layers: []map[string]any{
				{KeyServerPort: "1"},
				{KeyServerPort: "2"},
				{KeyServerPort: "3"},
				{KeyServerPort: "4"},
			},
			expected: map[string]any{KeyServerPort: "1"},
		},
		{
			name: "lower layers fill missing keys",
			layers: []map[string]any{
				{KeyRunner: "override.html"},
				{KeyAdapter: "project.js"},
				{KeyCharset: "gbk"},
				{KeyCharset: "utf-8", KeyTimeout: 5},
			},
			expected: map[string]any{
				KeyRunner:  "override.html",
				KeyAdapter: "project.js",
				KeyCharset: "gbk",
				KeyTimeout: 5,
			},
		},
		{
			name: "null values are absent",
			layers: []map[string]any{
				{KeyRunner: nil},
				{KeyRunner: "project.html"},
			},
			expected: map[string]any{KeyRunner: "project.html"},
		},
		{
			name: "false and empty values are present",
			layers: []map[string]any{
				{KeyList: false, KeyAdapter: ""},
				{KeyList: true, KeyAdapter: "mocha"},
			},
			expected: map[string]any{KeyList: false, KeyAdapter: ""},
		},
		{
			name: "slices are not combined",
			layers: []map[string]any{
				{KeyBrowsers: []any{"chrome"}},
				{KeyBrowsers: []string{"firefox", "safari"}},
			},
			expected: map[string]any{KeyBrowsers: []string{"chrome"}},
		},
		{
			name: "slice only in a lower layer",
			layers: []map[string]any{
				{KeyRunner: "override.html"},
				{KeyBrowsers: []string{"firefox", "safari"}},
			},
			expected: map[string]any{
				KeyRunner:   "override.html",
				KeyBrowsers: []string{"firefox", "safari"},
			},
		},
		{
			name: "unknown keys pass through",
			layers: []map[string]any{
				{"proxy": "none"},
				nil,
				{"reporter": "dot"},
			},
			expected: map[string]any{"proxy": "none", "reporter": "dot"},
		},
		{
			name: "nested objects are taken whole from the first layer",
			layers: []map[string]any{
				{"proxy": map[string]any{"host": "a"}},
				{"proxy": map[string]any{"host": "b", "port": 1}},
			},
			expected: map[string]any{"proxy": map[string]any{"host": "a"}},
		},
		{
			name: "null unknown keys are absent",
			layers: []map[string]any{
				{"reporter": nil},
				{"reporter": "dot"},
			},
			expected: map[string]any{"reporter": "dot"},
		},
		{
			name: "values are weakly typed",
			layers: []map[string]any{
				{KeyServerPort: 9000.0, KeyTimeout: 10.0, KeyBrowsers: "chrome"},
			},
			expected: map[string]any{
				KeyServerPort: "9000",
				KeyTimeout:    10,
				KeyBrowsers:   []string{"chrome"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			merged, err := Merge(tc.layers...)
			require.NoError(t, err)
			require.Equal(t, tc.expected, merged)
		})
	}
}

func TestMerge_LayersUntouched(t *testing.T) {
	t.Parallel()

	high := map[string]any{
		KeyRunner: "override.html",
		"proxy":   map[string]any{"host": "a"},
	}
	low := map[string]any{
		KeyRunner:  "project.html",
		KeyCharset: "gbk",
		"proxy":    map[string]any{"host": "b", "port": 1},
	}

	merged, err := Merge(high, low)
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		KeyRunner:  "override.html",
		KeyCharset: "gbk",
		"proxy":    map[string]any{"host": "a"},
	}, merged)

	require.Equal(t, map[string]any{
		KeyRunner: "override.html",
		"proxy":   map[string]any{"host": "a"},
	}, high)
	require.Equal(t, map[string]any{
		KeyRunner:  "project.html",
		KeyCharset: "gbk",
		"proxy":    map[string]any{"host": "b", "port": 1},
	}, low)
}

func TestMerge_InvalidValue(t *testing.T) {
	t.Parallel()

	_, err := Merge(
		map[string]any{KeyCharset: "gbk"},
		map[string]any{KeyRunner: map[string]any{"path": "test/runner.html"}},
	)
	require.ErrorIs(t, err, ErrInvalidValue)
	require.ErrorContains(t, err, "config layer 1")
}
