package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/totorojs/totoro/internal/files"
)

func TestJSONFileLoader_Load(t *testing.T) {
	t.Parallel()

	fs := files.NewMemFS(map[string]string{
		"/proj/totoro-config.json": `{"runner": "test/runner.html", "serverPort": 8080, "custom": {"a": 1}}`,
		"/proj/empty.json":         "  \n",
		"/proj/invalid.json":       `{"runner": `,
		"/proj/array.json":         `["runner"]`,
		"/proj/null.json":          `null`,
	}, "/proj/dir.json")

	tests := []struct {
		name        string
		path        string
		expected    map[string]any
		expectedErr error
	}{
		{
			name: "valid object",
			path: "/proj/totoro-config.json",
			expected: map[string]any{
				KeyRunner:     "test/runner.html",
				KeyServerPort: float64(8080),
				"custom":      map[string]any{"a": float64(1)},
			},
		},
		{
			name:     "empty file",
			path:     "/proj/empty.json",
			expected: map[string]any{},
		},
		{
			name:        "missing file",
			path:        "/proj/missing.json",
			expectedErr: ErrConfigFileNotFound,
		},
		{
			name:        "directory",
			path:        "/proj/dir.json",
			expectedErr: ErrConfigFileNotFound,
		},
		{
			name:        "empty path",
			path:        "  ",
			expectedErr: ErrConfigFileNotFound,
		},
		{
			name:        "invalid json",
			path:        "/proj/invalid.json",
			expectedErr: ErrConfigFileInvalid,
		},
		{
			name:        "not an object",
			path:        "/proj/array.json",
			expectedErr: ErrConfigFileInvalid,
		},
		{
			name:        "null",
			path:        "/proj/null.json",
			expectedErr: ErrConfigFileInvalid,
		},
	}

	loader := &JSONFileLoader{FS: fs}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			values, err := loader.Load(tc.path)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.Nil(t, values)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, values)
		})
	}
}

func TestJSONFileLoader_OSFileSystem(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), files.ProjectConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"adapter": "mocha"}`), files.RegularFile))

	values, err := (&JSONFileLoader{}).Load(path)
	require.NoError(t, err)
	require.Equal(t, map[string]any{KeyAdapter: "mocha"}, values)
}
