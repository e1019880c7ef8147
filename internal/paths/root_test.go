package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/totorojs/totoro/internal/errors"
)

func TestAncestorDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		levels   int
		file     string
		expected string
	}{
		{name: "containing directory", levels: 1, file: "/proj/src/adapter.js", expected: "/proj/src"},
		{name: "two levels up", levels: 2, file: "/proj/test/runner.html", expected: "/proj"},
		{name: "stops at root", levels: 5, file: "/proj/runner.html", expected: "/"},
		{name: "zero treated as one", levels: 0, file: "/proj/src/adapter.js", expected: "/proj/src"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file := filepath.FromSlash(tc.file)
			require.Equal(t, filepath.FromSlash(tc.expected), AncestorDir(tc.levels)(file))
		})
	}
}

func TestCommonRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		a           string
		b           string
		expected    string
		expectedErr error
	}{
		{name: "both absent", a: "", b: "", expected: ""},
		{name: "only first", a: "/proj", b: "", expected: "/proj"},
		{name: "only second", a: "", b: "/proj/src", expected: "/proj/src"},
		{name: "identical", a: "/proj/src", b: "/proj/src", expected: "/proj/src"},
		{name: "one contains the other", a: "/proj", b: "/proj/src", expected: "/proj"},
		{name: "siblings", a: "/proj/test", b: "/proj/src", expected: "/proj"},
		{name: "deep common prefix", a: "/home/u/proj/a/b", b: "/home/u/proj/a/c/d", expected: "/home/u/proj/a"},
		{name: "segment not string prefix", a: "/proj/src", b: "/project/src", expectedErr: errs.ErrNoCommonRoot},
		{name: "unclean input", a: "/proj/test/..", b: "/proj/src/", expected: "/proj"},
		{name: "only filesystem root shared", a: "/a/x", b: "/b/y", expectedErr: errs.ErrNoCommonRoot},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			root, err := CommonRoot(filepath.FromSlash(tc.a), filepath.FromSlash(tc.b))
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.Empty(t, root)
				return
			}

			require.NoError(t, err)
			require.Equal(t, filepath.FromSlash(tc.expected), root)
		})
	}
}

func TestCommonRoot_RelativeInput(t *testing.T) {
	t.Parallel()

	wd, err := os.Getwd()
	require.NoError(t, err)

	root, err := CommonRoot("a/b", filepath.Join(wd, "a", "c"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(wd, "a"), root)
}

func TestContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		root     string
		p        string
		expected bool
	}{
		{name: "same directory", root: "/proj", p: "/proj", expected: true},
		{name: "child", root: "/proj", p: "/proj/test", expected: true},
		{name: "root of filesystem", root: "/", p: "/proj/test", expected: true},
		{name: "parent", root: "/proj/test", p: "/proj", expected: false},
		{name: "string prefix only", root: "/pro", p: "/proj", expected: false},
		{name: "sibling", root: "/proj/src", p: "/proj/test", expected: false},
		{name: "dot dot prefixed name", root: "/proj", p: "/proj/..hidden", expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, Contains(filepath.FromSlash(tc.root), filepath.FromSlash(tc.p)))
		})
	}
}
