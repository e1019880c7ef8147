package paths

import (
	"fmt"
	"path/filepath"
	"strings"

	errs "github.com/totorojs/totoro/internal/errors"
)

// RootStrategy maps a local file to the directory that should be served so the file is reachable.
type RootStrategy func(file string) string

// AncestorDir returns a RootStrategy picking the directory levels above file.
// AncestorDir(1) is the directory containing file. Levels below 1 are treated as 1.
func AncestorDir(levels int) RootStrategy {
	if levels < 1 {
		levels = 1
	}

	return func(file string) string {
		dir := file
		for range levels {
			dir = filepath.Dir(dir)
		}
		return dir
	}
}

// CommonRoot returns the deepest directory containing both a and b.
// Either may be empty, meaning absent: with a single input that input is returned,
// with none an empty string is returned.
// Relative inputs are made absolute against the process working directory.
// When the only shared ancestor is the filesystem root, ErrNoCommonRoot is returned
// rather than exposing the whole filesystem.
func CommonRoot(a string, b string) (string, error) {
	var err error
	if a, err = absolute(a); err != nil {
		return "", err
	}
	if b, err = absolute(b); err != nil {
		return "", err
	}

	switch {
	case a == "" && b == "":
		return "", nil
	case b == "":
		return a, nil
	case a == "":
		return b, nil
	case a == b:
		return a, nil
	}

	volA, segsA := split(a)
	volB, segsB := split(b)
	if volA != volB {
		return "", fmt.Errorf("%w: '%s' and '%s' are on different volumes", errs.ErrNoCommonRoot, a, b)
	}

	n := 0
	for n < len(segsA) && n < len(segsB) && segsA[n] == segsB[n] {
		n++
	}
	if n == 0 {
		return "", fmt.Errorf("%w: '%s' and '%s' only share the filesystem root", errs.ErrNoCommonRoot, a, b)
	}

	return volA + string(filepath.Separator) + filepath.Join(segsA[:n]...), nil
}

// Contains reports whether p is root itself or lies below it, comparing whole path segments.
func Contains(root string, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func absolute(p string) (string, error) {
	if p == "" {
		return "", nil
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("could not resolve absolute path for '%s': %w", p, err)
	}

	return abs, nil
}

// split separates a cleaned absolute path into its volume name and its segments below the volume root.
func split(p string) (string, []string) {
	vol := filepath.VolumeName(p)
	rest := strings.Trim(p[len(vol):], string(filepath.Separator))
	if rest == "" {
		return vol, nil
	}

	return vol, strings.Split(rest, string(filepath.Separator))
}
