package discover

import (
	"fmt"
	"path/filepath"
	"regexp"

	errs "github.com/totorojs/totoro/internal/errors"
	"github.com/totorojs/totoro/internal/files"
	"github.com/totorojs/totoro/internal/paths"
)

// RunnerFileName is the name of the default runner looked up inside a test directory.
const RunnerFileName = "runner.html"

var (
	_ Discoverer = (*DefaultDiscoverer)(nil)

	testDirName = regexp.MustCompile(`^tests?$`)

	// testDirCandidates are looked up below the working directory, in order.
	testDirCandidates = []string{"test", "tests"}
)

// Discoverer finds a default runner when none was configured.
type Discoverer interface {
	DiscoverRunner(workDir string) (string, error)
}

// DefaultDiscoverer looks for the conventional runner.html inside the project's test directory.
type DefaultDiscoverer struct {
	FS files.FileSystem
}

// NewDefaultDiscoverer returns a DefaultDiscoverer using the given filesystem.
func NewDefaultDiscoverer(fs files.FileSystem) *DefaultDiscoverer {
	return &DefaultDiscoverer{FS: fs}
}

// DiscoverRunner returns the absolute path of the default runner for a project run from workDir.
// The test directory is workDir itself when it is named test or tests, otherwise a test (then tests)
// directory inside workDir.
func (d *DefaultDiscoverer) DiscoverRunner(workDir string) (string, error) {
	testDir, err := d.testDir(workDir)
	if err != nil {
		return "", err
	}

	runner := filepath.Join(testDir, RunnerFileName)
	if !paths.IsExistingFile(d.fs(), runner) {
		return "", fmt.Errorf("%w: '%s'", errs.ErrRunnerNotFound, runner)
	}

	return runner, nil
}

func (d *DefaultDiscoverer) testDir(workDir string) (string, error) {
	workDir = filepath.Clean(workDir)
	if testDirName.MatchString(filepath.Base(workDir)) {
		return workDir, nil
	}

	for _, name := range testDirCandidates {
		dir := filepath.Join(workDir, name)
		if d.fs().Exists(dir) {
			return dir, nil
		}
	}

	return "", fmt.Errorf("%w: looked in '%s'", errs.ErrTestDirNotFound, workDir)
}

func (d *DefaultDiscoverer) fs() files.FileSystem {
	if d.FS == nil {
		return files.OS{}
	}

	return d.FS
}
