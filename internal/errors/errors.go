// Package errors defines domain-level errors used throughout totoro.
// These errors describe why a configuration value could not be resolved.
//
// None of them abort resolution: they are logged where they are detected,
// and callers decide whether the resulting configuration is usable.
package errors

import (
	"errors"
)

var (
	// ErrNoCommonRoot indicates that the runner and adapter locations share no ancestor
	// directory that could be exposed as the client root.
	ErrNoCommonRoot = errors.New("cannot determine a common root")

	// ErrOutsideClientRoot indicates that a local file does not live under the client root,
	// so no URL relative to that root can be built for it.
	ErrOutsideClientRoot = errors.New("file is outside the client root")

	// ErrTestDirNotFound indicates that none of the conventional test directories exist.
	ErrTestDirNotFound = errors.New("test directory not found")

	// ErrRunnerNotFound indicates that a test directory exists but holds no default runner file.
	ErrRunnerNotFound = errors.New("runner not found")

	// ErrRunnerUnavailable indicates that the configured runner is neither a URL nor an existing file.
	ErrRunnerUnavailable = errors.New("runner is not available")

	// ErrRunnerNotHTML indicates that the configured runner exists but is not an HTML file.
	ErrRunnerNotHTML = errors.New("runner is not a html file")

	// ErrAdapterUnavailable indicates that the configured adapter is neither a URL, a keyword
	// nor an existing file.
	ErrAdapterUnavailable = errors.New("adapter is not available")

	// ErrAdapterNotJS indicates that the configured adapter exists but is not a JavaScript file.
	ErrAdapterNotJS = errors.New("adapter is not a js file")
)
