package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/totorojs/totoro/internal/cmd"
	cmdopts "github.com/totorojs/totoro/internal/cmd/options"
	"github.com/totorojs/totoro/internal/errors"
	"github.com/totorojs/totoro/internal/files"
	"github.com/totorojs/totoro/internal/flags"
	"github.com/totorojs/totoro/internal/resolver"
)

// newTestProject creates a project directory, optionally holding test/runner.html.
func newTestProject(t *testing.T, withRunner bool) string {
	t.Helper()

	dir := t.TempDir()
	if withRunner {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "test"), files.RegularDir))
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "test", "runner.html"),
			[]byte("<html></html>"),
			files.RegularFile,
		))
	}

	return dir
}

// executeRoot runs the totoro command with args in dir, returning its output and logs.
func executeRoot(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	t.Cleanup(func() {
		// Reset global variables
		flags.ConfigFile = ""
		flags.LogPath = ""
		flags.LogLevel = ""
	})

	var logs bytes.Buffer
	base := &cmd.BaseCmd{}
	base.SetLogger(hclog.New(&hclog.LoggerOptions{Output: &logs, Level: hclog.Debug}))

	rootCmd, err := NewRootCmd(
		base,
		cmdopts.WithWorkDir(dir),
		cmdopts.WithResolverOptions(
			resolver.WithWorkingDir(dir),
			resolver.WithGlobalConfigFile(""),
		),
	)
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()

	return out.String(), logs.String(), err
}

func TestRootCmd_DiscoveredRunner(t *testing.T) {
	dir := newTestProject(t, true)

	out, logs, err := executeRoot(t, dir, "--adapter", "mocha", "-b", "chrome")
	require.NoError(t, err)

	require.Contains(t, out, "Runner:   http://127.0.0.1:9999/test/runner.html")
	require.Contains(t, out, "Adapter:  mocha")
	require.Contains(t, out, "Root:     "+dir)
	require.Contains(t, out, "Browsers: chrome")
	require.Contains(t, logs, "Found runner")
}

func TestRootCmd_ServerFlags(t *testing.T) {
	dir := newTestProject(t, true)

	out, _, err := executeRoot(t, dir, "-H", "10.0.0.1", "-P", "8080")
	require.NoError(t, err)
	require.Contains(t, out, "Runner:   http://10.0.0.1:8080/test/runner.html")
	require.Contains(t, out, "Server:   10.0.0.1:8080")
}

func TestRootCmd_NoRunner(t *testing.T) {
	dir := newTestProject(t, false)

	_, logs, err := executeRoot(t, dir)
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrRunnerNotFound)
	require.Contains(t, logs, "No runner found")
}

func TestRootCmd_UnusableRunner(t *testing.T) {
	dir := newTestProject(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "runner.txt"), []byte("x"), files.RegularFile))

	_, logs, err := executeRoot(t, dir, "--runner", "runner.txt")
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrRunnerUnavailable)
	require.Contains(t, logs, "Specified file has the wrong type")
}

func TestRootCmd_ListMode(t *testing.T) {
	dir := newTestProject(t, false)

	out, logs, err := executeRoot(t, dir, "--list")
	require.NoError(t, err)
	require.Contains(t, out, "Listing available browsers on 127.0.0.1:9999")
	require.NotContains(t, logs, "No runner found")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	dir := newTestProject(t, true)

	_, _, err := executeRoot(t, dir, "unexpected")
	require.Error(t, err)
}

func TestConfigCmd_Text(t *testing.T) {
	dir := newTestProject(t, false)

	out, _, err := executeRoot(t, dir, "config", "-R", "http://example.com/runner.html", "--timeout", "9")
	require.NoError(t, err)

	require.Contains(t, out, "runner: http://example.com/runner.html\n")
	require.Contains(t, out, "timeout: 9\n")
	require.Contains(t, out, "charset: utf-8\n")
	require.Contains(t, out, "browsers: chrome, firefox, safari, ie/9, ie/8, ie/7, ie/6\n")
	require.NotContains(t, out, "clientRoot")
}

func TestConfigCmd_JSON(t *testing.T) {
	dir := newTestProject(t, true)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, files.ProjectConfigFileName),
		[]byte(`{"charset": "gbk", "reporter": "dot"}`),
		files.RegularFile,
	))

	out, _, err := executeRoot(t, dir, "config", "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Equal(t, "gbk", got["charset"])
	require.Equal(t, "dot", got["reporter"])
	require.Equal(t, dir, got["clientRoot"])
	require.Equal(t, "http://127.0.0.1:9999/test/runner.html", got["runner"])
}

func TestConfigCmd_InvalidFormat(t *testing.T) {
	dir := newTestProject(t, false)

	_, _, err := executeRoot(t, dir, "config", "--format", "xml")
	require.Error(t, err)
}

func TestConfigCmd_CustomConfigFile(t *testing.T) {
	dir := newTestProject(t, false)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "custom.json"),
		[]byte(`{"serverPort": "7777"}`),
		files.RegularFile,
	))

	out, _, err := executeRoot(t, dir, "config", "--config-file", "custom.json")
	require.NoError(t, err)
	require.Contains(t, out, "serverPort: 7777\n")
}
