package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/ffly/internal/app"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (*app.Session, error) {
	t.Helper()
	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)

	sess := &app.Session{}
	root := NewRootCmd(sess)
	root.SetArgs(args)
	return sess, root.Execute()
}

func TestDataCommandsRequireLogin(t *testing.T) {
	path := configFile(t, "log:\n  level: off\n")

	for _, args := range [][]string{
		{"dashboard"},
		{"account", "list"},
		{"category", "list"},
		{"currency", "list"},
		{"transaction", "list"},
	} {
		_, err := run(t, append([]string{"--config", path}, args...)...)
		assert.ErrorIs(t, err, app.ErrNotLoggedIn, args)
	}
}

func TestLoadSessionAppliesFlags(t *testing.T) {
	path := configFile(t, "firefly:\n  url: https://firefly.local\n  token: abc\n")

	sess, err := run(t, "--config", path, "--log-level", "debug", "info")
	require.NoError(t, err)

	assert.Equal(t, "debug", sess.Config.Log.Level)
	assert.Equal(t, "https://firefly.local", sess.Config.Firefly.URL)
	assert.Equal(t, path, sess.Store.Path())
	assert.NotNil(t, sess.Logger)
}

func TestLoginWithFlagsThenLogout(t *testing.T) {
	path := configFile(t, "log:\n  level: off\n")

	_, err := run(t, "--config", path, "login", "--url", "not a url", "--token", "abc")
	assert.Error(t, err)

	_, err = run(t, "--config", path, "logout")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "token: \"\"")
}

func TestUnknownLogLevel(t *testing.T) {
	path := configFile(t, "")

	_, err := run(t, "--config", path, "--log-level", "loud", "info")
	assert.Error(t, err)
}
