package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

// EnvPrefix is the prefix of the variables cleared by NewTestEnvironment
const EnvPrefix = "SHKIT_"

// TestEnvironment points the XDG base directories at temporary ones and
// clears every SHKIT_ variable for the duration of a test
type TestEnvironment struct {
	ConfigHome string
	StateHome  string
	LockDir    string

	t *testing.T
}

// NewTestEnvironment creates the directories and updates the environment.
// Everything is restored when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	for _, kv := range os.Environ() {
		name, _, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(name, EnvPrefix) {
			// Setenv first so the original value is restored on cleanup
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}

	root := t.TempDir()
	env := &TestEnvironment{
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		LockDir:    filepath.Join(root, "locks"),
		t:          t,
	}
	for _, dir := range []string{env.ConfigHome, env.StateHome, env.LockDir} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// Setenv sets a variable for the rest of the test
func (e *TestEnvironment) Setenv(key, value string) {
	e.t.Setenv(key, value)
}

// ConfigPath returns the path of a file in the app's config directory
func (e *TestEnvironment) ConfigPath(app, name string) string {
	return filepath.Join(e.ConfigHome, app, name)
}

// WriteConfig writes a file into the app's config directory and returns
// its path
func (e *TestEnvironment) WriteConfig(app, name, content string) string {
	e.t.Helper()
	return e.WriteFile(e.ConfigPath(app, name), content)
}

// WriteFile writes content to path, creating parent directories
func (e *TestEnvironment) WriteFile(path, content string) string {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}
