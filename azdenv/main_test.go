package main

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/presbrey/dotazure"
)

func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, dotazure.ProjectFileName), nil, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".azure", "dev"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".azure", "config.json"), []byte(`{"defaultEnvironment":"dev"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".azure", "dev", ".env"), []byte("A=1\n"), 0644))
	return root
}

func TestResolve(t *testing.T) {
	root := newProject(t)

	ctx, err := resolve(root, "")
	require.NoError(t, err)
	assert.Equal(t, "dev", ctx.EnvironmentName())

	ctx, err = resolve(root, "prod")
	require.NoError(t, err)
	assert.Equal(t, "prod", ctx.EnvironmentName())

	_, err = resolve(filepath.Join(root, "missing"), "")
	assert.True(t, dotazure.IsIo(err))
}

func TestShow(t *testing.T) {
	root := newProject(t)
	ctx, err := resolve(root, "")
	require.NoError(t, err)

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, show(&buf, ctx, "json"))

		var view contextView
		require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
		assert.Equal(t, root, view.ProjectDir)
		assert.Equal(t, "dev", view.EnvironmentName)
		assert.True(t, view.Exists)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, show(&buf, ctx, "yaml"))

		var view contextView
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &view))
		assert.Equal(t, ctx.EnvironmentFile(), view.EnvironmentFile)
	})

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, show(&buf, ctx, "text"))
		assert.Contains(t, buf.String(), "Environment: dev")
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Error(t, show(&bytes.Buffer{}, ctx, "xml"))
	})
}

func TestRunRequiresCommand(t *testing.T) {
	assert.Equal(t, 2, run(dotazure.NewLoader(), []string{"--"}))
}

func TestRunLoadsEnvironment(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	root := newProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".azure", "dev", ".env"), []byte("AZDENV_RUN_TEST=loaded\n"), 0644))
	t.Setenv("AZDENV_RUN_TEST", "")
	require.NoError(t, os.Unsetenv("AZDENV_RUN_TEST"))

	ctx, err := resolve(root, "")
	require.NoError(t, err)
	loader := dotazure.NewLoader().Context(ctx)

	t.Run("ExitCode", func(t *testing.T) {
		code := run(loader, []string{"--", "sh", "-c", `test "$AZDENV_RUN_TEST" = loaded || exit 9; exit 3`})
		assert.Equal(t, 3, code)
	})

	t.Run("Success", func(t *testing.T) {
		code := run(loader, []string{"sh", "-c", `test "$AZDENV_RUN_TEST" = loaded`})
		assert.Equal(t, 0, code)
	})

	t.Run("MissingCommand", func(t *testing.T) {
		code := run(loader, []string{"azdenv-no-such-command"})
		assert.Equal(t, 1, code)
	})
}
