package testcontainers

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2fo/ftps"
)

// RunConformanceTests exercises every ftps.Client operation against a connected client. basePath must be an
// existing, writable remote directory.
func RunConformanceTests(t *testing.T, c *ftps.Client, basePath string) {
	t.Helper()
	require.True(t, c.Connected(), "client should be connected")

	t.Run("FalsyArguments", func(t *testing.T) {
		RunFalsyArgumentTests(t, c)
	})

	t.Run("Transfer", func(t *testing.T) {
		RunTransferTests(t, c, basePath)
	})
}

// RunFalsyArgumentTests checks that empty arguments are rejected without touching the server.
func RunFalsyArgumentTests(t *testing.T, c *ftps.Client) {
	t.Helper()
	ctx := context.Background()

	for name, op := range map[string]func() (bool, error){
		"get":    func() (bool, error) { return c.Get(ctx, "", "/a.txt") },
		"put":    func() (bool, error) { return c.Put(ctx, "/tmp/a.txt", "") },
		"rename": func() (bool, error) { return c.Rename(ctx, "/a.txt", "") },
		"delete": func() (bool, error) { return c.Delete(ctx, "") },
	} {
		ok, err := op()
		assert.NoError(t, err, name)
		assert.False(t, ok, name)
	}

	names, err := c.Dir(ctx, "")
	assert.NoError(t, err)
	assert.Nil(t, names)
}

// RunTransferTests uploads, lists, downloads, renames and deletes a file under basePath.
func RunTransferTests(t *testing.T, c *ftps.Client, basePath string) {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()
	contents := []byte("the quick brown fox\r\njumps over the lazy dog\n")

	local := filepath.Join(dir, "upload.txt")
	require.NoError(t, os.WriteFile(local, contents, 0o600))

	remote := path.Join(basePath, "conformance.txt")
	renamed := path.Join(basePath, "conformance-renamed.txt")

	ok, err := c.Put(ctx, local, remote)
	require.NoError(t, err)
	require.True(t, ok)

	names, err := c.Dir(ctx, basePath)
	require.NoError(t, err)
	assert.Contains(t, names, "conformance.txt")

	download := filepath.Join(dir, "download.txt")
	ok, err = c.Get(ctx, download, remote)
	require.NoError(t, err)
	require.True(t, ok)
	b, err := os.ReadFile(download)
	require.NoError(t, err)
	assert.Equal(t, contents, b, "binary mode should round trip bytes unchanged")

	ok, err = c.Rename(ctx, remote, renamed)
	require.NoError(t, err)
	assert.True(t, ok)

	names, err = c.Dir(ctx, basePath)
	require.NoError(t, err)
	assert.NotContains(t, names, "conformance.txt")
	assert.Contains(t, names, "conformance-renamed.txt")

	ok, err = c.Delete(ctx, renamed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Get(ctx, filepath.Join(dir, "missing.txt"), renamed)
	assert.ErrorIs(t, err, ftps.ErrTransfer)
	assert.False(t, ok)
}
