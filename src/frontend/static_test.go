package frontend

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUI(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>panel</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets", "app.js"), []byte("console.log(1)"), 0o644))
	return root
}

func TestSafeFileSystem_ServesFilesInsideRoot(t *testing.T) {
	fs := NewSafeFileSystem(writeUI(t))

	f, err := fs.Open("/assets/app.js")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "console.log(1)", string(body))
}

func TestSafeFileSystem_RejectsTraversal(t *testing.T) {
	root := writeUI(t)
	secret := filepath.Join(filepath.Dir(root), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("x"), 0o644))

	fs := NewSafeFileSystem(root)
	for _, name := range []string{"../secret.txt", "/../secret.txt", "assets/../../secret.txt"} {
		_, err := fs.Open(name)
		assert.Error(t, err, name)
	}
}

func TestGetHTTPFileSystem_FallsBackToIndex(t *testing.T) {
	fs := GetHTTPFileSystem(writeUI(t))

	f, err := fs.Open("/dashboard/settings")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "<html>panel</html>", string(body))

	_, err = fs.Open("/missing.js")
	assert.True(t, os.IsNotExist(err))
}
