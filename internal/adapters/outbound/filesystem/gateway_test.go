package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewnoakes/validate-slnf/internal/adapters/outbound/filesystem"
	"github.com/drewnoakes/validate-slnf/internal/domain"
)

func newMemGateway(t *testing.T, files map[string]string) *filesystem.Gateway {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return filesystem.NewWithFs(fs, "/work")
}

func TestGateway_FileExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/a.sln", nil, 0644))
	require.NoError(t, fs.MkdirAll("/work/dir", 0755))
	g := filesystem.NewWithFs(fs, "/work")

	assert.True(t, g.FileExists("/work/a.sln"))
	assert.True(t, g.FileExists("a.sln"), "relative paths resolve against the base")
	assert.False(t, g.FileExists("b.sln"))
	assert.False(t, g.FileExists("/work/dir"), "directories are not files")
}

func TestGateway_ReadText(t *testing.T) {
	g := newMemGateway(t, map[string]string{"/work/test.slnf": `{"solution":{}}`})

	text, err := g.ReadText("test.slnf")
	require.NoError(t, err)
	assert.Equal(t, `{"solution":{}}`, text)
}

func TestGateway_ReadText_NotFound(t *testing.T) {
	g := newMemGateway(t, nil)

	_, err := g.ReadText("missing.slnf")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "missing.slnf")
}

func TestGateway_ListFiles(t *testing.T) {
	g := newMemGateway(t, map[string]string{
		"/work/b.slnf":        "",
		"/work/A.SLNF":        "",
		"/work/app.sln":       "",
		"/work/sub/deep.slnf": "",
	})

	files, err := g.ListFiles("/work", "*.slnf")
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/A.SLNF", "/work/b.slnf"}, files)
}

func TestGateway_ListFiles_NoneFound(t *testing.T) {
	g := newMemGateway(t, map[string]string{"/work/app.sln": ""})

	files, err := g.ListFiles("/work", "*.slnf")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGateway_ListFiles_MissingDir(t *testing.T) {
	g := newMemGateway(t, nil)

	_, err := g.ListFiles("/nowhere", "*.slnf")
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestGateway_PathHelpers(t *testing.T) {
	g := newMemGateway(t, nil)

	assert.Equal(t, "/work", g.CurrentDir())
	assert.Equal(t, "/abs/x.sln", g.Abs("/abs/x.sln"), "absolute paths are unchanged")
	assert.Equal(t, "/work/sub/x.sln", g.Abs("sub/x.sln"))
	assert.Equal(t, "/work/sub", g.Dir("/work/sub/x.slnf"))
	assert.Equal(t, "a/b/c.sln", g.Join("a", "b", "c.sln"))
}

func TestGateway_Join_AbsolutePartReplacesPrefix(t *testing.T) {
	g := newMemGateway(t, nil)

	assert.Equal(t, "/repo/App.sln", g.Join("/work/sub", "/repo/App.sln"))
	assert.Equal(t, "/b/c.csproj", g.Join("a", "/x", "/b", "c.csproj"))
	assert.Equal(t, "/work/sub/App.sln", g.Join("/work/sub", "App.sln"))
	assert.Equal(t, "", g.Join())
}

func TestNew_UsesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.slnf"), []byte("{}"), 0644))

	g, err := filesystem.New()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, g.CurrentDir())
	assert.True(t, g.FileExists(filepath.Join(dir, "x.slnf")))
}
