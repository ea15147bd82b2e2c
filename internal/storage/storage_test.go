package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagestudio/local-app/internal/document"
	"pagestudio/local-app/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(t.TempDir(), "pagestudio.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleProject(t *testing.T) *model.Project {
	t.Helper()
	s := document.NewStore(model.NewProject())
	e := document.NewEngine(s, document.NewRegistry())
	row, err := e.Create("div", "")
	require.NoError(t, err)
	_, err = e.Create("button", row.ID)
	require.NoError(t, err)
	return s.Project()
}

func TestProjectSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	p := sampleProject(t)
	p.GlobalCSS = "body { background: #000; }"

	require.NoError(t, store.ProjectSave("menu", p))

	loaded, err := store.ProjectLoad("menu", "")
	require.NoError(t, err)
	assert.Equal(t, p.NextID, loaded.NextID)
	assert.Equal(t, p.GlobalCSS, loaded.GlobalCSS)
	require.Len(t, loaded.Components, 1)
	assert.Equal(t, "element-1", loaded.Components[0].ID)
	require.Len(t, loaded.Components[0].Children, 1)
	assert.Equal(t, "button", loaded.Components[0].Children[0].Type)
}

func TestProjectSaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	p := sampleProject(t)
	require.NoError(t, store.ProjectSave("menu", p))

	p.GlobalJS = "console.log('v2');"
	require.NoError(t, store.ProjectSave("menu", p))

	loaded, err := store.ProjectLoad("menu", "")
	require.NoError(t, err)
	assert.Equal(t, "console.log('v2');", loaded.GlobalJS)
}

func TestProjectLoadMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.ProjectLoad("nope", "")
	assert.ErrorContains(t, err, "does not exist")
}

func TestProjectProtection(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.ProjectSave("secret", sampleProject(t)))
	require.NoError(t, store.ProjectProtect("secret", "hunter2"))

	_, err := store.ProjectLoad("secret", "")
	assert.ErrorIs(t, err, ErrProjectProtected)
	_, err = store.ProjectLoad("secret", "wrong")
	assert.ErrorIs(t, err, ErrProjectProtected)

	loaded, err := store.ProjectLoad("secret", "hunter2")
	require.NoError(t, err)
	assert.NotNil(t, loaded)

	// Saving again must not drop the protection.
	require.NoError(t, store.ProjectSave("secret", sampleProject(t)))
	_, err = store.ProjectLoad("secret", "")
	assert.ErrorIs(t, err, ErrProjectProtected)

	// Clearing the password reopens the project.
	require.NoError(t, store.ProjectProtect("secret", ""))
	_, err = store.ProjectLoad("secret", "")
	assert.NoError(t, err)
}

func TestProjectListAndDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.ProjectSave("one", sampleProject(t)))
	require.NoError(t, store.ProjectSave("two", sampleProject(t)))
	require.NoError(t, store.ProjectProtect("two", "pw"))

	infos, err := store.ProjectList()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	byName := map[string]ProjectInfo{}
	for _, info := range infos {
		byName[info.Name] = info
	}
	assert.False(t, byName["one"].Protected)
	assert.True(t, byName["two"].Protected)

	exists, err := store.ProjectExists("one")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.ProjectDelete("one"))
	exists, err = store.ProjectExists("one")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Error(t, store.ProjectDelete("one"))
}

func TestFileExportImport(t *testing.T) {
	p := sampleProject(t)
	path := filepath.Join(t.TempDir(), "project.json")

	require.NoError(t, FileExport(p, path, "json"))
	loaded, err := FileImport(path, "json")
	require.NoError(t, err)
	assert.Equal(t, p.NextID, loaded.NextID)
	require.Len(t, loaded.Components, 1)

	assert.Error(t, FileExport(p, path, "xml"))
	_, err = FileImport(path, "yaml")
	assert.Error(t, err)
}
