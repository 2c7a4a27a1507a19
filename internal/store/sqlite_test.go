package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/pagegen/internal/template/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUpsertAndList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	err := s.UpsertFiles(ctx, []model.ProjectFile{
		{ProjectID: "p1", FilePath: "services/recife.html", Content: "Recife"},
		{ProjectID: "p1", FilePath: "index.html", FileName: "index.html", FileType: "html", Content: "home"},
		{ProjectID: "p2", FilePath: "other.css", Content: "body{}"},
	})
	require.NoError(t, err)

	files, err := s.ListFiles(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "index.html", files[0].FilePath)
	assert.Equal(t, "services/recife.html", files[1].FilePath)
	assert.Equal(t, "recife.html", files[1].FileName)
	assert.Equal(t, "html", files[1].FileType)
	_, err = uuid.Parse(files[1].ID)
	assert.NoError(t, err)
	assert.NotEqual(t, files[0].ID, files[1].ID)

	files, err = s.ListFiles(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "css", files[0].FileType)
}

func TestUpsertOverwritesByPath(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.UpsertFiles(ctx, []model.ProjectFile{
		{ProjectID: "p", FilePath: "a.html", Content: "v1"},
	}))
	before, err := s.GetFile(ctx, "p", "a.html")
	require.NoError(t, err)

	require.NoError(t, s.UpsertFiles(ctx, []model.ProjectFile{
		{ProjectID: "p", FilePath: "a.html", Content: "v2"},
	}))

	files, err := s.ListFiles(ctx, "p")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "v2", files[0].Content)
	assert.Equal(t, before.ID, files[0].ID)
}

func TestUpsertRejectsInvalidFiles(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	err := s.UpsertFiles(ctx, []model.ProjectFile{
		{ProjectID: "p", FilePath: "ok.html"},
		{ProjectID: "p", FilePath: ""},
	})
	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, StoreInvalidInput, storeErr.Type)

	files, err := s.ListFiles(ctx, "p")
	require.NoError(t, err)
	assert.Empty(t, files, "nothing is written when one file is invalid")
}

func TestGetAndDeleteFile(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	missing, err := s.GetFile(ctx, "p", "none.html")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.UpsertFiles(ctx, []model.ProjectFile{
		{ProjectID: "p", FilePath: "a.html", Content: "a"},
	}))
	f, err := s.GetFile(ctx, "p", "a.html")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "a", f.Content)

	require.NoError(t, s.DeleteFile(ctx, "p", "a.html"))
	require.NoError(t, s.DeleteFile(ctx, "p", "a.html"))

	f, err = s.GetFile(ctx, "p", "a.html")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestOpenFileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "pages.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.UpsertFiles(ctx, []model.ProjectFile{
		{ProjectID: "p", FilePath: "a.html", Content: "persisted"},
	}))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	files, err := s.ListFiles(ctx, "p")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "persisted", files[0].Content)
}
