// Package store persists project files in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/template/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS project_files (
	id         TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	file_path  TEXT NOT NULL,
	file_name  TEXT NOT NULL,
	file_type  TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (project_id, file_path)
)`

const upsertQuery = `
INSERT INTO project_files (id, project_id, file_path, file_name, file_type, content)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (project_id, file_path) DO UPDATE SET
	file_name  = excluded.file_name,
	file_type  = excluded.file_type,
	content    = excluded.content,
	updated_at = CURRENT_TIMESTAMP`

// Store keeps project files keyed by project ID and file path.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path.
// ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	logger := debug.Logger("store")
	logger.Debug().Str("dbPath", filepath.Base(path)).Msg("opening SQLite database")

	dsn := "file::memory:?cache=private&_foreign_keys=on"
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, newStoreError(StoreOpenFailed, "failed to create database directory "+dir, err)
		}
		dsn = path + "?_foreign_keys=on&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, newStoreError(StoreOpenFailed, "failed to open SQLite database", err)
	}
	// A single connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, newStoreError(StoreOpenFailed, "failed to verify database connection", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA synchronous = NORMAL"); err != nil {
		db.Close()
		return nil, newStoreError(StoreOpenFailed, "failed to set SQLite synchronous pragma", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, newStoreError(StoreOpenFailed, "failed to create schema", err)
	}

	logger.Debug().Msg("SQLite database opened")
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return newStoreError(StoreWriteFailed, "failed to close SQLite database", err)
	}
	return nil
}

// UpsertFiles writes files in one transaction. A file whose project ID and
// path already exist overwrites the stored record and keeps its ID; new
// records get a random UUID. Either every file is written or none is.
func (s *Store) UpsertFiles(ctx context.Context, files []model.ProjectFile) (err error) {
	for _, f := range files {
		if f.ProjectID == "" || strings.Trim(f.FilePath, "/") == "" {
			return newStoreError(StoreInvalidInput, "project_id and file_path are required (file_path: "+f.FilePath+")", nil)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return newStoreError(StoreWriteFailed, "failed to begin transaction", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, upsertQuery)
	if err != nil {
		return newStoreError(StoreWriteFailed, "failed to prepare upsert", err)
	}
	defer stmt.Close()

	for _, f := range files {
		fileName := f.FileName
		if fileName == "" {
			fileName = filepath.Base(f.FilePath)
		}
		fileType := f.FileType
		if fileType == "" {
			fileType = model.FileTypeOf(f.FilePath)
		}
		if _, err = stmt.ExecContext(ctx, uuid.NewString(), f.ProjectID, f.FilePath, fileName, fileType, f.Content); err != nil {
			return newStoreError(StoreWriteFailed, "failed to upsert "+f.FilePath, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return newStoreError(StoreWriteFailed, "failed to commit transaction", err)
	}

	debug.Debug("[store] UpsertFiles: %d file(s) written", len(files))
	return nil
}

// ListFiles returns every file of a project ordered by path.
func (s *Store) ListFiles(ctx context.Context, projectID string) ([]model.ProjectFile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, file_path, file_name, file_type, content
		 FROM project_files WHERE project_id = ? ORDER BY file_path`, projectID)
	if err != nil {
		return nil, newStoreError(StoreQueryFailed, "failed to list files", err)
	}
	defer rows.Close()

	files := []model.ProjectFile{}
	for rows.Next() {
		var f model.ProjectFile
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.FilePath, &f.FileName, &f.FileType, &f.Content); err != nil {
			return nil, newStoreError(StoreQueryFailed, "failed to scan file", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, newStoreError(StoreQueryFailed, "failed to iterate files", err)
	}
	return files, nil
}

// GetFile returns one file, or (nil, nil) if it does not exist.
func (s *Store) GetFile(ctx context.Context, projectID, filePath string) (*model.ProjectFile, error) {
	var f model.ProjectFile
	err := s.db.QueryRowContext(ctx,
		`SELECT id, project_id, file_path, file_name, file_type, content
		 FROM project_files WHERE project_id = ? AND file_path = ?`, projectID, filePath).
		Scan(&f.ID, &f.ProjectID, &f.FilePath, &f.FileName, &f.FileType, &f.Content)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, newStoreError(StoreQueryFailed, "failed to get file "+filePath, err)
	}
	return &f, nil
}

// DeleteFile removes one file. Deleting a missing file is not an error.
func (s *Store) DeleteFile(ctx context.Context, projectID, filePath string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM project_files WHERE project_id = ? AND file_path = ?`, projectID, filePath); err != nil {
		return newStoreError(StoreWriteFailed, "failed to delete "+filePath, err)
	}
	return nil
}
