// Package storage provides functionality for persisting and retrieving
// Page Studio projects. This file implements the SQLite-backed project
// store with optional per-project password protection.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"pagestudio/local-app/internal/model"
)

// ErrProjectProtected is returned when a protected project is accessed
// with a missing or wrong password.
var ErrProjectProtected = fmt.Errorf("project is password protected")

// SQLiteStore persists named projects as JSON blobs in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// ProjectInfo is one row of the project listing.
type ProjectInfo struct {
	Name      string
	Protected bool
	UpdatedAt time.Time
}

// NewSQLiteStore opens (creating if needed) the project database.
func NewSQLiteStore(dbDir, dbFile string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			name TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			password_hash TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// ProjectSave stores a project under a name, inserting or replacing.
// An existing password hash is preserved across saves.
func (s *SQLiteStore) ProjectSave(name string, p *model.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO projects (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, name, string(data))
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// ProjectLoad retrieves a project by name. The password is required only
// for protected projects and checked against the stored bcrypt hash.
func (s *SQLiteStore) ProjectLoad(name, password string) (*model.Project, error) {
	var data, hash string
	err := s.db.QueryRow("SELECT data, password_hash FROM projects WHERE name = ?", name).Scan(&data, &hash)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project '%s' does not exist", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if hash != "" {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			return nil, ErrProjectProtected
		}
	}

	p := model.NewProject()
	if err := json.Unmarshal([]byte(data), p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}
	p.Normalize()
	return p, nil
}

// ProjectExists checks if a project with the given name exists.
func (s *SQLiteStore) ProjectExists(name string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM projects WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check project existence: %w", err)
	}
	return count > 0, nil
}

// ProjectDelete removes a project.
func (s *SQLiteStore) ProjectDelete(name string) error {
	res, err := s.db.Exec("DELETE FROM projects WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project '%s' does not exist", name)
	}
	return nil
}

// ProjectList returns every stored project, most recently updated first.
func (s *SQLiteStore) ProjectList() ([]ProjectInfo, error) {
	rows, err := s.db.Query("SELECT name, password_hash, updated_at FROM projects ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var infos []ProjectInfo
	for rows.Next() {
		var info ProjectInfo
		var hash string
		if err := rows.Scan(&info.Name, &hash, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		info.Protected = hash != ""
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// ProjectProtect sets or clears a project's password. An empty password
// removes the protection.
func (s *SQLiteStore) ProjectProtect(name, password string) error {
	hash := ""
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		hash = string(hashed)
	}

	res, err := s.db.Exec("UPDATE projects SET password_hash = ? WHERE name = ?", hash, name)
	if err != nil {
		return fmt.Errorf("failed to protect project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project '%s' does not exist", name)
	}
	return nil
}
