// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Store saves runs to a single SQLite table as JSON blobs keyed by well name
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// NewStore opens (or creates) the database at path
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "goipr.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file
func (o *Store) Path() string { return o.path }

// SaveRuns replaces the stored runs with the same names in one transaction
func (o *Store) SaveRuns(runs ...*Run) (retErr error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	tx, err := o.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	for _, run := range runs {
		data, err := json.Marshal(run)
		if err != nil {
			return fmt.Errorf("encode %s: %w", run.Name, err)
		}
		if _, err := tx.Exec(`INSERT OR REPLACE INTO runs(name, payload) VALUES(?, ?)`, run.Name, data); err != nil {
			return fmt.Errorf("upsert %s: %w", run.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadRun returns the run saved under name
func (o *Store) LoadRun(name string) (*Run, error) {
	var payload []byte
	err := o.db.QueryRow(`SELECT payload FROM runs WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %q not found: %w", name, err)
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", name, err)
	}
	var run Run
	if err := json.Unmarshal(payload, &run); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &run, nil
}

// Names returns the names of stored runs in ascending order
func (o *Store) Names() ([]string, error) {
	rows, err := o.db.Query(`SELECT name FROM runs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("select names: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the database
func (o *Store) Close() error { return o.db.Close() }
