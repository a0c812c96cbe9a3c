// Package checkpoint persists per-walker configuration snapshots so a
// run can warm-restart from where the previous one stopped.
package checkpoint

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/sha3"
)

// Buffer is one walker's opaque configuration snapshot.
type Buffer []byte

// A Store reads and writes the configuration container of one process.
// Each process owns its own container file, named after its rank.
// Checkpoint I/O never fails a run: every error is reported on the
// diagnostic writer and the run continues, falling back to cold-start
// walkers on the read side.
type Store struct {
	rank int
	log  io.Writer
}

// NewStore creates a Store for the process with the given rank.
// Diagnostics default to stderr.
func NewStore(rank int) *Store {
	return &Store{
		rank: rank,
		log:  os.Stderr,
	}
}

// WithLog redirects diagnostic output.
func (s *Store) WithLog(w io.Writer) *Store {
	s.log = w
	return s
}

// Filename returns the container path for this process under dir.
func (s *Store) Filename(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("process_%d.sqlite3", s.rank))
}

// Write persists one buffer per walker slot into dir, replacing any
// container a previous run left there. An empty dir disables
// checkpointing: nothing is created and nothing is reported.
func (s *Store) Write(dir string, configs []Buffer) {
	if dir == "" {
		return
	}

	if err := s.write(dir, configs); err != nil {
		fmt.Fprintf(s.log, "configuration dump to %q failed: %v\n", dir, err)
	}
}

// Read restores one buffer per walker slot from dir. An empty dir
// returns n empty buffers without touching the filesystem. On any
// failure to open, parse, or verify the container, Read reports the
// error and returns all-empty buffers, so no partially loaded state
// ever reaches a walker.
func (s *Store) Read(dir string, n int) []Buffer {
	configs := make([]Buffer, n)
	if dir == "" {
		return configs
	}

	if err := s.read(dir, configs); err != nil {
		fmt.Fprintf(s.log, "configuration restore from %q failed: %v\n", dir, err)

		for i := range configs {
			configs[i] = nil
		}
	}

	return configs
}

const createTableSQL = `CREATE TABLE configurations (
	key TEXT PRIMARY KEY,
	payload BLOB,
	checksum TEXT
);`

func (s *Store) write(dir string, configs []Buffer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	filename := s.Filename(dir)
	if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
		return err
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(createTableSQL); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		"INSERT INTO configurations (key, payload, checksum) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, config := range configs {
		sum := sha3.Sum256(config)

		_, err := stmt.Exec(slotKey(i), []byte(config), hex.EncodeToString(sum[:]))
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) read(dir string, configs []Buffer) error {
	filename := s.Filename(dir)
	if _, err := os.Stat(filename); err != nil {
		return err
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return err
	}
	defer db.Close()

	for i := range configs {
		var payload []byte
		var checksum string

		err := db.QueryRow(
			"SELECT payload, checksum FROM configurations WHERE key = ?",
			slotKey(i)).Scan(&payload, &checksum)
		if err != nil {
			return fmt.Errorf("slot %s: %w", slotKey(i), err)
		}

		sum := sha3.Sum256(payload)
		if hex.EncodeToString(sum[:]) != checksum {
			return fmt.Errorf("slot %s: checksum mismatch", slotKey(i))
		}

		configs[i] = payload
	}

	return nil
}

func slotKey(slot int) string {
	return fmt.Sprintf("configuration_%d", slot)
}
