// ABOUTME: SQLite-backed probe result cache keyed by path and mtime
// ABOUTME: Avoids re-spawning ffprobe for files that have not changed

package media

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Cache stores probe results per file version. A file is identified by
// its path and modification time, so edits to the file miss the cache
// and stale entries are simply never read again.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if needed) the cache database at path.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS probes (
		path TEXT NOT NULL,
		mtime INTEGER NOT NULL,
		duration_us INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		PRIMARY KEY (path, mtime)
	);
	`

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create probes table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get looks up a cached probe result for one file version.
func (c *Cache) Get(path string, mtime int64) (Info, bool, error) {
	var info Info

	row := c.db.QueryRow(
		"SELECT duration_us, width, height FROM probes WHERE path = ? AND mtime = ?",
		path, mtime)

	err := row.Scan(&info.DurationMicros, &info.Width, &info.Height)
	if err == sql.ErrNoRows {
		return Info{}, false, nil
	}

	if err != nil {
		return Info{}, false, fmt.Errorf("cache lookup failed: %w", err)
	}

	return info, true, nil
}

// Put stores a probe result for one file version.
func (c *Cache) Put(path string, mtime int64, info Info) error {
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO probes (path, mtime, duration_us, width, height) VALUES (?, ?, ?, ?, ?)",
		path, mtime, info.DurationMicros, info.Width, info.Height)
	if err != nil {
		return fmt.Errorf("cache store failed: %w", err)
	}

	return nil
}

// CachedProbe answers from the cache when the file is unchanged and
// falls through to probe otherwise, storing the fresh result. A cache
// write failure is not fatal; the probe result is still returned.
func (c *Cache) CachedProbe(path string, probe Prober) (Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	mtime := stat.ModTime().UnixNano()

	if info, ok, err := c.Get(path, mtime); err == nil && ok {
		return info, nil
	}

	info, err := probe(path)
	if err != nil {
		return Info{}, err
	}

	_ = c.Put(path, mtime, info)

	return info, nil
}
