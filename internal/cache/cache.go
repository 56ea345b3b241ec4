// Package cache provides a filesystem-backed store for extraction results keyed by URL.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/bilidl/bilidl/filesystem"
	"github.com/bilidl/bilidl/log"
)

// Store is a directory of JSON documents that expire after a TTL.
type Store struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// New returns a store rooted at dir. A non-positive ttl disables reads and writes.
func New(dir string, ttl time.Duration) *Store {
	return &Store{dir: dir, ttl: ttl, now: time.Now}
}

// GenerateKey derives a deterministic file name from a URL.
func GenerateKey(url string) string {
	hash := sha256.Sum256([]byte(strings.TrimSpace(url)))
	return hex.EncodeToString(hash[:])
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read decodes a cached document into target if it exists and has not expired.
func (s *Store) Read(key string, target any) bool {
	if s.ttl <= 0 {
		return false
	}

	fs := filesystem.API()
	path := s.path(key)

	info, err := fs.Stat(path)
	if err != nil || s.now().Sub(info.ModTime()) > s.ttl {
		return false
	}

	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(target); err != nil {
		log.Warnf("discarding unreadable cache entry %s: %v", key, err)
		return false
	}
	return true
}

// Write persists data under key, replacing the previous document through a rename.
func (s *Store) Write(key string, data any) error {
	if s.ttl <= 0 {
		return nil
	}

	return filesystem.WriteAtomic(s.path(key), func(w io.Writer) error {
		return json.NewEncoder(w).Encode(data)
	})
}

// CollectGarbage removes expired documents and returns how many were deleted.
func (s *Store) CollectGarbage() int {
	fs := filesystem.API()

	entries, err := fs.ReadDir(s.dir)
	if err != nil {
		return 0
	}

	var removed int
	for _, entry := range entries {
		if entry.IsDir() || s.now().Sub(entry.ModTime()) <= s.ttl {
			continue
		}
		if fs.Remove(filepath.Join(s.dir, entry.Name())) == nil {
			removed++
		}
	}
	return removed
}
