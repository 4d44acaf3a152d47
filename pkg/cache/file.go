package cache

import (
	"context"
	"encoding/binary"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	frameExt   = ".frame"
	frameMagic = "FPF1"

	// headerSize is the magic followed by the expiry in unix nanoseconds.
	headerSize = len(frameMagic) + 8
)

// FileCache keeps frames on disk for the CLI. Each entry is a single file
// holding a small binary header and the raw frame bytes, so PNG frames are
// stored without re-encoding. Files are sharded into subdirectories named
// after the first two hex digits of the hashed key.
type FileCache struct {
	dir string
}

// Usage describes the contents of a FileCache directory.
type Usage struct {
	Frames int
	Bytes  int64
}

// NewFileCache returns a FileCache rooted at dir as a [Cache].
func NewFileCache(dir string) (Cache, error) {
	return OpenFileCache(dir)
}

// OpenFileCache creates dir if needed and returns a FileCache rooted there.
func OpenFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *FileCache) Dir() string { return c.dir }

// Get returns the frame stored under key. Corrupt or expired entries are
// removed and reported as a miss.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	data, expires, ok := decodeFrame(raw)
	if !ok || (!expires.IsZero() && time.Now().After(expires)) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return data, true, nil
}

// Set writes the frame to a temporary file and renames it into place, so a
// concurrent Get sees either the old entry or the new one.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}

	path := c.path(key)
	shard := filepath.Dir(path)
	if err := os.MkdirAll(shard, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(shard, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(encodeFrame(data, expires)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes key. A missing entry is not an error.
func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

// Usage counts the stored frames and their size on disk.
func (c *FileCache) Usage() (Usage, error) {
	var u Usage
	err := c.walk(func(path string, d fs.DirEntry) error {
		if !strings.HasSuffix(path, frameExt) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		u.Frames++
		u.Bytes += info.Size()
		return nil
	})
	return u, err
}

// Clear removes every file under the cache root, including leftovers from
// interrupted writes, and then the emptied shard directories. The returned
// Usage describes what was removed.
func (c *FileCache) Clear() (Usage, error) {
	var (
		removed Usage
		shards  []string
	)
	err := c.walk(func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			shards = append(shards, path)
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return nil
		}
		if strings.HasSuffix(path, frameExt) {
			removed.Frames++
			removed.Bytes += info.Size()
		}
		return nil
	})
	if err != nil {
		return removed, err
	}
	for i := len(shards) - 1; i >= 0; i-- {
		_ = os.Remove(shards[i])
	}
	return removed, nil
}

// walk visits everything below the root. Unreadable entries are skipped.
func (c *FileCache) walk(fn func(path string, d fs.DirEntry) error) error {
	return filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == c.dir {
			return nil
		}
		return fn(path, d)
	})
}

func (c *FileCache) path(key string) string {
	name := Hash([]byte(key))
	return filepath.Join(c.dir, name[:2], name[2:]+frameExt)
}

func encodeFrame(data []byte, expires time.Time) []byte {
	buf := make([]byte, headerSize, headerSize+len(data))
	copy(buf, frameMagic)
	var nanos int64
	if !expires.IsZero() {
		nanos = expires.UnixNano()
	}
	binary.BigEndian.PutUint64(buf[len(frameMagic):], uint64(nanos))
	return append(buf, data...)
}

func decodeFrame(raw []byte) ([]byte, time.Time, bool) {
	if len(raw) < headerSize || string(raw[:len(frameMagic)]) != frameMagic {
		return nil, time.Time{}, false
	}
	var expires time.Time
	if nanos := int64(binary.BigEndian.Uint64(raw[len(frameMagic):headerSize])); nanos != 0 {
		expires = time.Unix(0, nanos)
	}
	return raw[headerSize:], expires, true
}

var _ Cache = (*FileCache)(nil)
