package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Increment when the payload format changes.
const cacheSchemaVersion uint16 = 1

// Cache хранит результаты анализа по хешу содержимого файла на диске.
// Доступ последовательный: файлы обрабатываются по одному.
type Cache struct {
	dir string
}

// Entry is one unused-import finding, as cached for a given file content.
type Entry struct {
	Line   uint32
	Col    uint32
	Dotted string
}

type cachePayload struct {
	Schema  uint16
	Entries []Entry
}

// OpenCache initializes and returns a disk cache at the standard location.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог "files" — для удобства читаемости и очистки.
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes the findings for one file content hash.
func (c *Cache) Put(key [32]byte, entries []Entry) error {
	if c == nil {
		return nil
	}
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "failed to remove temp file: %v\n", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&cachePayload{Schema: cacheSchemaVersion, Entries: entries}); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads the cached findings for a content hash. A schema mismatch or a
// corrupt file counts as a miss.
func (c *Cache) Get(key [32]byte) ([]Entry, bool) {
	if c == nil {
		return nil, false
	}
	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		return nil, false
	}
	defer func() { _ = f.Close() }()

	var payload cachePayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return payload.Entries, true
}

// DropAll invalidates the cache, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
