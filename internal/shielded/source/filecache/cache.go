// Package filecache reads and writes the JSON event cache kept by the log scanner.
package filecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/chain"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

type document struct {
	HighestBlock uint64              `json:"highest_block"`
	Events       []model.EventRecord `json:"events"`
}

// Cache is an event source backed by one JSON file. The file is re-read on every call so a
// scanner may replace it between builds.
type Cache struct {
	path string
}

// New returns a cache stored at path.
func New(path string) *Cache {
	return &Cache{path: path}
}

// Path returns the file location.
func (c *Cache) Path() string {
	return c.path
}

// HighestBlock returns the highest block the cache has been synced to.
func (c *Cache) HighestBlock(ctx context.Context) (uint64, error) {
	doc, err := c.read(ctx)
	if err != nil {
		return 0, err
	}
	return doc.HighestBlock, nil
}

// Records returns the raw records in file order together with the highest synced block.
func (c *Cache) Records(ctx context.Context) (uint64, []model.EventRecord, error) {
	doc, err := c.read(ctx)
	if err != nil {
		return 0, nil, err
	}
	return doc.HighestBlock, doc.Events, nil
}

// Load assembles the cached records into an event log.
func (c *Cache) Load(ctx context.Context) (model.EventLog, error) {
	doc, err := c.read(ctx)
	if err != nil {
		return model.EventLog{}, err
	}
	if len(doc.Events) == 0 {
		return model.EventLog{}, fmt.Errorf("cache %s holds no events: %w", c.path, model.ErrMissingInput)
	}
	return chain.Assemble(doc.HighestBlock, doc.Events)
}

// Save replaces the cache file atomically.
func (c *Cache) Save(highest uint64, records []model.EventRecord) error {
	data, err := json.MarshalIndent(document{HighestBlock: highest, Events: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	return WriteFileAtomic(c.path, data)
}

func (c *Cache) read(ctx context.Context) (document, error) {
	if err := ctx.Err(); err != nil {
		return document{}, err
	}
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return document{}, fmt.Errorf("cache %s: %w", c.path, model.ErrMissingInput)
	}
	if err != nil {
		return document{}, fmt.Errorf("read cache: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("decode cache %s: %w", c.path, err)
	}
	return doc, nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames it into place.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
