// Package datastore is a small JSON flat-file key/value store. All data lives
// in memory; writes go to disk atomically (temp file + rename) and a background
// routine saves periodically, skipping writes when nothing changed.
package datastore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const defaultAutoSaveInterval = 10 * time.Second

// DataStore is a guild-keyed JSON document store.
type DataStore struct {
	mu           sync.RWMutex
	data         map[string]any
	file         string
	lastChecksum string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closeMu sync.Mutex
	closed  bool
}

// New opens (or creates) the store at filePath and starts the autosave loop.
func New(filePath string) (*DataStore, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ds := &DataStore{
		data:   make(map[string]any),
		file:   filePath,
		ctx:    ctx,
		cancel: cancel,
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := ds.writeFileAtomic([]byte("{}")); err != nil {
			cancel()
			return nil, fmt.Errorf("failed to create empty store: %w", err)
		}
	} else if err == nil {
		if err := ds.loadFromFile(); err != nil {
			cancel()
			return nil, fmt.Errorf("failed to load store: %w", err)
		}
	} else {
		cancel()
		return nil, fmt.Errorf("failed to stat store file: %w", err)
	}

	ds.wg.Add(1)
	go ds.autoSave()

	return ds, nil
}

// Add stores a key/value pair.
func (ds *DataStore) Add(key string, value any) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.data[key] = value
}

// Get retrieves a value by key.
func (ds *DataStore) Get(key string) (any, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	value, ok := ds.data[key]
	return value, ok
}

// Delete removes a key/value pair.
func (ds *DataStore) Delete(key string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.data, key)
}

// Keys returns all stored keys.
func (ds *DataStore) Keys() []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	keys := make([]string, 0, len(ds.data))
	for k := range ds.data {
		keys = append(keys, k)
	}
	return keys
}

// SaveToFile forces an immediate save to disk.
func (ds *DataStore) SaveToFile() error {
	return ds.saveToFile()
}

// Close stops the autosave loop and performs a final save.
func (ds *DataStore) Close() error {
	ds.closeMu.Lock()
	if ds.closed {
		ds.closeMu.Unlock()
		return nil
	}
	ds.closed = true
	ds.closeMu.Unlock()

	ds.cancel()
	ds.wg.Wait()
	return ds.saveToFile()
}

func (ds *DataStore) autoSave() {
	defer ds.wg.Done()
	ticker := time.NewTicker(defaultAutoSaveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ds.ctx.Done():
			return
		case <-ticker.C:
			// Errors here are transient; the next tick or Close retries.
			_ = ds.saveToFile()
		}
	}
}

func (ds *DataStore) saveToFile() error {
	ds.mu.RLock()
	data, err := json.MarshalIndent(ds.data, "", "  ")
	ds.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	checksum := checksumOf(data)
	ds.mu.Lock()
	unchanged := checksum == ds.lastChecksum
	ds.mu.Unlock()
	if unchanged {
		return nil
	}

	if err := ds.writeFileAtomic(data); err != nil {
		return err
	}

	ds.mu.Lock()
	ds.lastChecksum = checksum
	ds.mu.Unlock()
	return nil
}

func (ds *DataStore) loadFromFile() error {
	raw, err := os.ReadFile(ds.file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	var loaded map[string]any
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("invalid JSON store: %w", err)
	}
	ds.mu.Lock()
	ds.data = loaded
	ds.lastChecksum = checksumOf(raw)
	ds.mu.Unlock()
	return nil
}

func (ds *DataStore) writeFileAtomic(data []byte) error {
	tmp := ds.file + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	f, err := os.OpenFile(tmp, os.O_RDWR, 0644)
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to open temp file for sync: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	f.Close()

	if err := os.Rename(tmp, ds.file); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

func checksumOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
