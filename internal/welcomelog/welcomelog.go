// Package welcomelog tracks when members were last welcomed so rejoin spam
// does not re-trigger the welcome flow. Entries live in a bolt file keyed by
// guild and user, and stale entries are pruned on a schedule.
package welcomelog

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/boltdb/bolt"
)

const (
	bucketName = "welcomes"

	// dedupWindow suppresses a repeat welcome for a member seen recently.
	dedupWindow = 24 * time.Hour

	// retention is how long entries are kept before pruning.
	retention = 7 * 24 * time.Hour

	pruneInterval = time.Hour
)

// Log records welcome timestamps per guild member.
type Log struct {
	db  *bolt.DB
	now func() time.Time
}

// Open opens (or creates) the welcome log at path.
func Open(path string) (*Log, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open welcome log: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}
	return &Log{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

// ShouldWelcome reports whether the member has not been welcomed within the
// dedup window.
func (l *Log) ShouldWelcome(guildID, userID string) (bool, error) {
	var last time.Time
	err := l.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketName)).Get(key(guildID, userID))
		if raw == nil {
			return nil
		}
		t, err := time.Parse(time.RFC3339, string(raw))
		if err != nil {
			// Unparseable entry: treat as absent so the member still
			// gets welcomed, and let pruning clean it up.
			return nil
		}
		last = t
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to read welcome entry: %w", err)
	}
	if last.IsZero() {
		return true, nil
	}
	return l.now().Sub(last) >= dedupWindow, nil
}

// Mark records that the member was welcomed now.
func (l *Log) Mark(guildID, userID string) error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		ts := l.now().UTC().Format(time.RFC3339)
		return tx.Bucket([]byte(bucketName)).Put(key(guildID, userID), []byte(ts))
	})
	if err != nil {
		return fmt.Errorf("failed to write welcome entry: %w", err)
	}
	return nil
}

// Prune deletes entries older than the retention window and returns how many
// were removed.
func (l *Log) Prune() (int, error) {
	cutoff := l.now().Add(-retention)
	removed := 0
	err := l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		c := b.Cursor()
		var stale [][]byte
		for k, v := c.First(); k != nil; k, v = c.Next() {
			t, err := time.Parse(time.RFC3339, string(v))
			if err != nil || t.Before(cutoff) {
				stale = append(stale, append([]byte(nil), k...))
			}
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("failed to prune welcome log: %w", err)
	}
	return removed, nil
}

// RunPruner prunes hourly until ctx is cancelled.
func (l *Log) RunPruner(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := l.Prune(); err != nil {
				log.Printf("[ERR] Welcome log prune failed: %v", err)
			} else if n > 0 {
				log.Printf("[INFO] Pruned %d stale welcome entries", n)
			}
		}
	}
}

func key(guildID, userID string) []byte {
	return []byte(guildID + "/" + userID)
}
