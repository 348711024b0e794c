// Package store keeps the history of completed phases in a BoltDB file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/focusring/internal/models"
	"github.com/ayoisaiah/focusring/internal/timeutil"
)

const (
	phaseBucket = "phases"
	lockTimeout = 100 * time.Millisecond
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: lockTimeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errFocusRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(phaseBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

// AddRecord stores r keyed by its completion time.
func (c *Client) AddRecord(r *models.Record) error {
	key := timeutil.ToKey(r.CompletedAt)

	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(phaseBucket)).Put(key, value)
	})
}

// Records returns the phases completed within [since, until] in
// chronological order.
func (c *Client) Records(since, until time.Time) ([]models.Record, error) {
	var records []models.Record

	minKey := timeutil.ToKey(since)
	maxKey := timeutil.ToKey(until)

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(phaseBucket)).Cursor()

		for k, v := cur.Seek(minKey); k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			var r models.Record

			if err := json.Unmarshal(v, &r); err != nil {
				return errCorruptRecord.Fmt(string(k)).Wrap(err)
			}

			records = append(records, r)
		}

		return nil
	})

	return records, err
}
