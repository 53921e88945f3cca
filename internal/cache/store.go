// Package cache persists analysis results in BadgerDB so unchanged files are
// not parsed again on the next run.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"

	"github.com/imyousuf/CodeMetrics/internal/space"
)

// Key prefix for result entries. The version segment changes whenever the
// stored tree layout does, orphaning older entries.
const prefixResult = "r:v1:"

// Key identifies one cached result.
type Key struct {
	// Path is the file the result was computed for.
	Path string
	// Variant encodes the analysis settings that change the result.
	Variant string
	// Digest is the xxhash of the file content.
	Digest uint64
}

// pathPrefix covers every digest cached for the same path and variant. The
// NUL terminator keeps "a.py" from matching "a.pyx".
func (k Key) pathPrefix() []byte {
	return []byte(prefixResult + k.Variant + ":" + k.Path + "\x00")
}

func (k Key) bytes() []byte {
	return strconv.AppendUint(k.pathPrefix(), k.Digest, 16)
}

// Store is a BadgerDB-backed result store. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // suppress badger logs
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the cached tree for k. The boolean is false on a miss.
func (s *Store) Get(k Key) (*space.Node, bool, error) {
	var snap space.Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k.bytes())
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", k.Path, err)
	}
	return snap.Node(), true, nil
}

// Put stores root under k, replacing results cached for older content of the
// same path.
func (s *Store) Put(k Key, root *space.Node) error {
	data, err := json.Marshal(root.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal %s: %w", k.Path, err)
	}
	key := k.bytes()
	return s.db.Update(func(txn *badger.Txn) error {
		stale, err := scanPrefix(txn, k.pathPrefix())
		if err != nil {
			return err
		}
		for _, old := range stale {
			if string(old) == string(key) {
				continue
			}
			if err := txn.Delete(old); err != nil {
				return err
			}
		}
		return txn.Set(key, data)
	})
}

// Len returns the number of cached results.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.View(func(txn *badger.Txn) error {
		keys, err := scanPrefix(txn, []byte(prefixResult))
		n = len(keys)
		return err
	})
	return n, err
}

// Purge removes every cached result.
func (s *Store) Purge() error {
	return s.db.DropAll()
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanPrefix(txn *badger.Txn, prefix []byte) ([][]byte, error) {
	var keys [][]byte
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()
	for it.Seek(prefix); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys, nil
}
