// SPDX-License-Identifier: MIT

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"

	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/digest"
	"github.com/katalvlaran/graphseal/merkle"
)

// Key prefixes.
const (
	prefixRecord = "c:"
	prefixBytes  = "b:"
	prefixRoot   = "m:"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no record exists for a hash or root.
	ErrNotFound = errors.New("store: record not found")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store: closed")

	// ErrInvalidRecord is returned by Put for a record whose bytes do not
	// hash to its Hash.
	ErrInvalidRecord = errors.New("store: canonical bytes do not match hash")

	// ErrPathRequired is returned by Open with an empty path.
	ErrPathRequired = errors.New("store: path is required")
)

// Record is one stored canonical form.
type Record struct {
	Hash             digest.Hash     `json:"hash"`
	IsomorphismClass string          `json:"isomorphism_class"`
	Algorithm        canon.Algorithm `json:"algorithm"`
	MerkleRoot       digest.Hash     `json:"merkle_root"`
	Vertices         int             `json:"vertices"`
	Edges            int             `json:"edges"`

	// CompressedSize is the stored size of CanonicalGraph; set by Put.
	CompressedSize int       `json:"compressed_size"`
	StoredAt       time.Time `json:"stored_at"`

	CanonicalGraph []byte `json:"-"`
}

// NewRecord assembles a record from a canonicalization result and the chunk
// tree built over it. gt may be nil, leaving MerkleRoot zero.
func NewRecord(res *canon.CanonicalizationResult, gt *merkle.GraphTree, vertices, edges int) Record {
	rec := Record{
		Hash:             res.Hash,
		IsomorphismClass: res.IsomorphismClass,
		Algorithm:        res.Algorithm,
		Vertices:         vertices,
		Edges:            edges,
		CanonicalGraph:   res.CanonicalGraph,
	}
	if gt != nil {
		rec.MerkleRoot = gt.RootHash()
	}

	return rec
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes store and badger messages to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSyncWrites toggles fsync on every write (on by default for disk stores).
func WithSyncWrites(on bool) Option {
	return func(s *Store) { s.syncWrites = on }
}

// Store is a BadgerDB-backed record store. Safe for concurrent use; Close
// waits for in-flight operations and later calls fail with ErrClosed.
type Store struct {
	mu         sync.RWMutex
	db         *badger.DB
	log        logrus.FieldLogger
	syncWrites bool
	now        func() time.Time
}

// Open opens (creating if needed) a persistent store in dir.
func Open(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, ErrPathRequired
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}

	return open(badger.DefaultOptions(dir), true, opts)
}

// OpenInMemory opens a store that lives only until Close.
func OpenInMemory(opts ...Option) (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), false, opts)
}

func open(bopts badger.Options, sync bool, opts []Option) (*Store, error) {
	s := &Store{log: logrus.StandardLogger(), syncWrites: sync, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	bopts = bopts.
		WithSyncWrites(s.syncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(badgerLogger{s.log.WithField("component", "badger")})

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}
	s.db = db

	return s, nil
}

// Close releases the database. Calling Close twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// Put stores rec under rec.Hash, replacing any previous record with the
// same hash. A non-zero MerkleRoot is indexed for LookupByRoot.
func (s *Store) Put(ctx context.Context, rec Record) error {
	db, release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	if digest.Sum(rec.CanonicalGraph) != rec.Hash {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, rec.Hash.Hex())
	}

	packed, err := compress(rec.CanonicalGraph)
	if err != nil {
		return fmt.Errorf("store: compress: %w", err)
	}
	rec.CompressedSize = len(packed)
	if rec.StoredAt.IsZero() {
		rec.StoredAt = s.now().UTC()
	}
	meta, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: marshal record: %w", err)
	}

	hexHash := rec.Hash.Hex()
	err = db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(prefixRecord+hexHash), meta); err != nil {
			return err
		}
		if err := txn.Set([]byte(prefixBytes+hexHash), packed); err != nil {
			return err
		}
		if !rec.MerkleRoot.IsZero() {
			return txn.Set([]byte(prefixRoot+rec.MerkleRoot.Hex()), []byte(hexHash))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store: put %s: %w", hexHash, err)
	}

	s.log.WithFields(logrus.Fields{
		"hash":       hexHash,
		"class":      rec.IsomorphismClass,
		"raw":        len(rec.CanonicalGraph),
		"compressed": rec.CompressedSize,
	}).Info("stored canonical form")

	return nil
}

// Get loads the record for hash, canonical bytes included.
func (s *Store) Get(ctx context.Context, hash digest.Hash) (*Record, error) {
	db, release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var rec Record
	var packed []byte
	hexHash := hash.Hex()
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixRecord + hexHash))
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		}); err != nil {
			return err
		}
		item, err = txn.Get([]byte(prefixBytes + hexHash))
		if err != nil {
			return err
		}
		packed, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, hexHash)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", hexHash, err)
	}

	rec.CanonicalGraph, err = decompress(packed)
	if err != nil {
		return nil, fmt.Errorf("store: decompress %s: %w", hexHash, err)
	}

	return &rec, nil
}

// Has reports whether a record exists for hash.
func (s *Store) Has(ctx context.Context, hash digest.Hash) (bool, error) {
	db, release, err := s.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer release()
	err = db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(prefixRecord + hash.Hex()))
		return err
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("store: has: %w", err)
	}
}

// LookupByRoot resolves a Merkle root to the record it was stored with.
func (s *Store) LookupByRoot(ctx context.Context, root digest.Hash) (*Record, error) {
	hash, err := s.resolveRoot(ctx, root)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, hash)
}

// resolveRoot reads the root index entry. It releases the read lock before
// LookupByRoot calls Get, since RWMutex read locks must not nest.
func (s *Store) resolveRoot(ctx context.Context, root digest.Hash) (digest.Hash, error) {
	db, release, err := s.acquire(ctx)
	if err != nil {
		return digest.Hash{}, err
	}
	defer release()

	var target string
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixRoot + root.Hex()))
		if err != nil {
			return err
		}
		v, err := item.ValueCopy(nil)
		target = string(v)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return digest.Hash{}, fmt.Errorf("%w: root %s", ErrNotFound, root.Hex())
	}
	if err != nil {
		return digest.Hash{}, fmt.Errorf("store: lookup root: %w", err)
	}

	hash, err := digest.Parse(target)
	if err != nil {
		return digest.Hash{}, fmt.Errorf("store: root index: %w", err)
	}

	return hash, nil
}

// List returns every stored canonical hash in ascending hex order.
func (s *Store) List(ctx context.Context) ([]digest.Hash, error) {
	db, release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var out []digest.Hash
	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixRecord)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := digest.Parse(strings.TrimPrefix(string(it.Item().Key()), prefixRecord))
			if err != nil {
				return err
			}
			out = append(out, h)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i][:], out[j][:]) < 0 })

	return out, nil
}

// acquire read-locks the store and returns the open handle with its
// release func. On error nothing is held.
func (s *Store) acquire(ctx context.Context) (*badger.DB, func(), error) {
	s.mu.RLock()
	if s.db == nil {
		s.mu.RUnlock()
		return nil, nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		s.mu.RUnlock()
		return nil, nil, err
	}

	return s.db, s.mu.RUnlock, nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return io.ReadAll(r)
}

// badgerLogger demotes badger's informational chatter to debug.
type badgerLogger struct{ l logrus.FieldLogger }

func (b badgerLogger) Errorf(f string, args ...interface{})   { b.l.Errorf(f, args...) }
func (b badgerLogger) Warningf(f string, args ...interface{}) { b.l.Warnf(f, args...) }
func (b badgerLogger) Infof(f string, args ...interface{})    { b.l.Debugf(f, args...) }
func (b badgerLogger) Debugf(f string, args ...interface{})   { b.l.Debugf(f, args...) }
