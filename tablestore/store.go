// SPDX-License-Identifier: MIT

// Package tablestore caches encoded truth maps in a bbolt file so repeated
// runs over the same edge list skip truth-table generation.
//
// Records are keyed by the xxhash of the graph signature (vertex type plus
// the ordered edge list). The signature itself is stored too and compared on
// lookup, so a hash collision reads as a miss, never as a wrong bitmap.
package tablestore

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	bolt "go.etcd.io/bbolt"

	"github.com/katalvlaran/hamcycle/hamilton"
)

var bucketTruthMaps = []byte("truthmaps")

// ErrClosed indicates use of a closed store.
var ErrClosed = errors.New("tablestore: store is closed")

// Record is one cached truth map.
type Record struct {
	Signature    string    `json:"signature"`
	Vertices     int       `json:"vertices"`
	Edges        int       `json:"edges"`
	Combinations int       `json:"combinations"`
	Hamiltonian  int       `json:"hamiltonian"`
	Bitmap       string    `json:"bitmap"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store is a bbolt-backed truth-map cache. It is safe for concurrent use.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the cache file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("tablestore: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTruthMaps)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tablestore: init %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close releases the file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// Signature renders the vertex type and the ordered edge list as a string.
// Edge order matters: it defines table order. Every vertex is length-prefixed
// ("len:value"), so vertex text containing separators cannot make two edge
// lists collide.
func Signature[V hamilton.Vertex](edges []hamilton.Edge[V]) string {
	var (
		sb   strings.Builder
		zero V
	)
	fmt.Fprintf(&sb, "%T:", zero)
	for _, e := range edges {
		writeVertex(&sb, e.From)
		writeVertex(&sb, e.To)
	}

	return sb.String()
}

func writeVertex[V hamilton.Vertex](sb *strings.Builder, v V) {
	s := fmt.Sprint(v)
	sb.WriteString(strconv.Itoa(len(s)))
	sb.WriteByte(':')
	sb.WriteString(s)
}

// Fingerprint is the xxhash of a signature.
func Fingerprint(signature string) uint64 {
	return xxhash.Sum64String(signature)
}

func key(signature string) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], Fingerprint(signature))

	return k[:]
}

// Put stores rec under rec.Signature, replacing any previous record.
func (s *Store) Put(rec Record) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	buf, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("tablestore: encode: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTruthMaps).Put(key(rec.Signature), buf)
	})
}

// Get returns the record for signature. ok is false on a miss.
func (s *Store) Get(signature string) (rec Record, ok bool, err error) {
	if s == nil || s.db == nil {
		return Record{}, false, ErrClosed
	}
	err = s.db.View(func(tx *bolt.Tx) error {
		buf := tx.Bucket(bucketTruthMaps).Get(key(signature))
		if buf == nil {
			return nil
		}
		// buf is only valid inside the transaction; Unmarshal copies.
		if err := json.Unmarshal(buf, &rec); err != nil {
			return fmt.Errorf("tablestore: decode: %w", err)
		}
		ok = rec.Signature == signature
		return nil
	})
	if err != nil || !ok {
		return Record{}, false, err
	}

	return rec, true, nil
}

// Delete removes the record for signature, if any.
func (s *Store) Delete(signature string) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTruthMaps).Delete(key(signature))
	})
}

// Len returns the number of cached records.
func (s *Store) Len() (int, error) {
	if s == nil || s.db == nil {
		return 0, ErrClosed
	}
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucketTruthMaps).Stats().KeyN
		return nil
	})

	return n, err
}
