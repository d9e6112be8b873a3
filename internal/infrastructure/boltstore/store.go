// Package boltstore menyimpan state toko ke satu file bbolt lokal.
// Layout meniru penyimpanan aslinya: dua record independen ("products" dan
// "transactions"), masing-masing berupa array JSON yang ditulis utuh setiap
// mutasi. Tidak ada field versi; perubahan format butuh migrasi manual.
package boltstore

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/aisyarahmani/toko-pos/pkg/logger"
)

var (
	bucketToko      = []byte("toko")
	keyProducts     = []byte("products")
	keyTransactions = []byte("transactions")
)

// Store membungkus koneksi bbolt dan logger bersama.
type Store struct {
	db  *bolt.DB
	log *logger.Logger
}

// Open membuka (atau membuat) file penyimpanan dan menyiapkan bucket.
func Open(path string, log *logger.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("buka penyimpanan %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketToko)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("siapkan bucket: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close menutup file penyimpanan.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketToko).Get(key)
		if v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

func (s *Store) put(key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketToko).Put(key, value)
	})
}
