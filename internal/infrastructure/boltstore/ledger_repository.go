package boltstore

import (
	"encoding/json"

	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
)

// LedgerRepository implementasi LedgerRepository di atas bbolt.
type LedgerRepository struct {
	store *Store
}

// NewLedgerRepository membuat repository buku transaksi.
func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// Load membaca seluruh transaksi. Belum ada record atau data rusak -> kosong.
func (r *LedgerRepository) Load() ([]entity.Transaction, error) {
	raw, err := r.store.get(keyTransactions)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []entity.Transaction{}, nil
	}

	var transactions []entity.Transaction
	if err := json.Unmarshal(raw, &transactions); err != nil {
		r.store.log.Warn().Err(err).Msg("record transactions rusak, memakai buku kosong")
		return []entity.Transaction{}, nil
	}
	return transactions, nil
}

// Save menimpa record transactions dengan seluruh buku.
func (r *LedgerRepository) Save(transactions []entity.Transaction) error {
	if transactions == nil {
		transactions = []entity.Transaction{}
	}
	raw, err := json.Marshal(transactions)
	if err != nil {
		return err
	}
	return r.store.put(keyTransactions, raw)
}
