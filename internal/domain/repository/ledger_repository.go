package repository

import "github.com/aisyarahmani/toko-pos/internal/domain/entity"

// LedgerRepository port persistensi buku transaksi.
type LedgerRepository interface {
	// Load mengembalikan seluruh transaksi. Data kosong atau rusak -> slice kosong.
	Load() ([]entity.Transaction, error)
	// Save menimpa seluruh buku transaksi.
	Save(transactions []entity.Transaction) error
}
