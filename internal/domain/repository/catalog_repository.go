package repository

import "github.com/aisyarahmani/toko-pos/internal/domain/entity"

// CatalogRepository port persistensi katalog barang.
// Koleksi dibaca dan ditulis utuh (read-modify-write), meniru satu record
// key-value di penyimpanan lokal; tidak ada penulisan parsial.
type CatalogRepository interface {
	// Load mengembalikan seluruh katalog. Data kosong atau rusak -> slice kosong.
	Load() ([]entity.Product, error)
	// Save menimpa seluruh katalog.
	Save(products []entity.Product) error
}
