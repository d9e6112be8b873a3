package boltstore

import (
	"encoding/json"

	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
)

// CatalogRepository implementasi CatalogRepository di atas bbolt.
type CatalogRepository struct {
	store *Store
}

// NewCatalogRepository membuat repository katalog.
func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// Load membaca seluruh katalog. Saat pertama kali (record belum ada) katalog
// bawaan ditanam dan langsung dipersist. Data rusak tidak menghentikan
// aplikasi: dicatat sebagai warning lalu jatuh ke katalog kosong.
func (r *CatalogRepository) Load() ([]entity.Product, error) {
	raw, err := r.store.get(keyProducts)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		seed := SeedProducts()
		if err := r.Save(seed); err != nil {
			return nil, err
		}
		r.store.log.Info().Int("jumlah", len(seed)).Msg("katalog bawaan ditanam")
		return seed, nil
	}

	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		r.store.log.Warn().Err(err).Msg("record products rusak, memakai katalog kosong")
		return []entity.Product{}, nil
	}
	return products, nil
}

// Save menimpa record products dengan seluruh katalog.
func (r *CatalogRepository) Save(products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.store.put(keyProducts, raw)
}
