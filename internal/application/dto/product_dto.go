package dto

import "github.com/aisyarahmani/toko-pos/internal/domain/entity"

// ProductRequest payload tambah/ubah barang. Dipakai untuk keduanya; saat
// ubah, kode tetap dicek duplikat dengan mengecualikan barang itu sendiri.
type ProductRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
}

// ProductResponse representasi barang untuk klien.
type ProductResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
}

// NextCodeResponse saran kode barang berikutnya untuk satu kategori.
type NextCodeResponse struct {
	Code string `json:"code"`
}

// ToProductResponse memetakan entitas ke response.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:       p.ID,
		Code:     p.Code,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
	}
}
