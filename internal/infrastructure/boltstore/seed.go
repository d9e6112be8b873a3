package boltstore

import (
	"github.com/google/uuid"

	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
)

// SeedProducts katalog bawaan untuk toko yang baru pertama kali dijalankan.
// Kode mengikuti pola prefiks kategori + nomor urut tiga digit.
func SeedProducts() []entity.Product {
	base := []entity.Product{
		{Code: "S001", Name: "Sabun Mandi Lifebuoy", Category: "persabunan", Price: 5000, Stock: 24},
		{Code: "S002", Name: "Deterjen Rinso 700g", Category: "persabunan", Price: 15000, Stock: 12},
		{Code: "S003", Name: "Shampo Sachet Clear", Category: "persabunan", Price: 1000, Stock: 60},
		{Code: "M001", Name: "Teh Botol Sosro", Category: "minuman", Price: 4000, Stock: 30},
		{Code: "M002", Name: "Air Mineral 600ml", Category: "minuman", Price: 3000, Stock: 48},
		{Code: "F001", Name: "Indomie Goreng", Category: "makanan", Price: 3500, Stock: 40},
		{Code: "F002", Name: "Roti Tawar", Category: "makanan", Price: 12000, Stock: 8},
		{Code: "B001", Name: "Beras 1kg", Category: "bahan", Price: 14000, Stock: 25},
		{Code: "B002", Name: "Minyak Goreng 1L", Category: "bahan", Price: 18000, Stock: 15},
		{Code: "C001", Name: "Kecap Manis ABC", Category: "bumbu", Price: 9000, Stock: 10},
		{Code: "P001", Name: "Pulsa 10.000", Category: "pulsa", Price: 12000, Stock: 100},
		{Code: "T001", Name: "Token Listrik 20.000", Category: "token", Price: 22000, Stock: 100},
	}
	for i := range base {
		base[i].ID = uuid.New().String()
	}
	return base
}
