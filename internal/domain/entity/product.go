package entity

// Product merepresentasikan satu barang di katalog toko.
// Price dalam rupiah penuh (satuan mata uang terkecil, tanpa desimal).
type Product struct {
	ID       string `json:"id"`
	Code     string `json:"code"` // unik di seluruh katalog
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
}

// CategoryPrefixes kategori yang dikenal beserta huruf awal kode barangnya.
// Kategori di luar daftar memakai prefiks "X".
var CategoryPrefixes = map[string]string{
	"persabunan": "S",
	"minuman":    "M",
	"makanan":    "F",
	"bahan":      "B",
	"bumbu":      "C",
	"pulsa":      "P",
	"token":      "T",
	"lainnya":    "L",
}

// Categories urutan tampilan kategori di UI.
var Categories = []string{
	"persabunan", "minuman", "makanan", "bahan", "bumbu", "pulsa", "token", "lainnya",
}
