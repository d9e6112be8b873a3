package entity

import "time"

// Status pembayaran transaksi. Nilai mengikuti data tersimpan lama.
const (
	StatusLunas  = "lunas"  // sudah dibayar
	StatusHutang = "hutang" // belum dibayar, pembeli tercatat
)

// Transaction satu penjualan selesai. Immutable kecuali Status,
// yang hanya boleh berpindah satu arah hutang -> lunas.
type Transaction struct {
	ID     int64      `json:"id"` // milidetik Unix saat checkout; juga urutan kronologis
	Date   time.Time  `json:"date"`
	Items  []CartItem `json:"items"`
	Total  int64      `json:"total"`
	Status string     `json:"status"`
	Buyer  string     `json:"pembeli"` // "-" untuk penjualan lunas tanpa nama
}
