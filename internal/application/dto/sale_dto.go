package dto

// AddByCodeRequest entri manual di kasir: kode atau nama barang.
type AddByCodeRequest struct {
	Query string `json:"query"`
}

// QtyRequest perubahan jumlah satu baris keranjang (delta bisa negatif).
type QtyRequest struct {
	Delta int `json:"delta"`
}

// CheckoutRequest payload checkout. Pembeli wajib bila status "hutang".
type CheckoutRequest struct {
	Status  string `json:"status"`
	Pembeli string `json:"pembeli"`
}

// CheckoutResponse ringkasan transaksi yang baru dibuat.
type CheckoutResponse struct {
	ID         int64  `json:"id"`
	Total      int64  `json:"total"`
	TotalLabel string `json:"total_label"`
	Status     string `json:"status"`
}
