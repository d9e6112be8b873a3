package entity

// CartItem satu baris keranjang: salinan field barang ditambah jumlah.
// Salinan, bukan referensi: perubahan katalog sesudahnya tidak memengaruhi
// baris yang sudah masuk keranjang maupun transaksi.
type CartItem struct {
	ProductID string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
}

// Subtotal harga kali jumlah untuk baris ini.
func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Qty)
}
