package domain

import "errors"

// Error domain (tanpa dependensi eksternal). Semua ditampilkan sinkron ke
// operator di titik aksi; tidak ada yang fatal bagi proses.
var (
	ErrNotFound        = errors.New("data tidak ditemukan")
	ErrDuplicateCode   = errors.New("kode barang sudah ada")
	ErrProductNotFound = errors.New("barang tidak ditemukan")
	ErrEmptyCart       = errors.New("keranjang kosong")
	ErrMissingBuyer    = errors.New("nama pembeli wajib diisi untuk hutang")
	ErrInvalidInput    = errors.New("masukan tidak valid")
)
