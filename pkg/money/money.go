// Package money memformat nominal rupiah untuk tampilan.
// Harga disimpan sebagai bilangan bulat (rupiah penuh); pengelompokan digit
// mengikuti locale id-ID ("Rp 12.000").
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah mengembalikan nominal dengan pemisah ribuan, mis. "Rp 12.000".
func FormatRupiah(amount int64) string {
	return printer.Sprintf("Rp %v", number.Decimal(amount))
}

// FormatAngka mengembalikan angka dengan pemisah ribuan tanpa prefiks mata uang.
func FormatAngka(amount int64) string {
	return printer.Sprintf("%v", number.Decimal(amount))
}
