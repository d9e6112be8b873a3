// Package view proyeksi murni dari state toko ke model tampilan.
// Tidak ada fungsi di sini yang memutasi state; semua mutasi terjadi di
// usecase dan memicu render ulang lewat bus event, bukan sebaliknya.
package view

import (
	"fmt"

	"github.com/aisyarahmani/toko-pos/internal/application/report"
	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
	"github.com/aisyarahmani/toko-pos/pkg/money"
)

// ProductCard satu kartu barang di grid kasir.
type ProductCard struct {
	ID       string
	Name     string
	Category string
	Price    string
}

// ProductCards memproyeksikan katalog (yang sudah terfilter) ke kartu grid.
func ProductCards(products []entity.Product) []ProductCard {
	out := make([]ProductCard, 0, len(products))
	for _, p := range products {
		out = append(out, ProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    money.FormatRupiah(p.Price),
		})
	}
	return out
}

// CartLine satu baris keranjang di panel kasir.
type CartLine struct {
	ProductID string
	Name      string
	Price     string
	Qty       int
}

// CartView isi panel keranjang plus totalnya.
type CartView struct {
	Lines []CartLine
	Total string
	Empty bool
}

// Cart memproyeksikan baris keranjang dan total ke model tampilan.
func Cart(items []entity.CartItem, total int64) CartView {
	v := CartView{Total: money.FormatRupiah(total), Empty: len(items) == 0}
	for _, it := range items {
		v.Lines = append(v.Lines, CartLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     money.FormatRupiah(it.Price),
			Qty:       it.Qty,
		})
	}
	return v
}

// InventoryRow satu baris tabel inventaris.
type InventoryRow struct {
	ID         string
	Code       string
	Name       string
	Category   string
	Price      string
	PriceValue int64 // nilai mentah untuk form edit
	Stock      int
}

// InventoryRows memproyeksikan katalog ke tabel inventaris.
func InventoryRows(products []entity.Product) []InventoryRow {
	out := make([]InventoryRow, 0, len(products))
	for _, p := range products {
		out = append(out, InventoryRow{
			ID:         p.ID,
			Code:       p.Code,
			Name:       p.Name,
			Category:   p.Category,
			Price:      money.FormatRupiah(p.Price),
			PriceValue: p.Price,
			Stock:      p.Stock,
		})
	}
	return out
}

// ReportRow satu baris tabel laporan (lunas maupun hutang).
type ReportRow struct {
	ID    int64
	Date  string
	Time  string
	Buyer string
	Kinds string // "N jenis": jumlah macam barang, bukan total kuantitas
	Total string
}

// ReportView dua tabel laporan plus angka pendapatan.
type ReportView struct {
	Period  string
	Lunas   []ReportRow
	Hutang  []ReportRow
	Revenue string
}

// Report memproyeksikan ringkasan periode ke model tampilan laporan.
func Report(s report.Summary) ReportView {
	v := ReportView{Period: s.Period, Revenue: money.FormatRupiah(s.Revenue)}
	for _, t := range s.Lunas {
		v.Lunas = append(v.Lunas, reportRow(t))
	}
	for _, t := range s.Hutang {
		v.Hutang = append(v.Hutang, reportRow(t))
	}
	return v
}

func reportRow(t entity.Transaction) ReportRow {
	return ReportRow{
		ID:    t.ID,
		Date:  t.Date.Format("02/01/2006"),
		Time:  t.Date.Format("15.04.05"),
		Buyer: t.Buyer,
		Kinds: fmt.Sprintf("%d jenis", len(t.Items)),
		Total: money.FormatRupiah(t.Total),
	}
}

// PeriodOption satu pilihan di dropdown periode laporan.
type PeriodOption struct {
	Value    string
	Label    string
	Selected bool
}

// PeriodOptions daftar pilihan periode, diawali "Semua Waktu". Pilihan yang
// sedang aktif dipertahankan bila masih ada di daftar.
func PeriodOptions(periods []report.Period, selected string) []PeriodOption {
	out := []PeriodOption{{Value: report.PeriodAll, Label: "Semua Waktu", Selected: selected == "" || selected == report.PeriodAll}}
	for _, p := range periods {
		out = append(out, PeriodOption{Value: p.Key, Label: p.Label, Selected: p.Key == selected})
	}
	return out
}
