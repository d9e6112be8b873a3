// Package report agregasi buku transaksi per bulan untuk halaman laporan.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/aisyarahmani/toko-pos/internal/application/ledger"
	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
)

// PeriodAll nilai filter yang meloloskan semua transaksi.
const PeriodAll = "all"

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthKey kunci bulan "YYYY-M" (bulan tanpa nol di depan, mengikuti format
// yang sudah tersimpan di data lama).
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
}

// MonthLabel label periode berbahasa Indonesia, mis. "September 2025".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

// Period satu pilihan periode di filter laporan.
type Period struct {
	Key   string
	Label string
}

// Summary hasil agregasi satu periode: dua kelompok status plus total
// pendapatan. Hanya transaksi lunas yang menyumbang pendapatan.
type Summary struct {
	Period  string
	Lunas   []entity.Transaction
	Hutang  []entity.Transaction
	Revenue int64
}

// ReportUseCase membaca buku transaksi; satu-satunya mutasinya (MarkPaid)
// didelegasikan ke ledger.
type ReportUseCase struct {
	ledger *ledger.Ledger
}

// NewReportUseCase membangun kasus penggunaan laporan.
func NewReportUseCase(l *ledger.Ledger) *ReportUseCase {
	return &ReportUseCase{ledger: l}
}

// Periods daftar kunci bulan unik, terbaru lebih dulu. Diurutkan berdasarkan
// (tahun, bulan) sungguhan, bukan leksikografis.
func (uc *ReportUseCase) Periods() []Period {
	type ym struct {
		year  int
		month time.Month
	}
	seen := make(map[ym]bool)
	var keys []ym
	for _, t := range uc.ledger.All() {
		k := ym{t.Date.Year(), t.Date.Month()}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month > keys[j].month
	})

	out := make([]Period, 0, len(keys))
	for _, k := range keys {
		out = append(out, Period{
			Key:   fmt.Sprintf("%d-%d", k.year, int(k.month)),
			Label: MonthLabel(k.year, k.month),
		})
	}
	return out
}

// Summarize memfilter buku per periode ("all" meloloskan semuanya) lalu
// membagi menjadi lunas dan hutang, keduanya terbaru lebih dulu (urut ID
// menurun; ID turunan waktu sehingga urut ID ≈ urut kronologis).
func (uc *ReportUseCase) Summarize(period string) Summary {
	s := Summary{Period: period}
	filtered := uc.ledger.All()
	if period != "" && period != PeriodAll {
		kept := filtered[:0]
		for _, t := range filtered {
			if MonthKey(t.Date) == period {
				kept = append(kept, t)
			}
		}
		filtered = kept
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID > filtered[j].ID })

	for _, t := range filtered {
		if t.Status == entity.StatusHutang {
			s.Hutang = append(s.Hutang, t)
		} else {
			s.Lunas = append(s.Lunas, t)
			s.Revenue += t.Total
		}
	}
	return s
}

// MarkPaid melunasi satu transaksi hutang. Konfirmasi dilakukan di UI;
// ID yang tidak ada adalah no-op.
func (uc *ReportUseCase) MarkPaid(id int64) error {
	return uc.ledger.MarkPaid(id)
}
