package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisyarahmani/toko-pos/internal/application/events"
	"github.com/aisyarahmani/toko-pos/internal/application/ledger"
	"github.com/aisyarahmani/toko-pos/internal/application/report"
	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
)

type memLedgerRepo struct {
	transactions []entity.Transaction
}

func (r *memLedgerRepo) Load() ([]entity.Transaction, error) {
	return append([]entity.Transaction(nil), r.transactions...), nil
}

func (r *memLedgerRepo) Save(transactions []entity.Transaction) error {
	r.transactions = append([]entity.Transaction(nil), transactions...)
	return nil
}

func newReport(t *testing.T, seed ...entity.Transaction) *report.ReportUseCase {
	t.Helper()
	book, err := ledger.New(&memLedgerRepo{transactions: seed}, events.NewBus())
	require.NoError(t, err)
	return report.NewReportUseCase(book)
}

func tx(date time.Time, total int64, status, buyer string) entity.Transaction {
	return entity.Transaction{
		ID:     date.UnixMilli(),
		Date:   date,
		Items:  []entity.CartItem{{ProductID: "p1", Code: "S001", Name: "Sabun", Price: total, Qty: 1}},
		Total:  total,
		Status: status,
		Buyer:  buyer,
	}
}

func tgl(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.Local)
}

// Kasus: kunci bulan "YYYY-M" tanpa nol di depan, lepas dari hari dan jam.
func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-9", report.MonthKey(tgl(2025, time.September, 1)))
	assert.Equal(t, "2025-12", report.MonthKey(tgl(2025, time.December, 31)))
	assert.Equal(t, report.MonthKey(tgl(2025, time.March, 1)), report.MonthKey(tgl(2025, time.March, 28)),
		"hari berbeda di bulan sama menghasilkan kunci sama")
}

// Kasus: daftar periode unik dan terbaru lebih dulu, termasuk saat bulan satu
// digit dan dua digit bercampur (urut kronologis, bukan leksikografis).
func TestPeriods(t *testing.T) {
	uc := newReport(t,
		tx(tgl(2025, time.September, 3), 1000, entity.StatusLunas, "-"),
		tx(tgl(2025, time.October, 1), 2000, entity.StatusLunas, "-"),
		tx(tgl(2025, time.September, 20), 3000, entity.StatusHutang, "Budi"),
		tx(tgl(2024, time.December, 5), 4000, entity.StatusLunas, "-"),
	)

	periods := uc.Periods()
	require.Len(t, periods, 3, "bulan sama hanya muncul sekali")
	assert.Equal(t, "2025-10", periods[0].Key)
	assert.Equal(t, "2025-9", periods[1].Key)
	assert.Equal(t, "2024-12", periods[2].Key)
	assert.Equal(t, "Oktober 2025", periods[0].Label)
	assert.Equal(t, "September 2025", periods[1].Label)
}

// Kasus: "all" meloloskan semua; periode spesifik hanya bulan itu.
func TestSummarize_Filter(t *testing.T) {
	uc := newReport(t,
		tx(tgl(2025, time.September, 3), 1000, entity.StatusLunas, "-"),
		tx(tgl(2025, time.October, 1), 2000, entity.StatusLunas, "-"),
	)

	all := uc.Summarize(report.PeriodAll)
	assert.Len(t, all.Lunas, 2)
	assert.Equal(t, int64(3000), all.Revenue)

	sep := uc.Summarize("2025-9")
	require.Len(t, sep.Lunas, 1)
	assert.Equal(t, int64(1000), sep.Revenue)
}

// Kasus: pembagian lunas/hutang — hutang tampil tapi tidak pernah menyumbang
// pendapatan; kedua kelompok terbaru lebih dulu.
func TestSummarize_Partisi(t *testing.T) {
	uc := newReport(t,
		tx(tgl(2025, time.September, 1), 1000, entity.StatusLunas, "-"),
		tx(tgl(2025, time.September, 2), 2000, entity.StatusHutang, "Budi"),
		tx(tgl(2025, time.September, 3), 3000, entity.StatusLunas, "-"),
	)

	s := uc.Summarize(report.PeriodAll)
	require.Len(t, s.Lunas, 2)
	require.Len(t, s.Hutang, 1)
	assert.Equal(t, int64(4000), s.Revenue, "hanya lunas yang menyumbang pendapatan")
	assert.Greater(t, s.Lunas[0].ID, s.Lunas[1].ID, "lunas terurut terbaru lebih dulu")
	assert.Equal(t, "Budi", s.Hutang[0].Buyer)
}

// Kasus: contoh alur lengkap dari spesifikasi perilaku — pendapatan 2000,
// hutang Budi tidak dihitung sampai dilunasi, lalu menjadi 3000.
func TestAlurPendapatan(t *testing.T) {
	bus := events.NewBus()
	book, err := ledger.New(&memLedgerRepo{}, bus)
	require.NoError(t, err)
	uc := report.NewReportUseCase(book)

	item := entity.CartItem{ProductID: "p1", Code: "S001", Name: "Sabun", Price: 1000, Qty: 2}
	require.NoError(t, book.Append(entity.Transaction{
		ID: 1, Date: tgl(2025, time.September, 1), Items: []entity.CartItem{item},
		Total: 2000, Status: entity.StatusLunas, Buyer: "-",
	}))
	assert.Equal(t, int64(2000), uc.Summarize(report.PeriodAll).Revenue)

	item.Qty = 1
	require.NoError(t, book.Append(entity.Transaction{
		ID: 2, Date: tgl(2025, time.September, 2), Items: []entity.CartItem{item},
		Total: 1000, Status: entity.StatusHutang, Buyer: "Budi",
	}))
	assert.Equal(t, int64(2000), uc.Summarize(report.PeriodAll).Revenue,
		"hutang belum menyumbang pendapatan")

	require.NoError(t, uc.MarkPaid(2))
	assert.Equal(t, int64(3000), uc.Summarize(report.PeriodAll).Revenue,
		"setelah dilunasi, pendapatan ikut naik")
}

// Kasus: MarkPaid pada ID yang tidak ada adalah no-op diam-diam.
func TestMarkPaid_IDTidakAda(t *testing.T) {
	uc := newReport(t, tx(tgl(2025, time.September, 1), 1000, entity.StatusHutang, "Budi"))

	require.NoError(t, uc.MarkPaid(999))
	s := uc.Summarize(report.PeriodAll)
	assert.Len(t, s.Hutang, 1, "tidak ada transaksi yang berubah")
}
