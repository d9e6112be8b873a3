package sale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisyarahmani/toko-pos/internal/application/events"
	"github.com/aisyarahmani/toko-pos/internal/application/ledger"
	"github.com/aisyarahmani/toko-pos/internal/application/sale"
	"github.com/aisyarahmani/toko-pos/internal/domain"
	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
)

// memLedgerRepo repository buku transaksi di memori untuk tes.
type memLedgerRepo struct {
	transactions []entity.Transaction
	saves        int
}

func (r *memLedgerRepo) Load() ([]entity.Transaction, error) {
	return append([]entity.Transaction(nil), r.transactions...), nil
}

func (r *memLedgerRepo) Save(transactions []entity.Transaction) error {
	r.transactions = append([]entity.Transaction(nil), transactions...)
	r.saves++
	return nil
}

func newCheckout(t *testing.T) (*sale.Cart, *sale.CheckoutUseCase, *ledger.Ledger, *memLedgerRepo) {
	t.Helper()
	bus := events.NewBus()
	repo := &memLedgerRepo{}
	book, err := ledger.New(repo, bus)
	require.NoError(t, err)
	cart := sale.NewCart(bus)
	return cart, sale.NewCheckoutUseCase(cart, book), book, repo
}

// Kasus: checkout dengan keranjang kosong gagal tanpa perubahan state apa pun.
func TestCheckout_KeranjangKosong(t *testing.T) {
	_, uc, book, repo := newCheckout(t)

	_, err := uc.Checkout(entity.StatusLunas, "")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Equal(t, 0, book.Len(), "buku transaksi tidak boleh bertambah")
	assert.Equal(t, 0, repo.saves, "tidak ada yang dipersistenkan")
}

// Kasus: hutang tanpa nama pembeli membatalkan seluruh checkout; keranjang
// tidak tersentuh, buku tidak bertambah.
func TestCheckout_HutangTanpaPembeli(t *testing.T) {
	cart, uc, book, _ := newCheckout(t)
	cart.Add(sabun())

	for _, buyer := range []string{"", "   "} {
		_, err := uc.Checkout(entity.StatusHutang, buyer)
		assert.ErrorIs(t, err, domain.ErrMissingBuyer)
	}
	assert.Equal(t, 0, book.Len())
	require.Len(t, cart.Items(), 1, "keranjang harus utuh setelah checkout gagal")
}

// Kasus: status di luar lunas/hutang ditolak.
func TestCheckout_StatusTidakValid(t *testing.T) {
	cart, uc, _, _ := newCheckout(t)
	cart.Add(sabun())

	_, err := uc.Checkout("dicicil", "Budi")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Kasus: checkout sukses — buku bertambah tepat satu, isinya snapshot
// keranjang sebelum checkout, dan keranjang kosong sesudahnya.
func TestCheckout_Sukses(t *testing.T) {
	cart, uc, book, repo := newCheckout(t)
	cart.Add(sabun())
	cart.Add(sabun())
	cart.Add(teh())
	wantItems := cart.Items()
	wantTotal := cart.Total()

	tx, err := uc.Checkout(entity.StatusLunas, "")
	require.NoError(t, err)

	assert.Equal(t, 1, book.Len(), "buku harus bertambah tepat satu")
	assert.Equal(t, wantItems, tx.Items, "items harus sama dengan isi keranjang sebelum checkout")
	assert.Equal(t, wantTotal, tx.Total)
	assert.Equal(t, entity.StatusLunas, tx.Status)
	assert.Equal(t, "-", tx.Buyer, "penjualan lunas memakai pembeli default")
	assert.NotZero(t, tx.ID, "ID turunan waktu")
	assert.True(t, cart.IsEmpty(), "keranjang harus kosong setelah checkout")
	assert.Equal(t, 1, repo.saves, "buku dipersistenkan saat checkout")
}

// Kasus: checkout hutang mencatat nama pembeli apa adanya (setelah trim).
func TestCheckout_Hutang(t *testing.T) {
	cart, uc, _, _ := newCheckout(t)
	cart.Add(teh())

	tx, err := uc.Checkout(entity.StatusHutang, "  Budi ")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusHutang, tx.Status)
	assert.Equal(t, "Budi", tx.Buyer)
}

// Kasus: snapshot benar-benar salinan — mengubah katalog atau keranjang
// setelahnya tidak mengubah transaksi yang sudah tercatat.
func TestCheckout_SnapshotTerisolasi(t *testing.T) {
	cart, uc, book, _ := newCheckout(t)
	cart.Add(sabun())

	tx, err := uc.Checkout(entity.StatusLunas, "")
	require.NoError(t, err)

	cart.Add(teh())
	all := book.All()
	require.Len(t, all, 1)
	assert.Equal(t, tx.Items, all[0].Items, "transaksi tercatat tidak boleh ikut berubah")
	require.Len(t, all[0].Items, 1)
}

// Kasus: dua checkout beruntun menghasilkan ID unik yang naik monoton,
// meski terjadi di milidetik yang sama.
func TestCheckout_IDUnikMonoton(t *testing.T) {
	cart, uc, book, _ := newCheckout(t)

	cart.Add(sabun())
	first, err := uc.Checkout(entity.StatusLunas, "")
	require.NoError(t, err)

	cart.Add(teh())
	second, err := uc.Checkout(entity.StatusLunas, "")
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID, "ID harus naik monoton agar urut ID = urut kronologis")
	assert.Equal(t, 2, book.Len())
}
