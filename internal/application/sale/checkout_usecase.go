package sale

import (
	"strings"
	"time"

	"github.com/aisyarahmani/toko-pos/internal/application/ledger"
	"github.com/aisyarahmani/toko-pos/internal/domain"
	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
)

// CheckoutUseCase satu-satunya tempat transaksi dibuat. Dua hasil akhir per
// pemanggilan: transaksi tercatat dan keranjang kosong, atau gagal tanpa
// perubahan state sama sekali.
type CheckoutUseCase struct {
	cart   *Cart
	ledger *ledger.Ledger
	now    func() time.Time
}

// NewCheckoutUseCase membangun kasus penggunaan checkout.
func NewCheckoutUseCase(cart *Cart, ledger *ledger.Ledger) *CheckoutUseCase {
	return &CheckoutUseCase{cart: cart, ledger: ledger, now: time.Now}
}

// Checkout menutup penjualan dengan status lunas atau hutang.
//   - Keranjang kosong -> ErrEmptyCart, tidak ada perubahan.
//   - Hutang tanpa nama pembeli -> ErrMissingBuyer, tidak ada perubahan.
//   - Sukses: snapshot baris keranjang masuk buku transaksi, buku dipersist,
//     keranjang dikosongkan.
func (uc *CheckoutUseCase) Checkout(status, buyer string) (*entity.Transaction, error) {
	if status != entity.StatusLunas && status != entity.StatusHutang {
		return nil, domain.ErrInvalidInput
	}
	if uc.cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	buyer = strings.TrimSpace(buyer)
	if status == entity.StatusHutang {
		if buyer == "" {
			return nil, domain.ErrMissingBuyer
		}
	} else {
		buyer = "-"
	}

	now := uc.now()
	t := entity.Transaction{
		ID:     uc.ledger.NextID(now),
		Date:   now,
		Items:  uc.cart.Items(),
		Total:  uc.cart.Total(),
		Status: status,
		Buyer:  buyer,
	}
	if err := uc.ledger.Append(t); err != nil {
		return nil, err
	}
	uc.cart.Clear()
	return &t, nil
}
