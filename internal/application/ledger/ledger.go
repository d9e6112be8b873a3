// Package ledger memegang buku transaksi: append-only, hanya Status yang
// boleh berubah (hutang -> lunas, satu arah).
package ledger

import (
	"time"

	"github.com/aisyarahmani/toko-pos/internal/application/events"
	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
	"github.com/aisyarahmani/toko-pos/internal/domain/repository"
)

// Ledger state buku transaksi di memori, ditulis utuh setiap mutasi.
type Ledger struct {
	repo         repository.LedgerRepository
	bus          *events.Bus
	transactions []entity.Transaction
}

// New memuat buku transaksi dari repository.
func New(repo repository.LedgerRepository, bus *events.Bus) (*Ledger, error) {
	transactions, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Ledger{repo: repo, bus: bus, transactions: transactions}, nil
}

// NextID ID turunan waktu (milidetik Unix). Bila bertabrakan dengan ID yang
// sudah ada (dua checkout di milidetik yang sama), dinaikkan sampai unik agar
// urutan ID tetap kronologis.
func (l *Ledger) NextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, t := range l.transactions {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// Append menambahkan transaksi ke buku dan mempersistenkannya.
func (l *Ledger) Append(t entity.Transaction) error {
	l.transactions = append(l.transactions, t)
	return l.persist()
}

// MarkPaid mengubah status satu transaksi hutang menjadi lunas. ID yang tidak
// ada atau sudah lunas adalah no-op diam-diam (perilaku lama dipertahankan);
// transaksi lain tidak pernah tersentuh.
func (l *Ledger) MarkPaid(id int64) error {
	for i := range l.transactions {
		if l.transactions[i].ID != id {
			continue
		}
		if l.transactions[i].Status != entity.StatusHutang {
			return nil
		}
		l.transactions[i].Status = entity.StatusLunas
		return l.persist()
	}
	return nil
}

// All salinan seluruh buku transaksi.
func (l *Ledger) All() []entity.Transaction {
	out := make([]entity.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len jumlah transaksi tercatat.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

func (l *Ledger) persist() error {
	if err := l.repo.Save(l.transactions); err != nil {
		return err
	}
	l.bus.Publish(events.TopicLedger)
	return nil
}
