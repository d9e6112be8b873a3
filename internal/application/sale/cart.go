// Package sale alur penjualan aktif: keranjang sementara dan checkout.
package sale

import (
	"github.com/aisyarahmani/toko-pos/internal/application/events"
	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
)

// Cart keranjang belanja satu sesi penjualan. Tidak pernah dipersistenkan;
// restart proses mengosongkannya, memang begitu desainnya.
type Cart struct {
	bus   *events.Bus
	items []entity.CartItem
}

// NewCart membuat keranjang kosong.
func NewCart(bus *events.Bus) *Cart {
	return &Cart{bus: bus}
}

// Add menambah barang: jumlah naik satu bila sudah ada, selain itu baris baru
// dengan jumlah 1. Field barang disalin sebagai snapshot.
func (c *Cart) Add(p entity.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Qty++
			c.bus.Publish(events.TopicCart)
			return
		}
	}
	c.items = append(c.items, entity.CartItem{
		ProductID: p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Qty:       1,
	})
	c.bus.Publish(events.TopicCart)
}

// AdjustQty menambahkan delta ke jumlah baris. Hasil <= 0 menghapus barisnya
// sama sekali. ID yang tidak ada di keranjang adalah no-op.
func (c *Cart) AdjustQty(productID string, delta int) {
	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		c.items[i].Qty += delta
		if c.items[i].Qty <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		c.bus.Publish(events.TopicCart)
		return
	}
}

// Clear mengosongkan keranjang tanpa syarat; konfirmasi adalah urusan UI.
func (c *Cart) Clear() {
	c.items = nil
	c.bus.Publish(events.TopicCart)
}

// Total jumlah harga kali kuantitas seluruh baris. Selalu dihitung ulang,
// tidak pernah di-cache.
func (c *Cart) Total() int64 {
	var total int64
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}

// Items salinan dalam baris keranjang, urut sesuai pemasukan.
func (c *Cart) Items() []entity.CartItem {
	out := make([]entity.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty true bila keranjang kosong.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
