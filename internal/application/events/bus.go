// Package events memisahkan logika store dari lapisan tampilan: setiap mutasi
// menerbitkan notifikasi perubahan, pelanggan (logger, tampilan) bereaksi.
package events

// Topic kanal perubahan state.
type Topic string

const (
	TopicCatalog Topic = "catalog"
	TopicLedger  Topic = "ledger"
	TopicCart    Topic = "cart"
)

// Bus penyiar perubahan yang sinkron dan berurutan. Subscribe dilakukan saat
// startup; Publish selalu berjalan di bawah kunci sesi (satu penulis logis),
// jadi tidak perlu penguncian sendiri.
type Bus struct {
	subscribers map[Topic][]func(Topic)
}

// NewBus membuat bus kosong.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[Topic][]func(Topic))}
}

// Subscribe mendaftarkan fn untuk dipanggil setiap topic diterbitkan.
func (b *Bus) Subscribe(topic Topic, fn func(Topic)) {
	b.subscribers[topic] = append(b.subscribers[topic], fn)
}

// Publish memanggil semua pelanggan topic secara sinkron, sesuai urutan daftar.
func (b *Bus) Publish(topic Topic) {
	for _, fn := range b.subscribers[topic] {
		fn(topic)
	}
}
