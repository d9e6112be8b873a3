package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aisyarahmani/toko-pos/internal/application/events"
)

// Kasus: pelanggan dipanggil sinkron sesuai urutan daftar, hanya untuk
// topiknya sendiri.
func TestBus(t *testing.T) {
	bus := events.NewBus()
	var order []string
	bus.Subscribe(events.TopicCatalog, func(events.Topic) { order = append(order, "pertama") })
	bus.Subscribe(events.TopicCatalog, func(events.Topic) { order = append(order, "kedua") })
	bus.Subscribe(events.TopicLedger, func(events.Topic) { order = append(order, "ledger") })

	bus.Publish(events.TopicCatalog)
	assert.Equal(t, []string{"pertama", "kedua"}, order)

	bus.Publish(events.TopicCart) // tanpa pelanggan: no-op
	assert.Len(t, order, 2)
}
