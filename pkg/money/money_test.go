package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aisyarahmani/toko-pos/pkg/money"
)

// Kasus: pengelompokan digit mengikuti locale id-ID (titik sebagai pemisah
// ribuan).
func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", money.FormatRupiah(0))
	assert.Equal(t, "Rp 500", money.FormatRupiah(500))
	assert.Equal(t, "Rp 12.000", money.FormatRupiah(12000))
	assert.Equal(t, "Rp 1.250.000", money.FormatRupiah(1250000))
}

func TestFormatAngka(t *testing.T) {
	assert.Equal(t, "12.000", money.FormatAngka(12000))
}
