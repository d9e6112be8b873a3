package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aisyarahmani/toko-pos/internal/domain/entity"
)

// PageHandler menyajikan kerangka halaman; isi tiap panel datang dari
// endpoint fragmen.
type PageHandler struct{}

// NewPageHandler membangun handler halaman.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index merender kerangka aplikasi dengan daftar kategori.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Categories": entity.Categories,
	})
}
