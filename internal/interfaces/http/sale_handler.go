package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aisyarahmani/toko-pos/internal/application/dto"
	"github.com/aisyarahmani/toko-pos/internal/application/sale"
	"github.com/aisyarahmani/toko-pos/internal/application/usecase"
	"github.com/aisyarahmani/toko-pos/internal/application/view"
	"github.com/aisyarahmani/toko-pos/internal/domain"
	"github.com/aisyarahmani/toko-pos/pkg/money"
)

// SaleHandler melayani halaman kasir: grid barang, keranjang, dan checkout.
type SaleHandler struct {
	catalog  *usecase.CatalogUseCase
	cart     *sale.Cart
	checkout *sale.CheckoutUseCase
}

// NewSaleHandler membangun handler kasir.
func NewSaleHandler(catalog *usecase.CatalogUseCase, cart *sale.Cart, checkout *sale.CheckoutUseCase) *SaleHandler {
	return &SaleHandler{catalog: catalog, cart: cart, checkout: checkout}
}

// ProductGrid merender fragmen grid barang, terfilter kategori dan pencarian.
func (h *SaleHandler) ProductGrid(c *fiber.Ctx) error {
	kategori := c.Query("kategori", "all")
	q := c.Query("q", "")
	cards := view.ProductCards(h.catalog.List(kategori, q))
	return c.Render("produk_grid", fiber.Map{"Cards": cards})
}

// CartPanel merender fragmen keranjang beserta totalnya.
func (h *SaleHandler) CartPanel(c *fiber.Ctx) error {
	return c.Render("keranjang", view.Cart(h.cart.Items(), h.cart.Total()))
}

// AddByID menambahkan satu barang ke keranjang (klik kartu di grid).
func (h *SaleHandler) AddByID(c *fiber.Ctx) error {
	p, err := h.catalog.Get(c.Params("id"))
	if err != nil {
		return writeError(c, domain.ErrProductNotFound)
	}
	h.cart.Add(*p)
	return c.JSON(dto.StatusResponse{Ok: true})
}

// AddByCode entri manual kasir: cari persis berdasarkan kode atau nama.
func (h *SaleHandler) AddByCode(c *fiber.Ctx) error {
	var in dto.AddByCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	p, err := h.catalog.FindByCodeOrName(in.Query)
	if err != nil {
		return writeError(c, err)
	}
	h.cart.Add(*p)
	return c.JSON(dto.StatusResponse{Ok: true})
}

// AdjustQty menambahkan delta ke jumlah satu baris; hasil <= 0 menghapus baris.
func (h *SaleHandler) AdjustQty(c *fiber.Ctx) error {
	var in dto.QtyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	h.cart.AdjustQty(c.Params("id"), in.Delta)
	return c.JSON(dto.StatusResponse{Ok: true})
}

// Clear mengosongkan keranjang. Konfirmasi sudah terjadi di browser.
func (h *SaleHandler) Clear(c *fiber.Ctx) error {
	h.cart.Clear()
	return c.JSON(dto.StatusResponse{Ok: true})
}

// Checkout menutup penjualan sebagai lunas atau hutang.
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	t, err := h.checkout.Checkout(in.Status, in.Pembeli)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CheckoutResponse{
		ID:         t.ID,
		Total:      t.Total,
		TotalLabel: money.FormatRupiah(t.Total),
		Status:     t.Status,
	})
}
