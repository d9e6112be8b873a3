package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aisyarahmani/toko-pos/internal/application/dto"
	"github.com/aisyarahmani/toko-pos/internal/application/usecase"
	"github.com/aisyarahmani/toko-pos/internal/application/view"
)

// CatalogHandler melayani halaman inventaris: tabel barang dan CRUD-nya.
type CatalogHandler struct {
	catalog *usecase.CatalogUseCase
}

// NewCatalogHandler membangun handler inventaris.
func NewCatalogHandler(catalog *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Table merender fragmen tabel inventaris.
func (h *CatalogHandler) Table(c *fiber.Ctx) error {
	return c.Render("inventaris", fiber.Map{"Rows": view.InventoryRows(h.catalog.Products())})
}

// NextCode saran kode untuk kategori terpilih di form tambah barang.
func (h *CatalogHandler) NextCode(c *fiber.Ctx) error {
	kategori := c.Query("kategori", "persabunan")
	return c.JSON(dto.NextCodeResponse{Code: h.catalog.NextCode(kategori)})
}

// Create menambah barang baru.
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	in, ok := parseProduct(c)
	if !ok {
		return nil // respons error sudah ditulis
	}
	p, err := h.catalog.Add(*in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(p))
}

// Update mengubah barang yang sudah ada; kode tetap dicek duplikat.
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	in, ok := parseProduct(c)
	if !ok {
		return nil
	}
	p, err := h.catalog.Update(c.Params("id"), *in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductResponse(p))
}

// Delete menghapus barang. ID yang tidak ada tetap dijawab sukses.
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.Remove(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StatusResponse{Ok: true})
}

// parseProduct membaca dan memvalidasi payload barang. Menulis respons error
// sendiri dan mengembalikan ok=false bila tidak valid.
func parseProduct(c *fiber.Ctx) (*dto.ProductRequest, bool) {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
		return nil, false
	}
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	if in.Code == "" || in.Name == "" || in.Category == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kode, nama, dan kategori wajib diisi"})
		return nil, false
	}
	if in.Price < 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "harga tidak boleh negatif"})
		return nil, false
	}
	return &in, true
}
