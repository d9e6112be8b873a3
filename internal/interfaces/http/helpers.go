package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aisyarahmani/toko-pos/internal/application/dto"
	"github.com/aisyarahmani/toko-pos/internal/domain"
)

// writeError memetakan error domain ke status HTTP plus pesan untuk operator.
// Pesan ditampilkan apa adanya oleh UI; tidak ada yang dicatat atau diulang.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateCode):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "KODE_DUPLIKAT", Message: "Kode barang sudah ada!"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BARANG_TIDAK_DITEMUKAN", Message: "Barang tidak ditemukan!"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TIDAK_DITEMUKAN", Message: "Data tidak ditemukan"})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "KERANJANG_KOSONG", Message: "Keranjang kosong!"})
	case errors.Is(err, domain.ErrMissingBuyer):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PEMBELI_KOSONG", Message: "Nama pembeli wajib diisi untuk hutang"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Masukan tidak valid"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
