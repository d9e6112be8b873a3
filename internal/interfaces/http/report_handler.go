package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/aisyarahmani/toko-pos/internal/application/dto"
	"github.com/aisyarahmani/toko-pos/internal/application/report"
	"github.com/aisyarahmani/toko-pos/internal/application/view"
)

// ReportHandler melayani halaman laporan: filter periode, dua tabel status,
// dan aksi pelunasan hutang.
type ReportHandler struct {
	report *report.ReportUseCase
}

// NewReportHandler membangun handler laporan.
func NewReportHandler(r *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{report: r}
}

// Tables merender fragmen laporan: tabel lunas, tabel hutang, dan pendapatan.
func (h *ReportHandler) Tables(c *fiber.Ctx) error {
	periode := c.Query("periode", report.PeriodAll)
	return c.Render("laporan", view.Report(h.report.Summarize(periode)))
}

// PeriodOptions merender pilihan periode, terbaru lebih dulu.
func (h *ReportHandler) PeriodOptions(c *fiber.Ctx) error {
	selected := c.Query("dipilih", "")
	return c.Render("periode", fiber.Map{"Options": view.PeriodOptions(h.report.Periods(), selected)})
}

// MarkPaid melunasi satu transaksi hutang. Konfirmasi terjadi di browser;
// ID yang tidak ada tetap dijawab sukses (no-op).
func (h *ReportHandler) MarkPaid(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id transaksi tidak valid"})
	}
	if err := h.report.MarkPaid(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StatusResponse{Ok: true})
}
