package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/aisyarahmani/toko-pos/internal/application/report"
	"github.com/aisyarahmani/toko-pos/internal/application/sale"
	"github.com/aisyarahmani/toko-pos/internal/application/usecase"
)

// RouterDeps dependensi untuk router.
type RouterDeps struct {
	Catalog  *usecase.CatalogUseCase
	Cart     *sale.Cart
	Checkout *sale.CheckoutUseCase
	Report   *report.ReportUseCase
}

// Router mendaftarkan seluruh rute aplikasi.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use("/static", filesystem.New(filesystem.Config{Root: StaticFS()}))

	// Satu penulis logis: seluruh operasi diserialisasi di belakang satu kunci
	// sesi. Skala target satu kasir di satu perangkat; tidak perlu lebih.
	var mu sync.Mutex
	app.Use(func(c *fiber.Ctx) error {
		mu.Lock()
		defer mu.Unlock()
		return c.Next()
	})

	pages := NewPageHandler()
	app.Get("/", pages.Index)

	kasir := NewSaleHandler(deps.Catalog, deps.Cart, deps.Checkout)
	app.Get("/fragmen/produk", kasir.ProductGrid)
	app.Get("/fragmen/keranjang", kasir.CartPanel)
	keranjang := app.Group("/api/keranjang")
	keranjang.Post("/produk/:id", kasir.AddByID)
	keranjang.Post("/kode", kasir.AddByCode)
	keranjang.Post("/:id/qty", kasir.AdjustQty)
	keranjang.Delete("/", kasir.Clear)
	app.Post("/api/checkout", kasir.Checkout)

	inventaris := NewCatalogHandler(deps.Catalog)
	app.Get("/fragmen/inventaris", inventaris.Table)
	produk := app.Group("/api/produk")
	produk.Get("/kode-berikutnya", inventaris.NextCode)
	produk.Post("/", inventaris.Create)
	produk.Put("/:id", inventaris.Update)
	produk.Delete("/:id", inventaris.Delete)

	laporan := NewReportHandler(deps.Report)
	app.Get("/fragmen/laporan", laporan.Tables)
	app.Get("/fragmen/periode", laporan.PeriodOptions)
	app.Post("/api/transaksi/:id/lunas", laporan.MarkPaid)
}
