package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aisyarahmani/toko-pos/internal/application/events"
	"github.com/aisyarahmani/toko-pos/internal/application/ledger"
	"github.com/aisyarahmani/toko-pos/internal/application/report"
	"github.com/aisyarahmani/toko-pos/internal/application/sale"
	"github.com/aisyarahmani/toko-pos/internal/application/usecase"
	"github.com/aisyarahmani/toko-pos/internal/infrastructure/boltstore"
	httpRouter "github.com/aisyarahmani/toko-pos/internal/interfaces/http"
	"github.com/aisyarahmani/toko-pos/pkg/config"
	"github.com/aisyarahmani/toko-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("muat konfigurasi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("memulai aplikasi")

	store, err := boltstore.Open(cfg.Store.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("buka penyimpanan lokal")
	}
	defer store.Close()

	bus := events.NewBus()
	for _, topic := range []events.Topic{events.TopicCatalog, events.TopicLedger, events.TopicCart} {
		bus.Subscribe(topic, func(t events.Topic) {
			log.Debug().Str("topik", string(t)).Msg("state berubah")
		})
	}

	catalogUC, err := usecase.NewCatalogUseCase(boltstore.NewCatalogRepository(store), bus)
	if err != nil {
		log.Fatal().Err(err).Msg("muat katalog")
	}
	book, err := ledger.New(boltstore.NewLedgerRepository(store), bus)
	if err != nil {
		log.Fatal().Err(err).Msg("muat buku transaksi")
	}

	// Keranjang milik sesi penjualan aktif; restart proses mengosongkannya.
	cart := sale.NewCart(bus)
	checkoutUC := sale.NewCheckoutUseCase(cart, book)
	reportUC := report.NewReportUseCase(book)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        httpRouter.Engine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:  catalogUC,
		Cart:     cart,
		Checkout: checkoutUC,
		Report:   reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP berhenti")
		}
	}()
	log.Info().Str("alamat", cfg.HTTP.Addr()).Msg("kasir siap dibuka di browser")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinyal berhenti diterima, menutup server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("penutupan server")
	}

	log.Info().Msg("aplikasi berhenti")
}
