package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/pitlane-labs/gridstore/internal/modules/cart"
	"github.com/pitlane-labs/gridstore/internal/modules/catalog"
	"github.com/pitlane-labs/gridstore/internal/modules/checkout"
	"github.com/pitlane-labs/gridstore/internal/modules/dataset"
	"github.com/pitlane-labs/gridstore/internal/modules/i18n"
	"github.com/pitlane-labs/gridstore/internal/modules/vendor"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// ── Static data ─────────────────────────────────────────
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	ds := dataset.Load(dataDir, logger)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog, vendors & translations ─────────────────────
	catalogService := catalog.NewService(ds.Products)
	vendorService := vendor.NewService(ds.Vendors)
	catalog.NewHandler(catalogService, vendor.NewCatalogResolver(vendorService)).RegisterRoutes(router)
	vendor.NewHandler(vendorService).RegisterRoutes(router)
	i18n.NewHandler(ds.Translations).RegisterRoutes(router)

	// ── Cart ────────────────────────────────────────────────
	cartRepo := newCartRepository(logger)
	cartService := cart.NewService(context.Background(), cartRepo, catalogService, logger)
	cart.NewHandler(cartService).RegisterRoutes(router)

	// ── Checkout ────────────────────────────────────────────
	checkoutService := checkout.NewService(cartService, checkout.SimulatedGateways(), logger)
	checkout.NewHandler(checkoutService).RegisterRoutes(router)

	// ── Start server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("gridstore API listening", zap.String("port", port))
	log.Fatal(http.ListenAndServe(":"+port, router))
}

// newCartRepository picks the snapshot store: postgres when DATABASE_URL is
// set, otherwise a JSON file.
func newCartRepository(logger *zap.Logger) cart.Repository {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			logger.Fatal("open database", zap.Error(err))
		}
		if err := db.Ping(); err != nil {
			logger.Fatal("ping database", zap.Error(err))
		}
		logger.Info("cart snapshots stored in postgres")
		return cart.NewPostgresRepository(db)
	}

	path := os.Getenv("CART_FILE")
	if path == "" {
		path = "cart.json"
	}
	logger.Info("cart snapshots stored on disk", zap.String("path", path))
	return cart.NewFileRepository(path)
}
