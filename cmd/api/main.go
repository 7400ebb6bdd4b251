package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront-core/internal/core/config"
	"storefront-core/internal/core/logger"
	"storefront-core/internal/core/server"
	"storefront-core/internal/core/store"
	cartadapter "storefront-core/internal/features/cart/adapters"
	cartdomain "storefront-core/internal/features/cart/domain"
	carthandler "storefront-core/internal/features/cart/handler"
	cartservice "storefront-core/internal/features/cart/service"
	catalogadapter "storefront-core/internal/features/catalog/adapters"
	cataloghandler "storefront-core/internal/features/catalog/handler"
	"storefront-core/internal/features/catalog/ports"
	catalogservice "storefront-core/internal/features/catalog/service"
	contactadapter "storefront-core/internal/features/contact/adapters"
	contacthandler "storefront-core/internal/features/contact/handler"
	contactservice "storefront-core/internal/features/contact/service"
	couponhandler "storefront-core/internal/features/coupons/handler"
	couponservice "storefront-core/internal/features/coupons/service"
	handoffadapter "storefront-core/internal/features/handoff/adapters"
	handoffservice "storefront-core/internal/features/handoff/service"
	orderadapter "storefront-core/internal/features/orders/adapters"
	orderhandler "storefront-core/internal/features/orders/handler"
	orderservice "storefront-core/internal/features/orders/service"
	returnhandler "storefront-core/internal/features/returns/handler"
	returnservice "storefront-core/internal/features/returns/service"
	wishlistadapter "storefront-core/internal/features/wishlist/adapters"
	wishlisthandler "storefront-core/internal/features/wishlist/handler"
	wishlistservice "storefront-core/internal/features/wishlist/service"
)

// @title Storefront Core API
// @version 1.0
// @description Cart, wishlist, coupon, order and hand-off APIs for the AN Enterprises storefront.
// @contact.name API Support
// @contact.email support@anenterprises.in
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the persistent store and verify connectivity.
	redisStore, err := store.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer redisStore.Close()

	if err := redisStore.Ping(context.Background()); err != nil {
		l.Fatal("Store health check failed", zap.Error(err))
	}
	l.Info("Store connection verified")

	// Initialize the catalog: a remote feed when configured, the built-in
	// product set otherwise.
	var catalogProvider ports.CatalogProvider
	if cfg.CatalogURL != "" {
		remote := catalogadapter.NewRemoteCatalogAdapter(cfg.CatalogURL)
		if err := remote.HealthCheck(); err != nil {
			l.Fatal("Catalog feed health check failed", zap.Error(err))
		}
		l.Info("Catalog feed verified", zap.String("url", cfg.CatalogURL))
		catalogProvider = remote
	} else {
		catalogProvider = catalogadapter.NewStaticCatalogAdapter(nil)
	}

	catalogSvc := catalogservice.NewCatalogService(catalogProvider)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogSvc)

	// Two cart namespaces: the storefront cart and the legacy home flow
	// cart. They share a repository but never a key.
	rates := cartdomain.ShippingRates{
		FreeAbove: decimal.NewFromInt(int64(cfg.Shipping.FreeAbove)),
		FlatRate:  decimal.NewFromInt(int64(cfg.Shipping.FlatRate)),
	}
	cartRepo := cartadapter.NewStoreCartRepository(redisStore)
	cartSvc := cartservice.NewCartService(cartRepo, cartdomain.NamespaceDefault, rates)
	legacyCartSvc := cartservice.NewCartService(cartRepo, cartdomain.NamespaceLegacy, rates)
	cartHdl := carthandler.NewCartHandler(cartSvc, catalogSvc)
	legacyCartHdl := carthandler.NewCartHandler(legacyCartSvc, catalogSvc)

	wishlistSvc := wishlistservice.NewWishlistService(wishlistadapter.NewStoreWishlistRepository(redisStore))
	wishlistHdl := wishlisthandler.NewWishlistHandler(wishlistSvc, catalogSvc)

	couponSvc := couponservice.NewCouponService(nil)
	couponHdl := couponhandler.NewCouponHandler(couponSvc, cartSvc)

	// The hand-off opener drives a headless browser; orders, returns and
	// contact messages all leave through it.
	opener, err := handoffadapter.NewBrowserOpener()
	if err != nil {
		l.Fatal("Failed to start hand-off browser", zap.Error(err))
	}
	defer opener.Close()
	dispatchSvc := handoffservice.NewDispatchService(opener, cfg.Merchant, 0)

	orderSvc := orderservice.NewOrderService(
		orderadapter.NewStoreOrderRepository(redisStore),
		cartSvc,
		couponSvc,
		dispatchSvc,
		cfg.Merchant,
	)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	returnSvc := returnservice.NewReturnService(orderSvc, dispatchSvc, cfg.Merchant)
	returnHdl := returnhandler.NewReturnHandler(returnSvc)

	contactSvc := contactservice.NewContactService(
		contactadapter.NewStoreMessageRepository(redisStore),
		opener,
		cfg.Merchant,
	)
	contactHdl := contacthandler.NewContactHandler(contactSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/products", catalogHdl.ListProducts)
	srv.App.Get("/products/:id", catalogHdl.GetProduct)

	srv.App.Get("/cart", cartHdl.GetCart)
	srv.App.Post("/cart/items", cartHdl.AddItem)
	srv.App.Put("/cart/items/:id", cartHdl.SetQuantity)
	srv.App.Delete("/cart/items/:id", cartHdl.RemoveItem)
	srv.App.Get("/cart/totals", cartHdl.GetTotals)

	srv.App.Get("/legacy/cart", legacyCartHdl.GetCart)
	srv.App.Post("/legacy/cart/items", legacyCartHdl.AddItem)
	srv.App.Put("/legacy/cart/items/:id", legacyCartHdl.SetQuantity)
	srv.App.Delete("/legacy/cart/items/:id", legacyCartHdl.RemoveItem)
	srv.App.Get("/legacy/cart/totals", legacyCartHdl.GetTotals)

	srv.App.Get("/wishlist", wishlistHdl.GetWishlist)
	srv.App.Post("/wishlist/toggle/:id", wishlistHdl.Toggle)

	srv.App.Post("/coupons/apply", couponHdl.Apply)

	srv.App.Post("/orders", orderHdl.PlaceOrder)
	srv.App.Get("/orders", orderHdl.ListOrders)
	srv.App.Get("/orders/:id", orderHdl.GetOrder)

	srv.App.Post("/returns", returnHdl.Submit)
	srv.App.Get("/returns/orders/:id", returnHdl.GetOrder)

	srv.App.Post("/contact", contactHdl.Send)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
