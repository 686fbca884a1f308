package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodhub/internal/assistant"
	"foodhub/internal/cart"
	"foodhub/internal/catalog"
	"foodhub/internal/chat"
	"foodhub/internal/config"
	"foodhub/internal/httpserver"
	"foodhub/internal/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cat := catalog.New(cfg.DeliveryFeeCents)
	if cfg.CatalogFile != "" {
		loaded, err := catalog.FromFile(cfg.CatalogFile, cfg.DeliveryFeeCents)
		if err != nil {
			logger.Fatalf("load catalog: %v", err)
		}
		cat = loaded
		logger.Printf("catalog loaded from %s", cfg.CatalogFile)
	}

	cartStore := cart.NewStore(nil)
	aggregator := order.NewAggregator(cat, nil, nil)
	gemini := assistant.NewClient(cfg.GeminiEndpoint, cfg.GeminiModel, cfg.GeminiTimeout)
	session := chat.NewSession(gemini, cfg.ChatGreeting, nil, nil)

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Cart:    cartStore,
		Orders:  aggregator,
		Chat:    session,
		Catalog: cat,
	}, cfg.CORSOrigins)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
