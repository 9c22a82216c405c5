package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trungthanhnguyenn/tarot-reader-go/internal/adapters/decks"
	httpadapter "github.com/trungthanhnguyenn/tarot-reader-go/internal/adapters/http"
	"github.com/trungthanhnguyenn/tarot-reader-go/internal/adapters/llm/gemini"
	"github.com/trungthanhnguyenn/tarot-reader-go/internal/adapters/llm/openrouter"
	"github.com/trungthanhnguyenn/tarot-reader-go/internal/adapters/memstore"
	"github.com/trungthanhnguyenn/tarot-reader-go/internal/adapters/sqlite"
	"github.com/trungthanhnguyenn/tarot-reader-go/internal/app"
	"github.com/trungthanhnguyenn/tarot-reader-go/internal/config"
	"github.com/trungthanhnguyenn/tarot-reader-go/internal/domain"
	"github.com/trungthanhnguyenn/tarot-reader-go/internal/ports"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	deckStore := decks.NewEmbeddedStore()

	// Probe the deck up front: a missing or undersized deck is a
	// configuration error and must not serve traffic.
	deck, err := deckStore.GetDeck(ctx, "major_arcana")
	if err != nil {
		logger.Error("failed to load deck", "error", err)
		os.Exit(1)
	}
	if len(deck.Cards) < domain.SpreadSize {
		logger.Error("deck too small", "cards", len(deck.Cards), "error", domain.ErrDeckTooSmall)
		os.Exit(1)
	}

	var generator ports.Generator
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		generator, err = gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, logger)
	case config.ProviderOpenRouter:
		generator, err = openrouter.NewClient(
			&http.Client{Timeout: cfg.LLMTimeout},
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			cfg.LLMModel,
			cfg.LLMFallbackModels,
			logger,
		)
	}
	if err != nil {
		logger.Error("failed to build generator", "provider", cfg.LLMProvider, "error", err)
		os.Exit(1)
	}

	var store ports.ReadingStore
	if cfg.StoreDriver == config.StoreSQLite {
		sqlStore, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			logger.Error("failed to open sqlite store", "path", cfg.SQLitePath, "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		store = sqlStore
	} else {
		store = memstore.New()
	}

	svc := app.NewReadingService(deckStore, generator, store, stdRNG{}, time.Now, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "provider", cfg.LLMProvider, "store", cfg.StoreDriver)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
