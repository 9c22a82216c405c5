package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/trungthanhnguyenn/tarot-reader-go/internal/domain"
	"github.com/trungthanhnguyenn/tarot-reader-go/internal/ports"
)

const defaultDeckID = "major_arcana"

// ReadingRequest is the application-level input (no HTTP types). Both
// fields arrive pre-validated from the transport layer.
type ReadingRequest struct {
	Name string
	DOB  string
}

// ReadingResponse is the application-level output.
type ReadingResponse struct {
	Cards     []domain.DrawnCard
	Narrative string
	Source    domain.Source
}

// ReadingService orchestrates the cache-or-generate flow: derive the daily
// key, serve from the store on a hit, otherwise draw cards, invoke the
// generator and persist the result.
type ReadingService struct {
	deckStore ports.DeckStore
	generator ports.Generator
	store     ports.ReadingStore
	rng       domain.RNG
	now       func() time.Time
	logger    *slog.Logger
}

func NewReadingService(ds ports.DeckStore, gen ports.Generator, store ports.ReadingStore, rng domain.RNG, now func() time.Time, logger *slog.Logger) *ReadingService {
	return &ReadingService{
		deckStore: ds,
		generator: gen,
		store:     store,
		rng:       rng,
		now:       now,
		logger:    logger,
	}
}

func (s *ReadingService) GetReading(ctx context.Context, req ReadingRequest) (ReadingResponse, error) {
	// Computed once so a request straddling midnight stays on one key.
	today := s.now().Format(domain.DayFormat)
	key := domain.DailyCacheKey(req.Name, req.DOB, today)

	rec, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		var cards []domain.DrawnCard
		jsonErr := json.Unmarshal([]byte(rec.Cards), &cards)
		if jsonErr == nil {
			return ReadingResponse{Cards: cards, Narrative: rec.Reading, Source: domain.SourceCache}, nil
		}
		s.logger.WarnContext(ctx, "cached cards unreadable, regenerating", "key", key, "error", jsonErr)
	case errors.Is(err, domain.ErrReadingNotFound):
		// Cache miss.
	default:
		// A failing store read is a cache miss: fail open to generation.
		s.logger.WarnContext(ctx, "reading store get failed", "key", key, "error", err)
	}

	deck, err := s.deckStore.GetDeck(ctx, defaultDeckID)
	if err != nil {
		return ReadingResponse{}, fmt.Errorf("get deck: %w", err)
	}

	cards, err := domain.DrawCards(deck, s.rng)
	if err != nil {
		return ReadingResponse{}, fmt.Errorf("draw cards: %w", err)
	}

	prompt := domain.BuildReadingPrompt(req.Name, req.DOB, cards)

	start := s.now()
	narrative, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return ReadingResponse{}, fmt.Errorf("generate reading: %w", err)
	}
	s.logger.InfoContext(ctx, "reading generated",
		"key", key,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	serialized, err := json.Marshal(cards)
	if err != nil {
		return ReadingResponse{}, fmt.Errorf("serialize cards: %w", err)
	}

	newRec := domain.ReadingRecord{
		ID:      key,
		Name:    req.Name,
		DOB:     req.DOB,
		Day:     today,
		Cards:   string(serialized),
		Reading: narrative,
	}
	if err := s.store.Put(ctx, newRec); err != nil {
		// Best-effort cache: the reading is already computed, return it.
		s.logger.WarnContext(ctx, "reading store put failed", "key", key, "error", err)
	}

	return ReadingResponse{Cards: cards, Narrative: narrative, Source: domain.SourceGenerated}, nil
}
