package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Card represents a single tarot card in a deck.
type Card struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Vietnamese string   `json:"vietnamese"`
	Keywords   []string `json:"keywords"`
	Upright    string   `json:"upright"`
	Reversed   string   `json:"reversed"`
	Image      string   `json:"image"`
}

// DrawnCard is a card that has been drawn into a spread with its orientation
// fixed. Both meaning texts travel with the card so the client can flip it
// without another round trip.
type DrawnCard struct {
	Name       string   `json:"name"`
	ImageURL   string   `json:"imageUrl"`
	IsReversed bool     `json:"isReversed"`
	Keywords   []string `json:"keywords"`
	Upright    string   `json:"upright,omitempty"`
	Reversed   string   `json:"reversed,omitempty"`
	Vietnamese string   `json:"vietnamese,omitempty"`
}

// Deck is a collection of tarot cards.
type Deck struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// ReadingRecord is the persisted form of one reading: one row per
// (identity, day) cache key. Records are created once and never updated.
type ReadingRecord struct {
	ID      string // cache key
	Name    string
	DOB     string
	Day     string // calendar day the reading was generated for
	Cards   string // JSON-encoded []DrawnCard
	Reading string
}

// Source tags where a reading came from.
type Source string

const (
	SourceCache     Source = "cache"
	SourceGenerated Source = "generated"
)

// DayFormat is the calendar-day layout used in cache keys and records.
const DayFormat = "2006-01-02"
