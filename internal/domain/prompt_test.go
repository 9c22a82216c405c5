package domain_test

import (
	"strings"
	"testing"

	"github.com/trungthanhnguyenn/tarot-reader-go/internal/domain"
)

func promptCards() []domain.DrawnCard {
	return []domain.DrawnCard{
		{Name: "The Fool", IsReversed: false, Keywords: []string{"khởi đầu mới", "tự do"}},
		{Name: "The Tower", IsReversed: true, Keywords: []string{"biến cố", "thức tỉnh"}},
		{Name: "The Star", IsReversed: false, Keywords: []string{"hy vọng", "chữa lành"}},
	}
}

func TestBuildReadingPrompt_ContainsIdentity(t *testing.T) {
	prompt := domain.BuildReadingPrompt("Lan", "1995-06-01", promptCards())

	if !strings.Contains(prompt, "Lan") {
		t.Error("prompt missing the querent's name")
	}
	if !strings.Contains(prompt, "1995-06-01") {
		t.Error("prompt missing the querent's date of birth")
	}
}

func TestBuildReadingPrompt_CardsInOrder(t *testing.T) {
	prompt := domain.BuildReadingPrompt("Lan", "1995-06-01", promptCards())

	fool := strings.Index(prompt, "The Fool")
	tower := strings.Index(prompt, "The Tower")
	star := strings.Index(prompt, "The Star")
	if fool == -1 || tower == -1 || star == -1 {
		t.Fatalf("prompt missing card names (fool=%d tower=%d star=%d)", fool, tower, star)
	}
	if !(fool < tower && tower < star) {
		t.Errorf("cards out of order: fool=%d tower=%d star=%d", fool, tower, star)
	}
}

func TestBuildReadingPrompt_PositionsAndOrientations(t *testing.T) {
	prompt := domain.BuildReadingPrompt("Lan", "1995-06-01", promptCards())

	for _, want := range []string{
		"Lá 1 (quá khứ): **The Fool** thuận",
		"Lá 2 (hiện tại): **The Tower** ngược",
		"Lá 3 (tương lai): **The Star** thuận",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildReadingPrompt_Keywords(t *testing.T) {
	prompt := domain.BuildReadingPrompt("Lan", "1995-06-01", promptCards())

	if !strings.Contains(prompt, "Từ khóa: khởi đầu mới, tự do") {
		t.Error("prompt missing joined keywords for the first card")
	}
}
