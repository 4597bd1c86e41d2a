package corpus

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typebench/internal/model"
)

type stubQuotes struct {
	quote model.Quote
	err   error
}

func (s *stubQuotes) RandomQuote(_ context.Context) (model.Quote, error) {
	return s.quote, s.err
}

func testProvider(words []string, quotes QuoteSource) *Provider {
	return newProvider(words, quotes, rand.New(rand.NewSource(1)))
}

func TestTextForWordsMode(t *testing.T) {
	p := testProvider([]string{"cat", "dog", "fish"}, nil)
	text, err := p.TextFor(context.Background(), model.Config{
		Mode:       model.ModeWords,
		WordCount:  5,
		Difficulty: model.DifficultyHard,
	})
	if err != nil {
		t.Fatalf("text for words mode: %v", err)
	}
	words := strings.Split(text, " ")
	if len(words) != 5 {
		t.Fatalf("expected 5 words, got %d: %q", len(words), text)
	}
	for _, w := range words {
		if w != "cat" && w != "dog" && w != "fish" {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestTextForTimeModeFillsBuffer(t *testing.T) {
	p := testProvider([]string{"cat", "dog"}, nil)
	text, err := p.TextFor(context.Background(), model.Config{
		Mode:       model.ModeTime,
		TimeLimit:  30 * time.Second,
		Difficulty: model.DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("text for time mode: %v", err)
	}
	if got := len(strings.Split(text, " ")); got != timeModeWordCount {
		t.Fatalf("expected %d words, got %d", timeModeWordCount, got)
	}
}

func TestDifficultyFiltersWordLength(t *testing.T) {
	words := []string{"cat", "medium", "complicated"}
	easy, _ := testProvider(words, nil).selectWords(20, model.DifficultyEasy)
	for _, w := range easy {
		if w != "cat" {
			t.Fatalf("easy selection included %q", w)
		}
	}
	medium, _ := testProvider(words, nil).selectWords(50, model.DifficultyMedium)
	for _, w := range medium {
		if w == "complicated" {
			t.Fatalf("medium selection included %q", w)
		}
	}
	hard, _ := testProvider(words, nil).selectWords(200, model.DifficultyHard)
	long := false
	for _, w := range hard {
		if w == "complicated" {
			long = true
		}
	}
	if !long {
		t.Fatalf("hard selection never drew the long word")
	}
}

func TestDifficultyFallbackToFullList(t *testing.T) {
	p := testProvider([]string{"complicated", "extraordinary"}, nil)
	words, err := p.selectWords(3, model.DifficultyEasy)
	if err != nil {
		t.Fatalf("select words: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("expected fallback selection of 3 words, got %d", len(words))
	}
}

func TestEmptyWordList(t *testing.T) {
	p := testProvider(nil, nil)
	if _, err := p.TextFor(context.Background(), model.Config{Mode: model.ModeWords, WordCount: 5}); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestQuoteMode(t *testing.T) {
	p := testProvider(nil, &stubQuotes{quote: model.Quote{Text: "so it goes", Source: "Vonnegut"}})
	text, err := p.TextFor(context.Background(), model.Config{Mode: model.ModeQuote})
	if err != nil {
		t.Fatalf("text for quote mode: %v", err)
	}
	if text != "so it goes" {
		t.Fatalf("unexpected quote text %q", text)
	}

	empty := testProvider(nil, &stubQuotes{err: ErrEmptyCorpus})
	if _, err := empty.TextFor(context.Background(), model.Config{Mode: model.ModeQuote}); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestDefaultWordsNotEmpty(t *testing.T) {
	words := DefaultWords()
	if len(words) == 0 {
		t.Fatalf("expected embedded word list to be non-empty")
	}
	short := false
	for _, w := range words {
		if len(w) <= 5 {
			short = true
			break
		}
	}
	if !short {
		t.Fatalf("expected embedded list to contain easy words")
	}
}
