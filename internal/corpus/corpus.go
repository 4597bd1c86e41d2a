// Package corpus supplies target text for benchmark sessions: randomly
// selected words filtered by difficulty, or a quote from the quote store.
package corpus

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/typebench/internal/model"
)

// ErrEmptyCorpus reports that no eligible text exists for the request.
var ErrEmptyCorpus = errors.New("corpus has no eligible text")

// Time mode fills a generous buffer; the clock ends the session long before
// a typist exhausts it.
const timeModeWordCount = 300

// QuoteSource provides quotes for ModeQuote sessions.
type QuoteSource interface {
	RandomQuote(ctx context.Context) (model.Quote, error)
}

// Provider selects target text for a session config.
type Provider struct {
	words  []string
	quotes QuoteSource
	rnd    *rand.Rand
}

// NewProvider builds a provider over a word list and a quote source, seeded
// with the current time.
func NewProvider(words []string, quotes QuoteSource) *Provider {
	return newProvider(words, quotes, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newProvider(words []string, quotes QuoteSource, rnd *rand.Rand) *Provider {
	return &Provider{words: words, quotes: quotes, rnd: rnd}
}

// TextFor returns the target text for one session. Words and Time modes join
// randomly drawn words with single spaces; Quote mode picks a stored quote.
func (p *Provider) TextFor(ctx context.Context, cfg model.Config) (string, error) {
	if cfg.Mode == model.ModeQuote {
		if p.quotes == nil {
			return "", ErrEmptyCorpus
		}
		quote, err := p.quotes.RandomQuote(ctx)
		if err != nil {
			return "", err
		}
		return quote.Text, nil
	}
	count := cfg.WordCount
	if cfg.Mode == model.ModeTime {
		count = timeModeWordCount
	}
	words, err := p.selectWords(count, cfg.Difficulty)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// selectWords draws count words with replacement from the difficulty-filtered
// pool. A filter that leaves nothing falls back to the full list.
func (p *Provider) selectWords(count int, difficulty model.Difficulty) ([]string, error) {
	if len(p.words) == 0 {
		return nil, ErrEmptyCorpus
	}
	pool := filterWords(p.words, difficulty)
	if len(pool) == 0 {
		pool = p.words
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, pool[p.rnd.Intn(len(pool))])
	}
	return out, nil
}

// maxWordLength returns the rune-length bound for a difficulty, zero meaning
// unbounded.
func maxWordLength(difficulty model.Difficulty) int {
	switch difficulty {
	case model.DifficultyEasy:
		return 5
	case model.DifficultyMedium:
		return 8
	default:
		return 0
	}
}

func filterWords(words []string, difficulty model.Difficulty) []string {
	limit := maxWordLength(difficulty)
	if limit == 0 {
		return words
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) <= limit {
			out = append(out, w)
		}
	}
	return out
}
