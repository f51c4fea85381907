package image

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

var DefaultQuotes = []string{"人生就像一杯茶\n不会苦一辈子\n但总会苦一阵子"}

type QuotePicker struct {
	quotes []string
	rnd    *rand.Rand
	mu     sync.Mutex
}

// NewQuotePicker falls back to DefaultQuotes for an empty pool and to a
// time seeded source when src is nil.
func NewQuotePicker(quotes []string, src rand.Source) *QuotePicker {
	if len(quotes) == 0 {
		quotes = DefaultQuotes
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &QuotePicker{
		quotes: append([]string(nil), quotes...),
		rnd:    rand.New(src),
	}
}

func (p *QuotePicker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quotes[p.rnd.Intn(len(p.quotes))]
}

func (p *QuotePicker) Resolve(text string) string {
	if strings.TrimSpace(text) == "" {
		return p.Pick()
	}
	return text
}
