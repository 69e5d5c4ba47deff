package utils

import (
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

type URIStrategy string

const (
	// <prefix>/doc_<n>_<uuid8>.json
	StrategyCounter URIStrategy = "counter"
	// <prefix>/<first collection>/doc_<n>_<uuid8>.json
	StrategyCollection URIStrategy = "collection"
)

// URIGenerator hands out document URIs. The counter is process-wide and only grows; the
// uuid fragment keeps URIs from different processes apart.
type URIGenerator struct {
	strategy URIStrategy
	prefix   string
	counter  atomic.Uint64
}

func NewURIGenerator(strategy URIStrategy, prefix string) *URIGenerator {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		prefix = "/documents"
	}
	return &URIGenerator{strategy: strategy, prefix: prefix}
}

func (g *URIGenerator) Generate(collections []string) string {
	n := g.counter.Add(1)
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	name := fmt.Sprintf("doc_%d_%s.json", n, suffix)

	if g.strategy == StrategyCollection && len(collections) > 0 {
		if scope := sanitizeSegment(collections[0]); scope != "" {
			return fmt.Sprintf("%s/%s/%s", g.prefix, scope, name)
		}
	}
	return fmt.Sprintf("%s/%s", g.prefix, name)
}

// Issued returns how many URIs have been generated.
func (g *URIGenerator) Issued() uint64 {
	return g.counter.Load()
}

var unsafeSegment = regexp.MustCompile(`[^\p{L}\p{N}_\-.]+`)

func sanitizeSegment(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	s = unsafeSegment.ReplaceAllString(s, "_")
	return strings.Trim(s, "_-.")
}
