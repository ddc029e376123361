// Package wordpool holds the read-only list of candidate words and draws
// random rounds from it.
package wordpool

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/ds124wfegd/word-blender/internal/entity"
)

type Pool struct {
	words []string

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Pool)

// WithRand replaces the random source, mainly so tests can use a fixed seed.
func WithRand(r *rand.Rand) Option {
	return func(p *Pool) {
		if r != nil {
			p.rnd = r
		}
	}
}

// New normalizes words (trim, lowercase), drops empty entries and duplicates
// while keeping first-seen order.
func New(words []string, opts ...Option) (*Pool, error) {
	seen := make(map[string]struct{}, len(words))
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		normalized = append(normalized, w)
	}
	if len(normalized) == 0 {
		return nil, entity.ErrEmptyPool
	}

	p := &Pool{
		words: normalized,
		rnd:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Pool) Len() int {
	return len(p.words)
}

// Words returns a copy of the pool in its original order.
func (p *Pool) Words() []string {
	out := make([]string, len(p.words))
	copy(out, p.words)
	return out
}

// Sample returns n distinct words chosen uniformly at random without replacement.
func (p *Pool) Sample(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative sample size %d", entity.ErrInvalidRequest, n)
	}
	if n > len(p.words) {
		return nil, fmt.Errorf("%w: want %d, have %d", entity.ErrPoolTooSmall, n, len(p.words))
	}

	idx := make([]int, len(p.words))
	for i := range idx {
		idx[i] = i
	}

	// partial Fisher-Yates: only the first n slots are shuffled
	p.mu.Lock()
	for i := 0; i < n; i++ {
		j := i + p.rnd.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	p.mu.Unlock()

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = p.words[idx[i]]
	}
	return out, nil
}
