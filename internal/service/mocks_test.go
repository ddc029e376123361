package service

import (
	"context"
	"sync"

	"github.com/ds124wfegd/word-blender/internal/entity"
)

type fakeChat struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
	system   string
	user     string
}

func (f *fakeChat) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.system = systemPrompt
	f.user = userPrompt
	return f.response, f.err
}

type fakeGenerator struct {
	mu      sync.Mutex
	payload string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.payload, f.err
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.GameEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event entity.GameEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) recorded() []entity.GameEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entity.GameEvent, len(p.events))
	copy(out, p.events)
	return out
}

type fakeSampler struct {
	words []string
	err   error
	asked int
}

func (f *fakeSampler) Sample(n int) ([]string, error) {
	f.asked = n
	return f.words, f.err
}
