//go:build unit || integration || e2e

package fakes

import (
	"context"
	"sync"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/usecase/shared"
)

// DefaultTemplates serves fixed default template bodies and counts lookups.
type DefaultTemplates struct {
	mu    sync.Mutex
	Calls map[artifact.Kind]int
}

func NewDefaultTemplates() *DefaultTemplates {
	return &DefaultTemplates{Calls: map[artifact.Kind]int{}}
}

func (t *DefaultTemplates) Content(_ context.Context, kind artifact.Kind) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Calls[kind]++
	return "<p>default " + string(kind) + " template</p>", nil
}

func (t *DefaultTemplates) CallsFor(kind artifact.Kind) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.Calls[kind]
}

// Publisher records promotion events.
type Publisher struct {
	mu     sync.Mutex
	Events []shared.PromotedEvent
	Err    error
}

func (p *Publisher) PublishPromoted(_ context.Context, evt shared.PromotedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, evt)
	return nil
}

func (p *Publisher) Published() []shared.PromotedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.PromotedEvent, len(p.Events))
	copy(out, p.Events)
	return out
}
