package service

import (
	"context"
	"sync"

	"housing-empire-ai/pkg/events"
	"housing-empire-ai/pkg/llm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, evt events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

type fakeProvider struct {
	mu       sync.Mutex
	reply    string
	err      error
	calls    int
	messages [][]llm.Message
	options  []llm.Options

	// when set, Chat blocks until the channel is closed
	gate chan struct{}
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.messages = append(f.messages, history)
	f.options = append(f.options, llm.Apply(llm.Options{}, opts...))
	return f.reply, f.err
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
