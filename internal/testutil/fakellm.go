package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/fitplan/internal/llm"
)

// FakeLLM is a scripted llm.LLMClient. It returns Text, or Err when set,
// and records every request it receives.
type FakeLLM struct {
	Text  string
	Model string
	Err   error

	mu       sync.Mutex
	requests []llm.GenerateRequest
}

func (f *FakeLLM) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, llm.ErrTimeout
	}
	model := f.Model
	if model == "" {
		model = "fake-model"
	}
	return &llm.GenerateResponse{Text: f.Text, Model: model}, nil
}

func (f *FakeLLM) Available(context.Context) bool { return f.Err == nil }

// Requests returns a copy of the recorded requests.
func (f *FakeLLM) Requests() []llm.GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]llm.GenerateRequest(nil), f.requests...)
}
