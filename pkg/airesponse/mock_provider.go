package airesponse

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

var cannedResponses = []string{
	"I'm processing your request on the edge device. The model is analyzing your input...",
	"Based on the data processed locally, here's what I found...",
	"Running inference on the edge hardware. This keeps your data private and secure.",
	"The edge AI model has completed processing. Here are the results...",
	"Processing complete. The advantage of edge computing is the low latency you're experiencing.",
}

const mockSystemPrompt = "You are a helpful AI assistant running on an edge device. " +
	"Provide concise and accurate responses while highlighting the benefits of edge computing."

// MockProvider simulates on-device inference: a bounded random processing
// delay, a uniformly chosen canned sentence, and a synthetic diagnostics
// payload on demand.
type MockProvider struct {
	minDelay time.Duration
	maxDelay time.Duration
}

func NewMockProvider() *MockProvider {
	return NewMockProviderWithDelay(500*time.Millisecond, 2*time.Second)
}

func NewMockProviderWithDelay(min, max time.Duration) *MockProvider {
	return &MockProvider{
		minDelay: min,
		maxDelay: max,
	}
}

func (p *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	delay := p.minDelay
	if p.maxDelay > p.minDelay {
		delay += time.Duration(rand.Int63n(int64(p.maxDelay - p.minDelay)))
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	content := cannedResponses[rand.Intn(len(cannedResponses))]
	if req.ImageCount > 0 {
		content += fmt.Sprintf(" I can see you've shared %d image(s) with me.", req.ImageCount)
	}

	res := &Response{Content: content}
	if req.Debug {
		res.Debug = p.debugPayload(req)
	}
	return res, nil
}

// debugPayload fabricates plausible model and device telemetry.
func (p *MockProvider) debugPayload(req Request) map[string]interface{} {
	return map[string]interface{}{
		"systemPrompt": mockSystemPrompt,
		"modelInputs": map[string]interface{}{
			"temperature":   0.7,
			"max_tokens":    150,
			"prompt_tokens": len(req.Message),
			"image_count":   req.ImageCount,
		},
		"modelOutputs": map[string]interface{}{
			"tokens_generated": 20 + rand.Intn(81),
			"confidence":       0.85 + rand.Float64()*0.15,
		},
		"processingTime": 200 + rand.Intn(601),
		"device": map[string]interface{}{
			"gpu_usage":    rand.Intn(81),
			"memory_usage": 30 + rand.Intn(41),
			"temperature":  35 + rand.Intn(21),
		},
	}
}
