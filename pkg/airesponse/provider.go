package airesponse

import "context"

// Request carries everything the generator may react to. Images are passed
// as a count only; the mock never inspects pixel data.
type Request struct {
	Message    string
	ImageCount int
	Debug      bool
}

// Response is the generated assistant turn. Debug is nil unless the request
// asked for diagnostics.
type Response struct {
	Content string
	Debug   map[string]interface{}
}

// Provider defines the contract for any response backend. The wired
// implementation is the canned mock; a real inference engine can be swapped
// in without touching persistence or the HTTP surface.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}
