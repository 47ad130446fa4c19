package llm

import (
	"context"
	"encoding/json"
	"io"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockStream is a canned streamed reply: Fragments are delivered in
// order, then Err (or io.EOF when nil) terminates the stream. When
// FailAfter is >= 0 and Err is set, the error surfaces after that many
// fragments instead of at the end.
type MockStream struct {
	Fragments []string
	Err       error
	FailAfter int

	pos int
}

func (s *MockStream) Recv() (string, error) {
	if s.Err != nil && s.FailAfter >= 0 && s.pos >= s.FailAfter {
		return "", s.Err
	}
	if s.pos >= len(s.Fragments) {
		if s.Err != nil {
			return "", s.Err
		}
		return "", io.EOF
	}
	frag := s.Fragments[s.pos]
	s.pos++
	return frag, nil
}

func (s *MockStream) Close() error { return nil }

// MockProvider is a deterministic Provider for testing.
// It returns canned responses and streams in FIFO order and records all
// requests.
type MockProvider struct {
	mu          sync.Mutex
	responses   []MockResponse
	streams     []*MockStream
	Calls       []Request
	StreamCalls []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// GenerateStream returns the next canned stream or ErrProviderUnavailable
// if the stream queue is empty.
func (m *MockProvider) GenerateStream(_ context.Context, req Request) (Stream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.StreamCalls = append(m.StreamCalls, req)

	if req.Schema != nil {
		return nil, &ErrStreamingUnsupported{}
	}
	if len(m.streams) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	s := m.streams[0]
	m.streams = m.streams[1:]
	return s, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// AddStream appends a canned stream to the stream queue.
func (m *MockProvider) AddStream(fragments []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streams = append(m.streams, &MockStream{Fragments: fragments, FailAfter: -1})
}

// AddFailingStream appends a stream that fails with err after delivering
// failAfter fragments.
func (m *MockProvider) AddFailingStream(fragments []string, failAfter int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streams = append(m.streams, &MockStream{Fragments: fragments, FailAfter: failAfter, Err: err})
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
