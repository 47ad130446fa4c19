package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abhisek/lingoleap/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.append(ctx, data)
	return resp, err
}

// GenerateStream wraps the inner stream so that one event is recorded
// when the stream ends, covering the whole turn.
func (l *LoggingProvider) GenerateStream(ctx context.Context, req Request) (Stream, error) {
	start := time.Now()

	stream, err := l.inner.GenerateStream(ctx, req)
	if err != nil {
		l.append(ctx, store.LLMRequestEventData{
			Provider:     l.inner.ModelID(),
			Model:        l.inner.ModelID(),
			Purpose:      PurposeFrom(ctx),
			LatencyMs:    time.Since(start).Milliseconds(),
			Success:      false,
			RequestBody:  serializeRequest(req),
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	return &loggedStream{
		inner:   stream,
		logger:  l,
		ctx:     ctx,
		req:     req,
		started: start,
	}, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) append(ctx context.Context, data store.LLMRequestEventData) {
	// Log the event but don't fail the request if logging fails.
	if err := l.eventRepo.AppendLLMRequest(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", err)
	}
}

// loggedStream accumulates fragments and records a single event once the
// stream finishes or fails. Exactly one event is recorded per stream.
type loggedStream struct {
	inner   Stream
	logger  *LoggingProvider
	ctx     context.Context
	req     Request
	started time.Time
	buf     strings.Builder
	logged  bool
}

func (s *loggedStream) Recv() (string, error) {
	frag, err := s.inner.Recv()
	if err == nil {
		s.buf.WriteString(frag)
		return frag, nil
	}

	if !s.logged {
		s.logged = true
		data := store.LLMRequestEventData{
			Provider:     s.logger.inner.ModelID(),
			Model:        s.logger.inner.ModelID(),
			Purpose:      PurposeFrom(s.ctx),
			LatencyMs:    time.Since(s.started).Milliseconds(),
			Success:      err == io.EOF,
			RequestBody:  serializeRequest(s.req),
			ResponseBody: s.buf.String(),
		}
		if err != io.EOF {
			data.ErrorMessage = err.Error()
		}
		s.logger.append(s.ctx, data)
	}

	return "", err
}

func (s *loggedStream) Close() error {
	return s.inner.Close()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
