package llmtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// CapturedRequest records one request received by the fake endpoint.
type CapturedRequest struct {
	// Method is the HTTP method.
	Method string
	// Path is the request path.
	Path string
	// Headers are the request headers.
	Headers http.Header
	// Raw is the request body verbatim.
	Raw []byte
	// Body is the parsed JSON body, nil when the body is absent or invalid.
	Body map[string]any
	// Prompts is the prompt batch extracted from Body, nil when absent.
	Prompts []string
}

// stubResponse is a scripted answer served once.
type stubResponse struct {
	status      int
	contentType string
	raw         []byte
	body        any
}

// Server is an in-process fake completion endpoint. Scripted responses
// enqueued with Enqueue are served first, in order; once the queue is empty
// the configured behavior answers. The zero behavior echoes each prompt
// back as its completion.
type Server struct {
	engine *gin.Engine
	srv    *httptest.Server

	mu       sync.Mutex
	requests []CapturedRequest
	queue    []stubResponse

	status  int
	texts   []string
	errBody any
	hasErr  bool
	echo    func(prompt string) string
}

// Option configures the fake endpoint's fallback behavior.
type Option func(*Server)

// WithTexts answers every request with exactly these completion texts,
// regardless of the prompt count.
func WithTexts(texts ...string) Option {
	return func(s *Server) { s.texts = texts }
}

// WithEcho derives each completion from its prompt.
func WithEcho(fn func(prompt string) string) Option {
	return func(s *Server) { s.echo = fn }
}

// WithErrorPayload answers every request with {"error": payload}.
func WithErrorPayload(payload any) Option {
	return func(s *Server) {
		s.errBody = payload
		s.hasErr = true
	}
}

// WithStatus sets the HTTP status for behavior answers. Defaults to 200.
func WithStatus(status int) Option {
	return func(s *Server) { s.status = status }
}

// New creates an unstarted fake endpoint.
func New(opts ...Option) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		engine: gin.New(),
		status: http.StatusOK,
		echo:   func(prompt string) string { return prompt },
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine.Use(gin.Recovery())
	s.engine.Any("/*path", s.handle)
	return s
}

// Start runs a fake endpoint on an ephemeral port and shuts it down when
// the test ends. Point the client at it via Params["url"].
func Start(tb testing.TB, opts ...Option) *Server {
	tb.Helper()
	s := New(opts...)
	s.srv = httptest.NewServer(s.engine)
	tb.Cleanup(s.Close)
	return s
}

// StartDetached runs the endpoint without test integration. The caller
// owns the shutdown.
func StartDetached(opts ...Option) *Server {
	s := New(opts...)
	s.srv = httptest.NewServer(s.engine)
	return s
}

// URL returns the endpoint base URL.
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the endpoint down.
func (s *Server) Close() {
	s.srv.Close()
}

// Enqueue scripts a JSON response served once, before any behavior answer.
func (s *Server) Enqueue(status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, stubResponse{status: status, body: body})
}

// EnqueueRaw scripts a verbatim response served once.
func (s *Server) EnqueueRaw(status int, contentType string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, stubResponse{status: status, contentType: contentType, raw: body})
}

// Requests returns a copy of every captured request, in arrival order.
func (s *Server) Requests() []CapturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CapturedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent captured request.
func (s *Server) LastRequest() (CapturedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return CapturedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Count returns the number of requests received so far.
func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Reset drops captured requests and any unserved scripted responses.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.queue = nil
}

func (s *Server) handle(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		raw = nil
	}

	captured := CapturedRequest{
		Method:  c.Request.Method,
		Path:    c.Request.URL.Path,
		Headers: c.Request.Header.Clone(),
		Raw:     raw,
	}
	if len(raw) > 0 {
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err == nil {
			captured.Body = body
			captured.Prompts = extractPrompts(body)
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, captured)
	var scripted *stubResponse
	if len(s.queue) > 0 {
		scripted = &s.queue[0]
		s.queue = s.queue[1:]
	}
	s.mu.Unlock()

	if scripted != nil {
		if scripted.raw != nil {
			c.Data(scripted.status, scripted.contentType, scripted.raw)
			return
		}
		c.JSON(scripted.status, scripted.body)
		return
	}

	switch {
	case s.hasErr:
		c.JSON(s.status, gin.H{"error": s.errBody})
	case s.texts != nil:
		c.JSON(s.status, gin.H{"choices": choicesFor(s.texts)})
	default:
		texts := make([]string, len(captured.Prompts))
		for i, p := range captured.Prompts {
			texts[i] = s.echo(p)
		}
		c.JSON(s.status, gin.H{"choices": choicesFor(texts)})
	}
}

func choicesFor(texts []string) []gin.H {
	choices := make([]gin.H, len(texts))
	for i, t := range texts {
		choices[i] = gin.H{"text": t}
	}
	return choices
}

func extractPrompts(body map[string]any) []string {
	raw, ok := body["prompt"].([]any)
	if !ok {
		return nil
	}
	prompts := make([]string, 0, len(raw))
	for _, p := range raw {
		if s, ok := p.(string); ok {
			prompts = append(prompts, s)
		}
	}
	return prompts
}
