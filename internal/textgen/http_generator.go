package textgen

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	requestTimeout  = 15 * time.Second
	maxResponseSize = 64 << 10
)

// Endpoint is one candidate text API: the prompt is path-escaped and
// appended to the URL.
type Endpoint struct {
	URL      string
	Provider string
}

func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		{URL: "https://gen.pollinations.ai/text/", Provider: "Pollinations Gen API (Free)"},
		{URL: "https://text.pollinations.ai/prompt/", Provider: "Pollinations Legacy API (Free)"},
	}
}

// HTTPGenerator tries each endpoint in order and returns the first usable
// response. Network errors, non-success statuses and notice-like bodies all
// collapse into an empty result; a slow or failed provider never corrupts
// or blocks anything locally.
type HTTPGenerator struct {
	client    *http.Client
	endpoints []Endpoint
}

func NewHTTPGenerator(client *http.Client, endpoints []Endpoint) *HTTPGenerator {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints()
	}
	return &HTTPGenerator{client: client, endpoints: endpoints}
}

func (g *HTTPGenerator) Generate(ctx context.Context, prompt string) (string, string) {
	escaped := url.PathEscape(prompt)
	for _, endpoint := range g.endpoints {
		raw := g.requestText(ctx, endpoint.URL+escaped)
		if text := NormalizeResponse(raw); text != "" {
			return text, endpoint.Provider
		}
	}
	return "", ""
}

func (g *HTTPGenerator) requestText(ctx context.Context, fullURL string) string {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return ""
	}
	request.Header.Set("Accept", "text/plain, application/json")

	response, err := g.client.Do(request)
	if err != nil {
		return ""
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(body))
}
