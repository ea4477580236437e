// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrBody bounds how much of an upstream error body is carried into the
// Result text.
const maxErrBody = 512

// chatRequest mirrors the OpenAI chat completions request body for the raw
// HTTP fallback path.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatMessage is a single message in the completion conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the completion response the fallback reads.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// chatChoice is one completion choice.
type chatChoice struct {
	Message chatMessage `json:"message"`
}

// newFallbackTransport builds a single-connection HTTP/1.1 transport,
// distinct from the SDK's pooled HTTP/2 transport. When the primary path
// fails twice the flakiness is often in connection reuse or protocol
// negotiation, so the fallback avoids both.
func newFallbackTransport() *http.Transport {
	return &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		DisableKeepAlives: true,
		MaxConnsPerHost:   1,
		ForceAttemptHTTP2: false,
		TLSNextProto:      map[string]func(string, *tls.Conn) http.RoundTripper{},
	}
}

// fallbackAttempt posts the same payload shape as the primary attempt
// directly to the chat completions endpoint and classifies the result. Every
// outcome from here is terminal.
func (c *Client) fallbackAttempt(ctx context.Context, text, model string) (outcome, Result) {
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(text)},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return outcomeUnexpected, Result{Kind: KindUnexpectedError, Text: fmt.Sprintf("[OpenAI fallback error] marshaling request: %v", err)}
	}

	endpoint := c.cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return outcomeUnexpected, Result{Kind: KindUnexpectedError, Text: fmt.Sprintf("[OpenAI fallback error] creating request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.fallback.Do(req)
	if err != nil {
		return outcomeTransport, Result{
			Kind: KindConnectionError,
			Text: fmt.Sprintf("[OpenAI fallback error] %v (check connectivity to %s)", err, c.cfg.BaseURL),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return outcomeUpstream, Result{
			Kind: KindUpstreamError,
			Text: fmt.Sprintf("[OpenAI fallback error] status %d: %s", resp.StatusCode, snippet),
		}
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return outcomeUnexpected, Result{Kind: KindUnexpectedError, Text: fmt.Sprintf("[OpenAI fallback error] decoding response: %v", err)}
	}
	if len(cResp.Choices) == 0 {
		return outcomeUpstream, Result{Kind: KindUpstreamError, Text: "[OpenAI fallback error] empty response: no completion choices returned"}
	}
	return outcomeSuccess, successResult(cResp.Choices[0].Message.Content)
}
