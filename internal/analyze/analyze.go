// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze sends batches of abstracts to an OpenAI chat completion
// endpoint and returns the model's assessment as prose. Every failure mode is
// converted to a classified Result; Analyze never returns an error and never
// panics, so callers only need to render strings.
package analyze

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/pdiddy/litscout/pkg/types"
)

// Kind classifies an analysis Result.
type Kind string

const (
	// KindSuccess means Text holds the model's analysis.
	KindSuccess Kind = "success"
	// KindConfigError means a required credential is missing. No network
	// attempt was made.
	KindConfigError Kind = "config-error"
	// KindUpstreamError means the remote service rejected the request
	// (auth, rate limit, malformed request). Not retried.
	KindUpstreamError Kind = "upstream-error"
	// KindConnectionError means both the primary transport and the raw
	// HTTP fallback failed to reach the endpoint.
	KindConnectionError Kind = "connection-error"
	// KindUnexpectedError is the catch-all for faults outside the taxonomy.
	KindUnexpectedError Kind = "unexpected-error"
)

// Result is the outcome of one Analyze call. Text holds the analysis prose on
// success and a human-readable error message otherwise.
type Result struct {
	Kind Kind
	Text string
}

// OK reports whether the result carries analysis text rather than an error.
func (r Result) OK() bool { return r.Kind == KindSuccess }

func (r Result) String() string { return r.Text }

// state is a position in the retry/fallback machine.
type state int

const (
	stateStart state = iota
	statePrimary
	stateRetry
	stateFallback
	stateDone
)

// outcome is the classification of one attempt.
type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeUpstream
	outcomeTransport
	outcomeUnexpected
)

// next returns the machine's next state after an attempt classified as o.
// Transport errors escalate primary -> retry -> fallback; everything else is
// terminal. Pure function so the control flow is testable without a network.
func next(s state, o outcome) state {
	if o == outcomeTransport {
		switch s {
		case statePrimary:
			return stateRetry
		case stateRetry:
			return stateFallback
		}
	}
	return stateDone
}

// retryBackoff is the pause before the single primary retry. Package-level
// var so tests can shorten it.
var retryBackoff = time.Second

const defaultBaseURL = "https://api.openai.com/v1"

// completionAPI is the part of the OpenAI client Analyze needs. Satisfied by
// *openai.Client; tests substitute a scripted fake.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client analyzes abstract blobs with retry and transport fallback. Safe for
// concurrent use; no state is retained between calls.
type Client struct {
	cfg      types.AnalysisConfig
	log      zerolog.Logger
	primary  completionAPI
	fallback *http.Client
}

// New builds a Client from cfg, filling in defaults for the endpoint,
// timeout, sampling temperature, and token budget. A missing API key is not
// an error here; Analyze reports it as a config-error result.
func New(cfg types.AnalysisConfig, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2048
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.4
	}

	c := &Client{
		cfg: cfg,
		log: log,
		fallback: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newFallbackTransport(),
		},
	}
	if cfg.APIKey != "" {
		oc := openai.DefaultConfig(cfg.APIKey)
		oc.BaseURL = cfg.BaseURL
		c.primary = openai.NewClientWithConfig(oc)
	}
	return c
}

// Analyze sends text to the completion endpoint under the fixed analytical
// prompt and returns a classified Result. The input is clipped to the model's
// character budget first. A transport failure is retried once after a short
// backoff, then degraded to a raw single-connection HTTP request; upstream
// rejections are never retried.
func (c *Client) Analyze(ctx context.Context, text, model string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Kind: KindUnexpectedError, Text: fmt.Sprintf("[OpenAI error] panic: %v", r)}
		}
	}()

	if c.cfg.APIKey == "" {
		return Result{Kind: KindConfigError, Text: "[config error] no OpenAI API key configured"}
	}

	clipped := clipForModel(text, model)
	if len(clipped) < len(text) {
		c.log.Debug().
			Str("model", model).
			Int("input_chars", len(text)).
			Int("sent_chars", len(clipped)).
			Msg("input clipped to model character budget")
	}

	st := statePrimary
	for st != stateDone {
		var out outcome
		switch st {
		case statePrimary:
			out, res = c.primaryAttempt(ctx, clipped, model)
		case stateRetry:
			c.log.Warn().Str("model", model).Msg("transport failure, retrying primary endpoint")
			time.Sleep(retryBackoff)
			out, res = c.primaryAttempt(ctx, clipped, model)
		case stateFallback:
			c.log.Warn().Str("endpoint", c.cfg.BaseURL).Msg("primary transport exhausted, switching to fallback HTTP client")
			out, res = c.fallbackAttempt(ctx, clipped, model)
		}
		st = next(st, out)
	}
	return res
}

// primaryAttempt issues one request through the SDK client and classifies the
// result.
func (c *Client) primaryAttempt(ctx context.Context, text, model string) (outcome, Result) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.primary.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(text)},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return classify(err)
	}
	if len(resp.Choices) == 0 {
		return outcomeUpstream, Result{Kind: KindUpstreamError, Text: "[OpenAI error] empty response: no completion choices returned"}
	}
	return outcomeSuccess, successResult(resp.Choices[0].Message.Content)
}
