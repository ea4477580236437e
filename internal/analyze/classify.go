// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// successResult trims the model output and wraps it.
func successResult(text string) Result {
	return Result{Kind: KindSuccess, Text: strings.TrimSpace(text)}
}

// classify maps a primary-attempt error to an outcome and a rendered Result.
// API-level rejections (auth, rate limit, malformed request) are upstream
// errors and must not be retried; only failures to reach the endpoint count
// as transport errors.
func classify(err error) (outcome, Result) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return outcomeUpstream, Result{
			Kind: KindUpstreamError,
			Text: fmt.Sprintf("[OpenAI error] %s: %s", apiErr.Type, apiErr.Message),
		}
	}

	// RequestError carries a status code when the endpoint answered with an
	// unparseable error body; without one it is a transport failure.
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode > 0 {
			return outcomeUpstream, Result{
				Kind: KindUpstreamError,
				Text: fmt.Sprintf("[OpenAI error] status %d: %v", reqErr.HTTPStatusCode, reqErr.Err),
			}
		}
		return outcomeTransport, transientResult(err)
	}

	var netErr net.Error
	var urlErr *url.Error
	switch {
	case errors.As(err, &netErr),
		errors.As(err, &urlErr),
		errors.Is(err, context.DeadlineExceeded):
		return outcomeTransport, transientResult(err)
	}

	return outcomeUnexpected, Result{
		Kind: KindUnexpectedError,
		Text: fmt.Sprintf("[OpenAI error] %T: %v", err, err),
	}
}

// transientResult renders a transport failure. The machine normally discards
// it on the way to a retry or the fallback; it only surfaces if classification
// happens in a terminal state.
func transientResult(err error) Result {
	return Result{Kind: KindConnectionError, Text: fmt.Sprintf("[OpenAI error] %T: %v", err, err)}
}
