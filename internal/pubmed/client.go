// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/litscout/internal/httputil"
	"github.com/pdiddy/litscout/pkg/types"
)

// entrezBase is the NCBI E-utilities endpoint. Declared as a var so tests
// can substitute an httptest server.
var entrezBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// Client calls the Entrez E-utilities API. Both operations are single
// black-box network calls; the only retry here is the shared 429/503
// politeness backoff, not the analysis client's tiered retry.
type Client struct {
	HTTPClient *http.Client
}

// ESearch runs an esearch query against the pubmed database and returns
// matching PMIDs in relevance order. Publication dates are restricted to
// [cfg.MinYear, today]. An empty query returns no IDs without a request.
func (c *Client) ESearch(ctx context.Context, query string, cfg types.SearchConfig) ([]string, error) {
	if query == "" {
		return nil, nil
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}
	minYear := cfg.MinYear
	if minYear <= 0 {
		minYear = 2005
	}

	params := url.Values{
		"db":       {"pubmed"},
		"term":     {query},
		"retmax":   {strconv.Itoa(maxResults)},
		"retmode":  {"json"},
		"datetype": {"pdat"},
		"mindate":  {fmt.Sprintf("%d/01/01", minYear)},
		"maxdate":  {time.Now().Format("2006/01/02")},
	}
	applyCredentials(params, cfg)

	var er esearchResponse
	if err := c.get(ctx, "/esearch.fcgi", params, cfg, func(resp *http.Response) error {
		return json.NewDecoder(resp.Body).Decode(&er)
	}); err != nil {
		return nil, fmt.Errorf("esearch: %w", err)
	}
	return er.Result.IDList, nil
}

// EFetch retrieves MEDLINE records for the given PMIDs. The records come
// back in the order NCBI returns them, parsed but otherwise untouched.
func (c *Client) EFetch(ctx context.Context, pmids []string, cfg types.SearchConfig) ([]RawRecord, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"rettype": {"medline"},
		"retmode": {"text"},
	}
	applyCredentials(params, cfg)

	var records []RawRecord
	if err := c.get(ctx, "/efetch.fcgi", params, cfg, func(resp *http.Response) error {
		var parseErr error
		records, parseErr = ParseMedline(resp.Body)
		return parseErr
	}); err != nil {
		return nil, fmt.Errorf("efetch: %w", err)
	}
	return records, nil
}

// get issues one GET through the shared retry helper and hands the
// response to decode.
func (c *Client) get(ctx context.Context, path string, params url.Values, cfg types.SearchConfig, decode func(*http.Response) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, entrezBase+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient(cfg), req, 0)
	if err != nil {
		return fmt.Errorf("E-utilities request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}
	return decode(resp)
}

func (c *Client) httpClient(cfg types.SearchConfig) *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// applyCredentials adds the NCBI contact email and optional API key.
// NCBI asks for an email with every E-utilities request; the key raises
// the rate limit from 3 to 10 requests per second.
func applyCredentials(params url.Values, cfg types.SearchConfig) {
	if cfg.Email != "" {
		params.Set("email", cfg.Email)
	}
	if cfg.APIKey != "" {
		params.Set("api_key", cfg.APIKey)
	}
}

// Entrez esearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
