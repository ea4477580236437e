// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/litscout/pkg/types"
)

func testCfg() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		MaxResults: 100,
		MinYear:    2005,
		Email:      "user@example.com",
	}
}

func TestESearchRequestParams(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"esearchresult":{"count":"2","idlist":["36000001","36000002"]}}`)
	}))
	defer ts.Close()

	old := entrezBase
	entrezBase = ts.URL
	defer func() { entrezBase = old }()

	cfg := testCfg()
	cfg.MaxResults = 25
	cfg.MinYear = 2010
	cfg.APIKey = "nk_test"

	c := &Client{HTTPClient: ts.Client()}
	ids, err := c.ESearch(context.Background(), `("Pfizer"[ad])`, cfg)
	if err != nil {
		t.Fatalf("ESearch: %v", err)
	}

	if len(ids) != 2 || ids[0] != "36000001" {
		t.Errorf("ids = %v, want the idlist in order", ids)
	}
	if !strings.HasSuffix(capturedReq.URL.Path, "/esearch.fcgi") {
		t.Errorf("path = %q, want esearch.fcgi", capturedReq.URL.Path)
	}

	q := capturedReq.URL.Query()
	if got := q.Get("db"); got != "pubmed" {
		t.Errorf("db param = %q, want pubmed", got)
	}
	if got := q.Get("term"); got != `("Pfizer"[ad])` {
		t.Errorf("term param = %q", got)
	}
	if got := q.Get("retmax"); got != "25" {
		t.Errorf("retmax param = %q, want 25", got)
	}
	if got := q.Get("retmode"); got != "json" {
		t.Errorf("retmode param = %q, want json", got)
	}
	if got := q.Get("datetype"); got != "pdat" {
		t.Errorf("datetype param = %q, want pdat", got)
	}
	if got := q.Get("mindate"); got != "2010/01/01" {
		t.Errorf("mindate param = %q, want 2010/01/01", got)
	}
	if got := q.Get("maxdate"); got == "" {
		t.Error("maxdate param missing")
	}
	if got := q.Get("email"); got != "user@example.com" {
		t.Errorf("email param = %q", got)
	}
	if got := q.Get("api_key"); got != "nk_test" {
		t.Errorf("api_key param = %q", got)
	}
	if got := capturedReq.Header.Get("User-Agent"); got != "test/0.1" {
		t.Errorf("User-Agent = %q", got)
	}
}

func TestESearchEmptyQuery(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer ts.Close()

	old := entrezBase
	entrezBase = ts.URL
	defer func() { entrezBase = old }()

	c := &Client{HTTPClient: ts.Client()}
	ids, err := c.ESearch(context.Background(), "", testCfg())
	if err != nil {
		t.Fatalf("ESearch: %v", err)
	}
	if ids != nil {
		t.Errorf("ids = %v, want nil", ids)
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0 (empty query makes no request)", calls)
	}
}

func TestESearchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	old := entrezBase
	entrezBase = ts.URL
	defer func() { entrezBase = old }()

	c := &Client{HTTPClient: ts.Client()}
	_, err := c.ESearch(context.Background(), "all[sb]", testCfg())
	if err == nil {
		t.Fatal("expected error on HTTP 400")
	}
	if !strings.Contains(err.Error(), "HTTP 400") {
		t.Errorf("err = %v, want HTTP 400 mention", err)
	}
}

func TestEFetchParsesMedline(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		fmt.Fprint(w, sampleMedline)
	}))
	defer ts.Close()

	old := entrezBase
	entrezBase = ts.URL
	defer func() { entrezBase = old }()

	c := &Client{HTTPClient: ts.Client()}
	records, err := c.EFetch(context.Background(), []string{"36000001", "36000002"}, testCfg())
	if err != nil {
		t.Fatalf("EFetch: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if got := records[0].First("PMID"); got != "36000001" {
		t.Errorf("first PMID = %q", got)
	}

	q := capturedReq.URL.Query()
	if got := q.Get("id"); got != "36000001,36000002" {
		t.Errorf("id param = %q, want comma-joined PMIDs", got)
	}
	if got := q.Get("rettype"); got != "medline" {
		t.Errorf("rettype param = %q, want medline", got)
	}
	if got := q.Get("retmode"); got != "text" {
		t.Errorf("retmode param = %q, want text", got)
	}
}

func TestEFetchNoIDs(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer ts.Close()

	old := entrezBase
	entrezBase = ts.URL
	defer func() { entrezBase = old }()

	c := &Client{HTTPClient: ts.Client()}
	records, err := c.EFetch(context.Background(), nil, testCfg())
	if err != nil {
		t.Fatalf("EFetch: %v", err)
	}
	if records != nil || calls != 0 {
		t.Errorf("records = %v, calls = %d; want nil and 0", records, calls)
	}
}
