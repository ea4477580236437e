// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litscout/internal/affil"
	"github.com/pdiddy/litscout/internal/export"
	"github.com/pdiddy/litscout/internal/pubmed"
	"github.com/pdiddy/litscout/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultUserAgent  = "litscout/0.1"
	defaultMaxResults = 100
	defaultMinYear    = 2005
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search PubMed for pharma-affiliated publications",
	Long: `Search builds a PubMed query from affiliation and disease-area terms,
fetches matching records in MEDLINE format, and renders them with company
annotations. With no flags it scans all tracked organizations across the
default rare metabolic disease areas.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("affiliations", "", "comma-separated affiliation terms (default: all tracked organizations)")
	searchCmd.Flags().String("disease-terms", "", "comma-separated disease area terms (default: built-in rare metabolic set)")
	searchCmd.Flags().String("terms", "", "additional free-text terms, comma-separated")
	searchCmd.Flags().Int("max-results", 0, fmt.Sprintf("maximum records to fetch (default %d)", defaultMaxResults))
	searchCmd.Flags().Int("min-year", 0, fmt.Sprintf("earliest publication year (default %d)", defaultMinYear))
	searchCmd.Flags().String("format", "text", "output format: text, json, or csl")
	searchCmd.Flags().String("out", "", "write output to file instead of stdout")
	searchCmd.Flags().String("save", "", "also save records and query parameters to a YAML result file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	affiliations := splitTerms(flagString(cmd, "affiliations"))
	if len(affiliations) == 0 {
		affiliations = affil.Organizations()
	}
	diseaseTerms := splitTerms(flagString(cmd, "disease-terms"))
	if len(diseaseTerms) == 0 && !cmd.Flags().Changed("disease-terms") {
		diseaseTerms = pubmed.DefaultDiseaseTerms
	}

	cfg := searchConfig(cmd)
	query := pubmed.BuildQuery(affiliations, diseaseTerms, flagString(cmd, "terms"))
	logger.Info().Str("query", query).Int("max_results", cfg.MaxResults).Msg("searching PubMed")

	client := &pubmed.Client{}
	ctx := cmd.Context()

	pmids, err := client.ESearch(ctx, query, cfg)
	if err != nil {
		return fmt.Errorf("searching PubMed: %w", err)
	}
	logger.Info().Int("count", len(pmids)).Msg("search complete")
	if len(pmids) == 0 {
		fmt.Fprintln(os.Stderr, "No records matched the query.")
		return nil
	}

	raw, err := client.EFetch(ctx, pmids, cfg)
	if err != nil {
		return fmt.Errorf("fetching records: %w", err)
	}
	records := pubmed.Normalize(raw)

	if save := flagString(cmd, "save"); save != "" {
		if err := export.WriteResultFile(save, query, cfg, records); err != nil {
			return fmt.Errorf("saving result file: %w", err)
		}
		logger.Info().Str("path", save).Msg("saved result file")
	}

	out, closeOut, err := openOutput(flagString(cmd, "out"))
	if err != nil {
		return err
	}
	defer closeOut()

	switch format := flagString(cmd, "format"); format {
	case "text":
		_, err = io.WriteString(out, export.ToText(records))
	case "json":
		err = export.FormatJSON(records, out)
	case "csl":
		err = export.FormatCSL(records, out)
	default:
		return fmt.Errorf("unknown format %q (want text, json, or csl)", format)
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// searchConfig assembles the search configuration from flags, config file
// keys, and the secrets directory.
func searchConfig(cmd *cobra.Command) types.SearchConfig {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = viper.GetInt("search.max_results")
	}
	if maxResults == 0 {
		maxResults = defaultMaxResults
	}
	minYear, _ := cmd.Flags().GetInt("min-year")
	if minYear == 0 {
		minYear = viper.GetInt("search.min_year")
	}
	if minYear == 0 {
		minYear = defaultMinYear
	}

	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		MaxResults: maxResults,
		MinYear:    minYear,
		Email:      secretDefault("ncbi-email", viper.GetString("ncbi.email")),
		APIKey:     secretDefault("ncbi-api-key", viper.GetString("ncbi.api_key")),
	}
}

// splitTerms splits a comma-separated flag value, dropping empty entries.
func splitTerms(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// openOutput returns stdout or the named file, with a close function that is
// a no-op for stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
