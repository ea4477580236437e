// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litscout/internal/analyze"
	"github.com/pdiddy/litscout/internal/export"
	"github.com/pdiddy/litscout/pkg/types"
)

// defaultAllowedModels is the model whitelist when the config file does not
// override analysis.allowed_models.
var defaultAllowedModels = []string{"gpt-4o-mini", "gpt-4o"}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Assess a batch of abstracts for pipeline opportunities",
	Long: `Analyze sends rendered abstracts to an OpenAI chat completion endpoint
under a fixed venture-analysis prompt and prints the model's assessment.

Input comes from --in (a text file, or a YAML result file written by
"search --save") or from stdin.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("in", "", "input file: rendered text or a YAML result file")
	analyzeCmd.Flags().String("model", "", "completion model (default gpt-4o-mini)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := analysisInput(flagString(cmd, "in"))
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no input text: provide --in or pipe text on stdin")
	}

	model := flagString(cmd, "model")
	if model == "" {
		model = viper.GetString("analysis.model")
	}
	if model == "" {
		model = defaultAllowedModels[0]
	}

	allowed := viper.GetStringSlice("analysis.allowed_models")
	if len(allowed) == 0 {
		allowed = defaultAllowedModels
	}
	if !contains(allowed, model) {
		return fmt.Errorf("model %q is not allowed (allowed: %s)", model, strings.Join(allowed, ", "))
	}

	cfg := types.AnalysisConfig{
		Model:         model,
		AllowedModels: allowed,
		APIKey:        secretDefault("openai-api-key", os.Getenv("OPENAI_API_KEY")),
		BaseURL:       viper.GetString("analysis.base_url"),
	}

	client := analyze.New(cfg, logger)
	res := client.Analyze(cmd.Context(), text, model)
	if !res.OK() {
		logger.Warn().Str("kind", string(res.Kind)).Msg("analysis returned an error result")
	}

	// Always a value: success text and classified error strings both go to
	// stdout, and neither is a CLI failure.
	fmt.Println(res.String())
	return nil
}

// analysisInput reads the text to analyze. A YAML result file is rendered to
// the annotated text layout first; any other file, or stdin, is passed
// through as-is.
func analysisInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		rf, err := export.ReadResultFile(path)
		if err != nil {
			return "", fmt.Errorf("reading result file: %w", err)
		}
		return export.ToText(rf.Records), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

func contains(vals []string, want string) bool {
	for _, v := range vals {
		if v == want {
			return true
		}
	}
	return false
}
