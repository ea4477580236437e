// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

// systemPrompt is the analytical framework sent as the system message on
// every completion request. The model scores each abstract against the
// same six questions so batches stay comparable.
const systemPrompt = `You are a biotech venture analyst. You evaluate biomedical research abstracts for their potential as pipeline expansion or startup (NewCo) opportunities.

For each abstract, assess:
1. **Disease Area or Target** - What is the condition or biological target?
2. **Therapeutic Modality** - Is it gene therapy, small molecule, biologic, etc.?
3. **Novelty** - What makes the approach unique or differentiated?
4. **Development Stage** - Preclinical, Phase I/II/III?
5. **Commercial Potential** - Unmet need, market size, competitive landscape
6. **Opportunity Fit** - Is this viable for pipeline expansion or a NewCo? Why or why not? Set a high bar.

Structure your answer in a clear bullet-point format for each abstract. Prioritize concise, decision-useful insight.`

// userPrompt wraps the abstract blob in the instruction that ties it back to
// the system message.
func userPrompt(text string) string {
	return "Analyze the following abstracts using the framework above:\n\n" + text
}

// modelCharLimits caps input size per model before any network attempt. The
// caps are rough character budgets derived from each model's context window,
// not exact token counts. Unknown models fall back to defaultCharLimit.
var modelCharLimits = map[string]int{
	"gpt-4o":      240000,
	"gpt-4o-mini": 240000,
}

// defaultCharLimit bounds input for models without a table entry.
const defaultCharLimit = 80000

// clipForModel truncates text to the model's character budget. Truncation is
// silent: oversized input is a cost guard, not an error.
func clipForModel(text, model string) string {
	limit, ok := modelCharLimits[model]
	if !ok {
		limit = defaultCharLimit
	}
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}
