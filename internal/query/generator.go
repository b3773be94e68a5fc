// Package query produces the ordered list of search terms a job will try.
// Generation is best-effort: every failure path degrades to a non-empty
// fallback list, never to an error.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/pkg/anthropic"
)

// maxTerms caps how many generated terms a job will try.
const maxTerms = 6

// Generator yields the ordered search terms for a sector/keyword/region.
// The result is never empty.
type Generator interface {
	Generate(ctx context.Context, sector, keyword, region string) []string
}

// LLMGenerator asks a text-generation model for category-style search
// terms and falls back to the keyword or sector on any failure.
type LLMGenerator struct {
	client anthropic.Client
	model  string
}

// NewLLMGenerator creates a generator backed by the Anthropic API.
func NewLLMGenerator(client anthropic.Client, model string) *LLMGenerator {
	return &LLMGenerator{client: client, model: model}
}

const promptTemplate = `You generate Google Maps search terms for B2B lead generation.

Sector: %s
Focus keyword: %s
Region: %s

Return a JSON array of at most %d short category-style search terms
(e.g. "manufacturers", "suppliers", "services") that local businesses in
this sector would be listed under. Respond with ONLY the JSON array, no
prose.`

func (g *LLMGenerator) Generate(ctx context.Context, sector, keyword, region string) []string {
	prompt := fmt.Sprintf(promptTemplate, sector, orNone(keyword), orNone(region), maxTerms)

	resp, err := g.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     g.model,
		MaxTokens: 512,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		zap.L().Warn("query: generation call failed, using fallback",
			zap.String("sector", sector),
			zap.Error(err),
		)
		return Fallback(sector, keyword)
	}

	terms := parseTerms(resp.Text())
	if len(terms) == 0 {
		zap.L().Warn("query: generation returned no usable terms, using fallback",
			zap.String("sector", sector),
		)
		return Fallback(sector, keyword)
	}

	return terms
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// Fallback is the term list used whenever generation cannot run or fails:
// the explicit keyword if present, else the sector name.
func Fallback(sector, keyword string) []string {
	if keyword != "" {
		return []string{keyword}
	}
	return []string{sector}
}

// parseTerms extracts a strict JSON array of strings from generated text,
// tolerating markdown code fences and surrounding prose. Empty entries
// are dropped and the result is capped at maxTerms.
func parseTerms(text string) []string {
	text = cleanJSONArray(text)
	if text == "" {
		return nil
	}

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil
	}

	terms := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		terms = append(terms, t)
		if len(terms) == maxTerms {
			break
		}
	}
	return terms
}

// cleanJSONArray strips markdown fences and slices out the JSON array.
func cleanJSONArray(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return ""
	}
	return strings.TrimSpace(text[start : end+1])
}
