package query

import (
	"context"
	_ "embed"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed sectors.yaml
var sectorsYAML []byte

// maxStaticTerms caps the term list returned from the sector table.
const maxStaticTerms = 8

// StaticGenerator serves search terms from a fixed sector table. It is
// used when no generation service is configured.
type StaticGenerator struct {
	sectors map[string][]string
}

// NewStaticGenerator loads the embedded sector table.
func NewStaticGenerator() (*StaticGenerator, error) {
	var sectors map[string][]string
	if err := yaml.Unmarshal(sectorsYAML, &sectors); err != nil {
		return nil, eris.Wrap(err, "query: parse sector table")
	}

	// Index by lowercased sector name.
	idx := make(map[string][]string, len(sectors))
	for name, terms := range sectors {
		idx[strings.ToLower(name)] = terms
	}
	return &StaticGenerator{sectors: idx}, nil
}

// Sectors returns the sector names of the table, for display.
func (g *StaticGenerator) Sectors() []string {
	names := make([]string, 0, len(g.sectors))
	for name := range g.sectors {
		names = append(names, name)
	}
	return names
}

// Generate looks the sector up in the fixed table. An explicit keyword
// supersedes the table entirely; an unmapped sector yields its lowercased
// name as the single term.
func (g *StaticGenerator) Generate(_ context.Context, sector, keyword, _ string) []string {
	if keyword != "" {
		return []string{keyword}
	}

	terms, ok := g.sectors[strings.ToLower(sector)]
	if !ok || len(terms) == 0 {
		return []string{strings.ToLower(sector)}
	}
	if len(terms) > maxStaticTerms {
		terms = terms[:maxStaticTerms]
	}
	return terms
}
