package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadgen-cli/pkg/anthropic"
	anthropicmocks "github.com/sells-group/leadgen-cli/pkg/anthropic/mocks"
)

func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
	}
}

func TestLLMGenerator_Generate(t *testing.T) {
	t.Parallel()

	client := anthropicmocks.NewMockClient(t)
	client.On("CreateMessage", mock.Anything, mock.Anything).
		Return(textResponse(`["clinics","hospitals","diagnostic centers"]`), nil)

	g := NewLLMGenerator(client, "claude-haiku-4-5-20251001")
	terms := g.Generate(context.Background(), "Healthcare", "", "Chennai, Tamil Nadu")
	assert.Equal(t, []string{"clinics", "hospitals", "diagnostic centers"}, terms)
}

func TestLLMGenerator_Generate_StripsCodeFence(t *testing.T) {
	t.Parallel()

	client := anthropicmocks.NewMockClient(t)
	client.On("CreateMessage", mock.Anything, mock.Anything).
		Return(textResponse("```json\n[\"suppliers\", \"manufacturers\"]\n```"), nil)

	g := NewLLMGenerator(client, "m")
	terms := g.Generate(context.Background(), "Manufacturing", "", "")
	assert.Equal(t, []string{"suppliers", "manufacturers"}, terms)
}

func TestLLMGenerator_Generate_FallbackPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resp    *anthropic.MessageResponse
		err     error
		keyword string
		want    []string
	}{
		{
			name: "transport error falls back to sector",
			err:  errors.New("connection refused"),
			want: []string{"Healthcare"},
		},
		{
			name:    "transport error falls back to keyword",
			err:     errors.New("connection refused"),
			keyword: "dental clinics",
			want:    []string{"dental clinics"},
		},
		{
			name: "non-array JSON",
			resp: textResponse(`{"terms":"clinics"}`),
			want: []string{"Healthcare"},
		},
		{
			name: "empty array",
			resp: textResponse(`[]`),
			want: []string{"Healthcare"},
		},
		{
			name: "prose only",
			resp: textResponse("I cannot help with that."),
			want: []string{"Healthcare"},
		},
		{
			name: "array of blanks",
			resp: textResponse(`[""," "]`),
			want: []string{"Healthcare"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := anthropicmocks.NewMockClient(t)
			client.On("CreateMessage", mock.Anything, mock.Anything).Return(tt.resp, tt.err)

			g := NewLLMGenerator(client, "m")
			got := g.Generate(context.Background(), "Healthcare", tt.keyword, "")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLLMGenerator_Generate_CapsTerms(t *testing.T) {
	t.Parallel()

	client := anthropicmocks.NewMockClient(t)
	client.On("CreateMessage", mock.Anything, mock.Anything).
		Return(textResponse(`["a","b","c","d","e","f","g","h","i"]`), nil)

	g := NewLLMGenerator(client, "m")
	terms := g.Generate(context.Background(), "Retail & E-commerce", "", "")
	assert.Len(t, terms, maxTerms)
}

func TestStaticGenerator_KnownSector(t *testing.T) {
	t.Parallel()

	g, err := NewStaticGenerator()
	require.NoError(t, err)

	terms := g.Generate(context.Background(), "Healthcare", "", "")
	assert.Contains(t, terms, "Clinics")
	assert.Contains(t, terms, "Hospitals")
	assert.LessOrEqual(t, len(terms), maxStaticTerms)

	// Lookup is case-insensitive.
	assert.Equal(t, terms, g.Generate(context.Background(), "healthcare", "", ""))
}

func TestStaticGenerator_KeywordSupersedes(t *testing.T) {
	t.Parallel()

	g, err := NewStaticGenerator()
	require.NoError(t, err)

	terms := g.Generate(context.Background(), "Healthcare", "pediatric dentists", "")
	assert.Equal(t, []string{"pediatric dentists"}, terms)
}

func TestStaticGenerator_UnmappedSector(t *testing.T) {
	t.Parallel()

	g, err := NewStaticGenerator()
	require.NoError(t, err)

	terms := g.Generate(context.Background(), "Underwater Basketweaving", "", "")
	assert.Equal(t, []string{"underwater basketweaving"}, terms)
}

func TestFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"kw"}, Fallback("Healthcare", "kw"))
	assert.Equal(t, []string{"Healthcare"}, Fallback("Healthcare", ""))
}

func TestParseTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain array", `["a","b"]`, []string{"a", "b"}},
		{"fenced", "```\n[\"a\"]\n```", []string{"a"}},
		{"fenced json", "```json\n[\"a\"]\n```", []string{"a"}},
		{"prose around array", `Here you go: ["a","b"] hope that helps`, []string{"a", "b"}},
		{"not json", "no array here", nil},
		{"array of numbers", `[1,2,3]`, nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseTerms(tt.in))
		})
	}
}
