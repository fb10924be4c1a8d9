package analysis

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTextGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubTextGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func englishFacts() NarrativeFacts {
	return NarrativeFacts{
		MatchScore:   78,
		Strongest:    CategoryTechnical,
		TopStrengths: []string{"TypeScript", "React", "Python"},
		TopGaps:      []string{"Docker", "FastAPI"},
		Language:     LanguageEnglish,
		Tone:         ToneFormal,
	}
}

func TestGenerateFallbackIsDeterministic(t *testing.T) {
	gen := NewNarrativeGenerator(nil, 0)

	summary1, letter1 := gen.Generate(context.Background(), englishFacts())
	summary2, letter2 := gen.Generate(context.Background(), englishFacts())

	assert.Equal(t, summary1, summary2)
	assert.Equal(t, letter1, letter2)
}

func TestGenerateFallbackReferencesFacts(t *testing.T) {
	gen := NewNarrativeGenerator(nil, 0)

	summary, letter := gen.Generate(context.Background(), englishFacts())

	assert.Contains(t, summary, "78")
	assert.Contains(t, summary, "technical skills")
	assert.Contains(t, summary, "Docker")
	assert.Contains(t, letter, "TypeScript, React, Python")
	assert.Contains(t, letter, "Docker, FastAPI")
}

func TestGenerateLocalizedIdioms(t *testing.T) {
	tests := []struct {
		lang         Language
		tone         Tone
		wantGreeting string
		wantClosing  string
	}{
		{LanguageEnglish, ToneFormal, "Dear Hiring Manager,", "Sincerely,"},
		{LanguageEnglish, ToneCasual, "Hi there,", "Best regards,"},
		{LanguageEnglish, ToneCreative, "Hello!", "Looking forward,"},
		{LanguageSwedish, ToneFormal, "Till rekryteringsansvarig,", "Med vänliga hälsningar,"},
		{LanguageSwedish, ToneCasual, "Hej,", "Vänliga hälsningar,"},
		{LanguageSwedish, ToneCreative, "Hej!", "Vi hörs,"},
	}

	gen := NewNarrativeGenerator(nil, 0)
	for _, tt := range tests {
		t.Run(string(tt.lang)+"_"+string(tt.tone), func(t *testing.T) {
			facts := englishFacts()
			facts.Language = tt.lang
			facts.Tone = tt.tone

			_, letter := gen.Generate(context.Background(), facts)

			assert.True(t, strings.HasPrefix(letter, tt.wantGreeting), "letter should open with %q, got %q", tt.wantGreeting, letter)
			assert.Contains(t, letter, tt.wantClosing)
		})
	}
}

func TestGenerateNoGapsMentionsNone(t *testing.T) {
	facts := englishFacts()
	facts.TopGaps = nil

	gen := NewNarrativeGenerator(nil, 0)
	summary, _ := gen.Generate(context.Background(), facts)

	assert.Contains(t, summary, "No significant gaps")
}

func TestGenerateUsesExternalResponseWhenValid(t *testing.T) {
	stub := &stubTextGenerator{
		response: "```json\n{\"summary\": \"Great fit.\", \"cover_letter\": \"Dear team, hire me.\"}\n```",
	}
	gen := NewNarrativeGenerator(stub, 0)

	summary, letter := gen.Generate(context.Background(), englishFacts())

	assert.Equal(t, "Great fit.", summary)
	assert.Equal(t, "Dear team, hire me.", letter)
	assert.Equal(t, 1, stub.calls)
}

func TestGenerateRecoversFromFailingCollaborator(t *testing.T) {
	stub := &stubTextGenerator{err: fmt.Errorf("upstream unavailable")}
	gen := NewNarrativeGenerator(stub, 0)

	summary, letter := gen.Generate(context.Background(), englishFacts())

	fallback := NewNarrativeGenerator(nil, 0)
	wantSummary, wantLetter := fallback.Generate(context.Background(), englishFacts())

	assert.Equal(t, wantSummary, summary)
	assert.Equal(t, wantLetter, letter)
	// Initial call plus exactly one retry.
	assert.Equal(t, 2, stub.calls)
}

func TestGenerateRecoversFromMalformedResponse(t *testing.T) {
	stub := &stubTextGenerator{response: "sorry, I cannot help with that"}
	gen := NewNarrativeGenerator(stub, 0)

	summary, letter := gen.Generate(context.Background(), englishFacts())

	require.NotEmpty(t, summary)
	require.NotEmpty(t, letter)
	assert.Contains(t, summary, "78")
}

func TestExtractJSONStripsMarkdownFences(t *testing.T) {
	raw := "Here you go:\n```json\n{\"summary\": \"ok\"}\n```\nanything else?"
	assert.Equal(t, "{\"summary\": \"ok\"}", extractJSON(raw))
}
