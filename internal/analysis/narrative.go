package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

// TextGenerator is the capability interface for the external generative-text
// collaborator. Implementations receive a structured-fact prompt and return
// fluent text; they must not be relied on for correctness — any failure is
// recovered with the deterministic template path.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

// NarrativeFacts is the structured input for narrative synthesis. The
// generator must not introduce facts absent from this set.
type NarrativeFacts struct {
	MatchScore   int
	Strongest    Category
	TopStrengths []string
	TopGaps      []string
	Language     Language
	Tone         Tone
}

const (
	// DefaultGeneratorTimeout bounds a single external text generation call.
	DefaultGeneratorTimeout = 15 * time.Second
	// generatorAttempts is the initial call plus one retry with backoff.
	generatorAttempts = 2
	generatorBackoff  = 500 * time.Millisecond
)

// NarrativeGenerator synthesizes the summary paragraph and the cover letter.
// With a nil TextGenerator it runs fully offline on the template path.
type NarrativeGenerator struct {
	textGen TextGenerator
	timeout time.Duration
}

func NewNarrativeGenerator(textGen TextGenerator, timeout time.Duration) *NarrativeGenerator {
	if timeout <= 0 {
		timeout = DefaultGeneratorTimeout
	}
	return &NarrativeGenerator{textGen: textGen, timeout: timeout}
}

type narrativePayload struct {
	Summary     string `json:"summary"`
	CoverLetter string `json:"cover_letter"`
}

// Generate produces the summary and cover letter. It never fails the
// request: a generation error is logged and the deterministic templates take
// over.
func (g *NarrativeGenerator) Generate(ctx context.Context, facts NarrativeFacts) (summary, coverLetter string) {
	if g.textGen != nil {
		payload, err := g.generateExternal(ctx, facts)
		if err == nil {
			return payload.Summary, payload.CoverLetter
		}
		log.Printf("⚠️  Narrative generation fell back to templates: %v\n", err)
	}
	return g.templateSummary(facts), g.templateCoverLetter(facts)
}

func (g *NarrativeGenerator) generateExternal(ctx context.Context, facts NarrativeFacts) (*narrativePayload, error) {
	prompt := buildNarrativePrompt(facts)

	var lastErr error
	for attempt := 1; attempt <= generatorAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, NewGenerationError("narrative generation cancelled", ctx.Err())
			case <-time.After(generatorBackoff):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		response, err := g.textGen.GenerateText(callCtx, prompt, 0.6)
		cancel()
		if err != nil {
			lastErr = err
			continue
		}

		var payload narrativePayload
		if err := json.Unmarshal([]byte(extractJSON(response)), &payload); err != nil {
			lastErr = fmt.Errorf("failed to parse narrative response: %w", err)
			continue
		}
		if strings.TrimSpace(payload.Summary) == "" || strings.TrimSpace(payload.CoverLetter) == "" {
			lastErr = fmt.Errorf("narrative response missing summary or cover letter")
			continue
		}

		payload.Summary = strings.TrimSpace(payload.Summary)
		payload.CoverLetter = strings.TrimSpace(payload.CoverLetter)
		return &payload, nil
	}

	return nil, NewGenerationError("narrative generation failed", lastErr)
}

func buildNarrativePrompt(facts NarrativeFacts) string {
	languageName := "English"
	if facts.Language == LanguageSwedish {
		languageName = "Swedish"
	}

	return fmt.Sprintf(`You are a career coach writing for a job applicant.

FACTS (do not invent anything beyond these):
- Overall match score: %d out of 100
- Strongest area: %s
- Matching strengths: %s
- Most significant gaps: %s

Write in %s with a %s tone.

Return your response in the following JSON format:
{
  "summary": "<2-3 sentence assessment of the fit, naming the strongest area and the most significant gap>",
  "cover_letter": "<a short cover letter with greeting and closing, built only from the facts above>"
}

Return ONLY the JSON object, no markdown, no explanation.`,
		facts.MatchScore,
		categoryName(facts.Strongest, LanguageEnglish),
		joinOrNone(facts.TopStrengths),
		joinOrNone(facts.TopGaps),
		languageName,
		string(facts.Tone),
	)
}

// templateSummary is the deterministic fallback: a fixed-shape paragraph
// assembled only from the structured facts.
func (g *NarrativeGenerator) templateSummary(facts NarrativeFacts) string {
	strongest := categoryName(facts.Strongest, facts.Language)

	if facts.Language == LanguageSwedish {
		s := fmt.Sprintf("CV:t matchar annonsen till %d %%. Starkast är %s.", facts.MatchScore, strongest)
		if len(facts.TopGaps) > 0 {
			s += fmt.Sprintf(" Den viktigaste luckan är '%s'.", facts.TopGaps[0])
		} else {
			s += " Inga betydande luckor hittades."
		}
		return s
	}

	s := fmt.Sprintf("The CV matches the posting at %d%%. The strongest area is %s.", facts.MatchScore, strongest)
	if len(facts.TopGaps) > 0 {
		s += fmt.Sprintf(" The most significant gap is '%s'.", facts.TopGaps[0])
	} else {
		s += " No significant gaps were detected."
	}
	return s
}

func (g *NarrativeGenerator) templateCoverLetter(facts NarrativeFacts) string {
	greeting, closing := letterIdioms(facts.Language, facts.Tone)

	var body strings.Builder
	body.WriteString(greeting)
	body.WriteString("\n\n")

	if facts.Language == LanguageSwedish {
		body.WriteString(fmt.Sprintf(
			"Jag skriver för att uttrycka mitt intresse för den utannonserade tjänsten. Min bakgrund inom %s motsvarar tjänstens kärnkrav, och mitt CV visar en total matchning på %d procent.",
			joinOrNoneSV(facts.TopStrengths), facts.MatchScore))
		if len(facts.TopGaps) > 0 {
			body.WriteString(fmt.Sprintf(
				"\n\nJag arbetar aktivt med att stärka mina kunskaper inom %s för att täcka de återstående kraven.",
				joinOrNoneSV(facts.TopGaps)))
		}
	} else {
		body.WriteString(fmt.Sprintf(
			"I am writing to express my interest in the advertised position. My background in %s matches the core requirements of the role, and my CV reflects an overall match of %d percent.",
			joinOrNone(facts.TopStrengths), facts.MatchScore))
		if len(facts.TopGaps) > 0 {
			body.WriteString(fmt.Sprintf(
				"\n\nI am actively strengthening my knowledge of %s to cover the remaining requirements.",
				joinOrNone(facts.TopGaps)))
		}
	}

	body.WriteString("\n\n")
	body.WriteString(closing)
	body.WriteString("\n[Your Name]")

	return body.String()
}

func letterIdioms(lang Language, tone Tone) (greeting, closing string) {
	if lang == LanguageSwedish {
		switch tone {
		case ToneCasual:
			return "Hej,", "Vänliga hälsningar,"
		case ToneCreative:
			return "Hej!", "Vi hörs,"
		default:
			return "Till rekryteringsansvarig,", "Med vänliga hälsningar,"
		}
	}
	switch tone {
	case ToneCasual:
		return "Hi there,", "Best regards,"
	case ToneCreative:
		return "Hello!", "Looking forward,"
	default:
		return "Dear Hiring Manager,", "Sincerely,"
	}
}

func categoryName(cat Category, lang Language) string {
	if lang == LanguageSwedish {
		switch cat {
		case CategoryTechnical:
			return "tekniska färdigheter"
		case CategorySoftSkills:
			return "mjuka färdigheter"
		default:
			return "erfarenhet"
		}
	}
	switch cat {
	case CategoryTechnical:
		return "technical skills"
	case CategorySoftSkills:
		return "soft skills"
	default:
		return "experience"
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none identified"
	}
	return strings.Join(items, ", ")
}

func joinOrNoneSV(items []string) string {
	if len(items) == 0 {
		return "inga identifierade"
	}
	return strings.Join(items, ", ")
}

// extractJSON pulls a JSON object out of text that might wrap it in markdown
// fences or prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}
	return text
}
