package analysis

import (
	"context"
	"log"
	"strings"
	"time"
)

// State is one step of the orchestrator's finite state machine. Done and
// Failed are terminal.
type State string

const (
	StateValidating   State = "validating"
	StateNormalizing  State = "normalizing"
	StateScoring      State = "scoring"
	StateRecommending State = "recommending"
	StateNarrating    State = "narrating"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

const narrativeFactLimit = 3

// Config tunes one pipeline assembly. Zero values fall back to the package
// defaults.
type Config struct {
	KeywordThreshold float64
	TopMissing       int
	MaxImprovements  int
	Generator        TextGenerator
	GeneratorTimeout time.Duration
}

// Pipeline sequences the analysis stages: normalize both documents, build
// term vectors, score, analyze gaps, recommend improvements, generate the
// narrative, assemble the result. One Pipeline is safe for concurrent use;
// each Run carries its own state and shares only the read-only lexicon
// tables.
type Pipeline struct {
	extractor   *Extractor
	recommender *Recommender
	narrative   *NarrativeGenerator
}

func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{
		extractor:   NewExtractor(cfg.KeywordThreshold),
		recommender: NewRecommender(cfg.TopMissing, cfg.MaxImprovements),
		narrative:   NewNarrativeGenerator(cfg.Generator, cfg.GeneratorTimeout),
	}
}

type run struct {
	state State
}

func (r *run) to(next State) {
	log.Printf("🔄 Pipeline %s → %s\n", r.state, next)
	r.state = next
}

// Run executes the full pipeline for one request. Any stage failure other
// than narrative generation transitions to Failed with the typed error
// preserved; no partial result is ever returned.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	r := &run{state: StateValidating}

	if err := validate(req); err != nil {
		r.to(StateFailed)
		return nil, err
	}

	r.to(StateNormalizing)
	cvDoc, err := Normalize(req.CVText, req.Language)
	if err != nil {
		r.to(StateFailed)
		return nil, err
	}
	jobDoc, err := Normalize(req.JobDescription, req.Language)
	if err != nil {
		r.to(StateFailed)
		return nil, err
	}

	r.to(StateScoring)
	cvVec, jobVec := p.extractor.BuildVectors(cvDoc, jobDoc)

	matchScore, breakdown, err := Score(cvVec, jobVec)
	if err != nil {
		r.to(StateFailed)
		return nil, err
	}

	jobKeywords := p.extractor.Keywords(jobDoc, jobVec)
	found, missing := AnalyzeGaps(cvDoc, jobKeywords)

	r.to(StateRecommending)
	improvements := p.recommender.Recommend(breakdown, missing, cvDoc)

	r.to(StateNarrating)
	facts := NarrativeFacts{
		MatchScore:   matchScore,
		Strongest:    strongestCategory(breakdown),
		TopStrengths: KeywordDisplays(topKeywords(found, narrativeFactLimit)),
		TopGaps:      KeywordDisplays(topKeywords(missing, narrativeFactLimit)),
		Language:     req.Language,
		Tone:         req.Tone,
	}
	summary, coverLetter := p.narrative.Generate(ctx, facts)

	r.to(StateDone)
	log.Printf("📊 Analysis scored %d/100 (%d found, %d missing keywords)\n",
		matchScore, len(found), len(missing))

	return &Result{
		MatchScore:      matchScore,
		ScoreBreakdown:  breakdown,
		KeywordsFound:   KeywordDisplays(found),
		KeywordsMissing: KeywordDisplays(missing),
		Improvements:    improvements,
		Summary:         summary,
		CoverLetter:     coverLetter,
	}, nil
}

// validate fails fast before any pipeline stage runs.
func validate(req Request) error {
	if strings.TrimSpace(req.CVText) == "" {
		return NewValidationError("no CV text resolved")
	}
	if len(req.JobDescription) < MinJobDescriptionLength {
		return NewValidationError("Job description is too short for analysis.")
	}
	if _, err := ParseLanguage(string(req.Language)); err != nil {
		return err
	}
	if _, err := ParseTone(string(req.Tone)); err != nil {
		return err
	}
	return nil
}

func strongestCategory(breakdown ScoreBreakdown) Category {
	strongest := CategoryTechnical
	best := breakdown.Technical
	if breakdown.SoftSkills > best {
		strongest, best = CategorySoftSkills, breakdown.SoftSkills
	}
	if breakdown.Experience > best {
		strongest = CategoryExperience
	}
	return strongest
}

func topKeywords(keywords []Keyword, limit int) []Keyword {
	if len(keywords) <= limit {
		return keywords
	}
	return keywords[:limit]
}
