package analysis

import "fmt"

// Language selects the stop-word list and the narrative localization.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSwedish Language = "sv"
)

// ParseLanguage validates a raw language value at the request boundary.
// Unknown values are rejected instead of silently falling back to a default.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguageSwedish:
		return Language(s), nil
	}
	return "", NewValidationError(fmt.Sprintf("unsupported language %q (expected 'en' or 'sv')", s))
}

// Tone selects the cover letter register.
type Tone string

const (
	ToneFormal   Tone = "formal"
	ToneCasual   Tone = "casual"
	ToneCreative Tone = "creative"
)

func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneFormal, ToneCasual, ToneCreative:
		return Tone(s), nil
	}
	return "", NewValidationError(fmt.Sprintf("unsupported tone %q (expected 'formal', 'casual' or 'creative')", s))
}

// MinJobDescriptionLength is the smallest job posting the pipeline accepts.
const MinJobDescriptionLength = 20

// Request carries one analysis through the pipeline. CVText is plain text,
// already resolved from the uploaded document by the parser service.
type Request struct {
	CVText         string
	JobDescription string
	Language       Language
	Tone           Tone
}

// ScoreBreakdown decomposes the match into competency categories. It is a
// diagnostic view; MatchScore is derived from the full vectors, not from
// these three numbers.
type ScoreBreakdown struct {
	Technical  int `json:"technical"`
	SoftSkills int `json:"softSkills"`
	Experience int `json:"experience"`
}

type ImprovementType string

const (
	ImprovementMissingSkill ImprovementType = "missing_skill"
	ImprovementFormatting   ImprovementType = "formatting"
	ImprovementPhrasing     ImprovementType = "phrasing"
)

// Improvement is one actionable suggestion for the candidate.
type Improvement struct {
	Type        ImprovementType `json:"type"`
	Description string          `json:"description"`
	Suggestion  string          `json:"suggestion"`
}

// Result is the assembled assessment. Keyword slices are ordered by
// descending importance in the job posting.
type Result struct {
	MatchScore      int            `json:"matchScore"`
	ScoreBreakdown  ScoreBreakdown `json:"scoreBreakdown"`
	KeywordsFound   []string       `json:"keywordsFound"`
	KeywordsMissing []string       `json:"keywordsMissing"`
	Improvements    []Improvement  `json:"improvements"`
	Summary         string         `json:"summary"`
	CoverLetter     string         `json:"coverLetter"`
}
