package analysis

import (
	"fmt"
	"strings"
)

const (
	// DefaultTopMissingKeywords is how many missing keywords get their own
	// missing_skill suggestion.
	DefaultTopMissingKeywords = 3
	// DefaultMaxImprovements caps the suggestion list to bound payload size.
	DefaultMaxImprovements = 6

	lowExperienceScore = 50
)

// genericOpenings are boilerplate objective phrases. A CV whose opening
// lines match one of these gets a phrasing suggestion to replace it with a
// targeted profile statement.
var genericOpenings = []string{
	"seeking a challenging position",
	"seeking a challenging role",
	"looking for an opportunity",
	"looking for a new opportunity",
	"hardworking individual",
	"hard-working individual",
	"motivated self-starter",
	"objective: to obtain",
	"to whom it may concern",
	"söker en utmanande tjänst",
	"söker nya utmaningar",
	"söker en ny utmaning",
}

// headerWords are section titles a well-structured CV is expected to carry,
// in either supported language.
var headerWords = map[string]bool{
	"experience": true, "work experience": true, "work history": true,
	"employment": true, "employment history": true, "education": true,
	"skills": true, "technical skills": true, "summary": true,
	"profile": true, "projects": true, "certifications": true,
	"references": true, "contact": true, "languages": true,
	"erfarenhet": true, "arbetslivserfarenhet": true, "utbildning": true,
	"färdigheter": true, "kompetens": true, "kompetenser": true,
	"profil": true, "projekt": true, "certifikat": true,
	"referenser": true, "kontakt": true, "språk": true,
}

// Recommender maps scoring and gap signals to structured suggestions. The
// rules run in a fixed order and are independent of each other; none are
// mutually exclusive.
type Recommender struct {
	topMissing      int
	maxImprovements int
}

func NewRecommender(topMissing, maxImprovements int) *Recommender {
	if topMissing <= 0 {
		topMissing = DefaultTopMissingKeywords
	}
	if maxImprovements <= 0 {
		maxImprovements = DefaultMaxImprovements
	}
	return &Recommender{topMissing: topMissing, maxImprovements: maxImprovements}
}

// Recommend evaluates the rule set against the breakdown, the missing
// keywords (ordered most important first) and the normalized CV.
func (r *Recommender) Recommend(breakdown ScoreBreakdown, missing []Keyword, cv *NormalizedDocument) []Improvement {
	var improvements []Improvement

	// Rule 1: the top missing keywords with a known category each get a
	// missing_skill suggestion.
	emitted := 0
	for _, kw := range missing {
		if emitted >= r.topMissing {
			break
		}
		if !kw.HasCategory {
			continue
		}
		improvements = append(improvements, Improvement{
			Type:        ImprovementMissingSkill,
			Description: fmt.Sprintf("Missing '%s' experience", kw.Display),
			Suggestion:  missingSkillSuggestion(kw),
		})
		emitted++
	}

	// Rule 2: a weak experience score suggests the roles are described
	// without measurable outcomes.
	if breakdown.Experience < lowExperienceScore {
		improvements = append(improvements, Improvement{
			Type:        ImprovementPhrasing,
			Description: "Experience section lacks weight",
			Suggestion:  "Rework role descriptions into quantified achievement statements: scope, team size, numbers and outcomes.",
		})
	}

	// Rule 3: generic objective boilerplate in the opening lines.
	if hasGenericOpening(cv) {
		improvements = append(improvements, Improvement{
			Type:        ImprovementPhrasing,
			Description: "Generic objective statement",
			Suggestion:  "Replace the generic opening with a targeted profile statement aimed at this specific role.",
		})
	}

	// Rule 4: no detectable section headers.
	if !hasSectionHeaders(cv) {
		improvements = append(improvements, Improvement{
			Type:        ImprovementFormatting,
			Description: "No clear section headers detected",
			Suggestion:  "Organize the CV into labelled sections such as Experience, Skills and Education so both reviewers and screening software can navigate it.",
		})
	}

	if len(improvements) > r.maxImprovements {
		improvements = improvements[:r.maxImprovements]
	}
	return improvements
}

func missingSkillSuggestion(kw Keyword) string {
	switch kw.Category {
	case CategorySoftSkills:
		return fmt.Sprintf("Add a concrete example demonstrating %s, ideally tied to a project outcome.", kw.Display)
	case CategoryExperience:
		return fmt.Sprintf("Make your level of seniority explicit; the posting emphasizes '%s'.", kw.Display)
	default:
		return fmt.Sprintf("Add a section describing hands-on work with %s in previous projects.", kw.Display)
	}
}

// hasGenericOpening checks the first few raw lines of the CV against the
// boilerplate library.
func hasGenericOpening(cv *NormalizedDocument) bool {
	limit := 3
	if len(cv.Lines) < limit {
		limit = len(cv.Lines)
	}
	opening := strings.ToLower(strings.Join(cv.Lines[:limit], " "))
	for _, phrase := range genericOpenings {
		if strings.Contains(opening, phrase) {
			return true
		}
	}
	return false
}

// hasSectionHeaders looks for at least one line that reads like a section
// title: a known header word (optionally with a trailing colon) or a short
// all-caps line.
func hasSectionHeaders(cv *NormalizedDocument) bool {
	for _, line := range cv.Lines {
		if isHeaderLine(line) {
			return true
		}
	}
	return false
}

func isHeaderLine(line string) bool {
	if len(line) > 48 {
		return false
	}
	trimmed := strings.TrimSuffix(line, ":")
	if headerWords[strings.ToLower(trimmed)] {
		return true
	}
	return isAllCapsTitle(trimmed)
}

func isAllCapsTitle(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case strings.ContainsRune(" \t&/-", r):
		case r >= 'A' && r <= 'Z', r == 'Å', r == 'Ä', r == 'Ö':
			letters++
		default:
			return false
		}
	}
	return letters >= 3
}
