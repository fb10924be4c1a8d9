package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kw(term, display string) Keyword {
	k := Keyword{Term: term, Display: display}
	k.Category, k.HasCategory = CategoryOf(term)
	return k
}

func structuredCV(t *testing.T) *NormalizedDocument {
	t.Helper()
	return mustNormalize(t, "Jane Doe\n\nEXPERIENCE\nLed the platform team at Acme for five years\n\nSKILLS\nGo, Docker, Kubernetes\n", LanguageEnglish)
}

func TestRecommendMissingSkillsForTopKeywords(t *testing.T) {
	missing := []Keyword{kw("docker", "Docker"), kw("fastapi", "FastAPI"), kw("pytest", "Pytest"), kw("terraform", "Terraform")}
	breakdown := ScoreBreakdown{Technical: 80, SoftSkills: 80, Experience: 80}

	improvements := NewRecommender(3, 10).Recommend(breakdown, missing, structuredCV(t))

	var skillDescriptions []string
	for _, imp := range improvements {
		if imp.Type == ImprovementMissingSkill {
			skillDescriptions = append(skillDescriptions, imp.Description)
		}
	}

	require.Len(t, skillDescriptions, 3)
	assert.Equal(t, "Missing 'Docker' experience", skillDescriptions[0])
	assert.Contains(t, skillDescriptions[1], "FastAPI")
	assert.Contains(t, skillDescriptions[2], "Pytest")
}

func TestRecommendSkipsUncategorizedMissingKeywords(t *testing.T) {
	missing := []Keyword{kw("zookeeping", "zookeeping"), kw("docker", "Docker")}
	breakdown := ScoreBreakdown{Technical: 80, SoftSkills: 80, Experience: 80}

	improvements := NewRecommender(3, 10).Recommend(breakdown, missing, structuredCV(t))

	require.Len(t, improvements, 1)
	assert.Equal(t, ImprovementMissingSkill, improvements[0].Type)
	assert.Contains(t, improvements[0].Description, "Docker")
}

func TestRecommendLowExperienceScoreSuggestsQuantifiedPhrasing(t *testing.T) {
	breakdown := ScoreBreakdown{Technical: 90, SoftSkills: 90, Experience: 40}

	improvements := NewRecommender(3, 10).Recommend(breakdown, nil, structuredCV(t))

	require.Len(t, improvements, 1)
	assert.Equal(t, ImprovementPhrasing, improvements[0].Type)
	assert.Contains(t, improvements[0].Suggestion, "quantified")
}

func TestRecommendGenericOpeningBoilerplate(t *testing.T) {
	cv := mustNormalize(t, "Seeking a challenging position in a dynamic company\n\nEXPERIENCE\nAcme Corp\n", LanguageEnglish)
	breakdown := ScoreBreakdown{Technical: 90, SoftSkills: 90, Experience: 90}

	improvements := NewRecommender(3, 10).Recommend(breakdown, nil, cv)

	require.Len(t, improvements, 1)
	assert.Equal(t, ImprovementPhrasing, improvements[0].Type)
	assert.Equal(t, "Generic objective statement", improvements[0].Description)
}

func TestRecommendMissingSectionHeaders(t *testing.T) {
	cv := mustNormalize(t, "I worked at several companies doing software and then I did some more software at other places over many years without any structure at all.", LanguageEnglish)
	breakdown := ScoreBreakdown{Technical: 90, SoftSkills: 90, Experience: 90}

	improvements := NewRecommender(3, 10).Recommend(breakdown, nil, cv)

	require.Len(t, improvements, 1)
	assert.Equal(t, ImprovementFormatting, improvements[0].Type)
}

func TestRecommendDetectsHeadersByKnownWordOrAllCaps(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"known word", "Experience", true},
		{"known word with colon", "Skills:", true},
		{"swedish known word", "Utbildning", true},
		{"all caps", "WORK HISTORY", true},
		{"prose", "I have worked with many teams over the years doing various things", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isHeaderLine(tt.line))
		})
	}
}

func TestRecommendCapsSuggestionCount(t *testing.T) {
	missing := []Keyword{kw("docker", "Docker"), kw("fastapi", "FastAPI"), kw("pytest", "Pytest")}
	breakdown := ScoreBreakdown{Technical: 10, SoftSkills: 10, Experience: 10}
	cv := mustNormalize(t, "Seeking a challenging position somewhere nice doing work", LanguageEnglish)

	improvements := NewRecommender(3, 2).Recommend(breakdown, missing, cv)

	assert.Len(t, improvements, 2)
}

func TestRecommendRulesAreIndependentAndOrdered(t *testing.T) {
	missing := []Keyword{kw("docker", "Docker")}
	breakdown := ScoreBreakdown{Technical: 70, SoftSkills: 70, Experience: 30}
	cv := mustNormalize(t, "Seeking a challenging position in tech doing all the things", LanguageEnglish)

	improvements := NewRecommender(3, 10).Recommend(breakdown, missing, cv)

	require.Len(t, improvements, 4)
	assert.Equal(t, ImprovementMissingSkill, improvements[0].Type)
	assert.Equal(t, ImprovementPhrasing, improvements[1].Type)
	assert.Equal(t, ImprovementPhrasing, improvements[2].Type)
	assert.Equal(t, ImprovementFormatting, improvements[3].Type)
}
