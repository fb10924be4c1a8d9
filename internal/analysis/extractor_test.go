package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNormalize(t *testing.T, raw string, lang Language) *NormalizedDocument {
	t.Helper()
	doc, err := Normalize(raw, lang)
	require.NoError(t, err)
	return doc
}

func TestBuildVectorsUnitMagnitude(t *testing.T) {
	cv := mustNormalize(t, "go python docker testing communication", LanguageEnglish)
	job := mustNormalize(t, "go kubernetes terraform leadership", LanguageEnglish)

	extractor := NewExtractor(0)
	cvVec, jobVec := extractor.BuildVectors(cv, job)

	for name, vec := range map[string]*TermVector{"cv": cvVec, "job": jobVec} {
		var sum float64
		for _, w := range vec.Weights {
			sum += w * w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "%s vector should have unit magnitude", name)
	}
}

func TestBuildVectorsIDFFavorsDistinctiveTerms(t *testing.T) {
	// "go" appears in both documents, "docker" only in the CV; with equal
	// term frequency the distinctive term must weigh more.
	cv := mustNormalize(t, "go docker", LanguageEnglish)
	job := mustNormalize(t, "go kubernetes", LanguageEnglish)

	extractor := NewExtractor(0)
	cvVec, _ := extractor.BuildVectors(cv, job)

	assert.Greater(t, cvVec.Weights["docker"], cvVec.Weights["go"])
}

func TestBuildVectorsSmoothedIDFKeepsSingleDocumentTerms(t *testing.T) {
	cv := mustNormalize(t, "go docker", LanguageEnglish)
	job := mustNormalize(t, "go kubernetes", LanguageEnglish)

	extractor := NewExtractor(0)
	cvVec, jobVec := extractor.BuildVectors(cv, job)

	assert.Greater(t, cvVec.Weights["docker"], 0.0)
	assert.Greater(t, jobVec.Weights["kubernetes"], 0.0)
}

func TestKeywordsOrderedByWeightThenPosition(t *testing.T) {
	// kubernetes is unique to the job posting and repeated, so it must rank
	// first; go and python share weight, so first occurrence breaks the tie.
	cv := mustNormalize(t, "go python", LanguageEnglish)
	job := mustNormalize(t, "go python kubernetes kubernetes", LanguageEnglish)

	extractor := NewExtractor(0)
	_, jobVec := extractor.BuildVectors(cv, job)

	keywords := extractor.Keywords(job, jobVec)
	require.Len(t, keywords, 3)

	assert.Equal(t, "kubernetes", keywords[0].Term)
	assert.Equal(t, "go", keywords[1].Term)
	assert.Equal(t, "python", keywords[2].Term)
}

func TestKeywordsCarryCategoryAndDisplayForm(t *testing.T) {
	cv := mustNormalize(t, "generalist", LanguageEnglish)
	job := mustNormalize(t, "Docker leadership zookeeping", LanguageEnglish)

	extractor := NewExtractor(0)
	_, jobVec := extractor.BuildVectors(cv, job)

	byTerm := map[string]Keyword{}
	for _, kw := range extractor.Keywords(job, jobVec) {
		byTerm[kw.Term] = kw
	}

	docker := byTerm["docker"]
	assert.Equal(t, "Docker", docker.Display)
	assert.True(t, docker.HasCategory)
	assert.Equal(t, CategoryTechnical, docker.Category)

	leadership := byTerm["leadership"]
	assert.Equal(t, CategorySoftSkills, leadership.Category)

	zoo := byTerm["zookeeping"]
	assert.False(t, zoo.HasCategory)
}

func TestKeywordsThresholdFiltersWeakTerms(t *testing.T) {
	cv := mustNormalize(t, "go", LanguageEnglish)
	job := mustNormalize(t, "go docker", LanguageEnglish)

	extractor := NewExtractor(math.MaxFloat64)
	_, jobVec := extractor.BuildVectors(cv, job)

	assert.Empty(t, extractor.Keywords(job, jobVec))
}
