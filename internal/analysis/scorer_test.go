package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildVectors(t *testing.T, cvText, jobText string) (*TermVector, *TermVector) {
	t.Helper()
	cv := mustNormalize(t, cvText, LanguageEnglish)
	job := mustNormalize(t, jobText, LanguageEnglish)
	cvVec, jobVec := NewExtractor(0).BuildVectors(cv, job)
	return cvVec, jobVec
}

func TestScoreIdenticalDocumentsIsPerfect(t *testing.T) {
	cvVec, jobVec := buildVectors(t,
		"python docker communication senior architect",
		"python docker communication senior architect")

	match, breakdown, err := Score(cvVec, jobVec)
	require.NoError(t, err)

	assert.Equal(t, 100, match)
	assert.Equal(t, 100, breakdown.Technical)
	assert.Equal(t, 100, breakdown.SoftSkills)
	assert.Equal(t, 100, breakdown.Experience)
}

func TestScoreDisjointDocumentsIsZero(t *testing.T) {
	cvVec, jobVec := buildVectors(t, "gardening cooking", "docker kubernetes")

	match, _, err := Score(cvVec, jobVec)
	require.NoError(t, err)

	assert.Equal(t, 0, match)
}

func TestScoreStaysInRange(t *testing.T) {
	cvVec, jobVec := buildVectors(t,
		"go python docker leadership senior experience testing sql",
		"go kubernetes docker communication junior experience rest api")

	match, breakdown, err := Score(cvVec, jobVec)
	require.NoError(t, err)

	for name, score := range map[string]int{
		"match":      match,
		"technical":  breakdown.Technical,
		"softSkills": breakdown.SoftSkills,
		"experience": breakdown.Experience,
	} {
		assert.GreaterOrEqual(t, score, 0, name)
		assert.LessOrEqual(t, score, 100, name)
	}
}

func TestCategoryAbsentFromJobScoresFull(t *testing.T) {
	// The posting mentions only technical terms: no soft-skill or experience
	// requirement means no gap.
	cvVec, jobVec := buildVectors(t, "python docker", "python docker")

	_, breakdown, err := Score(cvVec, jobVec)
	require.NoError(t, err)

	assert.Equal(t, 100, breakdown.SoftSkills)
	assert.Equal(t, 100, breakdown.Experience)
}

func TestCategoryMissingFromCVScoresZero(t *testing.T) {
	cvVec, jobVec := buildVectors(t, "gardening python", "python leadership communication")

	_, breakdown, err := Score(cvVec, jobVec)
	require.NoError(t, err)

	assert.Equal(t, 0, breakdown.SoftSkills)
}

func TestScoreRejectsZeroVector(t *testing.T) {
	empty := &TermVector{Weights: map[string]float64{}}
	full := &TermVector{Weights: map[string]float64{"go": 1}}

	_, _, err := Score(empty, full)
	require.Error(t, err)
	assert.Equal(t, KindScoring, KindOf(err))

	_, _, err = Score(full, empty)
	require.Error(t, err)
	assert.Equal(t, KindScoring, KindOf(err))
}
