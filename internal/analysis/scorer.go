package analysis

import "math"

// Score computes the overall match score and the per-category breakdown from
// the two unit-normalized term vectors.
//
// The overall score is round(100 × cosine similarity). A zero vector is a
// pipeline error upstream and is reported as such here too, never silently
// scored as 0.
func Score(cvVec, jobVec *TermVector) (int, ScoreBreakdown, error) {
	if isZero(cvVec) || isZero(jobVec) {
		return 0, ScoreBreakdown{}, NewScoringError("cannot score an empty term vector", nil)
	}

	match := clampScore(math.Round(100 * dot(cvVec, jobVec)))

	breakdown := ScoreBreakdown{
		Technical:  categoryScore(cvVec, jobVec, CategoryTechnical),
		SoftSkills: categoryScore(cvVec, jobVec, CategorySoftSkills),
		Experience: categoryScore(cvVec, jobVec, CategoryExperience),
	}

	return match, breakdown, nil
}

// categoryScore restricts both vectors to the terms of one category and
// takes the cosine similarity of the restrictions. A category the job
// posting never mentions scores 100: no requirement, no gap.
func categoryScore(cvVec, jobVec *TermVector, cat Category) int {
	var dotProduct, cvNorm, jobNorm float64

	for term, jw := range jobVec.Weights {
		if !InCategory(term, cat) {
			continue
		}
		jobNorm += jw * jw
		if cw, ok := cvVec.Weights[term]; ok {
			dotProduct += cw * jw
		}
	}
	for term, cw := range cvVec.Weights {
		if !InCategory(term, cat) {
			continue
		}
		cvNorm += cw * cw
	}

	if jobNorm == 0 {
		return 100
	}
	if cvNorm == 0 {
		return 0
	}

	cosine := dotProduct / (math.Sqrt(cvNorm) * math.Sqrt(jobNorm))
	return clampScore(math.Round(100 * cosine))
}

func dot(a, b *TermVector) float64 {
	// Iterate the smaller map.
	if len(b.Weights) < len(a.Weights) {
		a, b = b, a
	}
	var sum float64
	for term, aw := range a.Weights {
		if bw, ok := b.Weights[term]; ok {
			sum += aw * bw
		}
	}
	return sum
}

func isZero(vec *TermVector) bool {
	if vec == nil {
		return true
	}
	for _, w := range vec.Weights {
		if w != 0 {
			return false
		}
	}
	return true
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
