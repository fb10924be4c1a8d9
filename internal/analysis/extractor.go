package analysis

import (
	"math"
	"sort"
)

// TermVector is the sparse TF-IDF representation of one document,
// L2-normalized so the dot product of two vectors is their cosine
// similarity.
type TermVector struct {
	Weights map[string]float64
}

// Keyword is a significant term of a document, carrying everything the gap
// analyzer and recommender need: canonical form, the surface form it first
// appeared as, its weight, its first position (for deterministic tie-breaks)
// and its competency category when the lexicon knows it.
type Keyword struct {
	Term        string
	Display     string
	Weight      float64
	Position    int
	Category    Category
	HasCategory bool
}

// DefaultKeywordThreshold is the minimum normalized weight for a term to
// count as a significant keyword.
const DefaultKeywordThreshold = 0.05

// Extractor builds term vectors and keyword sets over the two-document
// corpus {CV, job posting}.
type Extractor struct {
	threshold float64
}

func NewExtractor(threshold float64) *Extractor {
	if threshold <= 0 {
		threshold = DefaultKeywordThreshold
	}
	return &Extractor{threshold: threshold}
}

// BuildVectors computes tf×idf weights for both documents. The IDF is
// Laplace-smoothed over the two-document corpus,
// idf(t) = log(3/(df(t)+1)) + 1, so a term present in only one document
// still gets non-zero weight. Each vector is scaled to unit magnitude.
func (e *Extractor) BuildVectors(cv, job *NormalizedDocument) (cvVec, jobVec *TermVector) {
	df := make(map[string]int)
	for term := range cv.Freq {
		df[term]++
	}
	for term := range job.Freq {
		df[term]++
	}

	idf := func(term string) float64 {
		return math.Log(3.0/float64(df[term]+1)) + 1
	}

	build := func(doc *NormalizedDocument) *TermVector {
		vec := &TermVector{Weights: make(map[string]float64, len(doc.Freq))}
		for term, count := range doc.Freq {
			vec.Weights[term] = float64(count) * idf(term)
		}
		normalizeVector(vec)
		return vec
	}

	return build(cv), build(job)
}

// Keywords returns the document's significant terms (weight above the
// threshold), tagged with their category where the lexicon applies, ordered
// by descending weight with ties broken by first occurrence.
func (e *Extractor) Keywords(doc *NormalizedDocument, vec *TermVector) []Keyword {
	var keywords []Keyword
	for term, weight := range vec.Weights {
		if weight < e.threshold {
			continue
		}
		kw := Keyword{
			Term:     term,
			Display:  doc.Display[term],
			Weight:   weight,
			Position: doc.Positions[term],
		}
		kw.Category, kw.HasCategory = CategoryOf(term)
		keywords = append(keywords, kw)
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Weight != keywords[j].Weight {
			return keywords[i].Weight > keywords[j].Weight
		}
		return keywords[i].Position < keywords[j].Position
	})

	return keywords
}

func normalizeVector(vec *TermVector) {
	var sum float64
	for _, w := range vec.Weights {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for term, w := range vec.Weights {
		vec.Weights[term] = w / norm
	}
}
