package analysis

// AnalyzeGaps partitions the job posting's significant keywords into those
// the CV mentions anywhere (found) and those it does not (missing).
//
// Membership is checked against the CV's full term set, not only its own
// significant keywords, so a skill buried once in the CV still counts as
// found. Both slices keep the job keywords' ordering: descending weight,
// ties by first occurrence in the job text, which jobKeywords already
// guarantees. Found and missing are disjoint by construction.
func AnalyzeGaps(cv *NormalizedDocument, jobKeywords []Keyword) (found, missing []Keyword) {
	for _, kw := range jobKeywords {
		if cv.Contains(kw.Term) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return found, missing
}

// KeywordDisplays projects keywords onto their surface forms for the result
// payload.
func KeywordDisplays(keywords []Keyword) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, kw.Display)
	}
	return out
}
