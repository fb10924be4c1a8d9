package analysis

// Process-wide, read-only vocabulary tables. Initialized once at package load
// and never mutated afterwards, so concurrent requests can share them without
// locking.

// Category is a competency bucket used for the score breakdown and for
// classifying keyword gaps.
type Category string

const (
	CategoryTechnical  Category = "technical"
	CategorySoftSkills Category = "softSkills"
	CategoryExperience Category = "experience"
)

// Categories lists the breakdown buckets in their fixed output order.
var Categories = []Category{CategoryTechnical, CategorySoftSkills, CategoryExperience}

// stopWordsEN filters common English words that add noise to term matching.
var stopWordsEN = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "such": true,
	"any": true, "other": true, "would": true, "should": true, "these": true,
	"when": true, "where": true, "while": true, "within": true, "across": true,
	"well": true, "very": true, "both": true, "per": true, "via": true,
	"etc": true, "e.g": true, "i.e": true, "an": true, "of": true,
	"in": true, "on": true, "at": true, "to": true, "as": true,
	"is": true, "be": true, "by": true, "or": true, "we": true,
	"it": true, "us": true, "if": true, "do": true, "so": true,
}

// stopWordsSV covers the Swedish function words that show up in job postings.
var stopWordsSV = map[string]bool{
	"och": true, "att": true, "det": true, "som": true, "en": true,
	"ett": true, "är": true, "för": true, "på": true, "med": true,
	"av": true, "den": true, "till": true, "du": true, "vi": true,
	"har": true, "kan": true, "ska": true, "skall": true, "om": true,
	"inte": true, "din": true, "vår": true, "eller": true, "hos": true,
	"samt": true, "våra": true, "dina": true, "de": true, "dig": true,
	"oss": true, "man": true, "även": true, "där": true, "när": true,
	"här": true, "var": true, "vara": true, "blir": true, "bli": true,
	"detta": true, "denna": true, "dessa": true, "andra": true, "mycket": true,
	"i": true, "ur": true, "vid": true, "nu": true, "då": true,
}

// synonyms collapses spelling variants of technical terms to one canonical
// form so "CI/CD" and "CI-CD" count as the same skill. Keys and values are
// already lowercased.
var synonyms = map[string]string{
	"ci-cd":        "ci/cd",
	"cicd":         "ci/cd",
	"ci.cd":        "ci/cd",
	"golang":       "go",
	"k8s":          "kubernetes",
	"js":           "javascript",
	"ts":           "typescript",
	"reactjs":      "react",
	"react.js":     "react",
	"nodejs":       "node.js",
	"node":         "node.js",
	"postgres":     "postgresql",
	"tailwindcss":  "tailwind",
	"tailwind.css": "tailwind",
	"py":           "python",
	"gql":          "graphql",
	"tf":           "terraform",
	"ml":           "machine-learning",
	"devops":       "ci/cd",
}

// categoryTerms maps each breakdown category to its associated vocabulary.
// The lists are intentionally compact; unknown terms simply stay
// uncategorized and only contribute to the overall score.
var categoryTerms = map[Category]map[string]bool{
	CategoryTechnical: {
		"go": true, "python": true, "java": true, "javascript": true,
		"typescript": true, "react": true, "vue": true, "angular": true,
		"node.js": true, "docker": true, "kubernetes": true, "ci/cd": true,
		"fastapi": true, "django": true, "flask": true, "pytest": true,
		"sql": true, "postgresql": true, "mysql": true, "mongodb": true,
		"redis": true, "aws": true, "azure": true, "gcp": true,
		"terraform": true, "linux": true, "git": true, "rest": true,
		"api": true, "apis": true, "graphql": true, "grpc": true,
		"html": true, "css": true, "tailwind": true, "owasp": true,
		"security": true, "testing": true, "microservices": true,
		"c++": true, "c#": true, "rust": true, "kotlin": true,
		"swift": true, "php": true, "ruby": true, "scala": true,
		"kafka": true, "elasticsearch": true, "nlp": true,
		"machine-learning": true, "ai": true, "backend": true,
		"frontend": true, "fullstack": true, "databases": true,
	},
	CategorySoftSkills: {
		"communication": true, "leadership": true, "teamwork": true,
		"collaboration": true, "collaborative": true, "mentoring": true,
		"mentorship": true, "agile": true, "scrum": true, "kanban": true,
		"stakeholder": true, "stakeholders": true, "presentation": true,
		"adaptability": true, "ownership": true, "initiative": true,
		"proactive": true, "curious": true, "empathy": true,
		"facilitation": true, "negotiation": true, "coaching": true,
		"kommunikation": true, "ledarskap": true, "samarbete": true,
		"lagarbete": true, "ansvar": true,
	},
	CategoryExperience: {
		"senior": true, "junior": true, "lead": true, "principal": true,
		"architect": true, "manager": true, "managed": true, "led": true,
		"years": true, "experience": true, "experienced": true,
		"delivered": true, "shipped": true, "founded": true, "built": true,
		"scaled": true, "launched": true, "maintained": true,
		"production": true, "enterprise": true, "startup": true,
		"erfarenhet": true, "erfaren": true, "år": true, "ledde": true,
		"ansvarade": true, "levererade": true,
	},
}

// CategoryOf returns the competency category a canonical term belongs to.
func CategoryOf(term string) (Category, bool) {
	for _, cat := range Categories {
		if categoryTerms[cat][term] {
			return cat, true
		}
	}
	return "", false
}

// InCategory reports whether a canonical term belongs to the given category.
func InCategory(term string, cat Category) bool {
	return categoryTerms[cat][term]
}

func stopWordsFor(lang Language) map[string]bool {
	if lang == LanguageSwedish {
		return stopWordsSV
	}
	return stopWordsEN
}
