package screening

// Candidate is one uploaded resume flowing through the ranking pipeline.
// SimilarityScore and MatchPercentage are set exactly once by the ranker;
// the AI fields are set exactly once by the insight generator (success,
// failure or fallback), always together.
type Candidate struct {
	Name            string  `json:"name"`
	Filename        string  `json:"filename"`
	ResumeText      string  `json:"resume_text,omitempty"`
	SimilarityScore float64 `json:"similarity_score"`
	MatchPercentage float64 `json:"match_percentage"`
	AISummary       string  `json:"ai_summary,omitempty"`
	AIProvider      string  `json:"ai_provider,omitempty"`
	AIGenerated     bool    `json:"ai_generated"`
}

// RankedEntry is one row of the ranking output, immutable once produced.
// Entries are totally ordered by Score descending; candidates with equal
// scores keep their input order.
type RankedEntry struct {
	Name     string  `json:"name"`
	Filename string  `json:"filename"`
	Score    float64 `json:"similarity_score"`

	// Index is the candidate's position in the ranking input. It is what
	// callers re-associate on; names and filenames are not unique.
	Index int `json:"-"`
}

// ResumeFile is an uploaded file before extraction
type ResumeFile struct {
	Filename string
	Data     []byte
}
