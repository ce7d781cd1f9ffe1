package screening

// RecommendationResponse is the payload returned by the recommend endpoint
type RecommendationResponse struct {
	Success        bool        `json:"success"`
	Message        string      `json:"message"`
	Candidates     []Candidate `json:"candidates"`
	TotalProcessed int         `json:"total_processed"`
	ProcessingTime float64     `json:"processing_time"`
}
