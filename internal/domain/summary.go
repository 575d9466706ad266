package domain

// Definition is a term found in the study text together with its meaning.
// Either field may be empty when the model omitted it.
type Definition struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// SummaryResult is the structured summary of a piece of study text.
// KeyPoints and Definitions keep the order in which the model returned them
// and are never nil.
type SummaryResult struct {
	Summary     string       `json:"summary"`
	KeyPoints   []string     `json:"key_points"`
	Definitions []Definition `json:"definitions"`
}

// NewSummaryResult creates a SummaryResult, normalising nil slices to empty ones.
func NewSummaryResult(summary string, keyPoints []string, definitions []Definition) *SummaryResult {
	if keyPoints == nil {
		keyPoints = []string{}
	}
	if definitions == nil {
		definitions = []Definition{}
	}

	return &SummaryResult{
		Summary:     summary,
		KeyPoints:   keyPoints,
		Definitions: definitions,
	}
}
