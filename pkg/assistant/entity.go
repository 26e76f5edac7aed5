package assistant

// ResumeAnalysis is the structured result of a resume assessment. Values are
// immutable once produced: AIScore is always within [0,100] and Strengths
// and Weaknesses are never empty.
type ResumeAnalysis struct {
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	AIScore        int      `json:"aiScore"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
	Summary        string   `json:"summary"`
}

// ChatReply carries the assistant's answer plus up to three suggested
// follow-up questions.
type ChatReply struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Hiring recommendation tiers, selected by score thresholds.
const (
	RecommendationStrong     = "Strong candidate - recommend immediate interview"
	RecommendationGood       = "Good candidate - consider for interview with additional screening"
	RecommendationEntryLevel = "Consider for entry-level positions or with additional training"
)
