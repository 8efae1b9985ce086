package types

// Recommendation is a single scored career suggestion. FinalScore is a convex
// blend of SemanticScore and MarketScore; SemanticWeight and MarketWeight
// always sum to 1. MatchedSkills and MissingSkills partition the profile's
// skill list, both in profile declaration order (MissingSkills capped at 5).
type Recommendation struct {
	CareerTitle    string   `json:"career_title"`
	SemanticScore  float64  `json:"semantic_score"`
	MarketScore    float64  `json:"market_score"`
	FinalScore     float64  `json:"final_score"`
	SemanticWeight float64  `json:"semantic_weight"`
	MarketWeight   float64  `json:"market_weight"`
	JobCount       int      `json:"job_count"`
	AverageSalary  float64  `json:"average_salary"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
}
