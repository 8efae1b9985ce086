package types

// Tag values assigned to top jobs by similarity thresholds.
const (
	TagHot    = "Hot"
	TagNew    = "New"
	TagNormal = "Normal"
)

// TopJob is one entry of the dashboard's top-k career list.
type TopJob struct {
	CareerTitle     string  `json:"career_title"`
	MatchPercentage float64 `json:"match_percentage"`
	Tag             string  `json:"tag"`
}

// DashboardSummary aggregates presentation-oriented metrics for the single
// best-fit career profile.
type DashboardSummary struct {
	ResumeScore        int      `json:"resume_score"`
	JobMatches         int      `json:"job_matches"`
	SkillsMastered     int      `json:"skills_mastered"`
	TotalTargetSkills  int      `json:"total_target_skills"`
	ResumeFit          int      `json:"resume_fit"`
	InterviewReadiness int      `json:"interview_readiness"`
	JobMatchStrength   int      `json:"job_match_strength"`
	TopJobs            []TopJob `json:"top_jobs"`
	SkillGaps          []string `json:"skill_gaps"`
}
