package types

import "time"

// MarketSnapshot holds labor-market statistics for a single career title.
// MarketScore is a 0-100 normalization of JobCount against an assumed maximum
// demand level. FetchedAt records when the snapshot was computed and drives
// cache expiry.
type MarketSnapshot struct {
	JobCount      int       `json:"job_count"`
	AverageSalary float64   `json:"average_salary"`
	MarketScore   float64   `json:"market_score"`
	FetchedAt     time.Time `json:"fetched_at,omitempty"`
}

// IsNeutral reports whether the snapshot is the degraded default returned when
// no market signal is available.
func (s MarketSnapshot) IsNeutral() bool {
	return s.JobCount == 0 && s.AverageSalary == 0 && s.MarketScore == 0
}
