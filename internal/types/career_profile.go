package types

// CareerProfile is one entry of the static career corpus. The corpus is loaded
// once at process start and is read-only afterwards, so profiles are safe to
// share across concurrent requests.
type CareerProfile struct {
	CareerTitle string    `json:"career_title"`
	Description string    `json:"description,omitempty"`
	Skills      []string  `json:"skills"`
	Embedding   []float32 `json:"embedding"`
}
