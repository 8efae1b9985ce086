package embedding

import "math"

// CosineSimilarity returns the cosine of the angle between two vectors.
// Mismatched lengths or zero-norm inputs yield 0 rather than an error, so a
// degenerate embedding ranks last instead of aborting a request.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
