// Package embedding provides text embedding and vector similarity primitives.
package embedding

import "context"

// Embedder computes a vector representation of a text. Implementations wrap an
// external model service; the pipeline treats embeddings as a pre-existing
// capability and never trains or fits a model itself.
type Embedder interface {
	// Embed generates an embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the embedder.
	Close() error
}
