package store

import "math"

// EmbeddingDim is the fixed length of every stored embedding vector.
const EmbeddingDim = 16

// Embed maps text to a deterministic 16-dimension vector using character
// hashing. It is a placeholder for offline ranking, not a semantic model:
// each rune adds a small positive value to the slot at its position mod 16.
// The accumulation is intentionally not normalized by text length.
func Embed(text string) []float64 {
	vector := make([]float64, EmbeddingDim)
	idx := 0
	for _, r := range text {
		vector[idx%EmbeddingDim] += float64(int(r)%31) / 100.0
		idx++
	}
	return vector
}

// CosineSimilarity returns the cosine of the angle between two vectors.
// A zero-magnitude vector on either side yields 0 instead of dividing by zero.
func CosineSimilarity(left, right []float64) float64 {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += left[i] * right[i]
	}
	var leftNorm, rightNorm float64
	for _, v := range left {
		leftNorm += v * v
	}
	for _, v := range right {
		rightNorm += v * v
	}
	if leftNorm == 0 || rightNorm == 0 {
		return 0
	}
	return dot / (math.Sqrt(leftNorm) * math.Sqrt(rightNorm))
}
