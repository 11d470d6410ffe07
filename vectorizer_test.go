package main

import (
	"math"
	"testing"
)

// TestVectorizerFitTransform
func TestVectorizerFitTransform(t *testing.T) {
	docs := [][]string{
		{"free", "cash", "win"},
		{"lunch", "tomorrow"},
		{"free", "prize"},
	}
	v := NewTfIdfVectorizer(0)
	if v.IsFitted() {
		t.Fatalf("vectorizer reports fitted before Fit")
	}
	if err := v.Fit(docs); err != nil {
		t.Fatalf("unable to fit vectorizer: %v", err)
	}
	if !v.IsFitted() {
		t.Fatalf("vectorizer reports unfitted after Fit")
	}
	if v.Features() != 6 {
		t.Fatalf("expected 6 features, got %d", v.Features())
	}
	X, err := v.Transform(docs)
	if err != nil {
		t.Fatalf("unable to transform: %v", err)
	}
	r, c := X.Dims()
	if r != 3 || c != 6 {
		t.Fatalf("unexpected matrix shape %dx%d", r, c)
	}
	// every non-empty row must be L2 normalized
	for i := 0; i < r; i++ {
		var norm float64
		for j := 0; j < c; j++ {
			norm += X.At(i, j) * X.At(i, j)
		}
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("row %d norm = %v, want 1", i, norm)
		}
	}
}

// TestVectorizerMaxFeatures
func TestVectorizerMaxFeatures(t *testing.T) {
	docs := [][]string{
		{"free", "free", "free", "cash", "cash", "win"},
		{"free", "cash", "lunch"},
	}
	v := NewTfIdfVectorizer(2)
	if err := v.Fit(docs); err != nil {
		t.Fatalf("unable to fit vectorizer: %v", err)
	}
	if v.Features() != 2 {
		t.Fatalf("expected capped vocabulary of 2, got %d", v.Features())
	}
	// the two most frequent terms are free and cash
	for _, term := range []string{"free", "cash"} {
		if _, ok := v.vocab[term]; !ok {
			t.Errorf("expected term %q in capped vocabulary", term)
		}
	}
}

// TestVectorizerTransformOnly
func TestVectorizerTransformOnly(t *testing.T) {
	docs := [][]string{
		{"free", "cash"},
		{"lunch", "tomorrow"},
	}
	v := NewTfIdfVectorizer(0)
	if err := v.Fit(docs); err != nil {
		t.Fatalf("unable to fit vectorizer: %v", err)
	}
	features := v.Features()

	// unknown tokens must be ignored, vocabulary never refit
	vec, err := v.TransformOne([]string{"unknown", "tokens", "only"})
	if err != nil {
		t.Fatalf("unable to transform: %v", err)
	}
	if vec.Len() != features {
		t.Fatalf("vector length %d, want %d", vec.Len(), features)
	}
	for i := 0; i < vec.Len(); i++ {
		if vec.AtVec(i) != 0 {
			t.Errorf("unknown tokens produced non-zero weight at %d", i)
		}
	}
	if v.Features() != features {
		t.Fatalf("transform changed vocabulary size")
	}
}

// TestVectorizerErrors
func TestVectorizerErrors(t *testing.T) {
	v := NewTfIdfVectorizer(0)
	if _, err := v.Transform([][]string{{"free"}}); err == nil {
		t.Fatalf("expected error on transform before fit")
	}
	if err := v.Fit(nil); err == nil {
		t.Fatalf("expected error on empty corpus")
	}
	if err := v.Fit([][]string{{}, {}}); err == nil {
		t.Fatalf("expected error on empty vocabulary")
	}
}
