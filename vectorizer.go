package main

// vectorizer module provides TF-IDF feature extraction
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// TfIdfVectorizer converts token documents into L2-normalized TF-IDF
// feature matrices. Fit builds the vocabulary and idf weights, Transform
// never refits and ignores out-of-vocabulary tokens.
type TfIdfVectorizer struct {
	MaxFeatures int                // vocabulary cap, 0 means unlimited
	vocab       map[string]int     // term to column index
	idf         []float64          // per-term inverse document frequency
	fitted      bool
}

// NewTfIdfVectorizer creates TfIdfVectorizer with given vocabulary cap
func NewTfIdfVectorizer(maxFeatures int) *TfIdfVectorizer {
	return &TfIdfVectorizer{MaxFeatures: maxFeatures}
}

// IsFitted returns true once vocabulary and idf weights are learned
func (v *TfIdfVectorizer) IsFitted() bool {
	return v.fitted
}

// Features returns number of learned vocabulary terms
func (v *TfIdfVectorizer) Features() int {
	return len(v.idf)
}

// Fit learns vocabulary and idf weights from tokenized documents.
// When MaxFeatures is set the vocabulary keeps the terms with highest
// corpus frequency, ties broken alphabetically for reproducibility.
func (v *TfIdfVectorizer) Fit(docs [][]string) error {
	if len(docs) == 0 {
		return errors.New("unable to fit vectorizer on empty corpus")
	}
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range doc {
			termFreq[term] += 1
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term] += 1
			}
		}
	}

	if len(termFreq) == 0 {
		return errors.New("corpus produced empty vocabulary")
	}
	terms := make([]string, 0, len(termFreq))
	for term := range termFreq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termFreq[terms[i]] != termFreq[terms[j]] {
			return termFreq[terms[i]] > termFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}
	// column order is alphabetical within the selected vocabulary
	sort.Strings(terms)

	n := float64(len(docs))
	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocab[term] = i
		// smooth idf, same formula as sklearn TfidfVectorizer
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	v.fitted = true
	return nil
}

// Transform converts tokenized documents into TF-IDF feature matrix
func (v *TfIdfVectorizer) Transform(docs [][]string) (*mat.Dense, error) {
	if !v.fitted {
		return nil, errors.New("vectorizer is not fitted")
	}
	X := mat.NewDense(len(docs), len(v.idf), nil)
	for i, doc := range docs {
		row := v.vectorize(doc)
		X.SetRow(i, row)
	}
	return X, nil
}

// TransformOne converts a single tokenized document into a feature vector
func (v *TfIdfVectorizer) TransformOne(doc []string) (*mat.VecDense, error) {
	if !v.fitted {
		return nil, errors.New("vectorizer is not fitted")
	}
	return mat.NewVecDense(len(v.idf), v.vectorize(doc)), nil
}

// helper function to compute single L2-normalized tf-idf row
func (v *TfIdfVectorizer) vectorize(doc []string) []float64 {
	row := make([]float64, len(v.idf))
	for _, term := range doc {
		if idx, ok := v.vocab[term]; ok {
			row[idx] += 1
		}
	}
	var norm float64
	for idx := range row {
		if row[idx] > 0 {
			row[idx] *= v.idf[idx]
			norm += row[idx] * row[idx]
		}
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range row {
			row[idx] /= norm
		}
	}
	return row
}
