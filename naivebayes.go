package main

// naivebayes module wraps the bayesian package into our model interface
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"errors"

	"github.com/navossoc/bayesian"
)

const (
	classHam  bayesian.Class = "Ham"
	classSpam bayesian.Class = "Spam"
)

// NBClassifier is a Multinomial Naive Bayes spam model with TF-IDF
// term weighting, backed by the bayesian package.
type NBClassifier struct {
	classifier *bayesian.Classifier
	fitted     bool
}

// NewNBClassifier creates an empty NBClassifier
func NewNBClassifier() *NBClassifier {
	return &NBClassifier{classifier: bayesian.NewClassifier(classHam, classSpam)}
}

// IsFitted returns true once the model learned the corpus
func (m *NBClassifier) IsFitted() bool {
	return m.fitted
}

// Fit learns tokenized documents with binary labels y (0 ham, 1 spam)
// and converts learned term frequencies to TF-IDF weights. Further
// learning is not possible after the conversion, re-fit creates a
// fresh underlying classifier.
func (m *NBClassifier) Fit(docs [][]string, y []float64) error {
	if len(docs) == 0 || len(docs) != len(y) {
		return errors.New("unable to fit naive bayes, empty corpus or labels mismatch")
	}
	m.classifier = bayesian.NewClassifier(classHam, classSpam)
	var nspam, nham int
	for i, doc := range docs {
		if y[i] == 1 {
			m.classifier.Learn(doc, classSpam)
			nspam += 1
		} else {
			m.classifier.Learn(doc, classHam)
			nham += 1
		}
	}
	if nspam == 0 || nham == 0 {
		return errors.New("unable to fit naive bayes, training split misses a class")
	}
	m.classifier.ConvertTermsFreqToTfIdf()
	if !m.classifier.DidConvertTfIdf {
		return errors.New("unable to convert naive bayes term frequencies to TF-IDF")
	}
	m.fitted = true
	return nil
}

// PredictProba returns probability of the spam class for given tokens.
// An empty token list falls back to the learned class priors.
func (m *NBClassifier) PredictProba(doc []string) (float64, error) {
	if !m.fitted {
		return 0, errors.New("naive bayes model is not fitted")
	}
	scores, _, _ := m.classifier.ProbScores(doc)
	// scores follow class registration order: ham, spam
	return scores[1], nil
}

// Predict returns predicted label (0 or 1) for given tokens
func (m *NBClassifier) Predict(doc []string) (int, error) {
	p, err := m.PredictProba(doc)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}
