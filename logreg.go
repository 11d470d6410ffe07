package main

// logreg module provides binary logistic regression over TF-IDF features
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LogRegClassifier is a binary logistic regression model trained with
// batch gradient descent. Labels are 0 (ham) and 1 (spam), probabilities
// come from the sigmoid of the linear score.
type LogRegClassifier struct {
	LearningRate float64 // gradient descent step size
	MaxIter      int     // iteration cap

	weights *mat.VecDense
	bias    float64
	fitted  bool
}

// NewLogRegClassifier creates LogRegClassifier with given hyper-parameters
func NewLogRegClassifier(lrate float64, maxIter int) *LogRegClassifier {
	return &LogRegClassifier{LearningRate: lrate, MaxIter: maxIter}
}

// IsFitted returns true once model weights are learned
func (m *LogRegClassifier) IsFitted() bool {
	return m.fitted
}

// helper function to compute sigmoid of given value
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// Fit trains the model on feature matrix X with binary labels y
func (m *LogRegClassifier) Fit(X *mat.Dense, y []float64) error {
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return errors.New("unable to fit logistic regression on empty matrix")
	}
	if n != len(y) {
		return errors.New("feature matrix and labels dimension mismatch")
	}

	w := mat.NewVecDense(d, nil)
	b := 0.0
	grad := mat.NewVecDense(d, nil)
	for iter := 0; iter < m.MaxIter; iter++ {
		grad.Zero()
		gb := 0.0
		for i := 0; i < n; i++ {
			xi := X.RowView(i)
			p := sigmoid(mat.Dot(xi, w) + b)
			diff := p - y[i]
			grad.AddScaledVec(grad, diff, xi)
			gb += diff
		}
		scale := m.LearningRate / float64(n)
		w.AddScaledVec(w, -scale, grad)
		b -= scale * gb
	}

	m.weights = w
	m.bias = b
	m.fitted = true
	return nil
}

// PredictProba returns probability of the spam class for given feature vector
func (m *LogRegClassifier) PredictProba(x *mat.VecDense) (float64, error) {
	if !m.fitted {
		return 0, errors.New("logistic regression model is not fitted")
	}
	if x.Len() != m.weights.Len() {
		return 0, errors.New("feature vector dimension mismatch")
	}
	return sigmoid(mat.Dot(x, m.weights) + m.bias), nil
}

// Predict returns predicted label (0 or 1) for given feature vector
func (m *LogRegClassifier) Predict(x *mat.VecDense) (int, error) {
	p, err := m.PredictProba(x)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}
