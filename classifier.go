package main

// classifier module provides the spam classification service which owns
// the fitted vectorizer and both models
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// SpamClassifier owns one fitted TF-IDF vectorizer and two fitted models.
// The fitted state is read-only after Train returns, concurrent Predict
// calls are safe. A reset discards the whole instance, there is no
// incremental mutation.
type SpamClassifier struct {
	vectorizer *TfIdfVectorizer
	nb         *NBClassifier
	logreg     *LogRegClassifier
	fitted     bool
}

// NewSpamClassifier creates an untrained SpamClassifier
func NewSpamClassifier() *SpamClassifier {
	return &SpamClassifier{
		vectorizer: NewTfIdfVectorizer(Config.MaxFeatures),
		nb:         NewNBClassifier(),
		logreg:     NewLogRegClassifier(Config.LearningRate, Config.MaxIter),
	}
}

// IsTrained returns true once both models are fitted
func (c *SpamClassifier) IsTrained() bool {
	return c.fitted
}

// Train loads the configured dataset, preprocesses and vectorizes it,
// fits both models on a seeded train/test split and evaluates their
// accuracy on the held-out part. Re-running simply replaces the prior
// fitted state. progress and logf callbacks may be nil.
func (c *SpamClassifier) Train(progress func(pct int, step string), logf func(format string, args ...interface{})) (TrainResult, error) {
	if progress == nil {
		progress = func(int, string) {}
	}
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	var res TrainResult

	progress(10, "Loading SMS dataset...")
	ds, err := loadDataset(Config.DatasetFile)
	if err != nil {
		return res, err
	}
	logf("loaded dataset %s: %d messages (%d spam, %d ham)",
		Config.DatasetFile, len(ds.Samples), ds.SpamCount, ds.HamCount)
	if ds.SpamCount == 0 || ds.HamCount == 0 {
		return res, errors.New("dataset must contain both spam and ham messages")
	}

	progress(30, "Preprocessing text data...")
	docs := make([][]string, len(ds.Samples))
	labels := make([]float64, len(ds.Samples))
	for i, s := range ds.Samples {
		docs[i] = tokenize(s.Message)
		if s.Label == "spam" {
			labels[i] = 1
		}
	}

	progress(50, "Extracting features using TF-IDF...")
	if err := c.vectorizer.Fit(docs); err != nil {
		return res, err
	}
	logf("TF-IDF vocabulary size: %d", c.vectorizer.Features())

	trainIdx, testIdx := splitIndices(len(docs), Config.TestSize, Config.Seed)
	logf("training set size: %d, testing set size: %d", len(trainIdx), len(testIdx))

	trainDocs := make([][]string, len(trainIdx))
	trainLabels := make([]float64, len(trainIdx))
	for i, idx := range trainIdx {
		trainDocs[i] = docs[idx]
		trainLabels[i] = labels[idx]
	}
	testDocs := make([][]string, len(testIdx))
	testLabels := make([]float64, len(testIdx))
	for i, idx := range testIdx {
		testDocs[i] = docs[idx]
		testLabels[i] = labels[idx]
	}

	progress(70, "Training Naive Bayes classifier...")
	if err := c.nb.Fit(trainDocs, trainLabels); err != nil {
		return res, err
	}
	nbAcc, err := c.nbAccuracy(testDocs, testLabels)
	if err != nil {
		return res, err
	}
	logf("Naive Bayes accuracy: %.4f", nbAcc)

	progress(90, "Training Logistic Regression...")
	Xtrain, err := c.vectorizer.Transform(trainDocs)
	if err != nil {
		return res, err
	}
	if err := c.logreg.Fit(Xtrain, trainLabels); err != nil {
		return res, err
	}
	Xtest, err := c.vectorizer.Transform(testDocs)
	if err != nil {
		return res, err
	}
	lrAcc, err := c.lrAccuracy(Xtest, testLabels)
	if err != nil {
		return res, err
	}
	logf("Logistic Regression accuracy: %.4f", lrAcc)

	c.fitted = true
	res = TrainResult{
		NBAccuracy: nbAcc,
		LRAccuracy: lrAcc,
		Samples:    len(ds.Samples),
		SpamCount:  ds.SpamCount,
		HamCount:   ds.HamCount,
		Features:   c.vectorizer.Features(),
	}
	progress(100, "Training completed successfully!")
	return res, nil
}

// Predict classifies a single message with both fitted models. The input
// is normalized with the same preprocessing used during training and
// transformed by the already-fitted vectorizer.
func (c *SpamClassifier) Predict(message string) (PredictionResult, error) {
	var res PredictionResult
	if !c.fitted {
		return res, errors.New("model is not trained")
	}
	tokens := tokenize(message)

	nbProb, err := c.nb.PredictProba(tokens)
	if err != nil {
		return res, err
	}
	vec, err := c.vectorizer.TransformOne(tokens)
	if err != nil {
		return res, err
	}
	lrProb, err := c.logreg.PredictProba(vec)
	if err != nil {
		return res, err
	}

	res = PredictionResult{
		Message:                      message,
		NaiveBayesResult:             LabelNotSpam,
		NaiveBayesConfidence:         1 - nbProb,
		LogisticRegressionResult:     LabelNotSpam,
		LogisticRegressionConfidence: 1 - lrProb,
	}
	if nbProb >= 0.5 {
		res.NaiveBayesResult = LabelSpam
		res.NaiveBayesConfidence = nbProb
	}
	if lrProb >= 0.5 {
		res.LogisticRegressionResult = LabelSpam
		res.LogisticRegressionConfidence = lrProb
	}
	return res, nil
}

// helper function to compute Naive Bayes accuracy on held-out documents
func (c *SpamClassifier) nbAccuracy(docs [][]string, labels []float64) (float64, error) {
	if len(docs) == 0 {
		return 0, errors.New("empty evaluation split")
	}
	var correct int
	for i, doc := range docs {
		pred, err := c.nb.Predict(doc)
		if err != nil {
			return 0, err
		}
		if float64(pred) == labels[i] {
			correct += 1
		}
	}
	return float64(correct) / float64(len(docs)), nil
}

// helper function to compute Logistic Regression accuracy on held-out matrix
func (c *SpamClassifier) lrAccuracy(X *mat.Dense, labels []float64) (float64, error) {
	n, _ := X.Dims()
	if n == 0 {
		return 0, errors.New("empty evaluation split")
	}
	var correct int
	for i := 0; i < n; i++ {
		row := mat.VecDenseCopyOf(X.RowView(i))
		pred, err := c.logreg.Predict(row)
		if err != nil {
			return 0, err
		}
		if float64(pred) == labels[i] {
			correct += 1
		}
	}
	return float64(correct) / float64(len(labels)), nil
}

// splitIndices shuffles sample indices with the given seed and splits
// them into train and test parts. testSize is clamped so both parts
// are non-empty.
func splitIndices(n int, testSize float64, seed int64) ([]int, []int) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rnd := rand.New(rand.NewSource(seed))
	rnd.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	ntest := int(float64(n) * testSize)
	if ntest < 1 {
		ntest = 1
	}
	if ntest >= n {
		ntest = n - 1
	}
	return idx[ntest:], idx[:ntest]
}

// String provides human readable representation of classifier state
func (c *SpamClassifier) String() string {
	return fmt.Sprintf("SpamClassifier{fitted: %v, features: %d}", c.fitted, c.vectorizer.Features())
}
