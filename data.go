package main

// data module holds all data representations used in our package
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"encoding/json"
	"time"
)

// labels used throughout the classification APIs
const (
	LabelSpam    = "Spam"
	LabelNotSpam = "Not Spam"
)

// DatasetLabels defines supported dataset labels
var DatasetLabels = []string{"ham", "spam"}

// StatusRecord represents training status returned by /api/status
type StatusRecord struct {
	IsTraining  bool               `json:"is_training"`  // training run in flight
	IsTrained   bool               `json:"is_trained"`   // fitted models available
	Progress    int                `json:"progress"`     // progress percentage 0-100
	CurrentStep string             `json:"current_step"` // human readable step
	Metrics     map[string]float64 `json:"metrics"`      // per-model accuracy
	Logs        []string           `json:"logs"`         // training log lines
	Error       string             `json:"error"`        // last training error
	RunID       string             `json:"run_id,omitempty"` // current/last run identifier
}

// PredictRequest represents /api/predict request body
type PredictRequest struct {
	Message string `json:"message"` // SMS message text
}

// BatchPredictRequest represents /api/batch-predict request body
type BatchPredictRequest struct {
	Messages []string `json:"messages"` // SMS message texts
}

// PredictionResult represents per-message classification outcome
type PredictionResult struct {
	Message                      string  `json:"message"`                        // original message
	NaiveBayesResult             string  `json:"naive_bayes_result"`             // Spam or Not Spam
	NaiveBayesConfidence         float64 `json:"naive_bayes_confidence"`         // probability of predicted class
	LogisticRegressionResult     string  `json:"logistic_regression_result"`     // Spam or Not Spam
	LogisticRegressionConfidence float64 `json:"logistic_regression_confidence"` // probability of predicted class
}

// BatchPredictionResult represents /api/batch-predict response
type BatchPredictionResult struct {
	Results []PredictionResult `json:"results"` // one entry per input message, input order
}

// TrainResult represents outcome of a single training run
type TrainResult struct {
	NBAccuracy float64 // Naive Bayes accuracy on held-out split
	LRAccuracy float64 // Logistic Regression accuracy on held-out split
	Samples    int     // total dataset samples
	SpamCount  int     // spam samples in dataset
	HamCount   int     // ham samples in dataset
	Features   int     // TF-IDF vocabulary size
}

// TrainRecord defines training run history record
type TrainRecord struct {
	RunID       string    `json:"run_id" bson:"run_id"`             // run identifier
	Dataset     string    `json:"dataset" bson:"dataset"`           // dataset file used
	StartedAt   time.Time `json:"started_at" bson:"started_at"`     // run start time
	CompletedAt time.Time `json:"completed_at" bson:"completed_at"` // run completion time
	NBAccuracy  float64   `json:"naive_bayes_accuracy" bson:"naive_bayes_accuracy"`
	LRAccuracy  float64   `json:"logistic_regression_accuracy" bson:"logistic_regression_accuracy"`
	Samples     int       `json:"samples" bson:"samples"`   // total dataset samples
	SpamCount   int       `json:"spam" bson:"spam"`         // spam samples
	HamCount    int       `json:"ham" bson:"ham"`           // ham samples
	Features    int       `json:"features" bson:"features"` // TF-IDF vocabulary size
}

// ToJSON provides string representation of TrainRecord
func (r TrainRecord) ToJSON() string {
	// create pretty JSON representation of the record
	data, _ := json.MarshalIndent(r, "", "    ")
	return string(data)
}
