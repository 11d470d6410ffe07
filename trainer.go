package main

// trainer module provides the training lifecycle: a mutex-guarded
// training state mutated by one background goroutine at a time and
// read by request handling goroutines
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TrainingState holds process-wide training lifecycle state. At most one
// training run is in flight, Start rejects a second one while the flag
// is set. The fitted classifier is replaced wholesale on reset.
type TrainingState struct {
	mu          sync.RWMutex
	classifier  *SpamClassifier
	history     *RunHistory
	isTraining  bool
	isTrained   bool
	progress    int
	currentStep string
	logs        []string
	lastError   string
	metrics     map[string]float64
	runID       string
}

// NewTrainingState creates initial training state
func NewTrainingState() *TrainingState {
	return &TrainingState{
		classifier: NewSpamClassifier(),
		history:    NewRunHistory(),
		metrics:    make(map[string]float64),
	}
}

// Start launches a background training run and returns its run id.
// A run already in flight is rejected, the existing run continues
// unaffected. A completed run may be repeated, retraining replaces
// the prior fitted state.
func (s *TrainingState) Start() (string, error) {
	s.mu.Lock()
	if s.isTraining {
		s.mu.Unlock()
		return "", errors.New("training already in progress")
	}
	runID := uuid.New().String()
	s.isTraining = true
	s.progress = 0
	s.currentStep = "Starting training..."
	s.logs = nil
	s.lastError = ""
	s.runID = runID
	s.mu.Unlock()

	go s.run(runID)
	return runID, nil
}

// run executes a single training attempt on a fresh classifier instance.
// On success the fitted instance replaces the current one, on failure the
// prior fitted state (if any) stays intact.
func (s *TrainingState) run(runID string) {
	started := time.Now()
	classifier := NewSpamClassifier()
	res, err := classifier.Train(s.setStep, s.logf)
	completed := time.Now()

	if err != nil {
		s.mu.Lock()
		s.isTraining = false
		s.lastError = err.Error()
		s.currentStep = fmt.Sprintf("Error: %v", err)
		s.mu.Unlock()
		log.Printf("training run %s failed, error %v", runID, err)
		return
	}

	// record the run before the in-flight flag drops, so a completed
	// status always has its history entry
	rec := TrainRecord{
		RunID:       runID,
		Dataset:     Config.DatasetFile,
		StartedAt:   started.UTC(),
		CompletedAt: completed.UTC(),
		NBAccuracy:  res.NBAccuracy,
		LRAccuracy:  res.LRAccuracy,
		Samples:     res.Samples,
		SpamCount:   res.SpamCount,
		HamCount:    res.HamCount,
		Features:    res.Features,
	}
	s.history.Add(rec)

	s.mu.Lock()
	s.isTraining = false
	s.classifier = classifier
	s.isTrained = true
	s.metrics = map[string]float64{
		"naive_bayes_accuracy":         res.NBAccuracy,
		"logistic_regression_accuracy": res.LRAccuracy,
	}
	s.mu.Unlock()
	log.Printf("training run %s completed in %v, nb=%.4f lr=%.4f",
		runID, completed.Sub(started), res.NBAccuracy, res.LRAccuracy)
}

// setStep records current step and progress percentage
func (s *TrainingState) setStep(pct int, step string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = pct
	s.currentStep = step
	s.logs = append(s.logs, step)
}

// logf appends formatted line to training logs
func (s *TrainingState) logf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if Config.Verbose > 0 {
		log.Println(line)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, line)
}

// Status returns a copy of current training status
func (s *TrainingState) Status() StatusRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec := StatusRecord{
		IsTraining:  s.isTraining,
		IsTrained:   s.isTrained,
		Progress:    s.progress,
		CurrentStep: s.currentStep,
		Metrics:     make(map[string]float64, len(s.metrics)),
		Logs:        make([]string, len(s.logs)),
		Error:       s.lastError,
		RunID:       s.runID,
	}
	for k, v := range s.metrics {
		rec.Metrics[k] = v
	}
	copy(rec.Logs, s.logs)
	return rec
}

// Classifier returns current classifier instance and its trained flag
func (s *TrainingState) Classifier() (*SpamClassifier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.classifier, s.isTrained
}

// History returns training run history records
func (s *TrainingState) History() []TrainRecord {
	return s.history.Records()
}

// Reset clears training state and discards fitted models. A reset is
// rejected while a run is in flight.
func (s *TrainingState) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isTraining {
		return errors.New("cannot reset while training is in progress")
	}
	s.classifier = NewSpamClassifier()
	s.isTrained = false
	s.progress = 0
	s.currentStep = ""
	s.logs = nil
	s.lastError = ""
	s.metrics = make(map[string]float64)
	s.runID = ""
	return nil
}
