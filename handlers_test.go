package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// helper function to initialize server pieces for handler tests
func initTestServer(t *testing.T) http.Handler {
	t.Helper()
	setTestConfig(t, makeTestDataset(t))
	Config.LimiterPeriod = "10000-S"
	initLimiter(Config.LimiterPeriod)
	state = NewTrainingState()
	return bunRouter()
}

// helper function to issue JSON request against test router
func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) (int, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("unable to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var rec map[string]json.RawMessage
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
			t.Fatalf("unable to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, rec
}

// helper function to train models through the API and wait for completion
func trainViaAPI(t *testing.T, router http.Handler) {
	t.Helper()
	code, _ := doRequest(t, router, "POST", "/api/train", nil)
	if code != http.StatusOK {
		t.Fatalf("train request failed with code %d", code)
	}
	status := waitTraining(t, state)
	if status.Error != "" {
		t.Fatalf("training failed: %v", status.Error)
	}
}

// TestStatusHandlerInitial
func TestStatusHandlerInitial(t *testing.T) {
	router := initTestServer(t)
	code, _ := doRequest(t, router, "GET", "/api/status", nil)
	if code != http.StatusOK {
		t.Fatalf("status request failed with code %d", code)
	}
	status := state.Status()
	if status.IsTraining || status.IsTrained {
		t.Fatalf("unexpected initial status: %+v", status)
	}
}

// TestPredictHandlerNotTrained
func TestPredictHandlerNotTrained(t *testing.T) {
	router := initTestServer(t)
	code, rec := doRequest(t, router, "POST", "/api/predict",
		PredictRequest{Message: "WIN FREE CASH NOW"})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 before training, got %d", code)
	}
	if _, ok := rec["error"]; !ok {
		t.Fatalf("expected error field in response: %v", rec)
	}
}

// TestPredictHandlerEmptyMessage
func TestPredictHandlerEmptyMessage(t *testing.T) {
	router := initTestServer(t)
	trainViaAPI(t, router)
	code, _ := doRequest(t, router, "POST", "/api/predict", PredictRequest{Message: "   "})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty message, got %d", code)
	}
}

// TestTrainPredictFlow
func TestTrainPredictFlow(t *testing.T) {
	router := initTestServer(t)
	trainViaAPI(t, router)

	code, rec := doRequest(t, router, "GET", "/api/status", nil)
	if code != http.StatusOK {
		t.Fatalf("status request failed with code %d", code)
	}
	var trained bool
	if err := json.Unmarshal(rec["is_trained"], &trained); err != nil || !trained {
		t.Fatalf("status does not report trained state: %v", rec)
	}

	code, _ = doRequest(t, router, "POST", "/api/predict",
		PredictRequest{Message: "WIN FREE CASH NOW"})
	if code != http.StatusOK {
		t.Fatalf("predict request failed with code %d", code)
	}
	req := httptest.NewRequest("POST", "/api/predict",
		bytes.NewBufferString(`{"message": "WIN FREE CASH NOW"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var res PredictionResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unable to decode prediction: %v", err)
	}
	if res.NaiveBayesResult != LabelSpam {
		t.Errorf("obvious spam labeled %q", res.NaiveBayesResult)
	}
	if res.NaiveBayesConfidence <= 0.5 {
		t.Errorf("naive bayes confidence %v not above 0.5", res.NaiveBayesConfidence)
	}
	if res.Message != "WIN FREE CASH NOW" {
		t.Errorf("response echoes message %q", res.Message)
	}
}

// TestBatchPredictHandler
func TestBatchPredictHandler(t *testing.T) {
	router := initTestServer(t)
	trainViaAPI(t, router)

	messages := []string{"WIN FREE CASH NOW", "see you at lunch"}
	req := httptest.NewRequest("POST", "/api/batch-predict",
		bytes.NewBufferString(fmt.Sprintf(`{"messages": [%q, %q]}`, messages[0], messages[1])))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("batch predict failed with code %d", w.Code)
	}
	var batch BatchPredictionResult
	if err := json.Unmarshal(w.Body.Bytes(), &batch); err != nil {
		t.Fatalf("unable to decode batch response: %v", err)
	}
	if len(batch.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(batch.Results))
	}
	// results follow input order and match single predictions
	classifier, _ := state.Classifier()
	for i, msg := range messages {
		if batch.Results[i].Message != msg {
			t.Errorf("result %d message %q, want %q", i, batch.Results[i].Message, msg)
		}
		single, err := classifier.Predict(msg)
		if err != nil {
			t.Fatalf("unable to predict %q: %v", msg, err)
		}
		if batch.Results[i] != single {
			t.Errorf("batch result %d differs from single prediction", i)
		}
	}

	// empty batch and batch with empty entry are client errors
	code, _ := doRequest(t, router, "POST", "/api/batch-predict", BatchPredictRequest{})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty batch, got %d", code)
	}
	code, _ = doRequest(t, router, "POST", "/api/batch-predict",
		BatchPredictRequest{Messages: []string{"ok text", ""}})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for batch with empty message, got %d", code)
	}
}

// TestConcurrentTrainRejected
func TestConcurrentTrainRejected(t *testing.T) {
	router := initTestServer(t)
	Config.MaxIter = 20000
	code, _ := doRequest(t, router, "POST", "/api/train", nil)
	if code != http.StatusOK {
		t.Fatalf("train request failed with code %d", code)
	}
	code, rec := doRequest(t, router, "POST", "/api/train", nil)
	if code != http.StatusConflict {
		t.Fatalf("expected 409 for concurrent train, got %d", code)
	}
	if _, ok := rec["error"]; !ok {
		t.Fatalf("expected error field in response: %v", rec)
	}
	waitTraining(t, state)
}

// TestResetHandler
func TestResetHandler(t *testing.T) {
	router := initTestServer(t)
	trainViaAPI(t, router)

	code, _ := doRequest(t, router, "POST", "/api/reset", nil)
	if code != http.StatusOK {
		t.Fatalf("reset request failed with code %d", code)
	}
	// reset followed immediately by predict fails with not trained
	code, _ = doRequest(t, router, "POST", "/api/predict",
		PredictRequest{Message: "WIN FREE CASH NOW"})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 after reset, got %d", code)
	}
}

// TestHistoryHandler
func TestHistoryHandler(t *testing.T) {
	router := initTestServer(t)
	trainViaAPI(t, router)
	trainViaAPI(t, router)

	req := httptest.NewRequest("GET", "/api/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("history request failed with code %d", w.Code)
	}
	var records []TrainRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("unable to decode history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 history records, got %d", len(records))
	}
	// newest first
	if records[0].CompletedAt.Before(records[1].CompletedAt) {
		t.Fatalf("history records not sorted newest first")
	}
}
