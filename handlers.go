package main

// handlers module holds all HTTP handlers functions
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// HTTPError represents HTTP error record
type HTTPError struct {
	Method    string `json:"method"`    // HTTP method
	HTTPCode  int    `json:"http_code"` // HTTP error code
	Code      int    `json:"code"`      // server status code
	Timestamp string `json:"timestamp"` // timestamp of the error
	Path      string `json:"path"`      // URL path
	Reason    string `json:"reason"`    // error code reason
	Error     string `json:"error"`     // error message
}

// state variable represents process-wide training state
var state *TrainingState

// helper function to generate JSON response with given HTTP code
func httpJSON(w http.ResponseWriter, httpCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	body, err := json.Marshal(data)
	if err != nil {
		log.Printf("unable to marshal data, error %v", err)
		body = []byte(fmt.Sprintf(`{"error": %q}`, err.Error()))
	}
	w.Write(body)
}

// helper function to provide standard HTTP error reply
func httpError(w http.ResponseWriter, r *http.Request, code int, err error, httpCode int) {
	hrec := HTTPError{
		Method:    r.Method,
		HTTPCode:  httpCode,
		Code:      code,
		Timestamp: time.Now().String(),
		Path:      r.RequestURI,
		Reason:    errorMessage(code),
		Error:     err.Error(),
	}
	if Config.Verbose > 0 {
		log.Printf("HTTPError: %+v", hrec)
	}
	httpJSON(w, httpCode, hrec)
}

// TrainHandler starts asynchronous training run
func TrainHandler(w http.ResponseWriter, r *http.Request) {
	runID, err := state.Start()
	if err != nil {
		httpError(w, r, TrainingInProgress, err, http.StatusConflict)
		return
	}
	rec := map[string]string{"status": "started", "run_id": runID}
	httpJSON(w, http.StatusOK, rec)
}

// StatusHandler provides current training status
func StatusHandler(w http.ResponseWriter, r *http.Request) {
	httpJSON(w, http.StatusOK, state.Status())
}

// helper function to classify single message with fitted classifier
func classify(message string) (PredictionResult, int, error) {
	classifier, trained := state.Classifier()
	if !trained {
		return PredictionResult{}, NotTrainedError,
			errors.New("model not trained yet, please train the model first")
	}
	res, err := classifier.Predict(message)
	if err != nil {
		return PredictionResult{}, TrainingError, err
	}
	return res, 0, nil
}

// PredictHandler classifies single SMS message
func PredictHandler(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, r, BadRequest, err, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		httpError(w, r, BadRequest, errors.New("no message provided"), http.StatusBadRequest)
		return
	}
	res, code, err := classify(req.Message)
	if err != nil {
		if code == NotTrainedError {
			httpError(w, r, code, err, http.StatusBadRequest)
		} else {
			httpError(w, r, code, err, http.StatusInternalServerError)
		}
		return
	}
	httpJSON(w, http.StatusOK, res)
}

// BatchPredictHandler classifies multiple SMS messages, one result per
// input message in input order
func BatchPredictHandler(w http.ResponseWriter, r *http.Request) {
	var req BatchPredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, r, BadRequest, err, http.StatusBadRequest)
		return
	}
	if len(req.Messages) == 0 {
		httpError(w, r, BadRequest, errors.New("no messages provided"), http.StatusBadRequest)
		return
	}
	for idx, msg := range req.Messages {
		if strings.TrimSpace(msg) == "" {
			err := fmt.Errorf("empty message at index %d", idx)
			httpError(w, r, BadRequest, err, http.StatusBadRequest)
			return
		}
	}
	results := make([]PredictionResult, 0, len(req.Messages))
	for _, msg := range req.Messages {
		res, code, err := classify(msg)
		if err != nil {
			if code == NotTrainedError {
				httpError(w, r, code, err, http.StatusBadRequest)
			} else {
				httpError(w, r, code, err, http.StatusInternalServerError)
			}
			return
		}
		results = append(results, res)
	}
	httpJSON(w, http.StatusOK, BatchPredictionResult{Results: results})
}

// ResetHandler clears training state and discards fitted models
func ResetHandler(w http.ResponseWriter, r *http.Request) {
	if err := state.Reset(); err != nil {
		httpError(w, r, ResetError, err, http.StatusBadRequest)
		return
	}
	rec := map[string]string{"status": "reset"}
	httpJSON(w, http.StatusOK, rec)
}

// HistoryHandler provides training run history records
func HistoryHandler(w http.ResponseWriter, r *http.Request) {
	httpJSON(w, http.StatusOK, state.History())
}

// InfoHandler provides server version information
func InfoHandler(w http.ResponseWriter, r *http.Request) {
	rec := map[string]string{"server": info()}
	httpJSON(w, http.StatusOK, rec)
}

// RequestHandler serves the main web interface
func RequestHandler(w http.ResponseWriter, r *http.Request) {
	tmpl := make(TmplRecord)
	tmpl["Title"] = "SpamHub"
	tmpl["Base"] = Config.Base
	tmpl["ServerInfo"] = info()
	var templates Templates
	page := templates.Tmpl("index.tmpl", tmpl)
	w.Write([]byte(page))
}

// DocsHandler serves server documentation rendered from markdown
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	fname := fmt.Sprintf("%s/md/docs.md", Config.StaticDir)
	content, err := mdToHTML(fname)
	if err != nil {
		httpError(w, r, FileIOError, err, http.StatusInternalServerError)
		return
	}
	w.Write([]byte(content))
}
