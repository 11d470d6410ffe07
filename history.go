package main

// history module keeps training run records, in memory always and in
// MongoDB when db_uri is configured
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"log"
	"sync"

	"gopkg.in/mgo.v2/bson"
)

// RunHistory stores completed training run records, newest first
type RunHistory struct {
	mu      sync.RWMutex
	records []TrainRecord
}

// NewRunHistory creates empty run history
func NewRunHistory() *RunHistory {
	return &RunHistory{}
}

// Add stores given record in memory and upserts it into MongoDB when
// the history database is configured. Database failures are logged,
// they do not fail the training run.
func (h *RunHistory) Add(rec TrainRecord) {
	h.mu.Lock()
	h.records = append([]TrainRecord{rec}, h.records...)
	if Config.MaxHistory > 0 && len(h.records) > Config.MaxHistory {
		h.records = h.records[:Config.MaxHistory]
	}
	h.mu.Unlock()

	if Config.DBURI != "" {
		if err := MongoUpsert(Config.DBName, Config.DBColl, []TrainRecord{rec}); err != nil {
			log.Printf("unable to store training record %s, error %v", rec.RunID, err)
		}
	}
}

// Records returns training run records, newest first. When the history
// database is configured records come from MongoDB, otherwise from the
// in-memory list.
func (h *RunHistory) Records() []TrainRecord {
	if Config.DBURI != "" {
		records, err := MongoGetSorted(Config.DBName, Config.DBColl, bson.M{}, []string{"-completed_at"})
		if err == nil {
			return records
		}
		log.Printf("unable to fetch training records from db, error %v", err)
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]TrainRecord, len(h.records))
	copy(out, h.records)
	return out
}
