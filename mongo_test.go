package main

import (
	"os"
	"testing"
	"time"

	"gopkg.in/mgo.v2/bson"
)

// TestMongoUpsert requires a running MongoDB instance, set MONGO_URI
// to enable it
func TestMongoUpsert(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping MongoDB test")
	}
	Config = Configuration{}
	if err := parseConfig(""); err != nil {
		t.Fatalf("unable to set config defaults: %v", err)
	}
	Config.DBURI = uri

	// our db attributes
	dbname := "spamhub_test"
	collname := "history"

	// remove all records in test collection
	MongoRemove(dbname, collname, bson.M{})

	rec := TrainRecord{
		RunID:       "test-run",
		Dataset:     "SMSSpamCollection",
		StartedAt:   time.Now().UTC().Add(-time.Minute),
		CompletedAt: time.Now().UTC(),
		NBAccuracy:  0.97,
		LRAccuracy:  0.96,
		Samples:     100,
		SpamCount:   20,
		HamCount:    80,
		Features:    500,
	}
	if err := MongoUpsert(dbname, collname, []TrainRecord{rec}); err != nil {
		t.Fatalf("unable to upsert record: %v", err)
	}
	// upsert by run id is idempotent
	if err := MongoUpsert(dbname, collname, []TrainRecord{rec}); err != nil {
		t.Fatalf("unable to upsert record twice: %v", err)
	}

	spec := bson.M{"run_id": "test-run"}
	records, err := MongoGet(dbname, collname, spec, 0, -1)
	if err != nil {
		t.Fatalf("unable to find records using spec '%v', error %v", spec, err)
	}
	if len(records) != 1 {
		t.Fatalf("wrong number of records using spec '%v', records %+v", spec, records)
	}
	if records[0].RunID != "test-run" || records[0].Samples != 100 {
		t.Fatalf("unexpected record %+v", records[0])
	}

	sorted, err := MongoGetSorted(dbname, collname, bson.M{}, []string{"-completed_at"})
	if err != nil {
		t.Fatalf("unable to fetch sorted records: %v", err)
	}
	if len(sorted) != 1 {
		t.Fatalf("wrong number of sorted records: %d", len(sorted))
	}
}
