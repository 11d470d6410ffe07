package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// spam and ham corpora used to build synthetic test datasets
var testSpamMessages = []string{
	"WIN FREE CASH NOW claim your prize",
	"URGENT winner claim free prize cash now",
	"FREE entry win cash prize txt now",
	"Congratulations you won free cash claim now",
	"WIN a free prize claim cash urgent offer",
	"FREE cash offer winner claim prize today",
	"URGENT free prize cash winner txt claim",
	"Claim free cash now winner prize offer",
	"WIN cash now free prize limited offer",
	"FREE prize winner urgent cash claim txt",
}

var testHamMessages = []string{
	"see you at lunch tomorrow",
	"are we still meeting for coffee",
	"thanks for the notes from class",
	"can you pick up milk on the way home",
	"happy birthday hope you have a great day",
	"the meeting moved to three pm",
	"let me know when you get home",
	"dinner at my place tonight",
	"good luck with the exam tomorrow",
	"call me when you are done with work",
}

// helper function to write synthetic SMS spam collection dataset
func makeTestDataset(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "SMSSpamCollection")
	var lines string
	for i := 0; i < 3; i++ {
		for _, msg := range testSpamMessages {
			lines += fmt.Sprintf("spam\t%s rep%d\n", msg, i)
		}
		for _, msg := range testHamMessages {
			lines += fmt.Sprintf("ham\t%s rep%d\n", msg, i)
		}
	}
	if err := os.WriteFile(fname, []byte(lines), 0644); err != nil {
		t.Fatalf("unable to write test dataset: %v", err)
	}
	return fname
}

// helper function to initialize global config for classifier tests
func setTestConfig(t *testing.T, dataset string) {
	t.Helper()
	Config = Configuration{}
	if err := parseConfig(""); err != nil {
		t.Fatalf("unable to set config defaults: %v", err)
	}
	Config.DatasetFile = dataset
	Config.MaxIter = 300
	Config.LearningRate = 1.0
}

// helper function to wait until background training run finishes
func waitTraining(t *testing.T, s *TrainingState) StatusRecord {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		status := s.Status()
		if !status.IsTraining {
			return status
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("training did not finish before deadline")
	return StatusRecord{}
}
