package main

// dataset module loads the SMS Spam Collection file
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Sample represents single labeled SMS message
type Sample struct {
	Label   string // ham or spam
	Message string // raw SMS text
}

// Dataset represents labeled SMS message collection
type Dataset struct {
	Samples   []Sample
	SpamCount int
	HamCount  int
	Skipped   int // malformed lines dropped during load
}

// loadDataset reads the SMS Spam Collection file, one tab-separated
// "label<TAB>message" pair per line. Malformed lines are skipped,
// an empty result is an error.
func loadDataset(fname string) (*Dataset, error) {
	file, err := os.Open(filepath.Clean(fname))
	if err != nil {
		return nil, fmt.Errorf("unable to open dataset %s, error %v", fname, err)
	}
	defer file.Close()

	ds := &Dataset{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 || !InList(parts[0], DatasetLabels) || strings.TrimSpace(parts[1]) == "" {
			ds.Skipped += 1
			continue
		}
		label := parts[0]
		if label == "spam" {
			ds.SpamCount += 1
		} else {
			ds.HamCount += 1
		}
		ds.Samples = append(ds.Samples, Sample{Label: label, Message: parts[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to scan dataset %s, error %v", fname, err)
	}
	if len(ds.Samples) == 0 {
		return nil, errors.New("dataset contains no valid labeled messages")
	}
	if ds.Skipped > 0 && Config.Verbose > 0 {
		log.Printf("dataset %s: skipped %d malformed lines", fname, ds.Skipped)
	}
	return ds, nil
}
