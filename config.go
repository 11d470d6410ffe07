package main

// config module
//
// Copyright (c) 2023 - Valentin Kuznetsov <vkuznet@gmail.com>
//

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Configuration stores server configuration parameters
type Configuration struct {
	// web server parts
	Base      string `json:"base"`       // base URL
	LogFile   string `json:"log_file"`   // server log file
	Port      int    `json:"port"`       // server port number
	Verbose   int    `json:"verbose"`    // verbose output
	StaticDir string `json:"static_dir"` // specify static dir location

	// server parts
	RootCAs       string   `json:"rootCAs"`      // server Root CAs path
	ServerCrt     string   `json:"server_cert"`  // server certificate
	ServerKey     string   `json:"server_key"`   // server certificate
	DomainNames   []string `json:"domain_names"` // LetsEncrypt domain names
	LimiterPeriod string   `json:"rate"`         // limiter rate value

	// classifier parts
	DatasetFile  string  `json:"dataset_file"`  // SMS spam collection dataset file
	TestSize     float64 `json:"test_size"`     // fraction of dataset held out for evaluation
	MaxFeatures  int     `json:"max_features"`  // TF-IDF vocabulary cap
	Seed         int64   `json:"seed"`          // RNG seed for train/test split
	LearningRate float64 `json:"learning_rate"` // logistic regression learning rate
	MaxIter      int     `json:"max_iter"`      // logistic regression iteration cap

	// training history parts
	DBURI      string `json:"db_uri"`     // history database URI
	DBName     string `json:"db_name"`    // history database name
	DBColl     string `json:"db_coll"`    // history database collection
	MaxHistory int    `json:"max_history"` // number of training runs kept in memory
}

// Config variable represents configuration object
var Config Configuration

// helper function to parse server configuration file
func parseConfig(configFile string) error {
	if configFile != "" {
		data, err := os.ReadFile(filepath.Clean(configFile))
		if err != nil {
			log.Println("Unable to read", err)
			return err
		}
		err = json.Unmarshal(data, &Config)
		if err != nil {
			log.Println("Unable to parse", err)
			return err
		}
	}

	// default values
	if Config.Port == 0 {
		Config.Port = 8181
	}
	if Config.LimiterPeriod == "" {
		Config.LimiterPeriod = "100-S"
	}
	if Config.StaticDir == "" {
		cdir, err := os.Getwd()
		if err == nil {
			Config.StaticDir = fmt.Sprintf("%s/static", cdir)
		} else {
			Config.StaticDir = "static"
		}
	}
	if Config.DatasetFile == "" {
		Config.DatasetFile = "SMSSpamCollection"
	}
	if Config.TestSize == 0 {
		Config.TestSize = 0.2
	}
	if Config.MaxFeatures == 0 {
		Config.MaxFeatures = 3000
	}
	if Config.Seed == 0 {
		Config.Seed = 42
	}
	if Config.LearningRate == 0 {
		Config.LearningRate = 0.5
	}
	if Config.MaxIter == 0 {
		Config.MaxIter = 1000
	}
	if Config.DBName == "" {
		Config.DBName = "spamhub"
	}
	if Config.DBColl == "" {
		Config.DBColl = "history"
	}
	if Config.MaxHistory == 0 {
		Config.MaxHistory = 100
	}
	return nil
}
