package main

import "fmt"

const (
	GenericError       = iota + 100 // generic server error
	DatasetError                    // 101 dataset load error
	TrainingError                   // 102 training error
	TrainingInProgress              // 103 training already in progress
	NotTrainedError                 // 104 model not trained
	BadRequest                      // 105 bad request
	JsonMarshal                     // 106 json.Marshal error
	DatabaseError                   // 107 database error
	ResetError                      // 108 reset error
	FileIOError                     // 109 file IO error
)

// helper function to return human error message for given spamhub error code
func errorMessage(code int) string {
	if code == 0 {
		return ""
	} else if code == 101 {
		return "dataset error"
	} else if code == 102 {
		return "training error"
	} else if code == 103 {
		return "training already in progress"
	} else if code == 104 {
		return "model not trained"
	} else if code == 105 {
		return "bad request"
	} else if code == 106 {
		return "JSON marshal error"
	} else if code == 107 {
		return "database error"
	} else if code == 108 {
		return "reset error"
	} else if code == 109 {
		return "file IO error"
	} else {
		return fmt.Sprintf("Not Implemented error for code %d", code)
	}
}
