package geo

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RejectionError is a non-2xx response from the geolocation
// service. Its message is already normalized for display, so
// Error returns it without any decoration.
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// ResolveErrorMessage normalizes the body of a non-2xx response
// into a single display message, in three tiers:
// the JSON body "error" field, then the raw body text, then a
// generic message carrying the status code.
func ResolveErrorMessage(statusCode int, body []byte) (message string) {
	var errBody struct {
		Error string `json:"error"`
	}
	err := json.Unmarshal(body, &errBody)
	if err == nil && errBody.Error != "" {
		return errBody.Error
	}

	text := strings.TrimSpace(string(body))
	if text != "" {
		return text
	}

	return "Request failed (" + strconv.Itoa(statusCode) + ")"
}
