package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ResolveErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		statusCode int
		body       []byte
		message    string
	}{
		"json error field": {
			statusCode: 500,
			body:       []byte(`{"error":"rate limited"}`),
			message:    "rate limited",
		},
		"json without error field": {
			statusCode: 500,
			body:       []byte(`{"detail":"oops"}`),
			message:    `{"detail":"oops"}`,
		},
		"json empty error field": {
			statusCode: 404,
			body:       []byte(`{"error":""}`),
			message:    `{"error":""}`,
		},
		"raw text body": {
			statusCode: 500,
			body:       []byte("oops"),
			message:    "oops",
		},
		"whitespace only body": {
			statusCode: 500,
			body:       []byte(" \n\t"),
			message:    "Request failed (500)",
		},
		"empty body": {
			statusCode: 500,
			body:       nil,
			message:    "Request failed (500)",
		},
		"empty body other status": {
			statusCode: 502,
			body:       []byte{},
			message:    "Request failed (502)",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			message := ResolveErrorMessage(testCase.statusCode, testCase.body)

			assert.Equal(t, testCase.message, message)
		})
	}
}

func Test_RejectionError_Error(t *testing.T) {
	t.Parallel()

	err := &RejectionError{StatusCode: 429, Message: "rate limited"}
	assert.Equal(t, "rate limited", err.Error())
}
