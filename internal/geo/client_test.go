package geo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/ipwhere/ipwhere/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func stringPtr(s string) *string    { return &s }
func float64Ptr(f float64) *float64 { return &f }

func Test_Client_Lookup(t *testing.T) {
	t.Parallel()

	errTransport := errors.New("connection refused")

	testCases := map[string]struct {
		baseURL      string
		address      string
		expectedURL  string
		statusCode   int
		body         []byte
		transportErr error
		result       models.LookupResult
		errMessage   string
	}{
		"success with all fields": {
			baseURL:     "https://geo.example.com",
			address:     "8.8.8.8",
			expectedURL: "https://geo.example.com/geo?ip=8.8.8.8",
			statusCode:  http.StatusOK,
			body: []byte(`{"ip":"8.8.8.8","country_code":"US",` +
				`"lat":37.4,"lon":-122.1,"source":"maxmind","lookup_ms":3}`),
			result: models.LookupResult{
				IP:          "8.8.8.8",
				CountryCode: stringPtr("US"),
				Latitude:    float64Ptr(37.4),
				Longitude:   float64Ptr(-122.1),
				Source:      "maxmind",
				LookupMS:    3,
			},
		},
		"success with minimal fields": {
			baseURL:     "",
			address:     "1.1.1.1",
			expectedURL: "/geo?ip=1.1.1.1",
			statusCode:  http.StatusOK,
			body:        []byte(`{"ip":"1.1.1.1","lookup_ms":0}`),
			result: models.LookupResult{
				IP: "1.1.1.1",
			},
		},
		"address is url escaped": {
			baseURL:     "https://geo.example.com",
			address:     "2001:4860:4860::8888",
			expectedURL: "https://geo.example.com/geo?ip=2001%3A4860%3A4860%3A%3A8888",
			statusCode:  http.StatusOK,
			body:        []byte(`{"ip":"2001:4860:4860::8888"}`),
			result: models.LookupResult{
				IP: "2001:4860:4860::8888",
			},
		},
		"rejection with json error": {
			baseURL:     "https://geo.example.com",
			address:     "8.8.8.8",
			expectedURL: "https://geo.example.com/geo?ip=8.8.8.8",
			statusCode:  http.StatusInternalServerError,
			body:        []byte(`{"error":"rate limited"}`),
			errMessage:  "rate limited",
		},
		"rejection with raw text": {
			baseURL:     "https://geo.example.com",
			address:     "8.8.8.8",
			expectedURL: "https://geo.example.com/geo?ip=8.8.8.8",
			statusCode:  http.StatusInternalServerError,
			body:        []byte("oops"),
			errMessage:  "oops",
		},
		"rejection with empty body": {
			baseURL:     "https://geo.example.com",
			address:     "8.8.8.8",
			expectedURL: "https://geo.example.com/geo?ip=8.8.8.8",
			statusCode:  http.StatusInternalServerError,
			errMessage:  "Request failed (500)",
		},
		"malformed success body": {
			baseURL:     "https://geo.example.com",
			address:     "8.8.8.8",
			expectedURL: "https://geo.example.com/geo?ip=8.8.8.8",
			statusCode:  http.StatusOK,
			body:        []byte("not json"),
			errMessage: "decoding response body: invalid character " +
				"'o' in literal null (expecting 'u')",
		},
		"transport error": {
			baseURL:      "https://geo.example.com",
			address:      "8.8.8.8",
			expectedURL:  "https://geo.example.com/geo?ip=8.8.8.8",
			transportErr: errTransport,
			errMessage: `Get "https://geo.example.com/geo?ip=8.8.8.8": ` +
				"connection refused",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			httpClient := &http.Client{
				Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
					assert.Equal(t, testCase.expectedURL, r.URL.String())
					if testCase.transportErr != nil {
						return nil, testCase.transportErr
					}
					return &http.Response{
						StatusCode: testCase.statusCode,
						Body:       io.NopCloser(bytes.NewReader(testCase.body)),
					}, nil
				}),
			}

			client := New(httpClient, testCase.baseURL)

			result, err := client.Lookup(context.Background(), testCase.address)

			if testCase.errMessage != "" {
				require.Error(t, err)
				assert.Equal(t, testCase.errMessage, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.result, result)
		})
	}
}

func Test_Client_Lookup_rejectionError(t *testing.T) {
	t.Parallel()

	httpClient := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusTooManyRequests,
				Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"slow down"}`))),
			}, nil
		}),
	}

	client := New(httpClient, "https://geo.example.com")

	_, err := client.Lookup(context.Background(), "8.8.8.8")

	var rejectionErr *RejectionError
	require.ErrorAs(t, err, &rejectionErr)
	assert.Equal(t, http.StatusTooManyRequests, rejectionErr.StatusCode)
	assert.Equal(t, "slow down", rejectionErr.Message)
}
