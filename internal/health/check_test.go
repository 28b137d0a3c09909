package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type silentLogger struct{}

func (l *silentLogger) Debug(string) {}
func (l *silentLogger) Info(string)  {}
func (l *silentLogger) Warn(string)  {}
func (l *silentLogger) Error(string) {}

func Test_CheckHTTP(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		statusCode int
		errWrapped error
	}{
		"ok":           {statusCode: http.StatusOK},
		"not found":    {statusCode: http.StatusNotFound},
		"server error": {statusCode: http.StatusBadGateway, errWrapped: ErrHTTPStatusCodeNotOK},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(testCase.statusCode)
				}))
			t.Cleanup(server.Close)

			err := CheckHTTP(context.Background(), server.Client(), server.URL)

			assert.ErrorIs(t, err, testCase.errWrapped)
		})
	}
}

func Test_MakeIsHealthy(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	t.Cleanup(server.Close)

	isHealthy := MakeIsHealthy(server.Client(), server.URL, &silentLogger{})

	assert.NoError(t, isHealthy())
}

func Test_handler_ServeHTTP(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		method     string
		path       string
		checkErr   error
		statusCode int
		body       string
	}{
		"healthy": {
			method:     http.MethodGet,
			path:       "/",
			statusCode: http.StatusOK,
			body:       "healthy",
		},
		"unhealthy": {
			method:     http.MethodGet,
			path:       "/",
			checkErr:   ErrHTTPStatusCodeNotOK,
			statusCode: http.StatusInternalServerError,
			body:       "status code is not OK\n",
		},
		"bad method": {
			method:     http.MethodPost,
			path:       "/",
			statusCode: http.StatusNotFound,
			body:       "Not Found\n",
		},
		"bad path": {
			method:     http.MethodGet,
			path:       "/metrics",
			statusCode: http.StatusNotFound,
			body:       "Not Found\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := newHandler(func() error { return testCase.checkErr })

			request := httptest.NewRequest(testCase.method, testCase.path, nil)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testCase.statusCode, recorder.Code)
			assert.Equal(t, testCase.body, recorder.Body.String())
		})
	}
}
