package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func Test_fetch(t *testing.T) {
	t.Parallel()

	errDummy := errors.New("dummy")

	testCases := map[string]struct {
		url         string
		statusCode  int
		httpContent []byte
		httpErr     error
		publicIP    netip.Addr
		err         error
	}{
		"transport error": {
			url:     "https://api64.ipify.org?format=json",
			httpErr: errDummy,
			err:     errors.New(`Get "https://api64.ipify.org?format=json": dummy`),
		},
		"bad status": {
			url:         "https://api64.ipify.org?format=json",
			statusCode:  http.StatusTooManyRequests,
			httpContent: []byte(`slow down`),
			err: errors.New("bad HTTP status received: 429 " +
				"from https://api64.ipify.org?format=json"),
		},
		"json ip field": {
			url:         "https://api64.ipify.org?format=json",
			statusCode:  http.StatusOK,
			httpContent: []byte(`{"ip":"1.67.201.251"}`),
			publicIP:    netip.AddrFrom4([4]byte{1, 67, 201, 251}),
		},
		"json without ip field": {
			url:         "https://api64.ipify.org?format=json",
			statusCode:  http.StatusOK,
			httpContent: []byte(`{}`),
			err: errors.New(`no IP address found: from ` +
				`"https://api64.ipify.org?format=json"`),
		},
		"plain text ipv4": {
			url:         "https://icanhazip.com",
			statusCode:  http.StatusOK,
			httpContent: []byte("1.67.201.251\n"),
			publicIP:    netip.AddrFrom4([4]byte{1, 67, 201, 251}),
		},
		"plain text ipv6": {
			url:         "https://icanhazip.com",
			statusCode:  http.StatusOK,
			httpContent: []byte("::1\n"),
			publicIP: netip.AddrFrom16([16]byte{
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 1,
			}),
		},
		"empty body": {
			url:        "https://icanhazip.com",
			statusCode: http.StatusOK,
			err:        errors.New(`no IP address found: from "https://icanhazip.com"`),
		},
		"address wrapped in html": {
			url:         "https://example.com/ip",
			statusCode:  http.StatusOK,
			httpContent: []byte("<p>Your IP is 1.67.201.251</p>"),
			publicIP:    netip.AddrFrom4([4]byte{1, 67, 201, 251}),
		},
		"malformed address": {
			url:         "https://icanhazip.com",
			statusCode:  http.StatusOK,
			httpContent: []byte("not an address"),
			err:         errors.New(`IP address malformed: "not an address"`),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := &http.Client{
				Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
					assert.Equal(t, testCase.url, r.URL.String())
					if testCase.httpErr != nil {
						return nil, testCase.httpErr
					}
					return &http.Response{
						StatusCode: testCase.statusCode,
						Body:       io.NopCloser(bytes.NewReader(testCase.httpContent)),
					}, nil
				}),
			}

			publicIP, err := fetch(context.Background(), client, testCase.url)

			if testCase.err != nil {
				require.Error(t, err)
				assert.Equal(t, testCase.err.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}

			if testCase.publicIP.Compare(publicIP) != 0 {
				t.Errorf("IP address mismatch: expected %s and got %s",
					testCase.publicIP, publicIP)
			}
		})
	}
}

func Test_Fetcher_IP_rotation(t *testing.T) {
	t.Parallel()

	var urlsSeen []string
	client := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			urlsSeen = append(urlsSeen, r.URL.String())
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader([]byte("1.2.3.4"))),
			}, nil
		}),
	}

	fetcher, err := New(client, SetProviders(Ipify, Icanhazip))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = fetcher.IP(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, []string{
		"https://api64.ipify.org?format=json",
		"https://icanhazip.com",
		"https://api64.ipify.org?format=json",
	}, urlsSeen)
}

func Test_ValidateProvider(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateProvider(Ipify))
	assert.NoError(t, ValidateProvider(CustomProvider("https://example.com/ip")))
	err := ValidateProvider(Provider("nonsense"))
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
