package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrHTTPStatusCodeNotOK = errors.New("status code is not OK")

// CheckHTTP verifies outbound HTTP connectivity by querying the
// given URL, which defaults to the geolocation service when one
// is configured.
func CheckHTTP(ctx context.Context, client *http.Client, url string) (err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	_ = response.Body.Close()

	if response.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %d", ErrHTTPStatusCodeNotOK, response.StatusCode)
	}

	return nil
}

// MakeIsHealthy creates the check run on each healthcheck server
// query. It passes when the target URL can be reached.
func MakeIsHealthy(client *http.Client, url string, logger Logger) func() error {
	return func() (err error) {
		const timeout = 3 * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err = CheckHTTP(ctx, client, url)
		if err != nil {
			logger.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}
