package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"

	"github.com/ipwhere/ipwhere/pkg/ipextract"
)

var (
	ErrBadHTTPStatus = errors.New("bad HTTP status received")
	ErrNoIPFound     = errors.New("no IP address found")
	ErrIPMalformed   = errors.New("IP address malformed")
)

// fetch queries a single echo URL and extracts the public IP
// address from its body. Bodies are either a JSON object with
// an "ip" field (ipify's ?format=json) or the bare address as
// plain text (every other provider).
func fetch(ctx context.Context, client *http.Client, url string) (
	publicIP netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return netip.Addr{}, err
	}

	response, err := client.Do(request)
	if err != nil {
		return netip.Addr{}, err
	}

	body, err := io.ReadAll(response.Body)
	_ = response.Body.Close()
	if err != nil {
		return netip.Addr{}, err
	}

	if response.StatusCode != http.StatusOK {
		return netip.Addr{}, fmt.Errorf("%w: %d from %s",
			ErrBadHTTPStatus, response.StatusCode, url)
	}

	ipString := extractIPString(body)
	if ipString == "" {
		return netip.Addr{}, fmt.Errorf("%w: from %q", ErrNoIPFound, url)
	}

	publicIP, err = netip.ParseAddr(ipString)
	if err == nil {
		return publicIP, nil
	}

	// Some custom echo URLs wrap the address in HTML or text.
	publicIP, extractErr := extractFromText(ipString)
	if extractErr != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrIPMalformed, ipString)
	}

	return publicIP, nil
}

func extractFromText(text string) (publicIP netip.Addr, err error) {
	addresses := ipextract.IPv6(text)
	if len(addresses) == 0 {
		addresses = ipextract.IPv4(text)
	}
	if len(addresses) == 0 {
		return netip.Addr{}, ErrNoIPFound
	}
	return addresses[0], nil
}

func extractIPString(body []byte) (ipString string) {
	var jsonBody struct {
		IP string `json:"ip"`
	}
	err := json.Unmarshal(body, &jsonBody)
	if err == nil {
		return jsonBody.IP
	}
	return strings.TrimSpace(string(body))
}
