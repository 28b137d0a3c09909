package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Geo struct {
	// APIURL is the base URL of the geolocation service.
	// It can be empty to query the same origin the UI is
	// served from.
	APIURL string
}

func (g *Geo) setDefaults() {}

var ErrGeoAPIURLNotValid = errors.New("geolocation API URL is not valid")

func (g Geo) Validate() (err error) {
	if g.APIURL == "" { // same origin
		return nil
	}

	parsed, err := url.Parse(g.APIURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGeoAPIURLNotValid, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q must be http or https",
			ErrGeoAPIURLNotValid, parsed.Scheme)
	}

	return nil
}

func (g Geo) String() string {
	return g.toLinesNode().String()
}

func (g Geo) toLinesNode() *gotree.Node {
	node := gotree.New("Geolocation")
	if g.APIURL == "" {
		node.Appendf("API URL: (same origin)")
	} else {
		node.Appendf("API URL: %s", g.APIURL)
	}
	return node
}

func (g *Geo) read(reader *reader.Reader) {
	g.APIURL = reader.String("GEO_API_URL")
}
