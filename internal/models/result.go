package models

// LookupResult is the JSON body returned by the geolocation
// service on a successful lookup. Every field except IP is
// optional; absent fields are rendered as placeholders.
type LookupResult struct {
	IP          string   `json:"ip"`
	CountryCode *string  `json:"country_code,omitempty"`
	CountryName *string  `json:"country_name,omitempty"`
	Region      *string  `json:"region,omitempty"`
	City        *string  `json:"city,omitempty"`
	Latitude    *float64 `json:"lat,omitempty"`
	Longitude   *float64 `json:"lon,omitempty"`
	Source      string   `json:"source,omitempty"`
	LookupMS    float64  `json:"lookup_ms"`
}

// HasCoordinates returns true if both the latitude and the
// longitude are set, which is required to place a map marker.
func (r LookupResult) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
