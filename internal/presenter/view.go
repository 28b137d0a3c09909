// Package presenter derives the single view to render from the
// session state. It is a pure mapping with no side effects.
package presenter

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ipwhere/ipwhere/internal/models"
	"github.com/ipwhere/ipwhere/internal/session"
)

type ViewKind uint8

const (
	ViewEmpty ViewKind = iota
	ViewLoading
	ViewError
	ViewResult
)

func (k ViewKind) String() string {
	switch k {
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewResult:
		return "result"
	default:
		return "empty"
	}
}

func (k ViewKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ViewKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "empty":
		*k = ViewEmpty
	case "loading":
		*k = ViewLoading
	case "error":
		*k = ViewError
	case "result":
		*k = ViewResult
	default:
		return fmt.Errorf("unknown view kind: %q", s)
	}
	return nil
}

// Placeholder rendered for absent optional fields, never a blank.
const Placeholder = "—"

// UnknownLocation labels a map marker when neither the city nor
// the country is known.
const UnknownLocation = "Unknown location"

type View struct {
	Kind    ViewKind `json:"kind"`
	Address string   `json:"address"`
	// Message is only set for the error view.
	Message string `json:"message,omitempty"`
	// Fields, Marker and RawJSON are only set for the result view.
	Fields  []Field `json:"fields,omitempty"`
	Marker  *Marker `json:"marker,omitempty"`
	RawJSON string  `json:"raw_json,omitempty"`
}

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Marker struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Zoom      int     `json:"zoom"`
	Popup     string  `json:"popup"`
}

const markerZoom = 10

// FromState maps the session state to exactly one of the four
// mutually exclusive views.
func FromState(state session.State) View {
	view := View{Address: state.Address}
	switch state.Phase {
	case session.PhaseLoading:
		view.Kind = ViewLoading
	case session.PhaseError:
		view.Kind = ViewError
		view.Message = state.Error
	case session.PhaseSuccess:
		view.Kind = ViewResult
		view.Fields = resultFields(*state.Result)
		view.Marker = resultMarker(*state.Result)
		view.RawJSON = rawJSON(*state.Result)
	default:
		view.Kind = ViewEmpty
	}
	return view
}

func resultFields(result models.LookupResult) []Field {
	return []Field{
		{Label: "IP", Value: result.IP},
		{Label: "Country code", Value: orPlaceholder(result.CountryCode)},
		{Label: "Country", Value: orPlaceholder(result.CountryName)},
		{Label: "Region", Value: orPlaceholder(result.Region)},
		{Label: "City", Value: orPlaceholder(result.City)},
		{Label: "Coordinates", Value: coordinates(result)},
		{Label: "Source", Value: stringOrPlaceholder(result.Source)},
		{Label: "Lookup time", Value: lookupTime(result.LookupMS)},
	}
}

func resultMarker(result models.LookupResult) *Marker {
	if !result.HasCoordinates() {
		return nil
	}
	return &Marker{
		Latitude:  *result.Latitude,
		Longitude: *result.Longitude,
		Zoom:      markerZoom,
		Popup:     popupLabel(result),
	}
}

func popupLabel(result models.LookupResult) string {
	switch {
	case result.City != nil && result.CountryName != nil:
		return *result.City + ", " + *result.CountryName
	case result.City != nil:
		return *result.City
	case result.CountryName != nil:
		return *result.CountryName
	default:
		return UnknownLocation
	}
}

func coordinates(result models.LookupResult) string {
	if !result.HasCoordinates() {
		return Placeholder
	}
	return formatFloat(*result.Latitude) + ", " + formatFloat(*result.Longitude)
}

func lookupTime(lookupMS float64) string {
	return formatFloat(lookupMS) + " ms"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}

func stringOrPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func rawJSON(result models.LookupResult) string {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
