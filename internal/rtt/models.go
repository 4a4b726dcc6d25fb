package rtt

import (
	"errors"
	"fmt"
	"strings"
)

// Upstream errors, pre-classified by HTTP status so callers never have to
// inspect response codes themselves.
var (
	ErrNotFound   = errors.New("rtt: resource not found")
	ErrAuthFailed = errors.New("rtt: authentication failed")
	ErrForbidden  = errors.New("rtt: access forbidden")
)

// StatusError reports a non-2xx upstream status that is not one of the
// sentinel cases above. 5xx codes render as server errors.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	if e.Code >= 500 {
		return fmt.Sprintf("rtt: server error (%d)", e.Code)
	}
	return fmt.Sprintf("rtt: unexpected status (%d)", e.Code)
}

// Location is one calling point of a service, from either the search API
// (as locationDetail) or the service API (as a locations element). Every
// field the status classifier and connection evaluator touch is explicit;
// absent times decode to the empty string.
type Location struct {
	CRS         string `json:"crs"`
	Description string `json:"description"`

	BookedArrival   string `json:"gbttBookedArrival"`
	BookedDeparture string `json:"gbttBookedDeparture"`

	RealtimeArrival         string `json:"realtimeArrival"`
	RealtimeArrivalActual   bool   `json:"realtimeArrivalActual"`
	RealtimeDeparture       string `json:"realtimeDeparture"`
	RealtimeDepartureActual bool   `json:"realtimeDepartureActual"`

	// CancelReason being non-empty marks the stop cancelled.
	CancelReason string `json:"cancelReasonShortText"`

	// ServiceLocation is the coarse live-position code (APPR_STAT,
	// APPR_PLAT, AT_PLAT, DEP_PREP, DEP_READY) or empty.
	ServiceLocation string `json:"serviceLocation"`

	Platform          string `json:"platform"`
	PlatformChanged   bool   `json:"platformChanged"`
	PlatformConfirmed bool   `json:"platformConfirmed"`

	Origin      []Endpoint `json:"origin"`
	Destination []Endpoint `json:"destination"`
}

// Endpoint is an origin or destination reference on a location record.
type Endpoint struct {
	Description string `json:"description"`
	PublicTime  string `json:"publicTime"`
	TIPLOC      string `json:"tiploc"`
}

// ServiceSummary is one service in a station search response.
type ServiceSummary struct {
	LocationDetail *Location `json:"locationDetail"`
	ServiceUID     string    `json:"serviceUid"`
	RunDate        string    `json:"runDate"`
	AtocCode       string    `json:"atocCode"`
	AtocName       string    `json:"atocName"`
	ServiceType    string    `json:"serviceType"`
	IsPassenger    bool      `json:"isPassenger"`
}

// SearchLocation identifies the searched station in a search response.
type SearchLocation struct {
	Name string `json:"name"`
	CRS  string `json:"crs"`
}

// SearchResponse is the /json/search payload.
type SearchResponse struct {
	Location *SearchLocation  `json:"location"`
	Services []ServiceSummary `json:"services"`
}

// ServiceResponse is the /json/service payload: one train's single-day run
// with its full stop-by-stop detail.
type ServiceResponse struct {
	ServiceUID        string     `json:"serviceUid"`
	RunDate           string     `json:"runDate"`
	AtocCode          string     `json:"atocCode"`
	AtocName          string     `json:"atocName"`
	TrainIdentity     string     `json:"trainIdentity"`
	RealtimeActivated bool       `json:"realtimeActivated"`
	Origin            []Endpoint `json:"origin"`
	Destination       []Endpoint `json:"destination"`
	Locations         []Location `json:"locations"`
}

// Origins returns the origin descriptions of a search summary, preferring
// the locationDetail form the search API uses, with "Unknown" when the
// record carries none.
func (s *ServiceSummary) Origins() []string {
	if s.LocationDetail != nil {
		if names := endpointNames(s.LocationDetail.Origin); len(names) > 0 {
			return names
		}
	}
	return []string{"Unknown"}
}

// Destinations returns the destination descriptions of a search summary.
func (s *ServiceSummary) Destinations() []string {
	if s.LocationDetail != nil {
		if names := endpointNames(s.LocationDetail.Destination); len(names) > 0 {
			return names
		}
	}
	return []string{"Unknown"}
}

// Origins returns the service-level origin descriptions.
func (s *ServiceResponse) Origins() []string {
	if names := endpointNames(s.Origin); len(names) > 0 {
		return names
	}
	return []string{"Unknown"}
}

// Destinations returns the service-level destination descriptions.
func (s *ServiceResponse) Destinations() []string {
	if names := endpointNames(s.Destination); len(names) > 0 {
		return names
	}
	return []string{"Unknown"}
}

func endpointNames(endpoints []Endpoint) []string {
	names := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		if e.Description != "" {
			names = append(names, e.Description)
		}
	}
	return names
}

// StopAt finds the calling point with the given CRS code, or nil.
func (s *ServiceResponse) StopAt(crs string) *Location {
	for i := range s.Locations {
		if strings.EqualFold(s.Locations[i].CRS, crs) {
			return &s.Locations[i]
		}
	}
	return nil
}
