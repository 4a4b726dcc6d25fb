// Package rail derives display-ready status and connection-risk data from
// raw Realtime Trains records, and orchestrates the tool operations built
// on them. Everything here is request-scoped: results are computed fresh
// from the latest upstream snapshot and never cached.
package rail

import (
	"errors"
	"fmt"
)

// Rail domain errors.
var (
	// ErrUnknownStation means a station query resolved to nothing.
	ErrUnknownStation = errors.New("unknown station")
)

// UnknownStationError reports a station query that matched nothing in the
// gazetteer. Role names the offending parameter ("origin station").
type UnknownStationError struct {
	Role  string
	Query string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Role, e.Query)
}

func (e *UnknownStationError) Is(target error) bool {
	return target == ErrUnknownStation
}

// MissingTimeDataError reports a connection stop with no usable time: a
// stop must expose at least one of arrival or departure to participate in
// a connection assessment.
type MissingTimeDataError struct {
	ServiceUID string
	Station    string
	Kind       StopKind
}

func (e *MissingTimeDataError) Error() string {
	side := "arrival or departure"
	if e.Kind == Departure {
		side = "departure or arrival"
	}
	return fmt.Sprintf("service %s has no %s time at %s", e.ServiceUID, side, e.Station)
}

// StationNotOnServiceError reports a service that does not call at the
// requested interchange.
type StationNotOnServiceError struct {
	ServiceUID string
	Station    string
}

func (e *StationNotOnServiceError) Error() string {
	return fmt.Sprintf("service %s does not call at %s", e.ServiceUID, e.Station)
}

// StopKind selects which side of a calling point to classify.
type StopKind int

const (
	Arrival StopKind = iota
	Departure
)

// StopStatus is the derived status of one calling point: a label from a
// fixed vocabulary and a signed delay in minutes (positive late, negative
// early, zero on time or not computable).
type StopStatus struct {
	Label        string
	DelayMinutes int
}

// Tier is a connection risk category, ordered from worst to best.
type Tier string

const (
	TierMissed       Tier = "MISSED"
	TierImpossible   Tier = "IMPOSSIBLE"
	TierVeryHighRisk Tier = "VERY_HIGH_RISK"
	TierHighRisk     Tier = "HIGH_RISK"
	TierModerate     Tier = "MODERATE"
	TierSafe         Tier = "SAFE"
)

// ConnectionAssessment is the result of evaluating an interchange between
// two services. TransferMinutes may be negative (departure before arrival);
// it is never clamped.
type ConnectionAssessment struct {
	TransferMinutes int
	RiskTier        Tier
	PlatformChanged bool

	// Resolved times and per-leg delays, kept for rendering.
	ScheduledArrival   string
	ExpectedArrival    string
	ArrivalDelay       int
	ScheduledDeparture string
	ExpectedDeparture  string
	DepartureDelay     int
}

// classifyTransfer maps transfer minutes to a risk tier. The ladder is
// evaluated in order; boundaries are exact (3 minutes is VERY_HIGH_RISK,
// 5 is HIGH_RISK, 15 is SAFE).
func classifyTransfer(minutes int) Tier {
	switch {
	case minutes < 0:
		return TierMissed
	case minutes < 3:
		return TierImpossible
	case minutes < 5:
		return TierVeryHighRisk
	case minutes < 10:
		return TierHighRisk
	case minutes < 15:
		return TierModerate
	default:
		return TierSafe
	}
}
