package rail

import (
	"github.com/railscout/railscout/internal/railtime"
	"github.com/railscout/railscout/internal/rtt"
)

// resolvedTimes is the usable time pair for one side of a connection.
type resolvedTimes struct {
	scheduled string
	realtime  string
}

// resolveStopTimes picks the times that describe a stop for connection
// purposes. The arrival side prefers arrival-type times but falls back to
// departure-type (the interchange may be that service's origin); the
// departure side is symmetric. Realtime falls back to scheduled.
func resolveStopTimes(loc *rtt.Location, kind StopKind) (resolvedTimes, bool) {
	var t resolvedTimes
	if kind == Arrival {
		t.scheduled = firstNonEmpty(loc.BookedArrival, loc.BookedDeparture)
		t.realtime = firstNonEmpty(loc.RealtimeArrival, loc.RealtimeDeparture, t.scheduled)
	} else {
		t.scheduled = firstNonEmpty(loc.BookedDeparture, loc.BookedArrival)
		t.realtime = firstNonEmpty(loc.RealtimeDeparture, loc.RealtimeArrival, t.scheduled)
	}
	return t, t.scheduled != ""
}

// AssessConnection evaluates an interchange: the arrival of one service
// against the departure of another at a shared station. Transfer time is
// computed from the best realtime estimate on each side and is not clamped;
// same-day arithmetic only, no midnight rollover.
func AssessConnection(arrivalStop, departureStop *rtt.Location, arrivingUID, departingUID, stationName string) (*ConnectionAssessment, error) {
	arr, ok := resolveStopTimes(arrivalStop, Arrival)
	if !ok {
		return nil, &MissingTimeDataError{ServiceUID: arrivingUID, Station: stationName, Kind: Arrival}
	}
	dep, ok := resolveStopTimes(departureStop, Departure)
	if !ok {
		return nil, &MissingTimeDataError{ServiceUID: departingUID, Station: stationName, Kind: Departure}
	}

	transfer := railtime.ToMinutes(dep.realtime) - railtime.ToMinutes(arr.realtime)

	arrPlatform := PlatformString(arrivalStop)
	depPlatform := PlatformString(departureStop)

	return &ConnectionAssessment{
		TransferMinutes:    transfer,
		RiskTier:           classifyTransfer(transfer),
		PlatformChanged:    arrPlatform != "-" && depPlatform != "-" && arrPlatform != depPlatform,
		ScheduledArrival:   arr.scheduled,
		ExpectedArrival:    arr.realtime,
		ArrivalDelay:       railtime.Delay(arr.scheduled, arr.realtime),
		ScheduledDeparture: dep.scheduled,
		ExpectedDeparture:  dep.realtime,
		DepartureDelay:     railtime.Delay(dep.scheduled, dep.realtime),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
