package rail

import (
	"fmt"

	"github.com/railscout/railscout/internal/railtime"
	"github.com/railscout/railscout/internal/rtt"
)

// positionLabels maps coarse live-position codes to status labels.
var positionLabels = map[string]string{
	"APPR_STAT": "Approaching",
	"APPR_PLAT": "Arriving",
	"AT_PLAT":   "At platform",
	"DEP_PREP":  "Preparing",
	"DEP_READY": "Ready",
}

// positionPhrases is the live-tracking variant used when the label is
// followed by a station name ("Preparing to depart Reading").
var positionPhrases = map[string]string{
	"APPR_STAT": "Approaching",
	"APPR_PLAT": "Arriving at",
	"AT_PLAT":   "At",
	"DEP_PREP":  "Preparing to depart",
	"DEP_READY": "Ready to depart from",
}

// Classify derives the status of one calling point from its latest
// snapshot. The checks are a strict priority order, not independent rules:
//
//  1. cancellation overrides every other signal
//  2. an actual recorded time means the event happened; no delay is shown
//  3. a live estimate against a booked time yields a signed-delay label,
//     with zero delay deferred to the position code
//  4. a known live-position code
//  5. "On time"
func Classify(loc *rtt.Location, kind StopKind) StopStatus {
	scheduled := loc.BookedArrival
	realtime := loc.RealtimeArrival
	isActual := loc.RealtimeArrivalActual
	if kind == Departure {
		scheduled = loc.BookedDeparture
		realtime = loc.RealtimeDeparture
		isActual = loc.RealtimeDepartureActual
	}

	if loc.CancelReason != "" {
		return StopStatus{Label: "CANCELLED"}
	}

	if isActual {
		if kind == Arrival {
			return StopStatus{Label: "Arrived"}
		}
		return StopStatus{Label: "Departed"}
	}

	if realtime != "" && scheduled != "" {
		delay := railtime.Delay(scheduled, realtime)
		if delay > 0 {
			return StopStatus{Label: fmt.Sprintf("%dm late", delay), DelayMinutes: delay}
		}
		if delay < 0 {
			return StopStatus{Label: fmt.Sprintf("%dm early", -delay), DelayMinutes: delay}
		}
	}

	if label, ok := positionLabels[loc.ServiceLocation]; ok {
		return StopStatus{Label: label}
	}

	return StopStatus{Label: "On time"}
}

// PositionPhrase renders a live-position code with its station name for
// tracking output, or "" when the stop carries no position.
func PositionPhrase(loc *rtt.Location) string {
	if loc.ServiceLocation == "" {
		return ""
	}
	phrase, ok := positionPhrases[loc.ServiceLocation]
	if !ok {
		phrase = loc.ServiceLocation
	}
	name := loc.Description
	if name == "" {
		name = "Unknown"
	}
	return phrase + " " + name
}

// PlatformString renders a platform for display: "-" when unknown, with
// "!" marking a changed platform and "?" an unconfirmed one.
func PlatformString(loc *rtt.Location) string {
	if loc.Platform == "" {
		return "-"
	}
	s := loc.Platform
	switch {
	case loc.PlatformChanged:
		s += "!"
	case !loc.PlatformConfirmed:
		s += "?"
	}
	return s
}
