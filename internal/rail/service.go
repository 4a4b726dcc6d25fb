package rail

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/railscout/railscout/internal/railtime"
	"github.com/railscout/railscout/internal/rtt"
	"github.com/railscout/railscout/internal/station"
)

// Gateway is the upstream the tool operations fetch from.
type Gateway interface {
	// Search fetches the station board for a CRS code on a service date
	// (YYYY/MM/DD), optionally narrowed to services calling at toCRS and to
	// services at or after an HHMM time.
	Search(ctx context.Context, crs, toCRS, date, from string) (*rtt.SearchResponse, error)

	// Service fetches the full stop-by-stop detail for one service UID.
	Service(ctx context.Context, uid, date string) (*rtt.ServiceResponse, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the rail tool service.
type ServiceConfig struct {
	// Gateway is the upstream rail data source.
	Gateway Gateway

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service implements the tool operations. It is stateless: every call is an
// independent unit of work computed from a fresh upstream snapshot.
type Service struct {
	gateway Gateway
	logger  zerolog.Logger
}

// NewService creates a new rail tool service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		gateway: cfg.Gateway,
		logger:  cfg.Logger,
	}
}

// BoardParams are the station board filters. Zero values mean defaults:
// departures, all statuses, a 5-minute delay threshold, 15 results.
type BoardParams struct {
	Station        string
	Type           string // "departures" (default) or "arrivals"
	ToStation      string // departures only: services calling at this station
	FromStation    string // arrivals only: services from this origin
	Operator       string
	Platform       string
	TimeFrom       string
	TimeTo         string
	Date           string
	StatusFilter   string // all | delayed | cancelled | on_time
	MinDelayMins   int    // threshold for the delayed filter
	Limit          int
	IncludeSummary bool
}

// StationBoard renders live departures or arrivals for a station.
func (s *Service) StationBoard(ctx context.Context, p BoardParams) (string, error) {
	arrivals := false
	switch p.Type {
	case "", "departures":
	case "arrivals":
		arrivals = true
	default:
		return "", fmt.Errorf("invalid board type %q: expected departures or arrivals", p.Type)
	}

	statusFilter := p.StatusFilter
	if statusFilter == "" {
		statusFilter = "all"
	}
	switch statusFilter {
	case "all", "delayed", "cancelled", "on_time":
	default:
		return "", fmt.Errorf("invalid status_filter %q: expected all, delayed, cancelled or on_time", p.StatusFilter)
	}

	minDelay := p.MinDelayMins
	if minDelay <= 0 {
		minDelay = 5
	}
	limit := clampLimit(p.Limit, 15, 30)

	match, err := resolveStation("station", p.Station)
	if err != nil {
		return "", err
	}

	date, err := railtime.ServiceDate(p.Date)
	if err != nil {
		return "", err
	}

	from := railtime.NowHHMM()
	if p.TimeFrom != "" {
		if from, err = railtime.NormalizeHHMM(p.TimeFrom); err != nil {
			return "", fmt.Errorf("time_from: %w", err)
		}
	}

	var timeTo string
	if p.TimeTo != "" {
		if timeTo, err = railtime.NormalizeHHMM(p.TimeTo); err != nil {
			return "", fmt.Errorf("time_to: %w", err)
		}
	}

	// A destination filter narrows the upstream search itself. One that does
	// not resolve is dropped rather than failing the whole board.
	var toCRS string
	if p.ToStation != "" && !arrivals {
		if dest := station.Resolve(p.ToStation); len(dest) > 0 {
			toCRS = dest[0].Code
		}
	}

	s.logger.Debug().
		Str("station", match.Code).
		Str("date", date).
		Bool("arrivals", arrivals).
		Str("provider", s.gateway.Name()).
		Msg("fetching station board")

	resp, err := s.gateway.Search(ctx, match.Code, toCRS, date, from)
	if err != nil {
		return "", fmt.Errorf("station board for %s: %w", match.Code, err)
	}

	var fromName string
	if p.FromStation != "" && arrivals {
		if origins := station.Resolve(p.FromStation); len(origins) > 0 {
			fromName = strings.ToLower(origins[0].DisplayName)
		}
	}

	kind := Departure
	if arrivals {
		kind = Arrival
	}

	type boardRow struct {
		time     string
		name     string
		platform string
		status   string
		uid      string
	}
	var rows []boardRow
	for i := range resp.Services {
		svc := &resp.Services[i]
		loc := svc.LocationDetail
		if loc == nil {
			continue
		}

		booked := loc.BookedDeparture
		if arrivals {
			booked = loc.BookedArrival
		}
		if booked == "" {
			continue
		}

		// Zero-padded HHMM strings order lexically.
		if timeTo != "" && booked > timeTo {
			continue
		}
		if p.Platform != "" && loc.Platform != p.Platform {
			continue
		}
		if p.Operator != "" && !strings.EqualFold(svc.AtocCode, p.Operator) {
			continue
		}
		if fromName != "" && !originMatches(svc.Origins(), fromName) {
			continue
		}

		status := Classify(loc, kind)
		cancelled := loc.CancelReason != ""
		switch statusFilter {
		case "delayed":
			if status.DelayMinutes < minDelay || cancelled {
				continue
			}
		case "cancelled":
			if !cancelled {
				continue
			}
		case "on_time":
			if status.DelayMinutes != 0 || cancelled {
				continue
			}
		}

		name := svc.Destinations()[0]
		if arrivals {
			name = svc.Origins()[0]
		}

		rows = append(rows, boardRow{
			time:     booked,
			name:     name,
			platform: PlatformString(loc),
			status:   status.Label,
			uid:      svc.ServiceUID,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].time < rows[j].time })
	if len(rows) > limit {
		rows = rows[:limit]
	}

	var b strings.Builder
	if !match.Verified {
		fmt.Fprintf(&b, "WARNING: Station code %q not found in database.\n", match.Code)
		b.WriteString("This may be a valid CRS code, but if results are unexpected, verify with lookup_station tool.\n\n")
		if len(resp.Services) == 0 {
			fmt.Fprintf(&b, "No services found for station code %q.\n\n", match.Code)
			b.WriteString("This code may not be valid. Use lookup_station to find the correct CRS code.")
			return b.String(), nil
		}
	}

	header := "DEPARTURES"
	if arrivals {
		header = "ARRIVALS"
	}
	fmt.Fprintf(&b, "%s - %s\n", header, match.DisplayName)
	fmt.Fprintf(&b, "%s | %s\n\n", railtime.NowUK().Format("15:04"), date)

	if p.IncludeSummary && len(resp.Services) > 0 {
		var onTime, delayed, cancelled int
		for i := range resp.Services {
			loc := resp.Services[i].LocationDetail
			if loc == nil {
				continue
			}
			if loc.CancelReason != "" {
				cancelled++
				continue
			}
			if Classify(loc, kind).DelayMinutes >= 5 {
				delayed++
			} else {
				onTime++
			}
		}
		if total := onTime + delayed + cancelled; total > 0 {
			fmt.Fprintf(&b, "SUMMARY: %d%% on-time | %d delayed | %d cancelled\n\n",
				percent(onTime, total), delayed, cancelled)
		}
	}

	if len(rows) == 0 {
		b.WriteString("No services found matching criteria")
		return b.String(), nil
	}

	column := "Destination"
	if arrivals {
		column = "Origin"
	}
	fmt.Fprintf(&b, "Time  | %-20s | Plat | %-12s | UID\n", column, "Status")
	b.WriteString(strings.Repeat("-", 70) + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s | %s | %-4s | %s | %s\n",
			railtime.Display(r.time), clipPad(r.name, 20), r.platform, clipPad(r.status, 12), r.uid)
	}

	return b.String(), nil
}

// ServiceInfoParams identify one service run and the optional extras.
type ServiceInfoParams struct {
	ServiceUID   string
	Date         string
	CheckStopsAt string // CRS code or name: report whether the train calls there
	LiveTracking bool   // include progress and current position
}

// ServiceInfo renders the full calling-point timeline of one service.
func (s *Service) ServiceInfo(ctx context.Context, p ServiceInfoParams) (string, error) {
	uid := strings.ToUpper(strings.TrimSpace(p.ServiceUID))
	if uid == "" {
		return "", errors.New("service_uid is required")
	}

	date, err := railtime.ServiceDate(p.Date)
	if err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("uid", uid).
		Str("date", date).
		Str("provider", s.gateway.Name()).
		Msg("fetching service detail")

	svc, err := s.gateway.Service(ctx, uid, date)
	if err != nil {
		return "", fmt.Errorf("service %s on %s: %w", uid, date, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SERVICE %s - %s\n", svc.ServiceUID, date)
	fmt.Fprintf(&b, "%s -> %s\n", svc.Origins()[0], svc.Destinations()[0])

	operator := svc.AtocName
	if operator == "" {
		operator = "Unknown"
	}
	trainID := svc.TrainIdentity
	if trainID == "" {
		trainID = "-"
	}
	fmt.Fprintf(&b, "Operator: %s | Train ID: %s\n", operator, trainID)

	realtime := "Not available"
	if svc.RealtimeActivated {
		realtime = "Active"
	}
	fmt.Fprintf(&b, "Real-time: %s\n\n", realtime)

	if p.CheckStopsAt != "" {
		code := strings.ToUpper(strings.TrimSpace(p.CheckStopsAt))
		if matches := station.Resolve(p.CheckStopsAt); len(matches) > 0 {
			code = matches[0].Code
		}
		if stop := svc.StopAt(code); stop != nil {
			fmt.Fprintf(&b, "STOPS AT %s: YES\n", code)
			if stop.BookedArrival != "" {
				fmt.Fprintf(&b, "  Arrives: %s\n", railtime.Display(stop.BookedArrival))
			}
			if stop.BookedDeparture != "" {
				fmt.Fprintf(&b, "  Departs: %s\n", railtime.Display(stop.BookedDeparture))
			}
			if stop.Platform != "" {
				fmt.Fprintf(&b, "  Platform: %s\n", PlatformString(stop))
			}
			b.WriteString("\n")
		} else {
			fmt.Fprintf(&b, "STOPS AT %s: NO - this train does not call at this station\n\n", code)
		}
	}

	if p.LiveTracking && svc.RealtimeActivated && len(svc.Locations) > 0 {
		var position string
		completed := 0
		for i := range svc.Locations {
			loc := &svc.Locations[i]
			if phrase := PositionPhrase(loc); phrase != "" {
				position = phrase
			}
			if loc.RealtimeDepartureActual {
				completed++
			}
		}
		b.WriteString("LIVE STATUS\n")
		fmt.Fprintf(&b, "Progress: %d%% (%d/%d stops)\n",
			percent(completed, len(svc.Locations)), completed, len(svc.Locations))
		if position != "" {
			fmt.Fprintf(&b, "Position: %s\n", position)
		}
		b.WriteString("\n")
	}

	b.WriteString("CALLING POINTS\n")
	b.WriteString(strings.Repeat("-", 70) + "\n")
	for i := range svc.Locations {
		loc := &svc.Locations[i]
		name := loc.Description
		if name == "" {
			name = "Unknown"
		}
		line := fmt.Sprintf("%-25s", name)

		var times []string
		if loc.BookedArrival != "" {
			t := "Arr " + railtime.Display(loc.BookedArrival)
			if loc.RealtimeArrival != "" && loc.RealtimeArrival != loc.BookedArrival {
				t += "->" + railtime.Display(loc.RealtimeArrival)
				if loc.RealtimeArrivalActual {
					t += "*"
				}
			}
			times = append(times, t)
		}
		if loc.BookedDeparture != "" {
			t := "Dep " + railtime.Display(loc.BookedDeparture)
			if loc.RealtimeDeparture != "" && loc.RealtimeDeparture != loc.BookedDeparture {
				t += "->" + railtime.Display(loc.RealtimeDeparture)
				if loc.RealtimeDepartureActual {
					t += "*"
				}
			}
			times = append(times, t)
		}
		line += fmt.Sprintf("%-30s", strings.Join(times, " | "))

		if plat := PlatformString(loc); plat != "-" {
			line += " [" + plat + "]"
		}
		if loc.CancelReason != "" {
			line += " CANCELLED"
		}
		if loc.ServiceLocation != "" {
			line += " <-- HERE"
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	b.WriteString("\n* = actual time recorded")
	return b.String(), nil
}

// JourneyParams describe a direct-train search between two stations.
type JourneyParams struct {
	FromStation string
	ToStation   string
	Date        string
	DepartAfter string
	Limit       int
}

// SearchJourneys renders direct trains between two stations. The upstream
// destination filter only returns direct services, so every result is a
// single-train journey.
func (s *Service) SearchJourneys(ctx context.Context, p JourneyParams) (string, error) {
	from, err := resolveStation("origin station", p.FromStation)
	if err != nil {
		return "", err
	}
	to, err := resolveStation("destination station", p.ToStation)
	if err != nil {
		return "", err
	}

	date, err := railtime.ServiceDate(p.Date)
	if err != nil {
		return "", err
	}

	departAfter := railtime.NowHHMM()
	if p.DepartAfter != "" {
		if departAfter, err = railtime.NormalizeHHMM(p.DepartAfter); err != nil {
			return "", fmt.Errorf("depart_after: %w", err)
		}
	}
	limit := clampLimit(p.Limit, 5, 10)

	s.logger.Debug().
		Str("from", from.Code).
		Str("to", to.Code).
		Str("date", date).
		Str("provider", s.gateway.Name()).
		Msg("searching journeys")

	resp, err := s.gateway.Search(ctx, from.Code, to.Code, date, departAfter)
	if err != nil {
		return "", fmt.Errorf("journeys %s to %s: %w", from.Code, to.Code, err)
	}

	type journeyRow struct {
		depTime  string
		platform string
		status   string
		operator string
		uid      string
	}
	var rows []journeyRow
	for i := range resp.Services {
		svc := &resp.Services[i]
		loc := svc.LocationDetail
		if loc == nil || loc.BookedDeparture == "" {
			continue
		}
		rows = append(rows, journeyRow{
			depTime:  loc.BookedDeparture,
			platform: PlatformString(loc),
			status:   Classify(loc, Departure).Label,
			operator: svc.AtocCode,
			uid:      svc.ServiceUID,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].depTime < rows[j].depTime })
	if len(rows) > limit {
		rows = rows[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "JOURNEYS: %s -> %s\n", from.DisplayName, to.DisplayName)
	fmt.Fprintf(&b, "Date: %s\n\n", date)

	if len(rows) == 0 {
		b.WriteString("No direct trains found for this route and time\n\n")
		b.WriteString("Tips:\n")
		b.WriteString("- Try a different time with depart_after parameter\n")
		b.WriteString("- Check station codes are correct with lookup_station")
		return b.String(), nil
	}

	b.WriteString("Depart | Platform | Status       | Operator | Service UID\n")
	b.WriteString(strings.Repeat("-", 65) + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s  | %-8s | %s | %-8s | %s\n",
			railtime.Display(r.depTime), r.platform, clipPad(r.status, 12), r.operator, r.uid)
	}
	b.WriteString("\nUse get_service_info with a service UID for full journey details")

	return b.String(), nil
}

// ConnectionParams identify an interchange between two service runs.
type ConnectionParams struct {
	ArrivingUID       string
	DepartingUID      string
	ConnectionStation string
	Date              string
}

// CheckConnection evaluates whether a change between two trains is viable.
// The two service fetches run concurrently; either failure aborts the whole
// check, there is no partial result.
func (s *Service) CheckConnection(ctx context.Context, p ConnectionParams) (string, error) {
	match, err := resolveStation("station", p.ConnectionStation)
	if err != nil {
		return "", err
	}

	date, err := railtime.ServiceDate(p.Date)
	if err != nil {
		return "", err
	}

	arrUID := strings.ToUpper(strings.TrimSpace(p.ArrivingUID))
	depUID := strings.ToUpper(strings.TrimSpace(p.DepartingUID))
	if arrUID == "" || depUID == "" {
		return "", errors.New("arriving_uid and departing_uid are required")
	}

	s.logger.Debug().
		Str("arriving", arrUID).
		Str("departing", depUID).
		Str("station", match.Code).
		Str("provider", s.gateway.Name()).
		Msg("checking connection")

	var wg sync.WaitGroup
	var arriving, departing *rtt.ServiceResponse
	var arrivErr, departErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		arriving, arrivErr = s.gateway.Service(ctx, arrUID, date)
	}()
	go func() {
		defer wg.Done()
		departing, departErr = s.gateway.Service(ctx, depUID, date)
	}()
	wg.Wait()

	if arrivErr != nil {
		return "", fmt.Errorf("arriving service %s: %w", arrUID, arrivErr)
	}
	if departErr != nil {
		return "", fmt.Errorf("departing service %s: %w", depUID, departErr)
	}

	arrivalStop := arriving.StopAt(match.Code)
	if arrivalStop == nil {
		return "", &StationNotOnServiceError{ServiceUID: arrUID, Station: match.DisplayName}
	}
	departureStop := departing.StopAt(match.Code)
	if departureStop == nil {
		return "", &StationNotOnServiceError{ServiceUID: depUID, Station: match.DisplayName}
	}

	assessment, err := AssessConnection(arrivalStop, departureStop, arrUID, depUID, match.DisplayName)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if !match.Verified {
		fmt.Fprintf(&b, "WARNING: Station code %q not found in database.\n", match.Code)
		b.WriteString("This may be a valid CRS code, but verify with lookup_station if results are unexpected.\n\n")
	}

	fmt.Fprintf(&b, "CONNECTION CHECK at %s\n", match.DisplayName)
	fmt.Fprintf(&b, "Date: %s\n\n", date)
	fmt.Fprintf(&b, "%s\n\n", riskLine(assessment))

	b.WriteString("ARRIVING SERVICE\n")
	fmt.Fprintf(&b, "  %s: %s -> %s\n", arrUID, arriving.Origins()[0], arriving.Destinations()[0])
	fmt.Fprintf(&b, "  Scheduled arrival: %s\n", railtime.Display(assessment.ScheduledArrival))
	fmt.Fprintf(&b, "  Expected arrival:  %s%s\n", railtime.Display(assessment.ExpectedArrival), delaySuffix(assessment.ArrivalDelay))
	fmt.Fprintf(&b, "  Platform: %s\n\n", PlatformString(arrivalStop))

	b.WriteString("DEPARTING SERVICE\n")
	fmt.Fprintf(&b, "  %s: %s -> %s\n", depUID, departing.Origins()[0], departing.Destinations()[0])
	fmt.Fprintf(&b, "  Scheduled departure: %s\n", railtime.Display(assessment.ScheduledDeparture))
	fmt.Fprintf(&b, "  Expected departure:  %s%s\n", railtime.Display(assessment.ExpectedDeparture), delaySuffix(assessment.DepartureDelay))
	fmt.Fprintf(&b, "  Platform: %s\n\n", PlatformString(departureStop))

	fmt.Fprintf(&b, "CONNECTION TIME: %d minutes\n", assessment.TransferMinutes)
	if assessment.PlatformChanged {
		fmt.Fprintf(&b, "PLATFORM CHANGE: Yes (%s -> %s)", PlatformString(arrivalStop), PlatformString(departureStop))
	} else {
		b.WriteString("PLATFORM CHANGE: No / Unknown")
	}

	if assessment.ArrivalDelay > 0 && assessment.TransferMinutes < 10 {
		fmt.Fprintf(&b, "\n\nWARNING: Arriving train is %dm late, connection may be at risk", assessment.ArrivalDelay)
	}

	return b.String(), nil
}

// RouteAnalysisParams describe a one-day station pair analysis.
type RouteAnalysisParams struct {
	FromStation string
	ToStation   string
	Date        string
	Operator    string
}

// AnalyzeRoute renders one-day performance statistics for a station pair:
// punctuality, delay stats, a health line, per-operator breakdown, and the
// most frequent cancellation reasons.
func (s *Service) AnalyzeRoute(ctx context.Context, p RouteAnalysisParams) (string, error) {
	from, err := resolveStation("origin station", p.FromStation)
	if err != nil {
		return "", err
	}
	to, err := resolveStation("destination station", p.ToStation)
	if err != nil {
		return "", err
	}

	date, err := railtime.ServiceDate(p.Date)
	if err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("from", from.Code).
		Str("to", to.Code).
		Str("date", date).
		Str("provider", s.gateway.Name()).
		Msg("analyzing route")

	// Whole-day view: no from-time filter.
	resp, err := s.gateway.Search(ctx, from.Code, to.Code, date, "")
	if err != nil {
		return "", fmt.Errorf("route %s to %s: %w", from.Code, to.Code, err)
	}

	type operatorStats struct {
		total     int
		delayed   int
		cancelled int
	}

	var total, onTime, delayed, cancelled, totalDelay, maxDelay int
	operators := make(map[string]*operatorStats)
	reasons := make(map[string]int)

	for i := range resp.Services {
		svc := &resp.Services[i]
		loc := svc.LocationDetail
		if loc == nil {
			continue
		}

		opCode := svc.AtocCode
		if opCode == "" {
			opCode = "Unknown"
		}
		if p.Operator != "" && !strings.EqualFold(opCode, p.Operator) {
			continue
		}

		total++
		op := operators[opCode]
		if op == nil {
			op = &operatorStats{}
			operators[opCode] = op
		}
		op.total++

		if loc.CancelReason != "" {
			cancelled++
			op.cancelled++
			reasons[loc.CancelReason]++
			continue
		}

		if d := Classify(loc, Departure).DelayMinutes; d >= 5 {
			delayed++
			op.delayed++
			totalDelay += d
			if d > maxDelay {
				maxDelay = d
			}
		} else {
			onTime++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ROUTE ANALYSIS: %s -> %s\n", from.DisplayName, to.DisplayName)
	fmt.Fprintf(&b, "Date: %s\n\n", date)

	if total == 0 {
		b.WriteString("No services found for this route")
		return b.String(), nil
	}

	onTimePercent := percent(onTime, total)
	cancelledPercent := percent(cancelled, total)

	b.WriteString("OVERALL PERFORMANCE\n")
	fmt.Fprintf(&b, "  Total services: %d\n", total)
	fmt.Fprintf(&b, "  On time (<5m): %d (%d%%)\n", onTime, onTimePercent)
	fmt.Fprintf(&b, "  Delayed (5m+): %d (%d%%)\n", delayed, percent(delayed, total))
	fmt.Fprintf(&b, "  Cancelled: %d (%d%%)\n", cancelled, cancelledPercent)
	if delayed > 0 {
		fmt.Fprintf(&b, "  Average delay: %d mins\n", totalDelay/delayed)
		fmt.Fprintf(&b, "  Maximum delay: %d mins\n", maxDelay)
	}

	b.WriteString("\n")
	switch {
	case onTimePercent >= 80 && cancelledPercent < 5:
		b.WriteString("ROUTE STATUS: GOOD - Services running well")
	case onTimePercent >= 60 && cancelledPercent < 10:
		b.WriteString("ROUTE STATUS: FAIR - Some disruption")
	default:
		b.WriteString("ROUTE STATUS: POOR - Significant disruption")
	}

	if len(operators) > 1 || p.Operator == "" {
		b.WriteString("\n\nBY OPERATOR")
		codes := make([]string, 0, len(operators))
		for code := range operators {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			op := operators[code]
			opOnTime := op.total - op.delayed - op.cancelled
			fmt.Fprintf(&b, "\n  %s: %d services, %d%% on-time, %d cancelled",
				code, op.total, percent(opOnTime, op.total), op.cancelled)
		}
	}

	if len(reasons) > 0 {
		b.WriteString("\n\nDISRUPTION REASONS")
		for _, r := range topReasons(reasons, 5) {
			fmt.Fprintf(&b, "\n  %s: %d", r.reason, r.count)
		}
	}

	return b.String(), nil
}

// LookupStation renders resolver results for a station query. It is purely
// local: the gazetteer is the only data source.
func (s *Service) LookupStation(query string) string {
	matches := station.Resolve(query)
	if len(matches) == 0 {
		return fmt.Sprintf("No stations found matching: %s\n\nTry a partial name or check spelling.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "STATION LOOKUP: %q\n\n", query)

	shown := matches
	if len(shown) > 10 {
		shown = shown[:10]
	}
	unverified := false
	for _, m := range shown {
		marker := ""
		if !m.Verified {
			marker = " (unverified - may not exist)"
			unverified = true
		}
		fmt.Fprintf(&b, "%s - %s%s\n", m.Code, m.DisplayName, marker)
	}
	if len(matches) > 10 {
		fmt.Fprintf(&b, "... and %d more\n", len(matches)-10)
	}

	b.WriteString("\nUse the 3-letter code with other tools (e.g., get_station_board)")
	if unverified {
		b.WriteString("\n\nNote: Unverified codes were not found in our database.\n")
		b.WriteString("They may still be valid CRS codes - check API results to confirm.")
	}
	return b.String()
}

// resolveStation resolves a query to its best match, failing with an
// UnknownStationError when nothing matches. role names the parameter in the
// error ("origin station", "connection station").
func resolveStation(role, query string) (station.Match, error) {
	if matches := station.Resolve(query); len(matches) > 0 {
		return matches[0], nil
	}
	return station.Match{}, &UnknownStationError{Role: role, Query: query}
}

func originMatches(origins []string, fromName string) bool {
	for _, o := range origins {
		if strings.Contains(strings.ToLower(o), fromName) {
			return true
		}
	}
	return false
}
