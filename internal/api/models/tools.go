package models

// ToolResult is the uniform envelope for tool responses. A tool invocation
// that fails for a domain or upstream reason still answers 200 with
// isError set; only a malformed request body is a transport-level error.
type ToolResult struct {
	Text    string `json:"text"`
	IsError bool   `json:"isError,omitempty"`
}

// StationBoardRequest is the input for the get_station_board tool.
type StationBoardRequest struct {
	// Station is a 3-letter CRS code (e.g. PAD) or a station name.
	Station string `json:"station"`

	// Type is "departures" (default) or "arrivals".
	Type string `json:"type,omitempty"`

	// ToStation filters departures to trains calling at this station.
	ToStation string `json:"to_station,omitempty"`

	// FromStation filters arrivals to trains from this origin.
	FromStation string `json:"from_station,omitempty"`

	// Operator filters by operator code (e.g. GW, VT, XC).
	Operator string `json:"operator,omitempty"`

	// Platform filters by platform number.
	Platform string `json:"platform,omitempty"`

	// TimeFrom / TimeTo bound the board window (HH:MM).
	TimeFrom string `json:"time_from,omitempty"`
	TimeTo   string `json:"time_to,omitempty"`

	// Date is YYYY-MM-DD; default is today.
	Date string `json:"date,omitempty"`

	// StatusFilter is one of all, delayed, cancelled, on_time.
	StatusFilter string `json:"status_filter,omitempty"`

	// MinDelayMins is the threshold for the delayed filter (default 5).
	MinDelayMins int `json:"min_delay_mins,omitempty"`

	// Limit caps results (default 15, max 30).
	Limit int `json:"limit,omitempty"`

	// IncludeSummary adds a station health line.
	IncludeSummary bool `json:"include_summary,omitempty"`
}

// ServiceInfoRequest is the input for the get_service_info tool.
type ServiceInfoRequest struct {
	// ServiceUID is the service identifier from a station board (e.g. W72419).
	ServiceUID string `json:"service_uid"`

	// Date is YYYY-MM-DD and must match the day the service runs.
	Date string `json:"date"`

	// CheckStopsAt reports whether the train calls at this station.
	CheckStopsAt string `json:"check_stops_at,omitempty"`

	// IncludeLiveTracking shows progress and current position (default true).
	IncludeLiveTracking *bool `json:"include_live_tracking,omitempty"`
}

// SearchJourneysRequest is the input for the search_journeys tool.
type SearchJourneysRequest struct {
	FromStation string `json:"from_station"`
	ToStation   string `json:"to_station"`
	Date        string `json:"date,omitempty"`

	// DepartAfter finds trains departing after this HH:MM time.
	DepartAfter string `json:"depart_after,omitempty"`

	// Limit caps results (default 5, max 10).
	Limit int `json:"limit,omitempty"`
}

// CheckConnectionRequest is the input for the check_connection tool.
type CheckConnectionRequest struct {
	ArrivingUID       string `json:"arriving_uid"`
	DepartingUID      string `json:"departing_uid"`
	ConnectionStation string `json:"connection_station"`
	Date              string `json:"date"`
}

// AnalyzeRouteRequest is the input for the analyze_route tool.
type AnalyzeRouteRequest struct {
	FromStation string `json:"from_station"`
	ToStation   string `json:"to_station"`
	Date        string `json:"date,omitempty"`
	Operator    string `json:"operator,omitempty"`
}

// LookupStationRequest is the input for the lookup_station tool.
type LookupStationRequest struct {
	Query string `json:"query"`
}
