package handler

import (
	"encoding/json"
	"net/http"

	"github.com/railscout/railscout/internal/api/models"
	"github.com/railscout/railscout/internal/api/response"
	"github.com/railscout/railscout/internal/rail"
)

// ToolsHandler exposes the rail tools over HTTP. Every tool answers 200 with
// a ToolResult envelope; domain and upstream failures are reported inside the
// envelope with isError set. Only a malformed request body yields a 400.
type ToolsHandler struct {
	rail *rail.Service
}

// NewToolsHandler creates a new ToolsHandler.
func NewToolsHandler(railService *rail.Service) *ToolsHandler {
	return &ToolsHandler{rail: railService}
}

// StationBoard handles POST /v1/tools/get_station_board.
func (h *ToolsHandler) StationBoard(w http.ResponseWriter, r *http.Request) {
	var req models.StationBoardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := h.rail.StationBoard(r.Context(), rail.BoardParams{
		Station:        req.Station,
		Type:           req.Type,
		ToStation:      req.ToStation,
		FromStation:    req.FromStation,
		Operator:       req.Operator,
		Platform:       req.Platform,
		TimeFrom:       req.TimeFrom,
		TimeTo:         req.TimeTo,
		Date:           req.Date,
		StatusFilter:   req.StatusFilter,
		MinDelayMins:   req.MinDelayMins,
		Limit:          req.Limit,
		IncludeSummary: req.IncludeSummary,
	})
	writeToolResult(w, r, text, err)
}

// ServiceInfo handles POST /v1/tools/get_service_info.
func (h *ToolsHandler) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceInfoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	liveTracking := true
	if req.IncludeLiveTracking != nil {
		liveTracking = *req.IncludeLiveTracking
	}

	text, err := h.rail.ServiceInfo(r.Context(), rail.ServiceInfoParams{
		ServiceUID:   req.ServiceUID,
		Date:         req.Date,
		CheckStopsAt: req.CheckStopsAt,
		LiveTracking: liveTracking,
	})
	writeToolResult(w, r, text, err)
}

// SearchJourneys handles POST /v1/tools/search_journeys.
func (h *ToolsHandler) SearchJourneys(w http.ResponseWriter, r *http.Request) {
	var req models.SearchJourneysRequest
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := h.rail.SearchJourneys(r.Context(), rail.JourneyParams{
		FromStation: req.FromStation,
		ToStation:   req.ToStation,
		Date:        req.Date,
		DepartAfter: req.DepartAfter,
		Limit:       req.Limit,
	})
	writeToolResult(w, r, text, err)
}

// CheckConnection handles POST /v1/tools/check_connection.
func (h *ToolsHandler) CheckConnection(w http.ResponseWriter, r *http.Request) {
	var req models.CheckConnectionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := h.rail.CheckConnection(r.Context(), rail.ConnectionParams{
		ArrivingUID:       req.ArrivingUID,
		DepartingUID:      req.DepartingUID,
		ConnectionStation: req.ConnectionStation,
		Date:              req.Date,
	})
	writeToolResult(w, r, text, err)
}

// AnalyzeRoute handles POST /v1/tools/analyze_route.
func (h *ToolsHandler) AnalyzeRoute(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRouteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := h.rail.AnalyzeRoute(r.Context(), rail.RouteAnalysisParams{
		FromStation: req.FromStation,
		ToStation:   req.ToStation,
		Date:        req.Date,
		Operator:    req.Operator,
	})
	writeToolResult(w, r, text, err)
}

// LookupStation handles POST /v1/tools/lookup_station.
func (h *ToolsHandler) LookupStation(w http.ResponseWriter, r *http.Request) {
	var req models.LookupStationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Query == "" {
		response.JSON(w, r, http.StatusOK, models.ToolResult{
			Text:    "Error: query is required",
			IsError: true,
		})
		return
	}

	response.JSON(w, r, http.StatusOK, models.ToolResult{
		Text: h.rail.LookupStation(req.Query),
	})
}

// decodeBody decodes the JSON request body into dst, answering a 400 Problem
// on malformed input. Returns false when the caller should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return false
	}
	return true
}

// writeToolResult wraps a tool outcome in the ToolResult envelope. Errors from
// the rail layer are reported in-band so callers always receive a 200 with a
// readable message.
func writeToolResult(w http.ResponseWriter, r *http.Request, text string, err error) {
	if err != nil {
		response.JSON(w, r, http.StatusOK, models.ToolResult{
			Text:    "Error: " + err.Error(),
			IsError: true,
		})
		return
	}
	response.JSON(w, r, http.StatusOK, models.ToolResult{Text: text})
}
