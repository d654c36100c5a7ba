package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tc2services/attivita/internal/domain/historical"
)

// LogsResponse wraps a log listing.
type LogsResponse struct {
	ActivitiesLogs []historical.ActivityLog `json:"activities_logs"`
}

func (s *Server) handleLogsByDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "deviceID")

	opts, ok := s.listOptions(w, r)
	if !ok {
		return
	}

	logs, err := s.services.Historical.LogsByDevice(r.Context(), deviceID, opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LogsResponse{ActivitiesLogs: logs})
}

func (s *Server) handleLogsByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	opts, ok := s.listOptions(w, r)
	if !ok {
		return
	}

	logs, err := s.services.Historical.LogsByUser(r.Context(), userID, opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LogsResponse{ActivitiesLogs: logs})
}

func (s *Server) handleSummaryByDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "deviceID")

	start, stop, groupBy, ok := s.summaryParams(w, r, historical.GroupByDay)
	if !ok {
		return
	}

	summary, err := s.services.Historical.ActivitySummaryByDevice(r.Context(), deviceID, start, stop, groupBy)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSummaryByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	start, stop, groupBy, ok := s.summaryParams(w, r, historical.GroupByDay)
	if !ok {
		return
	}

	summary, err := s.services.Historical.ActivitySummaryByUser(r.Context(), userID, start, stop, groupBy)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleAttentionByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	start, stop, groupBy, ok := s.summaryParams(w, r, historical.GroupByDay, historical.GroupByHour)
	if !ok {
		return
	}

	summary, err := s.services.Historical.AttentionSummaryByUser(r.Context(), userID, start, stop, groupBy)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) listOptions(w http.ResponseWriter, r *http.Request) (historical.ListLogsOptions, bool) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return historical.ListLogsOptions{}, false
	}

	startTime, err := optionalTimeParam(r, "start_time")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "start_time must be RFC 3339 or YYYY-MM-DD")
		return historical.ListLogsOptions{}, false
	}
	stopTime, err := optionalTimeParam(r, "stop_time")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "stop_time must be RFC 3339 or YYYY-MM-DD")
		return historical.ListLogsOptions{}, false
	}

	return historical.ListLogsOptions{
		Skip:      skip,
		Limit:     limit,
		StartTime: startTime,
		StopTime:  stopTime,
	}, true
}

// summaryParams parses the shared summary query parameters. The end of the
// window arrives as end_time.
func (s *Server) summaryParams(w http.ResponseWriter, r *http.Request, allowed ...historical.GroupBy) (start, stop time.Time, groupBy []historical.GroupBy, ok bool) {
	start, err := requiredTimeParam(r, "start_time")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "start_time must be RFC 3339 or YYYY-MM-DD")
		return start, stop, nil, false
	}
	stop, err = requiredTimeParam(r, "end_time")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "end_time must be RFC 3339 or YYYY-MM-DD")
		return start, stop, nil, false
	}

	groupBy, err = parseGroupBy(r, allowed...)
	if err != nil {
		writeServiceError(w, err)
		return start, stop, nil, false
	}
	return start, stop, groupBy, true
}
