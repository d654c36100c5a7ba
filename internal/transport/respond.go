package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tc2services/attivita/internal/domain/historical"
	"github.com/tc2services/attivita/internal/domain/user"
)

// maxPageSize caps the limit query parameter on listing endpoints.
const maxPageSize = 200

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// writeServiceError maps domain errors onto the HTTP error taxonomy.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, historical.ErrInvalidTimeRange),
		errors.Is(err, historical.ErrInvalidGroupBy),
		errors.Is(err, historical.ErrInvalidInput),
		errors.Is(err, user.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, user.ErrDeviceAssigned):
		writeError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// parseTimeParam accepts RFC 3339 timestamps or bare YYYY-MM-DD dates. Bare
// dates keep a zero time-of-day so the window normalization can expand them
// to whole-day coverage.
func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func optionalTimeParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseTimeParam(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func requiredTimeParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, errors.New("missing " + name)
	}
	return parseTimeParam(raw)
}

func parsePagination(r *http.Request) (skip, limit int, err error) {
	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return 0, 0, errors.New("skip must be a non-negative integer")
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxPageSize {
			return 0, 0, errors.New("limit must be between 1 and 200")
		}
	}
	return skip, limit, nil
}

// parseGroupBy validates group_by tokens against the allowed set for the
// endpoint.
func parseGroupBy(r *http.Request, allowed ...historical.GroupBy) ([]historical.GroupBy, error) {
	values := r.URL.Query()["group_by"]
	groupBy := make([]historical.GroupBy, 0, len(values))

	for _, raw := range values {
		g, err := historical.ParseGroupBy(raw)
		if err != nil {
			return nil, err
		}
		permitted := false
		for _, a := range allowed {
			if g == a {
				permitted = true
				break
			}
		}
		if !permitted {
			return nil, historical.ErrInvalidGroupBy
		}
		groupBy = append(groupBy, g)
	}
	return groupBy, nil
}
