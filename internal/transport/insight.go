package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// InsightResponse carries the generated natural-language insight.
type InsightResponse struct {
	Insight string `json:"insight"`
}

func (s *Server) handleInsightByDevice(w http.ResponseWriter, r *http.Request) {
	insight, err := s.services.Insights.ProductivityForDevice(r.Context(), chi.URLParam(r, "deviceID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, InsightResponse{Insight: insight})
}

func (s *Server) handleInsightByUser(w http.ResponseWriter, r *http.Request) {
	insight, err := s.services.Insights.ProductivityForUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, InsightResponse{Insight: insight})
}
