package adapthttp

import (
	"net/http"
)

func (s *Server) handleNeeds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user := userFromContext(r)
	days := periodQuery(r)

	needs, err := s.svcs.Needs.Calculate(r.Context(), user.ID, days)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, needs)
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user := userFromContext(r)
	days := periodQuery(r)

	trend, err := s.svcs.Trends.GetPeriod(r.Context(), user.ID, days)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": days, "trend": trend})
}
