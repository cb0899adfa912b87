package adapthttp

import (
	"net/http"
)

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user := userFromContext(r)

	var body struct {
		Day       string  `json:"day"`
		Pounds    float64 `json:"pounds"`
		Kcal      int     `json:"kcal"`
		Overwrite bool    `json:"overwrite"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	replaced, err := s.svcs.Entries.Record(r.Context(), user.ID, body.Day, body.Pounds, body.Kcal, body.Overwrite)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "day": body.Day, "replaced": replaced})
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user := userFromContext(r)
	days := periodQuery(r)

	records, err := s.svcs.History.ListRecords(r.Context(), user.ID, days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": days, "items": records})
}
