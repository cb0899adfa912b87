package adapthttp

import (
	"net/http"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		profile, err := s.svcs.Profile.Get(ctx, user.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"profile": profile})

	case http.MethodPut:
		var body struct {
			Age           int     `json:"age"`
			HeightInches  float64 `json:"heightInches"`
			ActivityLevel string  `json:"activityLevel"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		profile, err := s.svcs.Profile.Update(ctx, user.ID, body.Age, body.HeightInches, body.ActivityLevel)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"profile": profile})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
