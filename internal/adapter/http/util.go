package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"calculator/internal/app"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// writeServiceError maps application error kinds to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrEntryExists):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, app.ErrInvalidParameter), errors.Is(err, app.ErrData):
		writeError(w, http.StatusBadRequest, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func intQuery(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// periodDays maps the named view periods to day counts.
var periodDays = map[string]int{
	"1 week":   7,
	"1 month":  30,
	"3 months": 90,
	"6 months": 180,
	"1 year":   365,
}

// periodQuery resolves the observed window from either a named period or an
// explicit day count; 0 means all recorded data.
func periodQuery(r *http.Request) int {
	if name := r.URL.Query().Get("period"); name != "" {
		if days, ok := periodDays[name]; ok {
			return days
		}
	}
	return intQuery(r, "days", 0)
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
