package adapthttp

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"calculator/internal/app"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user := userFromContext(r)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", app.ExportFileName(time.Now())))
	if err := s.svcs.Transfer.Export(r.Context(), user.ID, w); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("export failed: %v", err)
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user := userFromContext(r)

	imported, err := s.svcs.Transfer.Import(r.Context(), user.ID, r.Body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "imported": imported})
}
