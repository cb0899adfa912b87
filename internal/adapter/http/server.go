// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"calculator/internal/app"
)

// Services bundles the application services the server routes to.
type Services struct {
	Auth     *app.AuthService
	Profile  *app.ProfileService
	Entries  *app.EntryService
	History  *app.HistoryService
	Trends   *app.TrendsService
	Needs    *app.NeedsService
	Transfer *app.TransferService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	svcs        Services
	oidcConfig  OIDCConfig
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(svcs Services, oidcConfig OIDCConfig) *Server {
	return &Server{svcs: svcs, oidcConfig: oidcConfig}
}

// WithoutAuth disables the session middleware; requests run as a fixed test
// user. For tests only.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	public := http.NewServeMux()
	public.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	public.HandleFunc("/config", s.handleConfig)
	public.HandleFunc("/auth/login", s.handleLogin)
	public.HandleFunc("/auth/register", s.handleRegister)
	public.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	public.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	private := http.NewServeMux()
	private.HandleFunc("/auth/logout", s.handleLogout)
	private.HandleFunc("/profile", s.handleProfile)
	private.HandleFunc("/entries", s.handleEntries)
	private.HandleFunc("/records", s.handleRecords)
	private.HandleFunc("/needs", s.handleNeeds)
	private.HandleFunc("/trends", s.handleTrends)
	private.HandleFunc("/export", s.handleExport)
	private.HandleFunc("/import", s.handleImport)

	api := http.NewServeMux()
	api.Handle("/health", public)
	api.Handle("/config", public)
	api.Handle("/auth/login", public)
	api.Handle("/auth/register", public)
	api.Handle("/auth/sso/", public)
	api.Handle("/", s.authMiddleware(private))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", s.loggingMiddleware(api)))

	return withNoCache(root)
}
