package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgallion1/docchat/internal/analysis"
	"github.com/dgallion1/docchat/internal/assistant"
	"github.com/dgallion1/docchat/internal/chat"
	"github.com/dgallion1/docchat/internal/config"
	"github.com/dgallion1/docchat/internal/pipeline"
	"github.com/dgallion1/docchat/internal/section"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docchat.
type Server struct {
	router        chi.Router
	store         *section.Store
	conversations *chat.Registry
	responder     *assistant.Responder
	analyzer      analysis.Analyzer
	orchestrator  *pipeline.Orchestrator
	stats         *assistant.ReplyStats
	log           *slog.Logger
	cfg           config.Config
}

// NewServer creates and configures the HTTP server. The document-wide
// conversation is seeded with its greeting here.
func NewServer(store *section.Store, orch *pipeline.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	analyzer := analysis.Analyzer{ExcerptLength: cfg.ExcerptLength}
	s := &Server{
		store:         store,
		conversations: chat.NewRegistry(),
		responder:     assistant.New(store, analyzer),
		analyzer:      analyzer,
		orchestrator:  orch,
		stats:         assistant.NewReplyStats(time.Hour),
		log:           log,
		cfg:           cfg,
	}
	s.conversations.Global().Append(chat.RoleAssistant, s.responder.GlobalGreeting())
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	// Embedded viewer.
	r.Get("/", s.handleViewer)
	r.Handle("/static/*", s.staticHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.handleListSections)
		r.Post("/sections", s.handleAddSection)
		r.Get("/sections/{sectionID}", s.handleGetSection)
		r.Delete("/sections/{sectionID}", s.handleRemoveSection)
		r.Get("/sections/{sectionID}/analysis", s.handleSectionAnalysis)
		r.Get("/sections/{sectionID}/chat", s.handleGetSectionChat)
		r.Post("/sections/{sectionID}/chat", s.handlePostSectionChat)

		r.Get("/overview", s.handleOverview)

		r.Get("/active", s.handleGetActive)
		r.Put("/active/{sectionID}", s.handleSetActive)
		r.Delete("/active", s.handleClearActive)

		r.Get("/chat", s.handleGetGlobalChat)
		r.Post("/chat", s.handlePostGlobalChat)

		r.Post("/import", s.handleImport)
		r.Get("/import/{jobID}/status", s.handleImportStatus)

		r.Get("/stats/assistant", s.handleAssistantStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
