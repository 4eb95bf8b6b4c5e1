package cmd

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"datesuggest/internal"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/russross/blackfriday/v2"
	"go.uber.org/zap"
)

//go:embed templates/*
var templatesFS embed.FS

var templates *template.Template

func init() {
	funcMap := template.FuncMap{
		"markdown": func(text string) template.HTML {
			output := blackfriday.Run([]byte(text))
			return template.HTML(output)
		},
	}

	var err error
	templates, err = template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}
}

// Controller serves suggestions over HTTP.
type Controller struct {
	config    *internal.Config
	sessions  *internal.SessionStore
	newEngine func() *internal.Engine
	logger    *zap.Logger
}

func NewController(config *internal.Config, logger *zap.Logger, newEngine func() *internal.Engine) *Controller {
	server := config.Server
	return &Controller{
		config:    config,
		sessions:  internal.NewSessionStore(server.MaxSessions, server.SessionTTL(), server.RatePerSecond, server.Burst, newEngine),
		newEngine: newEngine,
		logger:    logger,
	}
}

func HttpdCommand(config *internal.Config, addr string) error {
	if addr == "" {
		addr = config.Server.Addr
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	c := NewController(config, logger, newEngine)

	fmt.Printf("Starting HTTP server on http://%s\n", addr)
	fmt.Println("Press Ctrl+C to stop")

	return http.ListenAndServe(addr, c.Routes())
}

// Routes returns the HTTP handler.
func (c *Controller) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(c.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", c.indexHandler)
	r.Get("/api/suggest", c.suggestHandler)
	r.Post("/api/sessions", c.createSessionHandler)
	r.Get("/api/sessions/{id}/suggest", c.sessionSuggestHandler)
	r.Delete("/api/sessions/{id}", c.deleteSessionHandler)

	return r
}

func (c *Controller) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		c.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (c *Controller) indexHandler(w http.ResponseWriter, r *http.Request) {
	usage, err := templatesFS.ReadFile("templates/usage.md")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := struct {
		Title string
		Usage string
	}{
		Title: "datesuggest",
		Usage: string(usage),
	}

	if err := templates.ExecuteTemplate(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// suggestHandler answers a single query with a fresh engine.
func (c *Controller) suggestHandler(w http.ResponseWriter, r *http.Request) {
	req, err := c.suggestRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, c.newEngine().Suggest(req))
}

func (c *Controller) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	session := c.sessions.Create()
	c.logger.Info("session created",
		zap.String("session_id", session.ID),
		zap.Int("sessions", c.sessions.Len()),
	)

	writeJSON(w, http.StatusCreated, map[string]string{"id": session.ID})
}

func (c *Controller) sessionSuggestHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, ok := c.sessions.Get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	if !session.Allow() {
		c.logger.Warn("rate limit exceeded", zap.String("session_id", id))
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	req, err := c.suggestRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, session.Suggest(req))
}

func (c *Controller) deleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !c.sessions.Delete(id) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	c.logger.Info("session deleted", zap.String("session_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// suggestRequest builds an engine request from the configured defaults and
// the query parameters q, time, hour, minute and ref (RFC 3339).
func (c *Controller) suggestRequest(r *http.Request) (internal.Request, error) {
	params := r.URL.Query()
	req := c.config.Suggest.Request(params.Get("q"))

	if v := params.Get("time"); v != "" {
		parseTime, err := strconv.ParseBool(v)
		if err != nil {
			return req, fmt.Errorf("invalid time: %w", err)
		}
		req.ParseTime = parseTime
	}
	if v := params.Get("hour"); v != "" {
		hour, err := strconv.Atoi(v)
		if err != nil || hour < 0 || hour > 23 {
			return req, fmt.Errorf("invalid hour: %q", v)
		}
		req.Hour = hour
	}
	if v := params.Get("minute"); v != "" {
		minute, err := strconv.Atoi(v)
		if err != nil || minute < 0 || minute > 59 {
			return req, fmt.Errorf("invalid minute: %q", v)
		}
		req.Minute = minute
	}
	if v := params.Get("ref"); v != "" {
		ref, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return req, fmt.Errorf("invalid ref: %w", err)
		}
		req.Ref = ref
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
