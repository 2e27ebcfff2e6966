package web

import (
	_ "embed"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	app "rodnan-bot/internal/application"
	"rodnan-bot/internal/container"
	"rodnan-bot/internal/domain/entity"
	"rodnan-bot/internal/domain/port"
	"rodnan-bot/internal/infrastructure/notify"
	"rodnan-bot/internal/infrastructure/render"
)

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

const maxDiagramSide = 2000

// Server HTTP-поверхность калькулятора
type Server struct {
	app     *container.Container
	inbox   *notify.Inbox
	tokens  *SessionTokens
	origins []string
	size    int
}

// NewServer создаёт сервер; inbox должен быть среди получателей уведомлений сервиса
func NewServer(appContainer *container.Container, inbox *notify.Inbox, tokens *SessionTokens, origins []string, size int) *Server {
	return &Server{
		app:     appContainer,
		inbox:   inbox,
		tokens:  tokens,
		origins: origins,
		size:    size,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Group(func(sr chi.Router) {
		sr.Use(s.tokens.Middleware)

		sr.Get("/", s.handlePage)
		sr.Route("/api", func(ar chi.Router) {
			ar.Get("/state", s.handleState)
			ar.Get("/diagram.png", s.handleDiagram)
			ar.Post("/click", s.handleClick)
			ar.Post("/regions/{regionID}/toggle", s.handleToggle)
			ar.Post("/score", s.handleScore)
			ar.Post("/reset", s.handleReset)
			ar.Post("/save", s.handleSave)
			ar.Post("/action", s.handleAction)
		})
	})

	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, s.app.Variant); err != nil {
		log.Printf("render page: %v", err)
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap, err := s.app.ScoringService.View(r.Context(), sessionFrom(r.Context()))
	s.reply(w, r, snap, nil, err)
}

// GET /api/diagram.png?w=&h=&bare=1 — bare рисует схему без отметок
func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	width := parseSide(r.URL.Query().Get("w"), s.size)
	height := parseSide(r.URL.Query().Get("h"), width)
	surface := render.FixedSurface{Width: width, Height: height}

	ctx := r.Context()
	var markers []port.Marker
	if r.URL.Query().Get("bare") != "1" {
		var err error
		markers, err = s.app.ScoringService.Markers(ctx, sessionFrom(ctx), surface)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	data, err := s.app.Renderer.Render(ctx, markers, width, height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

// POST /api/click { "x":..,"y":..,"width":..,"height":..,"ready":true,"viewport":..,"pointer":"coarse|fine" }
func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X        float64 `json:"x"`
		Y        float64 `json:"y"`
		Width    float64 `json:"width"`
		Height   float64 `json:"height"`
		Ready    bool    `json:"ready"`
		Viewport int     `json:"viewport"`
		Pointer  string  `json:"pointer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	pointer := entity.ClassifyViewport(req.Viewport)
	if req.Pointer != "" {
		pointer = entity.ParsePointerClass(req.Pointer)
	}
	surface := clientSurface{ready: req.Ready, width: req.Width, height: req.Height}

	snap, hit, err := s.app.ScoringService.Click(r.Context(), sessionFrom(r.Context()), surface, req.X, req.Y, pointer)
	s.reply(w, r, snap, &hit, err)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	snap, err := s.app.ScoringService.Toggle(r.Context(), sessionFrom(r.Context()), chi.URLParam(r, "regionID"))
	s.reply(w, r, snap, nil, err)
}

// POST /api/score { "score": 2 }
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Score *int `json:"score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Score == nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	snap, err := s.app.ScoringService.Score(r.Context(), sessionFrom(r.Context()), *req.Score)
	s.reply(w, r, snap, nil, err)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	snap, err := s.app.ScoringService.Reset(r.Context(), sessionFrom(r.Context()))
	s.reply(w, r, snap, nil, err)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	snap, err := s.app.ScoringService.Save(r.Context(), sessionFrom(r.Context()))
	s.reply(w, r, snap, nil, err)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	snap, err := s.app.ScoringService.Action(r.Context(), sessionFrom(r.Context()))
	s.reply(w, r, snap, nil, err)
}

func (s *Server) reply(w http.ResponseWriter, r *http.Request, snap app.Snapshot, hit *bool, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, entity.ErrUnknownRegion):
			status = http.StatusNotFound
		case errors.Is(err, app.ErrScoreNotOffered):
			status = http.StatusBadRequest
		case errors.Is(err, app.ErrActionUnavailable):
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}

	resp := newStateResponse(snap, s.inbox.Drain(sessionFrom(r.Context())))
	resp.Hit = hit
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func parseSide(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return def
	}
	if v > maxDiagramSide {
		return maxDiagramSide
	}
	return v
}

// clientSurface размеры изображения, как их видит браузер
type clientSurface struct {
	ready         bool
	width, height float64
}

func (c clientSurface) Ready() bool                { return c.ready }
func (c clientSurface) Bounds() (float64, float64) { return c.width, c.height }
