// Package httpadapter exposes the check, fill, and puzzle store
// operations as a JSON API.
package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"svw.info/sudocheck/internal/domain"
	"svw.info/sudocheck/internal/usecase"
)

type Handler struct {
	UC     *usecase.Service
	Logger *zap.Logger
}

func New(uc *usecase.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{UC: uc, Logger: logger}
}

// Router builds the /api tree.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(h.Logger))
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
	r.Use(c.Handler)
	r.Route("/api", func(r chi.Router) {
		r.Post("/check", h.check)
		r.Post("/fill", h.fill)
		r.Mount("/puzzles", h.puzzleRouter())
	})
	return r
}

func (h *Handler) puzzleRouter() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.savePuzzle)
	r.Get("/", h.listPuzzles)
	r.Get("/{id}", h.loadPuzzle)
	return r
}

// gridFromRequest builds a checked grid and cross-checks an optional
// explicit size against the row count.
func gridFromRequest(size int, rows [][]int) (*domain.Grid, error) {
	g, err := domain.FromRows(rows)
	if err != nil {
		return nil, err
	}
	if size != 0 && size != g.Size() {
		return nil, fmt.Errorf("%w: size field %d, grid %d", domain.ErrSize, size, g.Size())
	}
	return g, nil
}

// ---- Check ----

type checkRequest struct {
	Size int     `json:"size,omitempty"`
	Grid [][]int `json:"grid"`
}

type checkResponse struct {
	Complete   bool                `json:"complete"`
	Valid      bool                `json:"valid"`
	Units      []domain.UnitResult `json:"units,omitempty"`
	DurationMs int64               `json:"durationMs"`
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrBadRequest)
		return
	}
	g, err := gridFromRequest(req.Size, req.Grid)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	start := time.Now()
	rep, err := h.UC.Check(r.Context(), g)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, &checkResponse{
		Complete:   rep.Complete,
		Valid:      rep.Valid,
		Units:      rep.Flagged(),
		DurationMs: time.Since(start).Milliseconds(),
	})
}

// ---- Fill ----

type fillRequest struct {
	Size   int     `json:"size,omitempty"`
	Grid   [][]int `json:"grid"`
	Passes int     `json:"passes,omitempty"`
}

type fillResponse struct {
	Grid       [][]int `json:"grid"`
	Filled     int     `json:"filled"`
	Passes     int     `json:"passes"`
	Complete   bool    `json:"complete"`
	Valid      bool    `json:"valid"`
	DurationMs int64   `json:"durationMs"`
}

func (h *Handler) fill(w http.ResponseWriter, r *http.Request) {
	var req fillRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrBadRequest)
		return
	}
	g, err := gridFromRequest(req.Size, req.Grid)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	start := time.Now()
	rep, res, err := h.UC.CheckAndFill(r.Context(), g, req.Passes)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, &fillResponse{
		Grid:       g.Rows(),
		Filled:     res.Filled,
		Passes:     res.Passes,
		Complete:   rep.Complete,
		Valid:      rep.Valid,
		DurationMs: time.Since(start).Milliseconds(),
	})
}

// ---- Puzzles ----

type savePuzzleRequest struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name,omitempty"`
	Size  int     `json:"size,omitempty"`
	Rows  [][]int `json:"rows"`
	Notes string  `json:"notes,omitempty"`
}

type savePuzzleResponse struct {
	ID string `json:"id"`
}

func (h *Handler) savePuzzle(w http.ResponseWriter, r *http.Request) {
	var req savePuzzleRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrBadRequest)
		return
	}
	g, err := gridFromRequest(req.Size, req.Rows)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	// Store ids are UUIDs: assign one when absent, reject other shapes.
	id := req.ID
	if id == "" {
		id = uuid.Must(uuid.NewV4()).String()
	} else if _, err := uuid.FromString(id); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError("id must be a UUID"))
		return
	}
	p := &domain.Puzzle{
		ID:        id,
		Name:      req.Name,
		Size:      g.Size(),
		Rows:      g.Rows(),
		CreatedAt: time.Now().UnixNano(),
		Notes:     req.Notes,
	}
	if err := h.UC.SavePuzzle(r.Context(), p); err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, &savePuzzleResponse{ID: p.ID})
}

func (h *Handler) loadPuzzle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// Store ids are UUIDs; anything else never names a stored file.
	if _, err := uuid.FromString(id); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrBadRequest)
		return
	}
	p, err := h.UC.LoadPuzzle(r.Context(), id)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, ErrNotFound)
			return
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, p)
}

type listPuzzlesResponse struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) listPuzzles(w http.ResponseWriter, r *http.Request) {
	ps, err := h.UC.ListPuzzles(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	if ps == nil {
		ps = []domain.PuzzleMeta{}
	}
	render.JSON(w, r, &listPuzzlesResponse{Puzzles: ps})
}
