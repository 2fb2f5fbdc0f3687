package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"svw.info/battleship/internal/domain"
	"svw.info/battleship/internal/render"
	"svw.info/battleship/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/session", h.handleCreate)
	mux.HandleFunc("/api/observe", h.handleObserve)
	mux.HandleFunc("/api/sunk", h.handleSunk)
	mux.HandleFunc("/api/reset", h.handleReset)
	mux.HandleFunc("/api/snapshot", h.handleSnapshot)
	mux.HandleFunc("/api/delete", h.handleDelete)
	mux.HandleFunc("/api/heatmap", h.handleHeatmap)
}

// statusFor maps engine and usecase errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOutOfBounds),
		errors.Is(err, domain.ErrInvalidDimensions),
		errors.Is(err, domain.ErrInvalidObservation),
		errors.Is(err, domain.ErrUnknownShipType),
		errors.Is(err, domain.ErrInvalidShipType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type snapshotResp struct {
	Snapshot *domain.Snapshot `json:"snapshot,omitempty"`
	Error    string           `json:"error,omitempty"`
}

func writeSnapshot(w http.ResponseWriter, snap domain.Snapshot, err error) {
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(snapshotResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(snapshotResp{Snapshot: &snap})
}

// decode reads a POST JSON body into v, writing the error response itself.
func decode(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !(allowEmpty && errors.Is(err, io.EOF)) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(snapshotResp{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// ---- Session ----

type createReq struct {
	Rows int `json:"rows,omitempty"`
	Cols int `json:"cols,omitempty"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if !decode(w, r, &req, true) {
		return
	}
	snap, err := h.UC.Create(r.Context(), req.Rows, req.Cols)
	if err == nil {
		w.WriteHeader(http.StatusCreated)
	}
	writeSnapshot(w, snap, err)
}

type idReq struct {
	ID string `json:"id"`
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	var req idReq
	if !decode(w, r, &req, false) {
		return
	}
	snap, err := h.UC.Snapshot(r.Context(), req.ID)
	writeSnapshot(w, snap, err)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var req idReq
	if !decode(w, r, &req, false) {
		return
	}
	snap, err := h.UC.Reset(r.Context(), req.ID)
	writeSnapshot(w, snap, err)
}

type deleteResp struct {
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req idReq
	if !decode(w, r, &req, false) {
		return
	}
	if err := h.UC.Delete(r.Context(), req.ID); err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(deleteResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(deleteResp{Deleted: true})
}

// ---- Observe ----

type observeReq struct {
	ID   string `json:"id"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Kind string `json:"kind"`
}

func (h *Handler) handleObserve(w http.ResponseWriter, r *http.Request) {
	var req observeReq
	if !decode(w, r, &req, false) {
		return
	}
	kind, err := domain.ParseObservation(req.Kind)
	if err != nil {
		writeSnapshot(w, domain.Snapshot{}, err)
		return
	}
	snap, err := h.UC.Observe(r.Context(), req.ID, domain.CellCoord{Row: req.Row, Col: req.Col}, kind)
	writeSnapshot(w, snap, err)
}

// ---- Sunk ----

type sunkReq struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sunk bool   `json:"sunk"`
}

func (h *Handler) handleSunk(w http.ResponseWriter, r *http.Request) {
	var req sunkReq
	if !decode(w, r, &req, false) {
		return
	}
	snap, err := h.UC.SetSunk(r.Context(), req.ID, req.Name, req.Sunk)
	writeSnapshot(w, snap, err)
}

// ---- Heatmap ----

func (h *Handler) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	b, g, err := h.UC.Map(r.Context(), q.Get("id"), strings.TrimSpace(q.Get("ship")))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if q.Get("format") == "numbers" {
		_, _ = w.Write([]byte(render.Numbers(g)))
		return
	}
	_, _ = w.Write([]byte(render.NewPainter(w).Heatmap(b, g)))
}
