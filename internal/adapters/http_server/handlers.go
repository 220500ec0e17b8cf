// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/app"
	"travel_reco/internal/domain"
)

type Handlers struct{ S *app.SearchService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type searchResponse struct {
	Query    string          `json:"query"`
	Category domain.Category `json:"category"`
	Count    int             `json:"count"`
	Items    []app.Card      `json:"items"`
	Message  string          `json:"message,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/readyz", h.ready)
	s.mux.Get("/v1/search", h.search)
	s.mux.Get("/v1/destinations", h.destinations)

	s.mux.Get("/", h.page)
	s.mux.Get("/search", h.searchPage)
	s.mux.Get("/reset", h.resetPage)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeSearchError maps the two recoverable search conditions to problems.
func writeSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		writeProblem(w, http.StatusBadRequest, "Invalid query", app.MsgEmptyQuery)
	case errors.Is(err, domain.ErrDataUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Data unavailable", app.MsgDataUnavailable)
	default:
		log.Error().Err(err).Msg("search failed")
		writeProblem(w, http.StatusInternalServerError, "Internal error", "search failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if etag != "" {
		w.Header().Set("ETag", etag)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write JSON body")
	}
}

func (h *Handlers) ready(w http.ResponseWriter, r *http.Request) {
	if !h.S.Available() {
		writeProblem(w, http.StatusServiceUnavailable, "Data unavailable", app.MsgDataUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("q")
	res, err := h.S.Search(r.Context(), raw)
	if err != nil {
		writeSearchError(w, err)
		return
	}

	out := searchResponse{
		Query:    raw,
		Category: res.Category,
		Count:    len(res.Items),
		Items:    app.Cards(res.Items),
	}
	if out.Count == 0 {
		out.Message = app.NoMatchesMessage(raw)
	}
	writeJSONWithETag(w, r, out)
}

func (h *Handlers) destinations(w http.ResponseWriter, r *http.Request) {
	ds, err := h.S.Dataset()
	if err != nil {
		writeSearchError(w, err)
		return
	}
	writeJSONWithETag(w, r, ds)
}

// ---- HTML page ----

func writePage(w http.ResponseWriter, st app.State) {
	body, err := Render(st)
	if err != nil {
		log.Error().Err(err).Msg("render page failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write page")
	}
}

func (h *Handlers) page(w http.ResponseWriter, r *http.Request) {
	writePage(w, app.Intro())
}

func (h *Handlers) searchPage(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("q")
	res, err := h.S.Search(r.Context(), raw)
	if err != nil && !errors.Is(err, domain.ErrInvalidQuery) && !errors.Is(err, domain.ErrDataUnavailable) {
		log.Error().Err(err).Str("q", raw).Msg("search failed")
	}
	writePage(w, app.Searched(raw, res, err))
}

func (h *Handlers) resetPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, app.Reset(app.Intro()))
}
