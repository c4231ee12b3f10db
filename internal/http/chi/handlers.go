package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	jsoniter "github.com/json-iterator/go"
	"github.com/marcelsud/booklend/library"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Handlers wires the lending API. metricsHandler is mounted on /metrics when not nil.
func Handlers(ctx context.Context, catalog library.UseCase, metricsHandler http.Handler) *chi.Mux {
	logger := httplog.NewLogger("booklend", httplog.Options{
		JSON: true,
	})
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Method(http.MethodGet, "/v1/books", getBooks(catalog))
	r.Method(http.MethodGet, "/v1/books/search", searchBooks(catalog))
	r.Method(http.MethodPost, "/v1/books", postBooks(catalog))
	r.Method(http.MethodGet, "/v1/members", getMembers(catalog))
	r.Method(http.MethodPost, "/v1/members", postMembers(catalog))
	r.Method(http.MethodPost, "/v1/loans", postLoan(catalog))
	r.Method(http.MethodPost, "/v1/returns", postReturn(catalog))

	return r
}

/*
* Outcome in the web layer, hence the json tags
 */
type outcomeResponse struct {
	OK      bool   `json:"ok"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
	BookID  int64  `json:"book_id,omitempty"`
}

func newOutcomeResponse(o library.Outcome) outcomeResponse {
	return outcomeResponse{
		OK:      o.OK(),
		Outcome: o.Kind.String(),
		Message: o.Message,
		BookID:  o.BookID,
	}
}

// statusFor maps an outcome to an HTTP status; success is the status used when it went through
func statusFor(o library.Outcome, success int) int {
	switch o.Kind {
	case library.Succeeded:
		return success
	case library.InvalidID:
		return http.StatusNotFound
	case library.Unavailable, library.NotBorrowed, library.DuplicateID:
		return http.StatusConflict
	case library.InvalidInput:
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
