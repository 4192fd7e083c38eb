package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/middleware"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

// currentSession returns the request's session or writes a 401.
func currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := middleware.SessionFrom(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return nil, false
	}
	return sess, true
}

// decodeJSON decodes the body into dst or writes a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// idParam parses the {id} path parameter.
func idParam(w http.ResponseWriter, r *http.Request, label string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, label+" ID is invalid", nil)
		return 0, false
	}
	return id, true
}

// int64Query reads an optional numeric filter. Empty, "All" and junk disable it.
func int64Query(r *http.Request, key string) int64 {
	id, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// rangeQuery parses ?from=&to=.
func rangeQuery(w http.ResponseWriter, r *http.Request) (calendar.Range, bool) {
	q := r.URL.Query()
	rng, err := calendar.ParseRange(q.Get("from"), q.Get("to"))
	if err != nil {
		response.BadRequest(w, "Invalid date range", map[string]string{"range": err.Error()})
		return calendar.Range{}, false
	}
	return rng, true
}

// cachedQuery reports whether the client asked to re-filter what is already
// loaded instead of fetching again.
func cachedQuery(r *http.Request) bool {
	val := r.URL.Query().Get("cached")
	return val == "true" || val == "1"
}
