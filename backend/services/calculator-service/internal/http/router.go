package httpserver

import (
	"net/http"
	"sort"
	"strings"

	"chargecalc/backend/services/calculator-service/internal/http/handlers"
)

// RouterDeps collects handler dependencies.
type RouterDeps struct {
	FormHandlers  *handlers.FormHandlers
	APIHandlers   *handlers.APIHandlers
	LiveHandler   http.HandlerFunc
	HealthHandler http.HandlerFunc
	Metrics       http.Handler
}

// NewRouter wires HTTP routes.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/health", method(http.MethodGet, deps.HealthHandler))
	if deps.Metrics != nil {
		mux.Handle("/metrics", method(http.MethodGet, deps.Metrics))
	}

	mux.Handle("/", exactPath("/", methods(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(deps.FormHandlers.Show),
		http.MethodPost: http.HandlerFunc(deps.FormHandlers.Submit),
	})))

	mux.Handle("/api/estimate", method(http.MethodPost, http.HandlerFunc(deps.APIHandlers.Estimate)))
	mux.Handle("/api/tariff", method(http.MethodGet, http.HandlerFunc(deps.APIHandlers.Tariff)))

	if deps.LiveHandler != nil {
		mux.Handle("/ws/estimate", method(http.MethodGet, deps.LiveHandler))
	}

	return mux
}

func method(expected string, handler http.Handler) http.Handler {
	return methods(map[string]http.Handler{expected: handler})
}

func methods(byMethod map[string]http.Handler) http.Handler {
	allowed := make([]string, 0, len(byMethod))
	for m := range byMethod {
		allowed = append(allowed, m)
	}
	sort.Strings(allowed)
	allow := strings.Join(allowed, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := byMethod[r.Method]
		if !ok {
			w.Header().Set("Allow", allow)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}

func exactPath(path string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
