package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"rentaid/internal/common"
	"rentaid/internal/http/handlers"
	"rentaid/internal/http/metrics"
	httpmw "rentaid/internal/http/middleware"
	"rentaid/internal/http/response"
)

type RouterDependencies struct {
	SubmissionHandler *handlers.SubmissionHandler
	AdminHandler      *handlers.AdminHandler
	AdminGate         *httpmw.AdminGate
	Logger            *slog.Logger
	RequestTimeout    time.Duration
	MaxBodyBytes      int64
}

type Router struct {
	deps RouterDependencies
}

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(r.deps.MaxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		httpmw.Metrics,
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			metrics.Handler().ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/submit":
			r.deps.SubmissionHandler.Submit(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/uploads/"):
			r.deps.AdminHandler.ServeUpload(w, req)
			return
		}

		if strings.HasPrefix(path, "/api/admin/") {
			protected := r.deps.AdminGate.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleAdmin(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		response.Error(w, common.NewError(common.CodeNotFound, "not found", nil))
	})
}

func (r *Router) handleAdmin(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/api/admin/applications":
		r.deps.AdminHandler.List(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/admin/applications/"):
		r.deps.AdminHandler.Get(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/admin/applications/"):
		r.deps.AdminHandler.Delete(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/admin/search":
		r.deps.AdminHandler.Search(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/admin/stats":
		r.deps.AdminHandler.Stats(w, req)
		return
	}

	response.Error(w, common.NewError(common.CodeNotFound, "not found", nil))
}
