package transport_http

import (
	"fmt"
	"net/http"

	port_connector "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/usecase/connector"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// HealthCheck reports whether one backend is currently usable.
type HealthCheck func() bool

// Handler serves both listeners over the same connector.
type Handler struct {
	connector port_connector.Connector
	validate  *validator.Validate
	checks    map[string]HealthCheck
	log       *zap.Logger
}

func NewHandler(connector port_connector.Connector, checks map[string]HealthCheck, log *zap.Logger) (*Handler, error) {
	if log == nil {
		log = zap.NewNop()
	}

	vld, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("http: build validator: %w", err)
	}

	copied := make(map[string]HealthCheck, len(checks))
	for name, check := range checks {
		copied[name] = check
	}

	return &Handler{
		connector: connector,
		validate:  vld,
		checks:    copied,
		log:       log.Named("http"),
	}, nil
}

// SDKRouter serves the scheme adapter: party lookups, quotes and inbound
// transfers.
func (h *Handler) SDKRouter() http.Handler {
	r := h.newRouter("sdk")
	r.Get("/parties/{idType}/{idValue}", h.getParties)
	r.Post("/quoterequests", h.quoteRequests)
	r.Post("/transfers", h.receiveTransfer)
	return r
}

// DFSPRouter serves the bank's own systems: outbound transfers and their
// continuation.
func (h *Handler) DFSPRouter() http.Handler {
	r := h.newRouter("dfsp")
	r.Post("/send-money", h.sendMoney)
	r.Put("/send-money/{transferId}", h.updateSendMoney)
	return r
}

func (h *Handler) newRouter(name string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.log.Named(name)))
	r.Use(middleware.Recoverer)

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)
	r.Get("/health", h.health)
	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
}

type healthResponse struct {
	Success bool            `json:"success"`
	Checks  map[string]bool `json:"checks,omitempty"`
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	res := healthResponse{Success: true}

	if len(h.checks) > 0 {
		res.Checks = make(map[string]bool, len(h.checks))
		for name, check := range h.checks {
			ok := check()
			res.Checks[name] = ok
			res.Success = res.Success && ok
		}
	}

	status := http.StatusOK
	if !res.Success {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, res)
}
