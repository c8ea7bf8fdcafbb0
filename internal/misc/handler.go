package misc

import (
	"context"
	"net/http"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	versionInfo string
	redis       pinger
}

func NewHandler(versionInfo string, redis pinger) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		redis:       redis,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleHealth reports whether the status store is reachable. The dashboard itself
// keeps working without it.
func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	if handler.redis == nil {
		pkg.WriteJSON(w, http.StatusOK, map[string]string{"redis": "disabled"})
		return
	}

	if err := handler.redis.Ping(ctx); err != nil {
		log.Errorf("health check, redis ping: %s", err)
		pkg.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"redis": "down"})
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]string{"redis": "ok"})
}
