package dashboard

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const HeaderProvenance = "X-Dashboard-Provenance"

type loader interface {
	Load(ctx context.Context, sess session.Session) *Result
}

type Handler struct {
	loader loader
}

func NewHandler(loader loader) *Handler {
	return &Handler{
		loader: loader,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	router.HandleFunc("/dashboard/demo", handler.HandleDemo).Methods("GET", "OPTIONS").Name("dashboard-demo")
}

// HandleDashboard always answers 200: a failed live load is served as synthetic stats.
func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.dashboard")
	defer span.End()

	result := handler.loader.Load(ctx, session.FromRequest(r))
	span.SetAttributes(attribute.String("dashboard.provenance", string(result.Provenance)))

	w.Header().Set(HeaderProvenance, string(result.Provenance))
	writeView(ctx, w, result.Stats)
}

func (handler *Handler) HandleDemo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.demo")
	defer span.End()

	seed := DefaultSeed
	if seedParam := r.URL.Query().Get("seed"); seedParam != "" {
		var err error
		seed, err = strconv.Atoi(seedParam)
		if err != nil {
			log.Errorf("handle dashboard demo, bad seed [%s]: %s", seedParam, err)
			http.Error(w, "error, seed not valid", http.StatusBadRequest)
			return
		}
	}
	span.SetAttributes(attribute.Int("dashboard.seed", seed))

	w.Header().Set(HeaderProvenance, string(ProvenanceSynthetic))
	writeView(ctx, w, Generate(seed))
}

func writeView(ctx context.Context, w http.ResponseWriter, stats *Stats) {
	var buf bytes.Buffer
	if err := NewJSONRenderer(&buf).Render(ctx, stats); err != nil {
		log.Errorf("render dashboard view: %s", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, buf.Bytes(), http.StatusOK)
}
