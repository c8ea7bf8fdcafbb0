package analytics

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type weeklyFetcher interface {
	Weekly(ctx context.Context, sess session.Session) (*WeeklySummary, error)
}

type Handler struct {
	weekly weeklyFetcher
}

func NewHandler(weekly weeklyFetcher) *Handler {
	return &Handler{
		weekly: weekly,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/analytics/weekly", handler.HandleWeekly).Methods("GET", "OPTIONS").Name("analytics-weekly")
}

// HandleWeekly passes the backend weekly summary through. Unlike the dashboard,
// there is no synthetic fallback: backend failures surface as 502.
func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "analyticsHandler.weekly")
	defer span.End()

	sess := session.FromRequest(r)
	if sess.IsAnonymous() {
		http.Error(w, "user id missing", http.StatusUnauthorized)
		return
	}

	weekly, err := handler.weekly.Weekly(ctx, sess)
	if err != nil {
		log.Errorf("get weekly summary for user %s: %s", sess.UserID, err)
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized {
			http.Error(w, "backend rejected credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "failed to get weekly summary", http.StatusBadGateway)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, weekly)
}
