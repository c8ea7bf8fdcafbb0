package status

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

type lastReader interface {
	Last(ctx context.Context, userID string) (*Entry, error)
}

type Handler struct {
	store lastReader
}

func NewHandler(store lastReader) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard/status", handler.HandleLast).Methods("GET", "OPTIONS").Name("dashboard-status")
}

func (handler *Handler) HandleLast(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "statusHandler.last")
	defer span.End()

	sess := session.FromRequest(r)
	if sess.IsAnonymous() {
		http.Error(w, "user id missing", http.StatusUnauthorized)
		return
	}

	entry, err := handler.store.Last(ctx, sess.UserID)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "no dashboard load recorded", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get last dashboard status for user %s: %s", sess.UserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, entry)
}
