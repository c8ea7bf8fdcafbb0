package tracker

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type checkResponse struct {
	OK           bool   `json:"ok"`
	Rule         string `json:"rule,omitempty"`
	Message      string `json:"message,omitempty"`
	SleepQuality string `json:"sleepQuality,omitempty"`
}

type Handler struct {
	validator *Validator
}

func NewHandler(validator *Validator) *Handler {
	return &Handler{
		validator: validator,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	trackerRouter := router.PathPrefix("/tracker").Subrouter()
	trackerRouter.HandleFunc("/meals/check", handler.HandleCheckMeal).Methods("POST", "OPTIONS").Name("tracker-meals-check")
	trackerRouter.HandleFunc("/water-sleep/check", handler.HandleCheckWaterSleep).Methods("POST", "OPTIONS").Name("tracker-water-sleep-check")
}

func (handler *Handler) HandleCheckMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trackerHandler.checkMeal")
	defer span.End()

	sess := session.FromRequest(r)
	if sess.IsAnonymous() {
		http.Error(w, "user id missing", http.StatusUnauthorized)
		return
	}

	var check MealCheck
	if err := json.NewDecoder(r.Body).Decode(&check); err != nil {
		log.Errorf("check meal, decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("meal.type", check.MealType))

	err := handler.validator.CheckMeal(ctx, sess, check)
	writeCheckResult(w, err, "")
}

func (handler *Handler) HandleCheckWaterSleep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trackerHandler.checkWaterSleep")
	defer span.End()

	sess := session.FromRequest(r)
	if sess.IsAnonymous() {
		http.Error(w, "user id missing", http.StatusUnauthorized)
		return
	}

	var check WaterSleepCheck
	if err := json.NewDecoder(r.Body).Decode(&check); err != nil {
		log.Errorf("check water sleep, decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quality, err := handler.validator.CheckWaterSleep(ctx, sess, check)
	writeCheckResult(w, err, string(quality))
}

func writeCheckResult(w http.ResponseWriter, err error, sleepQuality string) {
	var ruleErr *RuleError
	switch {
	case err == nil:
		pkg.WriteJSON(w, http.StatusOK, checkResponse{OK: true, SleepQuality: sleepQuality})
	case errors.As(err, &ruleErr):
		pkg.WriteJSON(w, http.StatusUnprocessableEntity, checkResponse{
			Rule:    ruleErr.Rule,
			Message: ruleErr.Message,
		})
	default:
		log.Errorf("tracker check failed: %s", err)
		http.Error(w, "failed to verify against today's logs", http.StatusBadGateway)
	}
}
