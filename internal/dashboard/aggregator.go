package dashboard

import (
	"context"
	"time"

	"github.com/2beens/fitcoach/internal/analytics"
	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

type dashboardFetcher interface {
	Dashboard(ctx context.Context, sess session.Session) (*analytics.DashboardResponse, error)
}

// Observer is notified after every load, e.g. to record the provenance taken.
type Observer interface {
	Record(ctx context.Context, userID string, result *Result) error
}

type Aggregator struct {
	fetcher        dashboardFetcher
	observer       Observer
	syntheticSeed  int
	metricsManager *metrics.Manager
}

func NewAggregator(
	fetcher dashboardFetcher,
	syntheticSeed int,
	metricsManager *metrics.Manager,
) *Aggregator {
	return &Aggregator{
		fetcher:        fetcher,
		syntheticSeed:  syntheticSeed,
		metricsManager: metricsManager,
	}
}

func (a *Aggregator) WithObserver(observer Observer) *Aggregator {
	a.observer = observer
	return a
}

// Load returns the week's dashboard stats for the session's user. It never fails:
// without a user id, or when the live fetch fails, the synthetic record is returned
// and the live error, if any, is kept in Result.Cause.
func (a *Aggregator) Load(ctx context.Context, sess session.Session) *Result {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.load")
	defer span.End()

	result := a.load(ctx, sess)

	span.SetAttributes(
		attribute.String("user.id", sess.UserID),
		attribute.String("dashboard.provenance", string(result.Provenance)),
	)
	if result.Cause != nil {
		span.RecordError(result.Cause)
	}

	a.metricsManager.CounterDashboardLoads.WithLabelValues(string(result.Provenance)).Inc()

	if a.observer != nil && !sess.IsAnonymous() {
		if err := a.observer.Record(ctx, sess.UserID, result); err != nil {
			log.Errorf("dashboard: record provenance for user %s: %s", sess.UserID, err)
		}
	}

	return result
}

func (a *Aggregator) load(ctx context.Context, sess session.Session) *Result {
	if sess.IsAnonymous() {
		log.Debug("dashboard: no user id, serving synthetic stats")
		return a.synthetic(nil)
	}

	start := time.Now()
	resp, err := a.fetcher.Dashboard(ctx, sess)
	a.metricsManager.HistLiveFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		reason := analytics.FailureReason(err)
		a.metricsManager.CounterLiveFailures.WithLabelValues(reason).Inc()
		log.Warnf("dashboard: live fetch for user %s failed [%s], using synthetic stats: %s", sess.UserID, reason, err)
		return a.synthetic(err)
	}

	log.Tracef("dashboard: live stats loaded for user %s", sess.UserID)
	return &Result{
		Stats:      FromLive(resp),
		Provenance: ProvenanceLive,
	}
}

func (a *Aggregator) synthetic(cause error) *Result {
	return &Result{
		Stats:      Generate(a.syntheticSeed),
		Provenance: ProvenanceSynthetic,
		Cause:      cause,
	}
}
