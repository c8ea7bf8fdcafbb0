package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/2beens/fitcoach/internal/analytics"
	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// example API call
// curl -H "Authorization: Bearer <token>" http://localhost:8081/api/tracker/meals/42/today

type Client struct {
	baseURL    string // http://localhost:8081/api/tracker
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) TodayMeals(ctx context.Context, sess session.Session) ([]MealLog, error) {
	var meals []MealLog
	if err := c.today(ctx, sess, "meals", &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (c *Client) TodayWaterSleep(ctx context.Context, sess session.Session) ([]WaterSleepLog, error) {
	var logs []WaterSleepLog
	if err := c.today(ctx, sess, "water-sleep", &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) TodayWorkouts(ctx context.Context, sess session.Session) ([]WorkoutLog, error) {
	var workouts []WorkoutLog
	if err := c.today(ctx, sess, "workouts", &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (c *Client) today(ctx context.Context, sess session.Session, kind string, dest any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackerApi.today")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", sess.UserID),
		attribute.String("tracker.kind", kind),
	)

	if sess.IsAnonymous() {
		return analytics.ErrNoUser
	}

	apiUrl := fmt.Sprintf("%s/%s/%s/today", c.baseURL, kind, url.PathEscape(sess.UserID))
	log.Debugf("calling tracker api: %s", apiUrl)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiUrl, nil)
	if err != nil {
		return fmt.Errorf("new tracker request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if authHeader := sess.AuthorizationHeader(); authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read tracker %s response: %w", kind, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &analytics.StatusError{Code: resp.StatusCode, Body: truncate(string(respBytes), 512)}
	}

	if err := json.Unmarshal(respBytes, dest); err != nil {
		return fmt.Errorf("%w: unmarshal tracker %s response: %s", analytics.ErrMalformed, kind, err)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
