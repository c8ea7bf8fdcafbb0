package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/session"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// example API call
// curl -H "Authorization: Bearer <token>" http://localhost:8081/api/tracker/analytics/42/dashboard

const (
	maxErrorBodyLen = 512
	megabyte        = 1024 * 1024
)

var (
	ErrMalformed = errors.New("malformed analytics response")
	ErrNoUser    = errors.New("no user id")
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("analytics backend status %d: %s", e.Code, e.Body)
}

type Client struct {
	baseURL        string // http://localhost:8081/api/tracker
	httpClient     *http.Client
	weeklyCache    *freecache.Cache
	weeklyCacheTTL time.Duration
}

func NewClient(baseURL string, httpClient *http.Client, weeklyCacheTTL time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     httpClient,
		weeklyCache:    freecache.NewCache(10 * megabyte),
		weeklyCacheTTL: weeklyCacheTTL,
	}
}

// Dashboard fetches the current week's dashboard summary for the session's user.
// It is never cached: every call hits the backend.
func (c *Client) Dashboard(ctx context.Context, sess session.Session) (_ *DashboardResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsApi.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", sess.UserID))

	if sess.IsAnonymous() {
		return nil, ErrNoUser
	}

	respBytes, err := c.get(ctx, sess, "dashboard")
	if err != nil {
		return nil, err
	}

	dashboard := &DashboardResponse{}
	if err := json.Unmarshal(respBytes, dashboard); err != nil {
		return nil, fmt.Errorf("%w: unmarshal dashboard response: %s", ErrMalformed, err)
	}
	if err := dashboard.Validate(); err != nil {
		return nil, err
	}

	return dashboard, nil
}

// Weekly fetches the last 7 days totals and averages for the session's user.
// Responses are cached per user.
func (c *Client) Weekly(ctx context.Context, sess session.Session) (_ *WeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsApi.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", sess.UserID))

	if sess.IsAnonymous() {
		return nil, ErrNoUser
	}

	weekly := &WeeklySummary{}
	cacheKey := []byte(fmt.Sprintf("weekly::%s", sess.UserID))
	if cachedBytes, err := c.weeklyCache.Get(cacheKey); err == nil {
		if err = json.Unmarshal(cachedBytes, weekly); err == nil {
			log.Tracef("found weekly summary for user %s in cache", sess.UserID)
			span.SetAttributes(attribute.Bool("weekly.from-cache", true))
			return weekly, nil
		}
		log.Errorf("failed to unmarshal cached weekly summary for user %s: %s", sess.UserID, err)
	}
	span.SetAttributes(attribute.Bool("weekly.from-cache", false))

	respBytes, err := c.get(ctx, sess, "weekly")
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(respBytes, weekly); err != nil {
		return nil, fmt.Errorf("%w: unmarshal weekly response: %s", ErrMalformed, err)
	}

	if err := c.weeklyCache.Set(cacheKey, respBytes, int(c.weeklyCacheTTL.Seconds())); err != nil {
		log.Errorf("failed to cache weekly summary for user %s: %s", sess.UserID, err)
	}

	return weekly, nil
}

func (c *Client) get(ctx context.Context, sess session.Session, summary string) ([]byte, error) {
	apiUrl := fmt.Sprintf("%s/analytics/%s/%s", c.baseURL, url.PathEscape(sess.UserID), summary)
	log.Debugf("calling analytics api: %s", apiUrl)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("new analytics request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if authHeader := sess.AuthorizationHeader(); authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analytics %s response: %w", summary, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := string(respBytes)
		if len(body) > maxErrorBodyLen {
			body = body[:maxErrorBodyLen]
		}
		return nil, &StatusError{Code: resp.StatusCode, Body: body}
	}

	return respBytes, nil
}

// FailureReason classifies an analytics error into a short, low-cardinality label.
func FailureReason(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoUser):
		return "no_user"
	case errors.As(err, &statusErr):
		return "status"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "transport"
	}
}
