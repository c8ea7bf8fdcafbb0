// Package session holds the per-user context a dashboard or tracker call needs:
// who the user is, the bearer token to act on their behalf, and the trainer-client
// relationship currently in focus. It is passed explicitly instead of living in globals.
package session

import (
	"context"
	"net/http"
	"strings"
)

const (
	HeaderUserID         = "X-User-ID"
	HeaderRelationshipID = "X-Relationship-ID"
)

type Session struct {
	UserID         string
	Token          string
	RelationshipID string
}

func New(userID, token string) Session {
	return Session{
		UserID: strings.TrimSpace(userID),
		Token:  strings.TrimSpace(token),
	}
}

func Anonymous() Session {
	return Session{}
}

func (s Session) IsAnonymous() bool {
	return s.UserID == ""
}

// WithRelationship returns a copy of the session focused on the given trainer-client relationship.
func (s Session) WithRelationship(relationshipID string) Session {
	s.RelationshipID = strings.TrimSpace(relationshipID)
	return s
}

// AuthorizationHeader returns the value for the Authorization header, or an empty
// string when there is no token.
func (s Session) AuthorizationHeader() string {
	if s.Token == "" {
		return ""
	}
	return "Bearer " + s.Token
}

// FromRequest builds a session from the request headers.
// A missing or malformed Authorization header leaves the token empty.
func FromRequest(r *http.Request) Session {
	s := New(r.Header.Get(HeaderUserID), BearerToken(r.Header.Get("Authorization")))
	return s.WithRelationship(r.Header.Get(HeaderRelationshipID))
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(authHeader string) string {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

type ctxKey struct{}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, or an anonymous one.
func FromContext(ctx context.Context) Session {
	s, ok := ctx.Value(ctxKey{}).(Session)
	if !ok {
		return Anonymous()
	}
	return s
}
