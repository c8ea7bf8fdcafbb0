package middleware

import (
	"net/http"

	"github.com/2beens/fitcoach/internal/dashboard"
	"github.com/2beens/fitcoach/internal/session"

	"github.com/rs/cors"
)

func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
			session.HeaderUserID, session.HeaderRelationshipID,
		},
		ExposedHeaders:   []string{dashboard.HeaderProvenance, HeaderRequestID},
		AllowCredentials: true,
	})
	return c.Handler
}
