package testutil

import (
	"net/http"

	id "studyhub/pkg/domain"
	"studyhub/pkg/requestcontext"
)

// AsUser attaches an authenticated user to the request the way the auth
// middleware does. Requests built without it are anonymous.
func AsUser(req *http.Request, userID id.UserID) *http.Request {
	return req.WithContext(requestcontext.WithUserID(req.Context(), userID))
}

// WithRequestID attaches a correlation id to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
