package handler

import (
	"net/http"

	"medecos/internal/delivery/http/middleware"
	"medecos/internal/domain/entity"

	"github.com/google/uuid"
)

// callerIdentity pulls the authenticated identity off the request context.
// A miss means the route was wired without the authentication gate.
func callerIdentity(r *http.Request) (uuid.UUID, entity.Role, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetRoleFromContext(r.Context())
	if !ok {
		return uuid.Nil, "", false
	}
	return userID, role, true
}
