// Package handler exposes the admission service over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	dErrors "studyhub/pkg/domain-errors"
	"studyhub/pkg/platform/httputil"
	"studyhub/pkg/platform/middleware/admin"
	"studyhub/pkg/platform/middleware/auth"
	"studyhub/pkg/platform/middleware/request"
	"studyhub/pkg/requestcontext"
)

// Service is the admission surface the handler drives.
type Service interface {
	CreateGroup(ctx context.Context, ownerID id.UserID, req models.CreateGroupRequest) (*models.Group, error)
	GetGroup(ctx context.Context, groupID id.GroupID) (*models.Group, error)
	ListMembers(ctx context.Context, groupID id.GroupID) (*models.Roster, error)
	ListOwnedGroups(ctx context.Context, ownerID id.UserID) ([]*models.Group, error)
	UpdateGroup(ctx context.Context, groupID id.GroupID, actorID id.UserID, req models.UpdateGroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, groupID id.GroupID, actorID id.UserID) error
	AnnounceSchedule(ctx context.Context, groupID id.GroupID, actorID id.UserID, message string) (int, error)
	VerifyHeadcount(ctx context.Context, groupID id.GroupID) error

	JoinGroup(ctx context.Context, groupID id.GroupID, actorID id.UserID) error
	LeaveGroup(ctx context.Context, groupID id.GroupID, actorID id.UserID) error
	RemoveMember(ctx context.Context, groupID id.GroupID, memberID, actorID id.UserID) error

	RequestToJoin(ctx context.Context, groupID id.GroupID, actorID id.UserID, input models.JoinRequestInput) (*models.JoinRequest, error)
	ListPendingRequests(ctx context.Context, actorID id.UserID) ([]*models.JoinRequest, error)
	ApproveRequest(ctx context.Context, groupID id.GroupID, requestID id.JoinRequestID, actorID id.UserID) (*models.JoinRequest, error)
	RejectRequest(ctx context.Context, groupID id.GroupID, requestID id.JoinRequestID, actorID id.UserID) (*models.JoinRequest, error)
	CheckRequestStatus(ctx context.Context, groupID id.GroupID, actorID id.UserID) (*models.JoinRequestStatus, error)
}

type Handler struct {
	service      Service
	logger       *slog.Logger
	jwtValidator auth.JWTValidator
	adminToken   string
}

func New(service Service, logger *slog.Logger, jwtValidator auth.JWTValidator, adminToken string) *Handler {
	return &Handler{
		service:      service,
		logger:       logger,
		jwtValidator: jwtValidator,
		adminToken:   adminToken,
	}
}

// Register mounts the authenticated /groups routes and the operator routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/groups", func(r chi.Router) {
		r.Use(request.ContentTypeJSON)
		r.Use(auth.RequireAuth(h.jwtValidator, h.logger))

		r.Post("/", h.handleCreateGroup)
		r.Get("/owned", h.handleListOwnedGroups)
		r.Get("/requests/pending", h.handleListPendingRequests)

		r.Route("/{groupID}", func(r chi.Router) {
			r.Get("/", h.handleGetGroup)
			r.Patch("/", h.handleUpdateGroup)
			r.Delete("/", h.handleDeleteGroup)
			r.Get("/members", h.handleListMembers)
			r.Delete("/members/{userID}", h.handleRemoveMember)
			r.Post("/join", h.handleJoinGroup)
			r.Post("/leave", h.handleLeaveGroup)
			r.Post("/announcements", h.handleAnnounceSchedule)
			r.Post("/requests", h.handleRequestToJoin)
			r.Get("/requests/me", h.handleCheckRequestStatus)
			r.Post("/requests/{requestID}/approve", h.handleApproveRequest)
			r.Post("/requests/{requestID}/reject", h.handleRejectRequest)
		})
	})

	r.Route("/admin/groups", func(r chi.Router) {
		r.Use(admin.RequireAdminToken(h.adminToken, h.logger))
		r.Get("/{groupID}/headcount", h.handleVerifyHeadcount)
	})
}

// actor returns the authenticated caller. RequireAuth guarantees it is set.
func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	userID := requestcontext.UserID(r.Context())
	if userID.IsNil() {
		h.logger.ErrorContext(r.Context(), "userID missing from context despite auth middleware",
			"request_id", request.GetRequestID(r.Context()),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return id.UserID{}, false
	}
	return userID, true
}

func groupIDParam(w http.ResponseWriter, r *http.Request) (id.GroupID, bool) {
	groupID, err := id.ParseGroupID(chi.URLParam(r, "groupID"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid group id"))
		return id.GroupID{}, false
	}
	return groupID, true
}

func requestIDParam(w http.ResponseWriter, r *http.Request) (id.JoinRequestID, bool) {
	requestID, err := id.ParseJoinRequestID(chi.URLParam(r, "requestID"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request id"))
		return id.JoinRequestID{}, false
	}
	return requestID, true
}

// fail writes err. Business outcomes are the caller's concern and are not
// logged here; the service already logged infrastructure failures.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	if dErrors.IsBusinessOutcome(err) {
		h.logger.DebugContext(r.Context(), "request rejected",
			"operation", operation,
			"code", string(dErrors.CodeOf(err)),
			"request_id", request.GetRequestID(r.Context()),
		)
	}
	httputil.WriteError(w, err)
}
