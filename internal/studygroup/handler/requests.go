package handler

import (
	"context"
	"net/http"

	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	"studyhub/pkg/platform/httputil"
)

func (h *Handler) handleRequestToJoin(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	var input models.JoinRequestInput
	if r.ContentLength != 0 {
		if err := httputil.DecodeJSON(r, &input); err != nil {
			httputil.WriteError(w, err)
			return
		}
	}
	jr, err := h.service.RequestToJoin(r.Context(), groupID, actorID, input)
	if err != nil {
		h.fail(w, r, "request_to_join", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, jr)
}

func (h *Handler) handleListPendingRequests(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	pending, err := h.service.ListPendingRequests(r.Context(), actorID)
	if err != nil {
		h.fail(w, r, "list_pending_requests", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"requests": pending})
}

func (h *Handler) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "approve_request", h.service.ApproveRequest)
}

func (h *Handler) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "reject_request", h.service.RejectRequest)
}

type resolveFunc func(ctx context.Context, groupID id.GroupID, requestID id.JoinRequestID, actorID id.UserID) (*models.JoinRequest, error)

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request, operation string, fn resolveFunc) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	requestID, ok := requestIDParam(w, r)
	if !ok {
		return
	}
	jr, err := fn(r.Context(), groupID, requestID, actorID)
	if err != nil {
		h.fail(w, r, operation, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, jr)
}

func (h *Handler) handleCheckRequestStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	status, err := h.service.CheckRequestStatus(r.Context(), groupID, actorID)
	if err != nil {
		h.fail(w, r, "check_request_status", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]*models.JoinRequestStatus{"status": status})
}
