package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	id "studyhub/pkg/domain"
	dErrors "studyhub/pkg/domain-errors"
	"studyhub/pkg/platform/httputil"
)

func (h *Handler) handleJoinGroup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	if err := h.service.JoinGroup(r.Context(), groupID, actorID); err != nil {
		h.fail(w, r, "join_group", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLeaveGroup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	if err := h.service.LeaveGroup(r.Context(), groupID, actorID); err != nil {
		h.fail(w, r, "leave_group", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	memberID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid user id"))
		return
	}
	if err := h.service.RemoveMember(r.Context(), groupID, memberID, actorID); err != nil {
		h.fail(w, r, "remove_member", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
