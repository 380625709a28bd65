package handler

import (
	"net/http"

	"studyhub/internal/studygroup/models"
	"studyhub/pkg/platform/httputil"
)

type groupResponse struct {
	*models.Group
	FreeSlots int  `json:"free_slots"`
	Full      bool `json:"full"`
}

func toGroupResponse(g *models.Group) groupResponse {
	return groupResponse{Group: g, FreeSlots: g.FreeSlots(), Full: g.IsFull()}
}

// rosterResponse adds the owner/member view next to the raw ledger.
type rosterResponse struct {
	*models.Roster
	Seats []models.Seat `json:"seats"`
}

type announceRequest struct {
	Message string `json:"message"`
}

func (h *Handler) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	var req models.CreateGroupRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	g, err := h.service.CreateGroup(r.Context(), actorID, req)
	if err != nil {
		h.fail(w, r, "create_group", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toGroupResponse(g))
}

func (h *Handler) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	g, err := h.service.GetGroup(r.Context(), groupID)
	if err != nil {
		h.fail(w, r, "get_group", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toGroupResponse(g))
}

func (h *Handler) handleListOwnedGroups(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	groups, err := h.service.ListOwnedGroups(r.Context(), actorID)
	if err != nil {
		h.fail(w, r, "list_owned_groups", err)
		return
	}
	out := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toGroupResponse(g))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"groups": out})
}

func (h *Handler) handleListMembers(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	roster, err := h.service.ListMembers(r.Context(), groupID)
	if err != nil {
		h.fail(w, r, "list_members", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rosterResponse{Roster: roster, Seats: roster.Seats()})
}

func (h *Handler) handleUpdateGroup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	var req models.UpdateGroupRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	g, err := h.service.UpdateGroup(r.Context(), groupID, actorID, req)
	if err != nil {
		h.fail(w, r, "update_group", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toGroupResponse(g))
}

func (h *Handler) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteGroup(r.Context(), groupID, actorID); err != nil {
		h.fail(w, r, "delete_group", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAnnounceSchedule(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.actor(w, r)
	if !ok {
		return
	}
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	var req announceRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	notified, err := h.service.AnnounceSchedule(r.Context(), groupID, actorID, req.Message)
	if err != nil {
		h.fail(w, r, "announce_schedule", err)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, map[string]int{"notified": notified})
}

func (h *Handler) handleVerifyHeadcount(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}
	if err := h.service.VerifyHeadcount(r.Context(), groupID); err != nil {
		h.fail(w, r, "verify_headcount", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"consistent": true})
}
