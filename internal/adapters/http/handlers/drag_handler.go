package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

// DragHandler feeds drag gestures from the view to a workspace's drag
// controller and exposes the controller state.
type DragHandler struct {
	boards ports.BoardService
	now    func() time.Time
}

// NewDragHandler creates a new DragHandler with the given service port.
func NewDragHandler(boards ports.BoardService) *DragHandler {
	return &DragHandler{boards: boards, now: time.Now}
}

// GetState handles GET /api/v1/boards/{workspaceId}/drag.
func (h *DragHandler) GetState(w http.ResponseWriter, r *http.Request) {
	st, err := h.boards.DragState(r.Context(), workspaceID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, st)
}

// SetZones handles PUT /api/v1/boards/{workspaceId}/drag/zones. The body
// replaces every registered drop zone; an empty list clears them.
func (h *DragHandler) SetZones(w http.ResponseWriter, r *http.Request) {
	var req dto.SetZonesRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	zones, err := req.ToZones()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.boards.SetDropZones(r.Context(), workspaceID(r), zones); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleEvent handles POST /api/v1/boards/{workspaceId}/drag/events and
// returns the controller state after the event.
func (h *DragHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.DragEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	st, err := h.boards.HandleDragEvent(r.Context(), workspaceID(r), req.ToEvent(h.now()))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, st)
}
