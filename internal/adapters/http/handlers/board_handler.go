package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

// BoardHandler handles board snapshot, edit, and move requests.
type BoardHandler struct {
	boards ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(boards ports.BoardService) *BoardHandler {
	return &BoardHandler{boards: boards}
}

// GetBoard handles GET /api/v1/boards/{workspaceId}.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ws := workspaceID(r)
	b, err := h.boards.GetBoard(r.Context(), ws)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(ws, b))
}

// RefreshBoard handles POST /api/v1/boards/{workspaceId}/refresh.
func (h *BoardHandler) RefreshBoard(w http.ResponseWriter, r *http.Request) {
	ws := workspaceID(r)
	b, err := h.boards.Refresh(r.Context(), ws)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(ws, b))
}

// UpsertTask handles PUT /api/v1/boards/{workspaceId}/tasks/{taskId}.
func (h *BoardHandler) UpsertTask(w http.ResponseWriter, r *http.Request) {
	ws := workspaceID(r)

	var req dto.UpsertTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.boards.UpsertTask(r.Context(), ws, req.ToDomain(ws, chi.URLParam(r, ParamTaskID)))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(ws, b))
}

// DeleteTask handles DELETE /api/v1/boards/{workspaceId}/tasks/{taskId}.
// Deleting an unknown task succeeds and returns the unchanged board.
func (h *BoardHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ws := workspaceID(r)
	b, err := h.boards.RemoveTask(r.Context(), ws, chi.URLParam(r, ParamTaskID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(ws, b))
}

// MoveTask handles POST /api/v1/boards/{workspaceId}/moves. The move is
// applied optimistically; with ?wait=true the response is delayed until it
// commits or rolls back. A move still pending when the response is written
// returns 202 Accepted.
func (h *BoardHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	ws := workspaceID(r)

	wait, err := parseWait(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.boards.Move(r.Context(), ws, req.ToIntent(), wait)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status := http.StatusOK
	if res.State == ports.MovePending {
		status = http.StatusAccepted
	}
	writeJSON(w, r, status, dto.ToMoveResponse(ws, res))
}
