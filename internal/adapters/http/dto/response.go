// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
// Board and task bodies use the same shape as the published events.
package dto

import (
	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/events"
	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

// TaskResponse represents a single task card in HTTP responses.
type TaskResponse = events.Task

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return events.NewTask(t)
}

// LaneResponse is one lane of a board, in display order.
type LaneResponse = events.Lane

// BoardResponse represents a workspace board in HTTP responses.
type BoardResponse = events.Board

// ToBoardResponse converts a board to an HTTP response DTO. Lanes appear in
// the fixed TODO, ONGOING, DONE order.
func ToBoardResponse(workspaceID string, b board.Board) BoardResponse {
	return events.NewBoard(workspaceID, b)
}

// MoveResponse reports the outcome of a submitted move.
type MoveResponse struct {
	TransactionID string        `json:"transactionId,omitempty"`
	State         string        `json:"state"`
	Error         string        `json:"error,omitempty"`
	Board         BoardResponse `json:"board"`
}

// ToMoveResponse converts a move result to an HTTP response DTO.
func ToMoveResponse(workspaceID string, res *ports.MoveResult) MoveResponse {
	resp := MoveResponse{
		TransactionID: res.TransactionID,
		State:         string(res.State),
		Board:         ToBoardResponse(workspaceID, res.Board),
	}
	if res.Error != nil {
		resp.Error = res.Error.Error()
	}
	return resp
}
