package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/punch"
	"github.com/shopfloor-hr/overtime-backend-go/internal/domain/session"
	"github.com/shopfloor-hr/overtime-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	sessionService session.SessionService
}

func NewPunchHandler(sessionService session.SessionService) PunchHandler {
	return &punchHandlerImpl{
		sessionService: sessionService,
	}
}

// Preview implements PunchHandler. It reconstructs sessions from raw punch
// text without persisting anything, mirroring the conversion sheet the
// punch-clock workflow used before import.
func (h *punchHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req punch.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode punch preview request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.sessionService.PreviewPunches(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Import implements PunchHandler.
func (h *punchHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req punch.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode punch import request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.sessionService.ImportPunches(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch import processed", result)
}
