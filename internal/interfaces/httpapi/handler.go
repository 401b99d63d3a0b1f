package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
	"github.com/riskibarqy/youth-league/internal/platform/logging"
	"github.com/riskibarqy/youth-league/internal/usecase"
)

type Handler struct {
	draftService *usecase.DraftService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(draftService *usecase.DraftService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		draftService: draftService,
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenSession")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}

	result, err := h.draftService.OpenSession(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "open draft session failed", "session", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(result))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}

	state, err := h.draftService.GetSession(ctx, key)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(state))
}

func (h *Handler) DiscardSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DiscardSession")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}

	if err := h.draftService.DiscardSession(ctx, key); err != nil {
		h.logger.WarnContext(ctx, "discard draft session failed", "session", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Start")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}
	var req startDraftRequest
	if !h.decodeRequest(ctx, w, r, &req) {
		return
	}

	managers := make([]usecase.ManagerInput, 0, len(req.Managers))
	for _, m := range req.Managers {
		managers = append(managers, usecase.ManagerInput{Name: m.Name, TeamID: m.TeamID})
	}

	h.respond(ctx, w, "start draft", key)(h.draftService.Start(ctx, key, managers))
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Cancel")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}

	h.respond(ctx, w, "cancel draft", key)(h.draftService.Cancel(ctx, key))
}

func (h *Handler) Order(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Order")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}

	round := 1
	if raw := strings.TrimSpace(r.URL.Query().Get("round")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: round must be positive integer", usecase.ErrInvalidInput))
			return
		}
		round = v
	}

	managers, err := h.draftService.Order(ctx, key, round)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]orderEntryDTO, 0, len(managers))
	for i, m := range managers {
		items = append(items, orderEntryDTO{Position: i + 1, ManagerID: m.ID, ManagerName: m.Name})
	}
	writeSuccess(ctx, w, http.StatusOK, roundOrderDTO{Round: round, Managers: items})
}

func (h *Handler) Pick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Pick")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}
	var req pickRequest
	if !h.decodeRequest(ctx, w, r, &req) {
		return
	}

	h.respond(ctx, w, "pick", key)(h.draftService.Pick(ctx, key, req.ManagerID, req.Player))
}

func (h *Handler) AssignVolunteer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignVolunteer")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}
	var req assignVolunteerRequest
	if !h.decodeRequest(ctx, w, r, &req) {
		return
	}

	h.respond(ctx, w, "assign volunteer", key)(h.draftService.AssignVolunteer(ctx, key, req.VolunteerID, volunteer.Role(req.Role)))
}

func (h *Handler) DeclineVolunteer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeclineVolunteer")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}
	var req declineVolunteerRequest
	if !h.decodeRequest(ctx, w, r, &req) {
		return
	}

	h.respond(ctx, w, "decline volunteer", key)(h.draftService.DeclineVolunteer(ctx, key, req.VolunteerID))
}

func (h *Handler) SkipAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SkipAssignment")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}

	h.respond(ctx, w, "skip assignment", key)(h.draftService.SkipAssignment(ctx, key))
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayer")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}
	managerID := strings.TrimSpace(r.PathValue("managerID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	h.respond(ctx, w, "remove player", key)(h.draftService.RemovePlayer(ctx, key, managerID, playerID))
}

func (h *Handler) MovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MovePlayer")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}
	var req movePlayerRequest
	if !h.decodeRequest(ctx, w, r, &req) {
		return
	}

	h.respond(ctx, w, "move player", key)(h.draftService.MovePlayer(ctx, key, req.FromManagerID, req.ToManagerID, req.PlayerID))
}

func (h *Handler) ResolveMove(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveMove")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}
	var req resolveMoveRequest
	if !h.decodeRequest(ctx, w, r, &req) {
		return
	}

	decision := draft.MoveDecision{Cancel: req.Cancel, UnassignAll: req.UnassignAll}
	for _, a := range req.Assignments {
		decision.Assignments = append(decision.Assignments, draft.VolunteerAssignment{
			VolunteerID: a.VolunteerID,
			Role:        volunteer.Role(a.Role),
		})
	}

	h.respond(ctx, w, "resolve move", key)(h.draftService.ResolveMove(ctx, key, decision))
}

func (h *Handler) BindTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BindTeam")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}
	var req bindTeamRequest
	if !h.decodeRequest(ctx, w, r, &req) {
		return
	}
	managerID := strings.TrimSpace(r.PathValue("managerID"))

	h.respond(ctx, w, "bind team", key)(h.draftService.BindTeam(ctx, key, managerID, req.TeamID))
}

func (h *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Commit")
	defer span.End()

	key, ok := h.sessionKey(ctx, w)
	if !ok {
		return
	}

	result, err := h.draftService.Commit(ctx, key)
	if err != nil {
		h.logger.ErrorContext(ctx, "commit draft failed", "session", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(result))
}

// respond writes the outcome of a dispatched draft command.
func (h *Handler) respond(ctx context.Context, w http.ResponseWriter, action string, key draft.SessionKey) func(usecase.DraftResult, error) {
	return func(result usecase.DraftResult, err error) {
		if err != nil {
			h.logger.InfoContext(ctx, action+" rejected", "session", key, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, resultToDTO(result))
	}
}

func (h *Handler) sessionKey(ctx context.Context, w http.ResponseWriter) (draft.SessionKey, bool) {
	key, ok := sessionKeyFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: draft session key is missing from request context", usecase.ErrInvalidInput))
		return draft.SessionKey{}, false
	}
	return key, true
}

func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, req any) bool {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return false
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return false
	}
	return true
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
