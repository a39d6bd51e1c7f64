package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/breadcrumb/internal/storage"
	"github.com/jwebster45206/breadcrumb/pkg/engine"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// CommandRequest is one agent command against the labyrinth.
type CommandRequest struct {
	AgentID string `json:"agent_id"`
	Command string `json:"command"`
}

// ChallengeResult is attached to the response when the command was a
// SUBMIT, for the surrounding scoring system.
type ChallengeResult struct {
	Status  string `json:"status"` // "success" or "fail"
	Points  int    `json:"points"`
	Message string `json:"message"`
}

// CommandResponse is the engine's output for one command.
type CommandResponse struct {
	Output  string           `json:"output"`
	Changed bool             `json:"changed"`
	Passed  bool             `json:"passed"`
	Result  *ChallengeResult `json:"result,omitempty"`
}

// CommandHandler processes agent commands: load session, run the engine,
// save the session if it changed.
type CommandHandler struct {
	engine *engine.Engine
	store  storage.SessionStore
	logger *slog.Logger
	points int
}

func NewCommandHandler(eng *engine.Engine, store storage.SessionStore, logger *slog.Logger, points int) *CommandHandler {
	return &CommandHandler{
		engine: eng,
		store:  store,
		logger: logger,
		points: points,
	}
}

// ServeHTTP handles POST /v1/command.
func (h *CommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for command endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid command request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.AgentID) == "" {
		writeError(w, h.logger, http.StatusBadRequest, "agent_id is required")
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		writeError(w, h.logger, http.StatusBadRequest, "command is required")
		return
	}

	sess, err := h.store.LoadSession(r.Context(), req.AgentID)
	if err != nil {
		h.logger.Error("Failed to load session", "agent_id", req.AgentID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return
	}

	res := h.engine.Handle(sess, req.Command)

	if res.Changed && res.State != nil {
		if err := h.store.SaveSession(r.Context(), req.AgentID, res.State); err != nil {
			h.logger.Error("Failed to save session", "agent_id", req.AgentID, "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
			return
		}
	}

	response := CommandResponse{
		Output:  res.Output,
		Changed: res.Changed,
		Passed:  res.Passed,
	}

	if isSubmit(req.Command) {
		result := &ChallengeResult{Status: "fail", Message: res.Output}
		if res.Passed {
			result.Status = "success"
			result.Points = h.points
		}
		response.Result = result
	}

	h.logger.Debug("Command handled",
		"agent_id", req.AgentID,
		"changed", res.Changed,
		"passed", res.Passed)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode command response", "error", err)
	}
}

func isSubmit(command string) bool {
	fields := strings.Fields(command)
	return len(fields) > 0 && strings.EqualFold(fields[0], "SUBMIT")
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}
