package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"mindsoul/server/chat"
	"mindsoul/server/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response", "error", err)
	}
}

// HandleChat serves POST /api/chat: one collaborator round trip per request.
// The reply is either a stamped Plan or a ChatReply; a collaborator failure
// is a 500 and never fatal to the process.
func HandleChat(collab chat.Collaborator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorReply{Error: "invalid request body"})
			return
		}

		// Older clients omit message and carry it as the last history turn.
		message := req.Message
		if message == "" && len(req.History) > 0 {
			message = req.History[len(req.History)-1].Text
		}
		if message == "" {
			writeJSON(w, http.StatusBadRequest, model.ErrorReply{Error: "message is required"})
			return
		}

		session := chat.BuildSession(chat.FormatHistory(req.History), message)

		reply, err := collab.Generate(r.Context(), session)
		if err != nil {
			log.Error("collaborator call failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, model.ErrorReply{Error: "Failed to get response from AI"})
			return
		}

		// A reply that does not parse as JSON is the normal chat branch,
		// never an error.
		result := chat.Classify(reply)
		if result.IsPlan() {
			chat.StampStartDate(result.Plan, time.Now())
			writeJSON(w, http.StatusOK, result.Plan)
			return
		}
		writeJSON(w, http.StatusOK, model.ChatReply{ChatMessage: result.Chat})
	}
}
