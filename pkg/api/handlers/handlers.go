package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/cbodonnell/connectfour/pkg/messages"
)

func HandleGetState(c *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := c.State(r.Context())
		if err != nil {
			log.Error("failed to get state: %v", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

func HandleMove(c *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &messages.MoveRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			// an unreadable body is reported like a missing column
			log.Debug("failed to decode move request: %v", err)
			req = &messages.MoveRequest{}
		}

		result, err := c.Move(r.Context(), req)
		if err != nil {
			if statusFor(err) == http.StatusInternalServerError {
				log.Error("failed to make move: %v", err)
			}
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleReset(c *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := c.Reset(r.Context())
		if err != nil {
			log.Error("failed to reset: %v", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), &messages.ErrorResponse{Error: messageFor(err)})
}
