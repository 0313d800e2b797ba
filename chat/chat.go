package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"wayfare/dialogue"
	"wayfare/session"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
)

type messageRequest struct {
	Message string `json:"message"`
}

// PostMessage runs one dialogue turn over plain HTTP.
func PostMessage(engine *dialogue.Engine) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		convid := ps.ByName("convid")
		if convid == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Missing conversation id")
			return
		}

		var req messageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Message cannot be empty")
			return
		}

		res, err := engine.ProcessTurn(r.Context(), convid, req.Message)
		if err != nil {
			if errors.Is(err, session.ErrStaleState) {
				// The conversation was cleared mid-turn. Nothing was kept.
				utils.RespondWithJSON(w, http.StatusConflict, utils.M{
					"error": "Conversation was reset, please resend your message",
				})
				return
			}
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process message")
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, res)
	}
}

// ClearConversation wipes all remembered state. Clearing a conversation
// that does not exist succeeds the same way.
func ClearConversation(engine *dialogue.Engine) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		convid := ps.ByName("convid")
		if convid == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Missing conversation id")
			return
		}
		engine.Clear(convid)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "cleared"})
	}
}

// GetItinerary returns the conversation's generated itinerary.
func GetItinerary(engine *dialogue.Engine) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		convid := ps.ByName("convid")
		it, ok := engine.Itinerary(convid)
		if !ok {
			utils.RespondWithError(w, http.StatusNotFound, "No itinerary generated for this conversation yet")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, it)
	}
}

// GetRequirements exposes the slots gathered so far, mostly for UIs that
// render a progress checklist next to the chat.
func GetRequirements(engine *dialogue.Engine) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		convid := ps.ByName("convid")
		reqs, ok := engine.Requirements(convid)
		if !ok {
			utils.RespondWithError(w, http.StatusNotFound, "Unknown conversation")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, reqs)
	}
}

// NewConversation mints a fresh conversation id.
func NewConversation() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusCreated, utils.M{"conversationId": utils.GetUUID()})
	}
}
