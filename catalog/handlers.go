package catalog

import (
	"net/http"
	"strings"

	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
)

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(strings.ToLower(t)); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// GetDestinations lists every destination the planner knows about.
func GetDestinations(store Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		dests, err := store.Destinations(r.Context())
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load destinations")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"destinations": dests})
	}
}

// GetHotels lists hotel candidates for a destination. Unknown destinations
// return an empty list, not an error.
func GetHotels(store Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		hotels, err := store.HotelsFor(r.Context(), ps.ByName("destination"))
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load hotels")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"hotels": hotels})
	}
}

// GetActivities lists activity candidates for a destination, optionally
// narrowed by ?tags=a,b.
func GetActivities(store Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		acts, err := store.ActivitiesFor(r.Context(), ps.ByName("destination"))
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load activities")
			return
		}
		if tags := splitTags(r.URL.Query().Get("tags")); len(tags) > 0 {
			acts = FilterByTags(acts, tags)
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"activities": acts})
	}
}
