package routes

import (
	"net/http"
	"time"

	"wayfare/catalog"
	"wayfare/chat"
	"wayfare/dialogue"
	"wayfare/export"
	"wayfare/middleware"
	"wayfare/ratelim"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
)

func AddChatRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, engine *dialogue.Engine, hub *chat.Hub) {
	limited := middleware.Chain(rateLimiter.Limit, middleware.Timed)

	router.POST("/api/v1/conversations", limited(chat.NewConversation()))
	router.POST("/api/v1/conversations/:convid/messages", limited(chat.PostMessage(engine)))
	router.DELETE("/api/v1/conversations/:convid", limited(chat.ClearConversation(engine)))
	router.GET("/api/v1/conversations/:convid/itinerary", limited(chat.GetItinerary(engine)))
	router.GET("/api/v1/conversations/:convid/requirements", limited(chat.GetRequirements(engine)))
	router.GET("/api/v1/conversations/:convid/itinerary.pdf", limited(export.PrintItinerary(engine)))

	router.GET("/ws/conversations/:convid", chat.WebSocketHandler(hub, engine))
}

func AddCatalogRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, store catalog.Store) {
	limited := middleware.Chain(rateLimiter.Limit, middleware.Timed)

	// The destination list lives outside /api/v1/catalog: httprouter
	// rejects a static child next to the :destination wildcard.
	router.GET("/api/v1/destinations", limited(catalog.GetDestinations(store)))
	router.GET("/api/v1/catalog/:destination/hotels", limited(catalog.GetHotels(store)))
	router.GET("/api/v1/catalog/:destination/activities", limited(catalog.GetActivities(store)))
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}
