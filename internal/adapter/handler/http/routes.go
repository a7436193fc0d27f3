package http

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler served under /api/v1
type Handlers struct {
	Social      *SocialHandler
	Reputation  *ReputationHandler
	Achievement *AchievementHandler
	Realtime    *RealtimeHandler
}

// RegisterRoutes registers the community routes. api must already carry the JWT middleware
// (optional mode) and admin guards the manual reputation endpoints.
func RegisterRoutes(api *echo.Group, h Handlers, admin echo.MiddlewareFunc) {
	// Follow graph
	api.POST("/users/:id/follow", h.Social.Follow)
	api.DELETE("/users/:id/follow", h.Social.Unfollow)
	api.GET("/users/:id/follow", h.Social.FollowStatus)
	api.GET("/users/:id/followers", h.Social.Followers)
	api.GET("/users/:id/following", h.Social.Following)

	// Favorites
	api.POST("/problems/:id/favorite", h.Social.Favorite)
	api.DELETE("/problems/:id/favorite", h.Social.Unfavorite)
	api.GET("/problems/:id/favorite", h.Social.FavoriteStatus)
	api.GET("/users/:id/favorites", h.Social.Favorites)

	// Activity
	api.POST("/activities", h.Social.CreateActivity)
	api.GET("/users/:id/activity", h.Social.UserActivity)
	api.GET("/feed", h.Social.Feed)

	// Reputation
	api.GET("/users/:id/reputation", h.Reputation.GetReputation)
	api.GET("/users/:id/reputation/history", h.Reputation.GetHistory)

	adminGroup := api.Group("/admin", admin)
	adminGroup.POST("/users/:id/reputation", h.Reputation.Adjust)
	adminGroup.POST("/users/:id/reputation/recalculate", h.Reputation.Recalculate)

	// Achievements
	api.GET("/achievements", h.Achievement.ListCatalog)
	api.POST("/achievements/check", h.Achievement.Check)
	api.GET("/users/:id/achievements", h.Achievement.UserAchievements)
	api.GET("/users/:id/achievements/progress", h.Achievement.Progress)

	if h.Realtime != nil {
		api.GET("/ws", h.Realtime.Stream)
	}
}
