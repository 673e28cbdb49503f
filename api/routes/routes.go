package routes

import (
	"leaguecatalog/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
	guard  []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api"),
		Engine: engine,
	}
}

// ProtectWrites puts the given middleware in front of every champion mutation.
// Must be called before SetupRoutes.
func (r *Router) ProtectWrites(guard gin.HandlerFunc) {
	r.guard = append(r.guard, guard)
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		case *handlers.AuthHandler:
			r.registerAuthHandler(handler)
		case *handlers.UserHandler:
			r.registerUserHandler(handler)
		}
	}
}

// Register the champion handler.
func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("", handler.ListChampions)
		champions.GET("/:name", handler.GetChampion)
	}

	writes := champions.Group("", r.guard...)
	{
		writes.POST("", handler.CreateChampion)
		writes.PUT("/:name", handler.UpdateChampion)
		writes.DELETE("/:name", handler.DeleteChampion)
	}
}

// Register the auth handler.
func (r *Router) registerAuthHandler(handler *handlers.AuthHandler) {
	auth := r.api.Group("/auth")
	{
		auth.POST("/login", handler.Login)
	}
}

// Register the user handler.
func (r *Router) registerUserHandler(handler *handlers.UserHandler) {
	users := r.api.Group("/users")
	{
		users.GET("", handler.ListUsers)
		users.POST("", handler.Signup)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
