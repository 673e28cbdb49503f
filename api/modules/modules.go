package modules

import (
	"leaguecatalog/api/handlers"
	"leaguecatalog/api/middleware"
	authservice "leaguecatalog/api/services/auth"
	"leaguecatalog/pkg/auth"
	"leaguecatalog/pkg/config"
	"leaguecatalog/pkg/logger"
	"leaguecatalog/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModuleDependencies are the global clients shared by every handler.
type ModuleDependencies struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.RedisClient
	BlobStore BlobStore
	Logger    *logger.NewLogger
}

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	ChampionHandler *handlers.ChampionHandler
	AuthHandler     *handlers.AuthHandler
	UserHandler     *handlers.UserHandler

	// Guard for the champion writes, nil when they are public.
	WriteGuard gin.HandlerFunc
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(deps.Logger))

	tokens := auth.NewTokenManager(deps.Config.Server.TokenSecret, deps.Config.Server.TokenTTL)
	authService := authservice.NewAuthService(&authservice.AuthServiceDeps{
		DB:     deps.DB,
		Tokens: tokens,
		Logger: deps.Logger,
	})

	module := &Module{
		Router:          router,
		ChampionHandler: initializeChampionHandler(deps),
		AuthHandler:     initializeAuthHandler(authService),
		UserHandler:     initializeUserHandler(deps),
	}

	if deps.Config.Server.ProtectWrites {
		module.WriteGuard = middleware.RequireAuth(authService)
	}

	return module
}
