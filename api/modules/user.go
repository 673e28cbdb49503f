package modules

import (
	"leaguecatalog/api/handlers"
	authservice "leaguecatalog/api/services/auth"
	userservice "leaguecatalog/api/services/user"
)

func initializeAuthHandler(authService *authservice.AuthService) *handlers.AuthHandler {
	return handlers.NewAuthHandler(&handlers.AuthHandlerDependencies{
		AuthService: authService,
	})
}

func initializeUserHandler(deps *ModuleDependencies) *handlers.UserHandler {
	userDeps := &userservice.UserServiceDeps{
		DB:     deps.DB,
		Logger: deps.Logger,
	}

	userService := userservice.NewUserService(userDeps)

	userHandlerDeps := &handlers.UserHandlerDependencies{
		UserService: userService,
	}

	return handlers.NewUserHandler(userHandlerDeps)
}
