package modules

import (
	"leaguecatalog/api/handlers"
	championservice "leaguecatalog/api/services/champion"
	"leaguecatalog/pkg/redis"
)

// BlobStore is the image store handed to the champion service.
type BlobStore = championservice.BlobStore

func initializeChampionHandler(deps *ModuleDependencies) *handlers.ChampionHandler {
	championDeps := &championservice.ChampionServiceDeps{
		DB:        deps.DB,
		BlobStore: deps.BlobStore,
		Logger:    deps.Logger,
	}

	if deps.Redis != nil {
		championDeps.Locker = redis.NewLocker(deps.Redis, "lock:champion", deps.Config.Redis.LockTTL)
	}

	championService := championservice.NewChampionService(championDeps)

	championHandlerDeps := &handlers.ChampionHandlerDependencies{
		ChampionService: championService,
	}

	return handlers.NewChampionHandler(championHandlerDeps)
}
