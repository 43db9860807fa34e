package favorite

import (
	"startup-hub-server/internal/modules/favorite/handler"
	"startup-hub-server/internal/modules/favorite/repo"
	"startup-hub-server/internal/modules/favorite/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(favoriteStore repo.FavoriteStore) *Module {
	moduleService := service.New(favoriteStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
