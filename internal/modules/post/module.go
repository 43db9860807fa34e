package post

import (
	"startup-hub-server/internal/modules/post/handler"
	"startup-hub-server/internal/modules/post/repo"
	"startup-hub-server/internal/modules/post/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(postStore repo.PostStore, images service.ImageDeriver, favorites service.FavoriteLookup) *Module {
	moduleService := service.New(postStore, images, favorites)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
