package publicdata

import (
	"startup-hub-server/internal/modules/publicdata/handler"
	"startup-hub-server/internal/modules/publicdata/repo"
	"startup-hub-server/internal/modules/publicdata/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(source service.Source, store repo.PublicDataStore, defaultArea string) *Module {
	moduleService := service.New(source, store, defaultArea)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
