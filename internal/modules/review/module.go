package review

import (
	"startup-hub-server/internal/modules/review/handler"
	"startup-hub-server/internal/modules/review/repo"
	"startup-hub-server/internal/modules/review/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(reviewStore repo.ReviewStore) *Module {
	moduleService := service.New(reviewStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
