package image

import (
	"startup-hub-server/internal/modules/image/service"
	"startup-hub-server/internal/platform/storage"
)

type Module struct {
	Service *service.Service
}

func New(store storage.BlobStore, maxDimension int) *Module {
	return &Module{Service: service.New(store, maxDimension)}
}
