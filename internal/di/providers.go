package di

import (
	"startup-hub-server/internal/config"
	"startup-hub-server/internal/modules"
	"startup-hub-server/internal/modules/publicdata/client"
	publicdataservice "startup-hub-server/internal/modules/publicdata/service"
	"startup-hub-server/internal/platform/storage"
)

func NewBlobStore() (storage.BlobStore, error) {
	return storage.New(config.Get().Storage)
}

func NewPublicDataSource() publicdataservice.Source {
	return client.New(config.Get().PublicData)
}

func NewModuleOptions() modules.Options {
	cfg := config.Get()
	return modules.Options{
		MaxImageDimension: cfg.Image.MaxDimension,
		DefaultArea:       cfg.PublicData.DefaultArea,
	}
}
