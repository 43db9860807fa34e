//go:build wireinject
// +build wireinject

package di

import (
	"startup-hub-server/internal/modules"
	favoriterepo "startup-hub-server/internal/modules/favorite/repo"
	postrepo "startup-hub-server/internal/modules/post/repo"
	publicdatarepo "startup-hub-server/internal/modules/publicdata/repo"
	reviewrepo "startup-hub-server/internal/modules/review/repo"
	userrepo "startup-hub-server/internal/modules/user/repo"
	"startup-hub-server/internal/router"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB) (*Application, error) {
	wire.Build(
		userrepo.NewUserRepository,
		postrepo.NewPostRepository,
		favoriterepo.NewFavoriteRepository,
		reviewrepo.NewReviewRepository,
		publicdatarepo.NewPublicDataRepository,
		NewBlobStore,
		NewPublicDataSource,
		NewModuleOptions,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
