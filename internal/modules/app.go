package modules

import (
	"startup-hub-server/internal/modules/favorite"
	favoriterepo "startup-hub-server/internal/modules/favorite/repo"
	"startup-hub-server/internal/modules/image"
	"startup-hub-server/internal/modules/post"
	postrepo "startup-hub-server/internal/modules/post/repo"
	"startup-hub-server/internal/modules/publicdata"
	publicdatarepo "startup-hub-server/internal/modules/publicdata/repo"
	publicdataservice "startup-hub-server/internal/modules/publicdata/service"
	"startup-hub-server/internal/modules/review"
	reviewrepo "startup-hub-server/internal/modules/review/repo"
	"startup-hub-server/internal/modules/user"
	userrepo "startup-hub-server/internal/modules/user/repo"
	"startup-hub-server/internal/platform/storage"
)

type AppModules struct {
	User       *user.Module
	Image      *image.Module
	Post       *post.Module
	Favorite   *favorite.Module
	Review     *review.Module
	PublicData *publicdata.Module
}

type Options struct {
	MaxImageDimension int
	DefaultArea       string
}

func New(
	opts Options,
	blobStore storage.BlobStore,
	source publicdataservice.Source,
	userStore userrepo.UserStore,
	postStore postrepo.PostStore,
	favoriteStore favoriterepo.FavoriteStore,
	reviewStore reviewrepo.ReviewStore,
	publicDataStore publicdatarepo.PublicDataStore,
) *AppModules {
	imageModule := image.New(blobStore, opts.MaxImageDimension)
	favoriteModule := favorite.New(favoriteStore)

	return &AppModules{
		User:       user.New(userStore),
		Image:      imageModule,
		Post:       post.New(postStore, imageModule.Service, favoriteModule.Service),
		Favorite:   favoriteModule,
		Review:     review.New(reviewStore),
		PublicData: publicdata.New(source, publicDataStore, opts.DefaultArea),
	}
}
