package handler

import favoriteservice "startup-hub-server/internal/modules/favorite/service"

type Handler struct {
	favoriteService *favoriteservice.Service
}

func New(favoriteService *favoriteservice.Service) *Handler {
	return &Handler{favoriteService: favoriteService}
}
