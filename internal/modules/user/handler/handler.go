package handler

import userservice "startup-hub-server/internal/modules/user/service"

type Handler struct {
	userService *userservice.Service
}

func New(userService *userservice.Service) *Handler {
	return &Handler{userService: userService}
}
