package handler

import reviewservice "startup-hub-server/internal/modules/review/service"

type Handler struct {
	reviewService *reviewservice.Service
}

func New(reviewService *reviewservice.Service) *Handler {
	return &Handler{reviewService: reviewService}
}
