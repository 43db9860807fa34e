package handler

import publicdataservice "startup-hub-server/internal/modules/publicdata/service"

type Handler struct {
	publicDataService *publicdataservice.Service
}

func New(publicDataService *publicdataservice.Service) *Handler {
	return &Handler{publicDataService: publicDataService}
}
