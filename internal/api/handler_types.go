package api

import (
	"time"

	"github.com/selflog-dev/selflog/internal/services"
)

type Handler struct {
	store    *services.StoreService
	location *time.Location
}

func NewHandler(store *services.StoreService, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		store:    store,
		location: location,
	}
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
