package repo

import (
	"context"

	"startup-hub-server/internal/model"
)

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *model.User) error
}
