package repo

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
)

func (r *GormRepo) GetUser(ctx context.Context, id string) (*models.User, error) {
	return getByID[models.User](ctx, r.DB, id)
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	return create(ctx, r.DB, user)
}
