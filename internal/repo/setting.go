package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/storefront/internal/models"
)

func (r *GormRepo) ListSettings(ctx context.Context) ([]models.SiteSetting, error) {
	items := make([]models.SiteSetting, 0)
	if err := r.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetSetting(ctx context.Context, key string) (*models.SiteSetting, error) {
	var s models.SiteSetting
	if err := r.DB.WithContext(ctx).Where(map[string]any{"key": key}).First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

// UpsertSetting writes value under key in one statement; the unique index on
// key turns a concurrent insert of the same key into an update.
func (r *GormRepo) UpsertSetting(ctx context.Context, key string, value *string) (*models.SiteSetting, error) {
	s := models.SiteSetting{Key: key, Value: value}
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&s).Error
	if err != nil {
		return nil, err
	}
	return r.GetSetting(ctx, key)
}
