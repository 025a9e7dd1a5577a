package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

var ErrNotFound = errors.New("record not found")

const listOrder = "sort_order ASC, created_at ASC"

// Storage is the single access point for every catalog entity.
type Storage interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req transport.PatchProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)
	SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req transport.PatchCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)

	ListBanners(ctx context.Context) ([]models.Banner, error)
	GetBanner(ctx context.Context, id string) (*models.Banner, error)
	CreateBanner(ctx context.Context, b *models.Banner) (*models.Banner, error)
	UpdateBanner(ctx context.Context, id string, req transport.PatchBannerRequest) (*models.Banner, error)
	DeleteBanner(ctx context.Context, id string) (bool, error)

	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, id string) (*models.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, pm *models.PaymentMethod) (*models.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, id string, req transport.PatchPaymentMethodRequest) (*models.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id string) (bool, error)

	ListTelegramChannels(ctx context.Context) ([]models.TelegramChannel, error)
	GetTelegramChannel(ctx context.Context, id string) (*models.TelegramChannel, error)
	CreateTelegramChannel(ctx context.Context, tc *models.TelegramChannel) (*models.TelegramChannel, error)
	UpdateTelegramChannel(ctx context.Context, id string, req transport.PatchTelegramChannelRequest) (*models.TelegramChannel, error)
	DeleteTelegramChannel(ctx context.Context, id string) (bool, error)

	ListSettings(ctx context.Context) ([]models.SiteSetting, error)
	GetSetting(ctx context.Context, key string) (*models.SiteSetting, error)
	UpsertSetting(ctx context.Context, key string, value *string) (*models.SiteSetting, error)

	Ping(ctx context.Context) error
}

type GormRepo struct {
	DB *gorm.DB
}

var _ Storage = (*GormRepo)(nil)

func (r *GormRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

func listOrdered[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	items := make([]T, 0)
	if err := db.WithContext(ctx).Order(listOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func getByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var item T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func create[T any](ctx context.Context, db *gorm.DB, item *T) (*T, error) {
	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// patch loads the row, lets apply copy the non-nil fields and saves it back.
func patch[T any](ctx context.Context, db *gorm.DB, id string, apply func(*T)) (*T, error) {
	item, err := getByID[T](ctx, db, id)
	if err != nil {
		return nil, err
	}
	apply(item)
	if err := db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id string) (bool, error) {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
