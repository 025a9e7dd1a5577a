package catalogclient

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

// Resource is one CRUD collection: T is the stored record, C the create
// body and P the partial update body.
type Resource[T, C, P any] struct {
	c    *Client
	path string
}

func (r Resource[T, C, P]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r Resource[T, C, P]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.path+"/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r Resource[T, C, P]) Create(ctx context.Context, req C) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r Resource[T, C, P]) Update(ctx context.Context, id string, req P) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPatch, r.path+"/"+escape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r Resource[T, C, P]) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, r.path+"/"+escape(id), nil, nil)
}

func (c *Client) Products() Resource[models.Product, transport.CreateProductRequest, transport.PatchProductRequest] {
	return Resource[models.Product, transport.CreateProductRequest, transport.PatchProductRequest]{c: c, path: "/api/products"}
}

func (c *Client) Categories() Resource[models.Category, transport.CreateCategoryRequest, transport.PatchCategoryRequest] {
	return Resource[models.Category, transport.CreateCategoryRequest, transport.PatchCategoryRequest]{c: c, path: "/api/categories"}
}

func (c *Client) Banners() Resource[models.Banner, transport.CreateBannerRequest, transport.PatchBannerRequest] {
	return Resource[models.Banner, transport.CreateBannerRequest, transport.PatchBannerRequest]{c: c, path: "/api/banners"}
}

func (c *Client) PaymentMethods() Resource[models.PaymentMethod, transport.CreatePaymentMethodRequest, transport.PatchPaymentMethodRequest] {
	return Resource[models.PaymentMethod, transport.CreatePaymentMethodRequest, transport.PatchPaymentMethodRequest]{c: c, path: "/api/payment-methods"}
}

func (c *Client) TelegramChannels() Resource[models.TelegramChannel, transport.CreateTelegramChannelRequest, transport.PatchTelegramChannelRequest] {
	return Resource[models.TelegramChannel, transport.CreateTelegramChannelRequest, transport.PatchTelegramChannelRequest]{c: c, path: "/api/telegram-channels"}
}

type ProductQuery struct {
	Active     *bool
	CategoryID string
}

// FilterProducts lists products narrowed by the optional active flag and category.
func (c *Client) FilterProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	v := url.Values{}
	if q.Active != nil {
		v.Set("active", strconv.FormatBool(*q.Active))
	}
	if q.CategoryID != "" {
		v.Set("categoryId", q.CategoryID)
	}
	path := "/api/products"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var out []models.Product
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchProducts(ctx context.Context, q string, page, size int) (*transport.SearchResponse[models.Product], error) {
	v := url.Values{"q": {q}}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		v.Set("size", strconv.Itoa(size))
	}
	var out transport.SearchResponse[models.Product]
	if err := c.do(ctx, http.MethodGet, "/api/products/search?"+v.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExportProducts(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.do(ctx, http.MethodGet, "/api/admin/products/export", nil, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Client) ListSettings(ctx context.Context) ([]models.SiteSetting, error) {
	var out []models.SiteSetting
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSetting(ctx context.Context, key string) (*models.SiteSetting, error) {
	var out models.SiteSetting
	if err := c.do(ctx, http.MethodGet, "/api/settings/"+escape(key), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpsertSetting(ctx context.Context, key string, value *string) (*models.SiteSetting, error) {
	var out models.SiteSetting
	req := transport.UpsertSettingRequest{Key: key, Value: value}
	if err := c.do(ctx, http.MethodPost, "/api/settings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
