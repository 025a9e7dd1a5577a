package catalogclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Skotchmaster/storefront/internal/storefront"
)

func (c *Client) Home(ctx context.Context, lang storefront.Lang, f storefront.HomeFilter) (*storefront.HomeView, error) {
	v := url.Values{"lang": {string(lang)}}
	if f.CategoryID != "" {
		v.Set("categoryId", f.CategoryID)
	}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	var out storefront.HomeView
	if err := c.do(ctx, http.MethodGet, "/api/storefront/home?"+v.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProductDetail(ctx context.Context, lang storefront.Lang, id string) (*storefront.ProductDetailView, error) {
	var out storefront.ProductDetailView
	if err := c.do(ctx, http.MethodGet, "/api/storefront/products/"+escape(id)+"?lang="+string(lang), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) About(ctx context.Context, lang storefront.Lang) (*storefront.AboutView, error) {
	var out storefront.AboutView
	if err := c.do(ctx, http.MethodGet, "/api/storefront/about?lang="+string(lang), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Contact(ctx context.Context, lang storefront.Lang) (*storefront.ContactView, error) {
	var out storefront.ContactView
	if err := c.do(ctx, http.MethodGet, "/api/storefront/contact?lang="+string(lang), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
