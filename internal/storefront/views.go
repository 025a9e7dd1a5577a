package storefront

import (
	"context"
	"errors"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/util"
)

const (
	defaultAboutAr = "نحن نقدم أفضل المنتجات بأعلى جودة وأفضل الأسعار. هدفنا هو إرضاء عملائنا وتقديم تجربة تسوق مميزة. نسعى دائماً لتوفير منتجات متنوعة تلبي احتياجات جميع عملائنا."
	defaultAboutEn = "We offer the best products with the highest quality and best prices. Our goal is to satisfy our customers and provide a unique shopping experience. We always strive to provide diverse products that meet the needs of all our customers."
)

// Source is the read side of the catalog the views are built from.
type Source interface {
	ListProducts(ctx context.Context, filter repo.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBanners(ctx context.Context) ([]models.Banner, error)
	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	ListTelegramChannels(ctx context.Context) ([]models.TelegramChannel, error)
	ListSettings(ctx context.Context) ([]models.SiteSetting, error)
}

type Translator interface {
	Lookup(s string) string
}

type Builder struct {
	Src       Source
	Translate Translator
}

type ProductCard struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
	VideoURL *string `json:"videoUrl"`
	Order    int     `json:"order"`
}

type CategoryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BannerItem struct {
	ID       string  `json:"id"`
	ImageURL string  `json:"imageUrl"`
	LinkURL  *string `json:"linkUrl"`
}

type PaymentMethodItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type TelegramChannelItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
}

type Sidebar struct {
	PaymentMethods   []PaymentMethodItem   `json:"paymentMethods"`
	TelegramChannels []TelegramChannelItem `json:"telegramChannels"`
	TelegramLink     string                `json:"telegramLink,omitempty"`
}

type ContactLinks struct {
	Telegram string `json:"telegram,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

type HomeView struct {
	Lang       Lang           `json:"lang"`
	Banners    []BannerItem   `json:"banners"`
	Categories []CategoryItem `json:"categories"`
	Products   []ProductCard  `json:"products"`
	Sidebar    Sidebar        `json:"sidebar"`
}

type ProductDetailView struct {
	Lang        Lang          `json:"lang"`
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Features    []string      `json:"features"`
	ImageURL    *string       `json:"imageUrl"`
	VideoURL    *string       `json:"videoUrl"`
	Category    *CategoryItem `json:"category"`
	Contact     ContactLinks  `json:"contact"`
}

type AboutView struct {
	Lang    Lang   `json:"lang"`
	Content string `json:"content"`
}

type ContactView struct {
	Lang             Lang         `json:"lang"`
	TelegramUsername string       `json:"telegramUsername,omitempty"`
	WhatsappNumber   string       `json:"whatsappNumber,omitempty"`
	Links            ContactLinks `json:"links"`
}

// name resolves an English display name, trying the translation table when
// no English text was stored.
func (b *Builder) name(lang Lang, ar string, en *string) string {
	if lang == Arabic {
		return ar
	}
	if e := util.Deref(en); e != "" {
		return e
	}
	if b.Translate != nil {
		return b.Translate.Lookup(ar)
	}
	return ar
}

func (b *Builder) Home(ctx context.Context, lang Lang, f HomeFilter) (*HomeView, error) {
	products, err := b.Src.ListProducts(ctx, repo.ProductFilter{})
	if err != nil {
		return nil, err
	}
	banners, err := b.Src.ListBanners(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := b.Src.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	sidebar, err := b.sidebar(ctx, lang)
	if err != nil {
		return nil, err
	}

	view := &HomeView{
		Lang:       lang,
		Banners:    make([]BannerItem, 0),
		Categories: make([]CategoryItem, 0, len(categories)),
		Products:   make([]ProductCard, 0),
		Sidebar:    *sidebar,
	}
	for _, bn := range ActiveBanners(banners) {
		view.Banners = append(view.Banners, BannerItem{ID: bn.ID, ImageURL: bn.ImageURL, LinkURL: bn.LinkURL})
	}
	for _, c := range categories {
		view.Categories = append(view.Categories, CategoryItem{ID: c.ID, Name: b.name(lang, c.NameAr, c.NameEn)})
	}
	for _, p := range FilterHome(products, f) {
		view.Products = append(view.Products, ProductCard{
			ID:       p.ID,
			Name:     b.name(lang, p.NameAr, p.NameEn),
			ImageURL: p.ImageURL,
			VideoURL: p.VideoURL,
			Order:    p.Order,
		})
	}
	return view, nil
}

// ProductDetail returns repo.ErrNotFound for inactive products as well as missing ones.
func (b *Builder) ProductDetail(ctx context.Context, lang Lang, id string) (*ProductDetailView, error) {
	p, err := b.Src.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, repo.ErrNotFound
	}

	settings, err := b.settings(ctx)
	if err != nil {
		return nil, err
	}

	view := &ProductDetailView{
		Lang:        lang,
		ID:          p.ID,
		Name:        b.name(lang, p.NameAr, p.NameEn),
		Description: Display(lang, util.Deref(p.DescriptionAr), util.Deref(p.DescriptionEn)),
		Features:    Features(lang, p.FeaturesAr, p.FeaturesEn),
		ImageURL:    p.ImageURL,
		VideoURL:    p.VideoURL,
		Contact: ContactLinks{
			Telegram: TelegramLink(settings[models.SettingTelegramUsername]),
			WhatsApp: WhatsAppLink(settings[models.SettingWhatsappNumber]),
		},
	}

	if p.CategoryID != nil {
		categories, err := b.Src.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			if c.ID == *p.CategoryID {
				view.Category = &CategoryItem{ID: c.ID, Name: b.name(lang, c.NameAr, c.NameEn)}
				break
			}
		}
	}
	return view, nil
}

func (b *Builder) About(ctx context.Context, lang Lang) (*AboutView, error) {
	settings, err := b.settings(ctx)
	if err != nil {
		return nil, err
	}
	content := settings[models.SettingAboutUsContent]
	if content == "" {
		content = defaultAboutAr
		if lang == English {
			content = defaultAboutEn
		}
	}
	return &AboutView{Lang: lang, Content: content}, nil
}

func (b *Builder) Contact(ctx context.Context, lang Lang) (*ContactView, error) {
	settings, err := b.settings(ctx)
	if err != nil {
		return nil, err
	}
	tg := settings[models.SettingTelegramUsername]
	wa := settings[models.SettingWhatsappNumber]
	return &ContactView{
		Lang:             lang,
		TelegramUsername: tg,
		WhatsappNumber:   wa,
		Links: ContactLinks{
			Telegram: TelegramLink(tg),
			WhatsApp: WhatsAppLink(wa),
		},
	}, nil
}

func (b *Builder) sidebar(ctx context.Context, lang Lang) (*Sidebar, error) {
	methods, err := b.Src.ListPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	channels, err := b.Src.ListTelegramChannels(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := b.settings(ctx)
	if err != nil {
		return nil, err
	}

	sb := &Sidebar{
		PaymentMethods:   make([]PaymentMethodItem, 0, len(methods)),
		TelegramChannels: make([]TelegramChannelItem, 0, len(channels)),
		TelegramLink:     TelegramLink(settings[models.SettingTelegramUsername]),
	}
	for _, m := range methods {
		sb.PaymentMethods = append(sb.PaymentMethods, PaymentMethodItem{
			ID:       m.ID,
			Name:     Display(lang, util.Deref(m.NameAr), util.Deref(m.NameEn)),
			ImageURL: m.ImageURL,
		})
	}
	for _, c := range channels {
		sb.TelegramChannels = append(sb.TelegramChannels, TelegramChannelItem{
			ID:       c.ID,
			Name:     Display(lang, util.Deref(c.NameAr), util.Deref(c.NameEn)),
			ImageURL: c.ImageURL,
			LinkURL:  c.LinkURL,
		})
	}
	return sb, nil
}

func (b *Builder) settings(ctx context.Context) (map[string]string, error) {
	list, err := b.Src.ListSettings(ctx)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	out := make(map[string]string, len(list))
	for _, s := range list {
		out[s.Key] = util.Deref(s.Value)
	}
	return out, nil
}
