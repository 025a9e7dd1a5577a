package storefront

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/util"
)

type Lang string

const (
	Arabic  Lang = "ar"
	English Lang = "en"
)

// ParseLang maps a query value to a supported language; anything unknown is Arabic.
func ParseLang(s string) Lang {
	if strings.EqualFold(strings.TrimSpace(s), string(English)) {
		return English
	}
	return Arabic
}

// Display picks the field for lang, falling back to the Arabic text.
func Display(lang Lang, ar, en string) string {
	if lang == Arabic || en == "" {
		return ar
	}
	return en
}

func Features(lang Lang, ar, en []string) []string {
	out := ar
	if lang != Arabic && len(en) > 0 {
		out = en
	}
	if out == nil {
		return []string{}
	}
	return out
}

type HomeFilter struct {
	CategoryID string
	Query      string
}

// FilterHome keeps active products, applies the category and the
// case-insensitive Arabic name/description search, and sorts by order.
// Equal orders keep their input order.
func FilterHome(products []models.Product, f HomeFilter) []models.Product {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if f.CategoryID != "" && (p.CategoryID == nil || *p.CategoryID != f.CategoryID) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.NameAr), q) &&
			!strings.Contains(strings.ToLower(util.Deref(p.DescriptionAr)), q) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func ActiveBanners(banners []models.Banner) []models.Banner {
	out := make([]models.Banner, 0, len(banners))
	for _, b := range banners {
		if b.IsActive {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

var nonDigits = regexp.MustCompile(`\D`)

// TelegramLink turns a username like "@shop" into https://t.me/shop. Full URLs
// are returned as-is.
func TelegramLink(username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return ""
	}
	if strings.HasPrefix(username, "http") {
		return username
	}
	return "https://t.me/" + strings.Replace(username, "@", "", 1)
}

func WhatsAppLink(number string) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return ""
	}
	if strings.HasPrefix(number, "http") {
		return number
	}
	digits := nonDigits.ReplaceAllString(number, "")
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}
