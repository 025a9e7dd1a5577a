package util

import "strconv"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxWindow bounds offset+limit; it matches Elasticsearch's default
	// index.max_result_window.
	MaxWindow = 10000
)

// Page is a 1-based page number and a size clamped to (0, MaxPageSize]. The
// number is clamped so the page ends within MaxWindow.
type Page struct {
	Number int
	Size   int
}

func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if last := MaxWindow / size; number > last {
		number = last
	}
	return Page{Number: number, Size: size}
}

// PageFromQuery parses raw query values; unparsable values fall back to defaults.
func PageFromQuery(page, size string) Page {
	return NewPage(atoiDefault(page, 1), atoiDefault(size, DefaultPageSize))
}

func (p Page) Offset() int { return (p.Number - 1) * p.Size }

func (p Page) Limit() int { return p.Size }

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
