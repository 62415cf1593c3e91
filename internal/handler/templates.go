package handler

import (
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/laa-civil/bulkclaim/internal/format"
)

// TemplateFuncs returns a FuncMap with the display helpers pages use.
// Currency and date conventions come from configuration, keeping locale
// literals out of the templates themselves.
func TemplateFuncs(currency format.Currency, date format.Date) template.FuncMap {
	return template.FuncMap{
		// Math helpers for pagination controls
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},

		"year": func() int {
			return time.Now().Year()
		},

		// dict builds the argument map nested components expect.
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, fmt.Errorf("dict requires key value pairs")
			}
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				m[key] = pairs[i+1]
			}
			return m, nil
		},

		// Money is always decimal; templates never see floats.
		"currency": func(amount decimal.Decimal) string {
			return currency.Format(amount)
		},

		"formatDate": func(t time.Time) string {
			return date.Format(t)
		},
		"formatDateISO": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
	}
}

// PageRange returns the page numbers for pagination display, 1-indexed.
// Returns -1 for ellipsis positions.
func PageRange(currentPage, totalPages int) []int {
	if totalPages <= 7 {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	pages := []int{1}

	start := currentPage - 1
	end := currentPage + 1

	if start <= 2 {
		start = 2
	}
	if end >= totalPages {
		end = totalPages - 1
	}

	if start > 2 {
		pages = append(pages, -1) // ellipsis
	}

	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	if end < totalPages-1 {
		pages = append(pages, -1) // ellipsis
	}

	if totalPages > 1 {
		pages = append(pages, totalPages)
	}

	return pages
}
